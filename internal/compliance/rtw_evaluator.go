package compliance

import (
	"context"
	"fmt"
	"time"
)

// Home Office cutover dates for the 2024/2025 eVisa transition.
var (
	// BRP-based checks stopped being valid evidence of right to work.
	BRPInvalidFrom = time.Date(2024, time.October, 31, 0, 0, 0, 0, time.UTC)
	// Statutory defence from historic BRP checks lapsed entirely.
	BRPDefenceExpiredFrom = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
)

const expiryWarningWindow = 30 * 24 * time.Hour

// RTWEvaluation classifies an employee's right-to-work position based on
// their most recent check.
type RTWEvaluation struct {
	Status             Status
	Expiry             *time.Time
	VerificationMethod string
	Issues             []string
}

func (e RTWEvaluation) Blocked() bool {
	return e.Status.Kind.Blocking()
}

// EvaluateRTW applies the gating rules in fixed order; later rules may add
// blocking but a blocking classification is never cleared by a later rule.
func EvaluateRTW(ctx context.Context, repo Repository, employeeID string, now time.Time) (RTWEvaluation, error) {
	check, err := repo.LatestRTWByEmployee(ctx, employeeID)
	if err != nil {
		return RTWEvaluation{}, err
	}

	if check == nil {
		return RTWEvaluation{
			Status: Status{Kind: StatusMissing},
			Issues: []string{"No Right to Work check on record"},
		}, nil
	}

	eval := RTWEvaluation{Status: PassThrough("unknown")}

	if check.DocumentType == DocumentTypeBRP {
		if !now.Before(BRPInvalidFrom) {
			eval.Status = Status{Kind: StatusInvalid}
			eval.Issues = append(eval.Issues, "BRP-based RTW check is no longer valid. eVisa verification required.")
		}
		if !now.Before(BRPDefenceExpiredFrom) {
			eval.Issues = append(eval.Issues, "CRITICAL: All BRP-based statutory defence has expired.")
		}
	}

	if check.NextCheckDate != nil {
		eval.Expiry = check.NextCheckDate

		if check.NextCheckDate.Before(now) {
			eval.Status = Status{Kind: StatusExpired}
			eval.Issues = append(eval.Issues, fmt.Sprintf("RTW check expired on %s", check.NextCheckDate.Format("2006-01-02")))
		} else if !check.NextCheckDate.After(now.Add(expiryWarningWindow)) {
			eval.Issues = append(eval.Issues, fmt.Sprintf("RTW check expiring soon: %s", check.NextCheckDate.Format("2006-01-02")))
		}
	}

	switch check.Status {
	case "verified":
		if !eval.Blocked() {
			eval.Status = Status{Kind: StatusVerified, Raw: check.Status}
		}
	case "blocked":
		eval.Status = Status{Kind: StatusBlocked, Raw: check.Status}
	case "invalid":
		eval.Status = Status{Kind: StatusInvalid, Raw: check.Status}
	default:
		if !eval.Blocked() {
			eval.Status = PassThrough(check.Status)
		}
	}

	eval.VerificationMethod = check.VerificationMethod
	if eval.VerificationMethod == "" {
		eval.VerificationMethod = "manual"
	}

	// 90-day vignette holders need a follow-up online check once in the UK.
	if check.RequiresFollowup && check.DocumentType == DocumentTypePassportNonUK {
		eval.Issues = append(eval.Issues, "Follow-up online check required for vignette holder")
	}

	return eval, nil
}
