package compliance

import (
	"context"
	"fmt"
	"time"
)

// DBSEvaluation classifies an employee's vetting position based on their
// most recent DBS check.
type DBSEvaluation struct {
	Status Status
	Expiry *time.Time
	Issues []string
}

func (e DBSEvaluation) Blocked() bool {
	return e.Status.Kind.Blocking()
}

func EvaluateDBS(ctx context.Context, repo Repository, employeeID string, now time.Time) (DBSEvaluation, error) {
	check, err := repo.LatestDBSByEmployee(ctx, employeeID)
	if err != nil {
		return DBSEvaluation{}, err
	}

	if check == nil {
		return DBSEvaluation{
			Status: Status{Kind: StatusMissing},
			Issues: []string{"No DBS check on record"},
		}, nil
	}

	eval := DBSEvaluation{Status: PassThrough("unknown")}

	if check.ExpiryDate != nil {
		eval.Expiry = check.ExpiryDate

		if check.ExpiryDate.Before(now) {
			eval.Status = Status{Kind: StatusExpired}
			eval.Issues = append(eval.Issues, fmt.Sprintf("DBS check expired on %s", check.ExpiryDate.Format("2006-01-02")))
		}
	}

	switch check.Status {
	case "clear", "completed":
		if !eval.Blocked() {
			eval.Status = Status{Kind: StatusValid, Raw: check.Status}
		}
	case "pending", "in_progress":
		if !eval.Blocked() {
			eval.Status = Status{Kind: StatusPending, Raw: check.Status}
			eval.Issues = append(eval.Issues, "DBS check in progress")
		}
	case "barred":
		// Active safety/legal risk, not a paperwork lapse. Overrides any
		// expiry classification.
		eval.Status = Status{Kind: StatusBarred, Raw: check.Status}
		eval.Issues = append(eval.Issues, "CRITICAL: Employee on barred list")
	default:
		if !eval.Blocked() {
			eval.Status = PassThrough(check.Status)
		}
	}

	return eval, nil
}
