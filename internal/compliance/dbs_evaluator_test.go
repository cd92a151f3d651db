package compliance_test

import (
	"context"
	"testing"

	"careflow-sync/internal/compliance"
	complianceMock "careflow-sync/internal/compliance/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func dbsRepoReturning(t *testing.T, check *compliance.DBSCheck) *complianceMock.MockRepository {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := complianceMock.NewMockRepository(ctrl)
	repo.EXPECT().
		LatestDBSByEmployee(gomock.Any(), gomock.Any()).
		Return(check, nil)
	return repo
}

func TestEvaluateDBS_NoCheckOnRecord(t *testing.T) {
	repo := dbsRepoReturning(t, nil)

	eval, err := compliance.EvaluateDBS(context.Background(), repo, uuid.NewString(), evalNow)

	assert.NoError(t, err)
	assert.True(t, eval.Blocked())
	assert.Equal(t, compliance.StatusMissing, eval.Status.Kind)
	assert.Equal(t, []string{"No DBS check on record"}, eval.Issues)
}

func TestEvaluateDBS_Expired(t *testing.T) {
	check := &compliance.DBSCheck{
		ID:         uuid.New(),
		Status:     "clear",
		ExpiryDate: pastDate(5),
	}
	repo := dbsRepoReturning(t, check)

	eval, err := compliance.EvaluateDBS(context.Background(), repo, uuid.NewString(), evalNow)

	assert.NoError(t, err)
	assert.True(t, eval.Blocked())
	assert.Equal(t, compliance.StatusExpired, eval.Status.Kind)
	assert.Equal(t, []string{"DBS check expired on " + pastDate(5).Format("2006-01-02")}, eval.Issues)
}

func TestEvaluateDBS_Clear(t *testing.T) {
	check := &compliance.DBSCheck{
		ID:         uuid.New(),
		Status:     "clear",
		ExpiryDate: futureDate(365),
	}
	repo := dbsRepoReturning(t, check)

	eval, err := compliance.EvaluateDBS(context.Background(), repo, uuid.NewString(), evalNow)

	assert.NoError(t, err)
	assert.False(t, eval.Blocked())
	assert.Equal(t, compliance.StatusValid, eval.Status.Kind)
	assert.Empty(t, eval.Issues)
	assert.Equal(t, futureDate(365), eval.Expiry)
}

func TestEvaluateDBS_InProgress(t *testing.T) {
	for _, raw := range []string{"pending", "in_progress"} {
		t.Run(raw, func(t *testing.T) {
			check := &compliance.DBSCheck{ID: uuid.New(), Status: raw}
			repo := dbsRepoReturning(t, check)

			eval, err := compliance.EvaluateDBS(context.Background(), repo, uuid.NewString(), evalNow)

			assert.NoError(t, err)
			assert.False(t, eval.Blocked())
			assert.Equal(t, compliance.StatusPending, eval.Status.Kind)
			assert.Equal(t, []string{"DBS check in progress"}, eval.Issues)
		})
	}
}

func TestEvaluateDBS_Barred(t *testing.T) {
	check := &compliance.DBSCheck{
		ID:         uuid.New(),
		Status:     "barred",
		ExpiryDate: futureDate(365),
	}
	repo := dbsRepoReturning(t, check)

	eval, err := compliance.EvaluateDBS(context.Background(), repo, uuid.NewString(), evalNow)

	assert.NoError(t, err)
	assert.True(t, eval.Blocked())
	assert.Equal(t, compliance.StatusBarred, eval.Status.Kind)
	assert.Equal(t, []string{"CRITICAL: Employee on barred list"}, eval.Issues)
}

func TestEvaluateDBS_BarredOverridesExpired(t *testing.T) {
	check := &compliance.DBSCheck{
		ID:         uuid.New(),
		Status:     "barred",
		ExpiryDate: pastDate(30),
	}
	repo := dbsRepoReturning(t, check)

	eval, err := compliance.EvaluateDBS(context.Background(), repo, uuid.NewString(), evalNow)

	assert.NoError(t, err)
	assert.Equal(t, compliance.StatusBarred, eval.Status.Kind)
	// Both the expiry issue and the barred issue are kept.
	assert.Equal(t, []string{
		"DBS check expired on " + pastDate(30).Format("2006-01-02"),
		"CRITICAL: Employee on barred list",
	}, eval.Issues)
}

func TestEvaluateDBS_UnknownStatusPassesThrough(t *testing.T) {
	check := &compliance.DBSCheck{ID: uuid.New(), Status: "awaiting_documents"}
	repo := dbsRepoReturning(t, check)

	eval, err := compliance.EvaluateDBS(context.Background(), repo, uuid.NewString(), evalNow)

	assert.NoError(t, err)
	assert.False(t, eval.Blocked())
	assert.Equal(t, "awaiting_documents", eval.Status.Label())
}
