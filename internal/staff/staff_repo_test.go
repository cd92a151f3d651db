package staff_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"careflow-sync/internal/staff"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (sqlmock.Sqlmock, staff.Repository) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	return mock, staff.NewRepository(gormDB)
}

func staffRecord() *staff.StaffRecord {
	return &staff.StaffRecord{
		TenantID:            uuid.New(),
		NovumflowEmployeeID: uuid.New(),
		FullName:            "Amira Hassan",
		Email:               "amira@example.com",
		Role:                "Carer",
		Status:              staff.StatusActive,
		RTWStatus:           "verified",
		DBSStatus:           "valid",
	}
}

func TestRepository_UpsertUpdatesExistingRow(t *testing.T) {
	mock, repo := setupRepoTest(t)

	rec := staffRecord()
	existingID := uuid.New()
	createdAt := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, created_at FROM "careflow_staff" WHERE novumflow_employee_id = $1 AND tenant_id = $2`,
	)).WillReturnRows(
		sqlmock.NewRows([]string{"id", "created_at"}).AddRow(existingID, createdAt),
	)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "careflow_staff" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Upsert(context.Background(), rec))

	// A re-run updates the existing row in place instead of inserting a
	// duplicate, keeping its id and original created_at.
	assert.Equal(t, existingID, rec.ID)
	assert.Equal(t, createdAt, rec.CreatedAt)
	assert.False(t, rec.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpsertInsertsWhenMissing(t *testing.T) {
	mock, repo := setupRepoTest(t)

	rec := staffRecord()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, created_at FROM "careflow_staff" WHERE novumflow_employee_id = $1 AND tenant_id = $2`,
	)).WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "careflow_staff"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Upsert(context.Background(), rec))

	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpsertPropagatesLookupError(t *testing.T) {
	mock, repo := setupRepoTest(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, created_at FROM "careflow_staff"`)).
		WillReturnError(assert.AnError)

	err := repo.Upsert(context.Background(), staffRecord())
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpsertComplianceEntryUpdatesBySourceRecord(t *testing.T) {
	mock, repo := setupRepoTest(t)

	entry := &staff.ComplianceEntry{
		StaffID:           uuid.New(),
		TenantID:          uuid.New(),
		Type:              "Right to Work",
		Status:            "verified",
		NovumflowRecordID: uuid.New(),
	}
	existingID := uuid.New()
	createdAt := time.Date(2024, time.June, 10, 14, 30, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, created_at FROM "careflow_compliance" WHERE novumflow_record_id = $1`,
	)).WillReturnRows(
		sqlmock.NewRows([]string{"id", "created_at"}).AddRow(existingID, createdAt),
	)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "careflow_compliance" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpsertComplianceEntry(context.Background(), entry))

	assert.Equal(t, existingID, entry.ID)
	assert.Equal(t, createdAt, entry.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpsertComplianceEntryInsertsWhenMissing(t *testing.T) {
	mock, repo := setupRepoTest(t)

	entry := &staff.ComplianceEntry{
		StaffID:           uuid.New(),
		TenantID:          uuid.New(),
		Type:              "DBS Check",
		Status:            "clear",
		NovumflowRecordID: uuid.New(),
	}

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, created_at FROM "careflow_compliance" WHERE novumflow_record_id = $1`,
	)).WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "careflow_compliance"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpsertComplianceEntry(context.Background(), entry))

	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
