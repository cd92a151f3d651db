package sync

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"careflow-sync/internal/compliance"
	"careflow-sync/internal/employee"
	employeeerrors "careflow-sync/internal/employee/errors"
	"careflow-sync/internal/events"
	"careflow-sync/internal/messaging/kafka"
	"careflow-sync/internal/rbac"
	"careflow-sync/internal/shared/apperror"
	"careflow-sync/internal/shared/contextutil"
	"careflow-sync/internal/shared/retry"
	"careflow-sync/internal/staff"
	syncerrors "careflow-sync/internal/sync/errors"
	"careflow-sync/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=sync_service.go -destination=mock/sync_service_mock.go -package=mock
type Service interface {
	Run(ctx context.Context, req SyncRequest) (BatchSyncResponse, error)
}

// ServiceConfig tunes the orchestrator. Zero values fall back to the
// production defaults (keyword role heuristic, 3 attempts at 1s/2s/4s,
// wall-clock time).
type ServiceConfig struct {
	RoleMapper RoleMapper
	Retry      retry.Config
	Now        func() time.Time
}

type service struct {
	db        *sql.DB
	employees employee.Repository
	checks    compliance.Repository
	targets   staff.Store
	tenants   tenant.Resolver
	logs      LogRepository
	access    rbac.Service
	outbox    kafka.OutboxRepository
	roleOf    RoleMapper
	retryCfg  retry.Config
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	employees employee.Repository,
	checks compliance.Repository,
	targets staff.Store,
	tenants tenant.Resolver,
	logs LogRepository,
	access rbac.Service,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithConfig(ServiceConfig{}, db, employees, checks, targets, tenants, logs, access, outbox, logger...)
}

func NewServiceWithConfig(
	cfg ServiceConfig,
	db *sql.DB,
	employees employee.Repository,
	checks compliance.Repository,
	targets staff.Store,
	tenants tenant.Resolver,
	logs LogRepository,
	access rbac.Service,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("sync.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sync.service")
	}

	if cfg.RoleMapper == nil {
		cfg.RoleMapper = DefaultRoleMapper
	}
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry = retry.DefaultConfig()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &service{
		db:        db,
		employees: employees,
		checks:    checks,
		targets:   targets,
		tenants:   tenants,
		logs:      logs,
		access:    access,
		outbox:    outbox,
		roleOf:    cfg.RoleMapper,
		retryCfg:  cfg.Retry,
		now:       cfg.Now,
		logger:    l,
	}
}

// Run executes one batch: authorize, resolve the tenant target, walk the
// roster and aggregate per-employee outcomes. One employee failing never
// aborts the batch; request-level failures (auth, unknown tenant, sync
// disabled) abort before any employee is touched.
func (s *service) Run(ctx context.Context, req SyncRequest) (BatchSyncResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		return BatchSyncResponse{}, syncerrors.ErrInvalidTenantID
	}

	if err := s.authorize(ctx, req.TenantID); err != nil {
		return BatchSyncResponse{}, err
	}

	cfg, err := s.tenants.Resolve(ctx, req.TenantID)
	if err != nil {
		return BatchSyncResponse{}, err
	}
	if !cfg.CareFlowEnabled {
		return BatchSyncResponse{}, syncerrors.ErrCareFlowDisabled
	}

	target, err := s.targets.ForTenant(ctx, cfg)
	if err != nil {
		return BatchSyncResponse{}, apperror.Wrap(err,
			syncerrors.ErrTargetUnavailable.Code,
			syncerrors.ErrTargetUnavailable.Message,
			syncerrors.ErrTargetUnavailable.HTTPStatus,
		)
	}

	entry, err := s.openLog(ctx, tenantID, cfg, req)
	if err != nil {
		return BatchSyncResponse{}, err
	}

	roster, err := s.loadRoster(ctx, req)
	if err != nil {
		s.finalizeLog(ctx, entry.ID.String(), LogStatusFailed, err.Error())
		return BatchSyncResponse{}, err
	}

	resp := BatchSyncResponse{Results: make([]SyncResult, 0, len(roster))}

	for i := range roster {
		empl := &roster[i]

		var result SyncResult
		err := retry.Do(ctx, s.retryCfg, func(ctx context.Context) error {
			var attemptErr error
			result, attemptErr = s.syncEmployee(ctx, target, empl, req)
			return attemptErr
		})
		if err != nil {
			log.Warn("employee sync failed",
				zap.String("tenant_id", req.TenantID),
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %s", empl.FullName(), err.Error()))
			result = SyncResult{
				EmployeeID:       empl.ID.String(),
				EmployeeName:     empl.FullName(),
				Synced:           false,
				ComplianceStatus: ComplianceNonCompliant,
				Issues:           []string{err.Error()},
			}
		}

		resp.Results = append(resp.Results, result)
		if result.Synced {
			resp.SyncedCount++
		}
		if result.ComplianceStatus == ComplianceBlocked {
			resp.BlockedCount++
		}
	}

	resp.TotalProcessed = len(resp.Results)
	resp.Success = true
	resp.Message = batchMessage(resp.SyncedCount, resp.BlockedCount)

	s.completeBatch(ctx, entry, req, resp)

	log.Info("sync batch finished",
		zap.String("tenant_id", req.TenantID),
		zap.String("action", req.Action),
		zap.Int("synced", resp.SyncedCount),
		zap.Int("blocked", resp.BlockedCount),
		zap.Int("total", resp.TotalProcessed),
		zap.Int("errors", len(resp.Errors)),
	)

	return resp, nil
}

// authorize lets the shared service credential through unconditionally;
// user sessions need an owner/admin membership in the target tenant.
func (s *service) authorize(ctx context.Context, tenantID string) error {
	if contextutil.IsServiceRole(ctx) {
		return nil
	}

	userID := contextutil.GetUserID(ctx)
	if userID == "" {
		return syncerrors.ErrUnauthorized
	}

	allowed, err := s.access.Enforce(rbac.EnforceRequest{
		UserID:   userID,
		TenantID: tenantID,
		Resource: "sync",
		Action:   "execute",
	})
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "Permission check failed", 500)
	}
	if !allowed {
		return syncerrors.ErrInsufficientPermissions
	}
	return nil
}

func (s *service) openLog(ctx context.Context, tenantID uuid.UUID, cfg tenant.Config, req SyncRequest) (*SyncLog, error) {
	meta, _ := json.Marshal(LogMetadata{
		Region:            cfg.Region,
		IncludeCompliance: req.WithCompliance(),
		RequestID:         contextutil.GetRequestID(ctx),
	})

	entry := &SyncLog{
		ID:       uuid.New(),
		TenantID: tenantID,
		Action:   req.Action,
		Status:   LogStatusPending,
		Metadata: meta,
	}
	if req.EmployeeID != "" {
		if id, err := uuid.Parse(req.EmployeeID); err == nil {
			entry.EmployeeID = &id
		}
	}

	if err := s.logs.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// finalizeLog transitions the audit row out of pending. A failure here is
// logged but never turned into a batch failure; the sync itself already
// happened.
func (s *service) finalizeLog(ctx context.Context, id, status, lastError string) {
	if err := s.logs.Finalize(ctx, id, status, lastError); err != nil {
		s.logger.Error("finalize sync log failed",
			zap.String("sync_log_id", id),
			zap.String("status", status),
			zap.Error(err),
		)
	}
}

func (s *service) loadRoster(ctx context.Context, req SyncRequest) ([]employee.Employee, error) {
	if req.EmployeeID != "" {
		empl, err := s.employees.FindByIDAndTenant(ctx, req.TenantID, req.EmployeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, employeeerrors.ErrEmployeeNotFound
			}
			return nil, err
		}
		return []employee.Employee{*empl}, nil
	}
	return s.employees.FindActiveByTenant(ctx, req.TenantID)
}

// syncEmployee runs both evaluators, writes the staff projection and mirrors
// the compliance records. Mirror failures degrade to warnings on the result
// instead of failing the employee; the staff row is already consistent.
func (s *service) syncEmployee(ctx context.Context, target staff.Repository, empl *employee.Employee, req SyncRequest) (SyncResult, error) {
	now := s.now().UTC()

	result := SyncResult{
		EmployeeID:       empl.ID.String(),
		EmployeeName:     empl.FullName(),
		ComplianceStatus: CompliancePending,
		Issues:           []string{},
	}

	rtw, err := compliance.EvaluateRTW(ctx, s.checks, empl.ID.String(), now)
	if err != nil {
		return result, err
	}
	dbs, err := compliance.EvaluateDBS(ctx, s.checks, empl.ID.String(), now)
	if err != nil {
		return result, err
	}

	result.Issues = append(result.Issues, rtw.Issues...)
	result.Issues = append(result.Issues, dbs.Issues...)

	blocked := rtw.Blocked() || dbs.Blocked()
	if blocked {
		result.ComplianceStatus = ComplianceBlocked
	}

	rec := BuildStaffRecord(empl, rtw, dbs, result.Issues, s.roleOf)

	if req.Action == ActionVerify {
		if !blocked && len(result.Issues) == 0 {
			result.ComplianceStatus = ComplianceCompliant
		}
		return result, nil
	}

	if err := target.Upsert(ctx, rec); err != nil {
		return result, err
	}
	result.Synced = true

	if !blocked && len(result.Issues) == 0 {
		result.ComplianceStatus = ComplianceCompliant
	}

	if req.WithCompliance() {
		warnings := s.mirrorCompliance(ctx, target, empl, rec)
		result.Issues = append(result.Issues, warnings...)
	}

	return result, nil
}

// mirrorCompliance copies the employee's RTW checks and generic compliance
// records downstream, keyed by source record id. Returns warnings for rows
// that could not be mirrored.
func (s *service) mirrorCompliance(ctx context.Context, target staff.Repository, empl *employee.Employee, rec *staff.StaffRecord) []string {
	var warnings []string

	rtwRows, err := s.checks.ListRTWByEmployee(ctx, empl.ID.String())
	if err != nil {
		warnings = append(warnings, "compliance mirror failed: "+err.Error())
	} else {
		for i := range rtwRows {
			entry := NewRTWEntry(&rtwRows[i], rec)
			if err := target.UpsertComplianceEntry(ctx, entry); err != nil {
				warnings = append(warnings, fmt.Sprintf("compliance mirror failed for record %s: %s", rtwRows[i].ID, err))
			}
		}
	}

	records, err := s.checks.ListRecordsByEmployee(ctx, empl.TenantID.String(), empl.ID.String())
	if err != nil {
		warnings = append(warnings, "compliance mirror failed: "+err.Error())
	} else {
		for i := range records {
			entry := NewComplianceEntry(&records[i], rec)
			if err := target.UpsertComplianceEntry(ctx, entry); err != nil {
				warnings = append(warnings, fmt.Sprintf("compliance mirror failed for record %s: %s", records[i].ID, err))
			}
		}
	}

	return warnings
}

// completeBatch finalizes the audit row and enqueues the lifecycle event in
// a single transaction, so a relayed event never refers to a log row still
// marked pending. Failures here are logged, never surfaced: the sync itself
// already happened.
func (s *service) completeBatch(ctx context.Context, entry *SyncLog, req SyncRequest, resp BatchSyncResponse) {
	status, lastError := LogStatusSuccess, ""
	if len(resp.Errors) > 0 {
		status = LogStatusFailed
		lastError = strings.Join(resp.Errors, "; ")
	}

	if s.db == nil || s.outbox == nil {
		s.finalizeLog(ctx, entry.ID.String(), status, lastError)
		return
	}

	event, err := events.NewSyncCompletedOutbox(events.SyncCompletedEvent{
		RequestID:      contextutil.GetRequestID(ctx),
		TenantID:       req.TenantID,
		SyncLogID:      entry.ID.String(),
		Action:         req.Action,
		SyncedCount:    resp.SyncedCount,
		BlockedCount:   resp.BlockedCount,
		TotalProcessed: resp.TotalProcessed,
		ErrorCount:     len(resp.Errors),
		OccurredAt:     s.now().UTC(),
	})
	if err != nil {
		s.logger.Error("build sync completed event failed", zap.Error(err))
		s.finalizeLog(ctx, entry.ID.String(), status, lastError)
		return
	}

	if err := s.completeInTx(ctx, entry.ID.String(), status, lastError, event); err != nil {
		s.logger.Error("transactional completion failed",
			zap.String("sync_log_id", entry.ID.String()),
			zap.Error(err),
		)
		// The log row must not stay pending; retry the finalize on its own.
		s.finalizeLog(ctx, entry.ID.String(), status, lastError)
	}
}

func (s *service) completeInTx(ctx context.Context, id, status, lastError string, event kafka.OutboxEvent) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := s.logs.WithTx(tx).Finalize(ctx, id, status, lastError); err != nil {
		tx.Rollback()
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func batchMessage(synced, blocked int) string {
	msg := fmt.Sprintf("Synced %d employee(s) to CareFlow.", synced)
	if blocked > 0 {
		msg += fmt.Sprintf(" %d blocked due to compliance issues.", blocked)
	}
	return msg
}
