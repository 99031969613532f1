package leave

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/kidaholy/human-resource-sub000/internal/directory"
	"github.com/kidaholy/human-resource-sub000/internal/events"
	leaveerrors "github.com/kidaholy/human-resource-sub000/internal/leave/errors"
	"github.com/kidaholy/human-resource-sub000/internal/messaging/kafka"
	"github.com/kidaholy/human-resource-sub000/internal/shared/actor"
	"github.com/kidaholy/human-resource-sub000/internal/shared/contextutil"
	"github.com/kidaholy/human-resource-sub000/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	dateLayout           = "2006-01-02"
	referenceCounterType = "leave_reference"
	aggregateType        = "leave_request"
)

type Service interface {
	Create(ctx context.Context, a actor.Actor, req CreateLeaveRequest) (LeaveResponse, error)
	GetHistory(ctx context.Context, a actor.Actor) ([]LeaveResponse, error)
	GetBalance(ctx context.Context, a actor.Actor) (BalanceResponse, error)
	GetByID(ctx context.Context, a actor.Actor, id string) (LeaveResponse, error)

	GetDepartmentPending(ctx context.Context, a actor.Actor) ([]LeaveResponse, error)
	GetDepartmentHistory(ctx context.Context, a actor.Actor, stage string) ([]LeaveResponse, error)
	GetDepartmentStats(ctx context.Context, a actor.Actor) (DepartmentStatsResponse, error)
	DecideAsDepartmentHead(ctx context.Context, a actor.Actor, id string, req DecisionRequest) (LeaveResponse, error)

	GetAll(ctx context.Context, a actor.Actor, status string) ([]LeaveResponse, error)
	GetPendingForAdmin(ctx context.Context, a actor.Actor) ([]LeaveResponse, error)
	DecideAsAdmin(ctx context.Context, a actor.Actor, id string, req DecisionRequest) (LeaveResponse, error)
	GetGlobalStats(ctx context.Context, a actor.Actor) (GlobalStatsResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	scope      ScopeResolver
	counter    counter.Repository
	outbox     kafka.OutboxRepository
	allotments Allotments
	sf         *singleflight.Group
	now        func() time.Time
	logger     *zap.Logger
}

type ServiceDeps struct {
	DB         *sql.DB
	Repo       Repository
	Scope      ScopeResolver
	Counter    counter.Repository
	Outbox     kafka.OutboxRepository
	Allotments Allotments
}

func NewService(deps ServiceDeps, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	allotments := deps.Allotments
	if allotments == nil {
		allotments = DefaultAllotments()
	}
	return &service{
		db:         deps.DB,
		repo:       deps.Repo,
		scope:      deps.Scope,
		counter:    deps.Counter,
		outbox:     deps.Outbox,
		allotments: allotments,
		sf:         &singleflight.Group{},
		now:        func() time.Time { return time.Now().UTC() },
		logger:     l,
	}
}

// log prefers the request logger installed by the HTTP layer. Calls from
// outside a request get the service logger tagged with whatever metadata the
// context carries.
func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger.With(contextutil.LogFields(ctx)...))
}

func (s *service) Create(ctx context.Context, a actor.Actor, req CreateLeaveRequest) (LeaveResponse, error) {
	log := s.log(ctx)
	log.Debug("create leave request requested",
		zap.String("user_id", a.UserID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	leaveType, start, end, err := validateCreate(req)
	if err != nil {
		log.Warn("create leave request validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	self, err := s.scope.ActorEmployee(ctx, a)
	if err != nil {
		log.Warn("create leave request actor not linked", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create leave request begin tx failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}
	defer tx.Rollback()

	now := s.now()
	seq, err := s.counter.WithTx(tx).GetNextValue(ctx, fmt.Sprintf("%d", now.Year()), referenceCounterType)
	if err != nil {
		log.Error("create leave request reference allocation failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	l := &LeaveRequest{
		ID:          uuid.New(),
		ReferenceNo: fmt.Sprintf("LV-%d-%06d", now.Year(), seq),
		EmployeeID:  self.ID,
		LeaveType:   leaveType,
		StartDate:   start,
		EndDate:     end,
		Reason:      strings.TrimSpace(req.Reason),
		State:       StateAwaitingHead,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.WithTx(tx).Create(ctx, l); err != nil {
		log.Error("create leave request persist failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.LeaveRequestedEvent{
			EventID:     uuid.NewString(),
			EventType:   events.EventTypeLeaveRequested,
			LeaveID:     l.ID.String(),
			ReferenceNo: l.ReferenceNo,
			EmployeeID:  l.EmployeeID.String(),
			LeaveType:   string(l.LeaveType),
			StartDate:   l.StartDate.Format(dateLayout),
			EndDate:     l.EndDate.Format(dateLayout),
			OccurredAt:  now,
		}
		if err := s.enqueue(ctx, tx, l.ID.String(), event.EventType, event); err != nil {
			log.Error("create leave request outbox persist failed", zap.Error(err))
			return LeaveResponse{}, mapRepositoryError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("create leave request commit failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	log.Info("create leave request success",
		zap.String("leave_id", l.ID.String()),
		zap.String("reference_no", l.ReferenceNo),
	)
	return mapToResponse(*l), nil
}

func validateCreate(req CreateLeaveRequest) (LeaveType, time.Time, time.Time, error) {
	leaveType := LeaveType(strings.ToLower(strings.TrimSpace(req.LeaveType)))
	if !leaveType.Valid() {
		return "", time.Time{}, time.Time{}, leaveerrors.ErrInvalidLeaveType
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return "", time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return "", time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return "", time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	if strings.TrimSpace(req.Reason) == "" {
		return "", time.Time{}, time.Time{}, leaveerrors.ErrReasonRequired
	}
	return leaveType, start, end, nil
}

func (s *service) GetHistory(ctx context.Context, a actor.Actor) ([]LeaveResponse, error) {
	log := s.log(ctx)
	log.Debug("get leave history requested", zap.String("user_id", a.UserID))

	self, err := s.scope.ActorEmployee(ctx, a)
	if err != nil {
		log.Warn("get leave history actor not linked", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	leaves, err := s.repo.FindByEmployee(ctx, self.ID.String())
	if err != nil {
		log.Error("get leave history failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetBalance(ctx context.Context, a actor.Actor) (BalanceResponse, error) {
	log := s.log(ctx)
	log.Debug("get leave balance requested", zap.String("user_id", a.UserID))

	self, err := s.scope.ActorEmployee(ctx, a)
	if err != nil {
		log.Warn("get leave balance actor not linked", zap.Error(err))
		return BalanceResponse{}, mapRepositoryError(err)
	}

	approved, err := s.repo.FindApprovedByEmployee(ctx, self.ID.String())
	if err != nil {
		log.Error("get leave balance failed", zap.Error(err))
		return BalanceResponse{}, mapRepositoryError(err)
	}

	return mapToBalanceResponse(self.ID.String(), ComputeBalance(approved, s.allotments)), nil
}

func (s *service) GetByID(ctx context.Context, a actor.Actor, id string) (LeaveResponse, error) {
	log := s.log(ctx)
	log.Debug("get leave request by id requested", zap.String("leave_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Warn("get leave request by id failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if err := s.authorizeView(ctx, a, l); err != nil {
		log.Warn("get leave request by id forbidden",
			zap.String("leave_id", id),
			zap.String("user_id", a.UserID),
		)
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

func (s *service) authorizeView(ctx context.Context, a actor.Actor, l *LeaveRequest) error {
	if s.scope.CanActAsAdmin(a) {
		return nil
	}
	own, err := s.scope.CanViewOwn(ctx, a, l)
	if err != nil {
		return mapRepositoryError(err)
	}
	if own {
		return nil
	}
	head, err := s.scope.CanActAsDepartmentHead(ctx, a, l)
	if err != nil {
		return mapRepositoryError(err)
	}
	if head {
		return nil
	}
	return leaveerrors.ErrNotOwner
}

func (s *service) GetDepartmentPending(ctx context.Context, a actor.Actor) ([]LeaveResponse, error) {
	log := s.log(ctx)
	log.Debug("get department pending requests requested", zap.String("user_id", a.UserID))

	depts, err := s.scope.HeadedDepartments(ctx, a)
	if err != nil {
		log.Warn("get department pending requests not a head", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	leaves, err := s.repo.FindByDepartments(ctx, departmentIDs(depts), StatesWithHeadStage(StagePending))
	if err != nil {
		log.Error("get department pending requests failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetDepartmentHistory(ctx context.Context, a actor.Actor, stage string) ([]LeaveResponse, error) {
	log := s.log(ctx)
	log.Debug("get department history requested",
		zap.String("user_id", a.UserID),
		zap.String("stage", stage),
	)

	var states []State
	if stage != "" {
		st := Stage(strings.ToLower(stage))
		if !st.Valid() {
			return nil, leaveerrors.ErrInvalidStageFilter
		}
		states = StatesWithHeadStage(st)
	}

	depts, err := s.scope.HeadedDepartments(ctx, a)
	if err != nil {
		log.Warn("get department history not a head", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	leaves, err := s.repo.FindByDepartments(ctx, departmentIDs(depts), states)
	if err != nil {
		log.Error("get department history failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetDepartmentStats(ctx context.Context, a actor.Actor) (DepartmentStatsResponse, error) {
	log := s.log(ctx)
	log.Debug("get department stats requested", zap.String("user_id", a.UserID))

	depts, err := s.scope.HeadedDepartments(ctx, a)
	if err != nil {
		log.Warn("get department stats not a head", zap.Error(err))
		return DepartmentStatsResponse{}, mapRepositoryError(err)
	}

	ids := departmentIDs(depts)
	v, err, _ := s.sf.Do("department-stats:"+strings.Join(ids, ","), func() (interface{}, error) {
		rows, err := s.repo.CountByStateForDepartments(context.WithoutCancel(ctx), ids)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		return aggregateDepartment(rows), nil
	})
	if err != nil {
		log.Error("get department stats failed", zap.Error(err))
		return DepartmentStatsResponse{}, err
	}

	return mapToDepartmentStatsResponse(depts, v.(DepartmentStats)), nil
}

func (s *service) DecideAsDepartmentHead(ctx context.Context, a actor.Actor, id string, req DecisionRequest) (LeaveResponse, error) {
	return s.applyDecision(ctx, a, id, ApproverDepartmentHead, req)
}

func (s *service) GetAll(ctx context.Context, a actor.Actor, status string) ([]LeaveResponse, error) {
	log := s.log(ctx)
	log.Debug("get all leave requests requested", zap.String("status", status))

	if !s.scope.CanActAsAdmin(a) {
		return nil, leaveerrors.ErrNotAdmin
	}

	var states []State
	if status != "" {
		st := Stage(strings.ToLower(status))
		if !st.Valid() {
			return nil, leaveerrors.ErrInvalidStageFilter
		}
		states = StatesWithOverallStatus(st)
	}

	leaves, err := s.repo.FindAll(ctx, states)
	if err != nil {
		log.Error("get all leave requests failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetPendingForAdmin(ctx context.Context, a actor.Actor) ([]LeaveResponse, error) {
	log := s.log(ctx)
	log.Debug("get admin pending requests requested")

	if !s.scope.CanActAsAdmin(a) {
		return nil, leaveerrors.ErrNotAdmin
	}

	leaves, err := s.repo.FindAll(ctx, []State{StateAwaitingAdmin})
	if err != nil {
		log.Error("get admin pending requests failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(leaves), nil
}

func (s *service) DecideAsAdmin(ctx context.Context, a actor.Actor, id string, req DecisionRequest) (LeaveResponse, error) {
	return s.applyDecision(ctx, a, id, ApproverAdmin, req)
}

func (s *service) GetGlobalStats(ctx context.Context, a actor.Actor) (GlobalStatsResponse, error) {
	log := s.log(ctx)
	log.Debug("get global stats requested")

	if !s.scope.CanActAsAdmin(a) {
		return GlobalStatsResponse{}, leaveerrors.ErrNotAdmin
	}

	v, err, _ := s.sf.Do("global-stats", func() (interface{}, error) {
		rows, err := s.repo.CountByState(context.WithoutCancel(ctx))
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		return aggregateGlobal(rows), nil
	})
	if err != nil {
		log.Error("get global stats failed", zap.Error(err))
		return GlobalStatsResponse{}, err
	}

	return mapToGlobalStatsResponse(v.(GlobalStats)), nil
}

// applyDecision authorizes the actor for the approver role, runs the
// transition and persists it with a compare-and-set on (state, version).
// The outbox row is written in the same transaction.
func (s *service) applyDecision(
	ctx context.Context,
	a actor.Actor,
	id string,
	approver Approver,
	req DecisionRequest,
) (LeaveResponse, error) {
	log := s.log(ctx).With(
		zap.String("leave_id", id),
		zap.String("approver", string(approver)),
		zap.String("user_id", a.UserID),
	)
	log.Debug("leave decision requested", zap.String("status", req.Status))

	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	decision, err := DecisionFromStatus(req.Status)
	if err != nil {
		return LeaveResponse{}, err
	}
	if approver == ApproverAdmin && !s.scope.CanActAsAdmin(a) {
		log.Warn("leave decision rejected, actor is not admin")
		return LeaveResponse{}, leaveerrors.ErrNotAdmin
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("leave decision begin tx failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		log.Warn("leave decision fetch failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	decidedBy, self, err := s.authorizeDecision(ctx, a, approver, l)
	if err != nil {
		log.Warn("leave decision forbidden", zap.Error(err))
		return LeaveResponse{}, err
	}

	to, err := Transition(l.State, approver, decision)
	if err != nil {
		log.Warn("leave decision state conflict",
			zap.String("state", string(l.State)),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	change := StateChange{
		From:      l.State,
		To:        to,
		Version:   l.Version,
		Approver:  approver,
		DecidedBy: decidedBy,
		Comment:   normalizeComment(req.Comment),
		DecidedAt: s.now(),
	}

	updated, err := qtx.CompareAndSetState(ctx, id, change)
	if err != nil {
		log.Error("leave decision persist failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if !updated {
		log.Warn("leave decision lost race",
			zap.String("state", string(change.From)),
			zap.Int("version", change.Version),
		)
		return LeaveResponse{}, leaveerrors.ErrConcurrentDecision
	}
	applyChange(l, change)

	if s.outbox != nil {
		event := events.LeaveDecidedEvent{
			EventID:       uuid.NewString(),
			EventType:     events.EventTypeLeaveDecided,
			LeaveID:       l.ID.String(),
			ReferenceNo:   l.ReferenceNo,
			EmployeeID:    l.EmployeeID.String(),
			Approver:      string(approver),
			Decision:      string(decision),
			FromState:     string(change.From),
			ToState:       string(change.To),
			OverallStatus: string(change.To.OverallStatus()),
			ActorUserID:   a.UserID,
			Comment:       change.Comment,
			OccurredAt:    change.DecidedAt,
		}
		if self != nil {
			event.ActorEmployeeID = self.ID.String()
			if approver == ApproverDepartmentHead {
				event.HeadEmployeeID = self.ID.String()
			}
		}
		if err := s.enqueue(ctx, tx, l.ID.String(), event.EventType, event); err != nil {
			log.Error("leave decision outbox persist failed", zap.Error(err))
			return LeaveResponse{}, mapRepositoryError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("leave decision commit failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	log.Info("leave decision applied",
		zap.String("from", string(change.From)),
		zap.String("to", string(change.To)),
	)
	return mapToResponse(*l), nil
}

// authorizeDecision returns the id recorded as decider. Heads are recorded
// by employee id, admins by user id.
func (s *service) authorizeDecision(
	ctx context.Context,
	a actor.Actor,
	approver Approver,
	l *LeaveRequest,
) (uuid.UUID, *directory.Employee, error) {
	switch approver {
	case ApproverDepartmentHead:
		ok, err := s.scope.CanActAsDepartmentHead(ctx, a, l)
		if err != nil {
			return uuid.Nil, nil, mapRepositoryError(err)
		}
		if !ok {
			return uuid.Nil, nil, leaveerrors.ErrNotDepartmentHead
		}
		self, err := s.scope.ActorEmployee(ctx, a)
		if err != nil {
			return uuid.Nil, nil, mapRepositoryError(err)
		}
		return self.ID, self, nil
	case ApproverAdmin:
		userID, err := uuid.Parse(a.UserID)
		if err != nil {
			return uuid.Nil, nil, leaveerrors.ErrNotAdmin
		}
		return userID, nil, nil
	default:
		return uuid.Nil, nil, leaveerrors.ErrInvalidDecision
	}
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, aggregateID, eventType string, payload any) error {
	event, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		aggregateType,
		aggregateID,
		eventType,
		events.LeaveLifecycleTopic,
		payload,
	)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

func departmentIDs(depts []directory.Department) []string {
	ids := make([]string, len(depts))
	for i, d := range depts {
		ids[i] = d.ID.String()
	}
	return ids
}

func normalizeComment(comment *string) *string {
	if comment == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*comment)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func applyChange(l *LeaveRequest, change StateChange) {
	l.State = change.To
	l.Version++
	l.UpdatedAt = change.DecidedAt
	decidedBy := change.DecidedBy
	decidedAt := change.DecidedAt
	switch change.Approver {
	case ApproverDepartmentHead:
		l.DepartmentHeadComment = change.Comment
		l.DepartmentHeadDecidedBy = &decidedBy
		l.DepartmentHeadDecidedAt = &decidedAt
	case ApproverAdmin:
		l.AdminComment = change.Comment
		l.AdminDecidedBy = &decidedBy
		l.AdminDecidedAt = &decidedAt
	}
}
