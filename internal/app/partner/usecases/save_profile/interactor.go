package save_profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/contracts"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/domain"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/payload"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/store"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/wire"
	"github.com/light-bringer/partner-profile-service/internal/pkg/clock"
	"github.com/light-bringer/partner-profile-service/internal/pkg/committer"
)

// Request identifies the session store to save and who it belongs to.
type Request struct {
	Store     *store.Store
	UserID    string
	PartnerID string
}

// Response describes a completed save. Saved is false when there was
// nothing to save.
type Response struct {
	Saved         bool
	TaskID        string
	ChangedFields []domain.Field
}

// ProfileValidator checks a draft before it is submitted.
type ProfileValidator interface {
	Validate(p *domain.PartnerProfile) error
}

// Interactor handles the save profile use case.
type Interactor struct {
	gateway      contracts.ProfileGateway
	builder      payload.Builder
	snapshotRepo contracts.SnapshotRepository
	outboxRepo   contracts.OutboxRepository
	committer    contracts.Committer
	clock        clock.Clock
	logger       *zap.Logger

	validator ProfileValidator
	cache     contracts.CacheInvalidator
	metrics   *Metrics
}

// Option configures optional collaborators of the Interactor.
type Option func(*Interactor)

// WithValidator validates drafts before any network call.
func WithValidator(v ProfileValidator) Option {
	return func(i *Interactor) { i.validator = v }
}

// WithCacheInvalidator drops cached reads after a successful save.
func WithCacheInvalidator(c contracts.CacheInvalidator) Option {
	return func(i *Interactor) { i.cache = c }
}

// WithMetrics records save outcomes.
func WithMetrics(m *Metrics) Option {
	return func(i *Interactor) { i.metrics = m }
}

// NewInteractor creates a new save profile interactor. snapshotRepo,
// outboxRepo and committer may be nil to disable save history.
func NewInteractor(
	gateway contracts.ProfileGateway,
	builder payload.Builder,
	snapshotRepo contracts.SnapshotRepository,
	outboxRepo contracts.OutboxRepository,
	committer contracts.Committer,
	clock clock.Clock,
	logger *zap.Logger,
	opts ...Option,
) *Interactor {
	if builder == nil {
		builder = payload.FullMerge{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	i := &Interactor{
		gateway:      gateway,
		builder:      builder,
		snapshotRepo: snapshotRepo,
		outboxRepo:   outboxRepo,
		committer:    committer,
		clock:        clock,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Execute submits the session draft. On success the draft becomes the saved
// profile; on failure the draft is kept and the store records the error.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate request
	if err := i.validate(req); err != nil {
		return nil, err
	}
	log := i.logger.With(zap.String("partner_id", req.PartnerID), zap.String("user_id", req.UserID))

	// 2. Enter Saving
	snap, ok, err := req.Store.BeginSave()
	if err != nil {
		i.metrics.observeOutcome(OutcomeBusy)
		return nil, err
	}
	if !ok {
		i.metrics.observeOutcome(OutcomeNoop)
		return &Response{Saved: false}, nil
	}

	// 3. Pre-submit validation, no network call on failure
	if i.validator != nil {
		if err := i.validator.Validate(snap.Draft); err != nil {
			i.fail(req.Store, err)
			i.metrics.observeOutcome(OutcomeInvalid)
			return nil, err
		}
	}

	// 4. Build payload and submit
	body := i.builder.Build(snap.Draft, snap.Saved)
	started := time.Now()
	status, err := i.gateway.SubmitUpdate(ctx, &contracts.UpdateRequest{
		UserID:    req.UserID,
		PartnerID: req.PartnerID,
		Profile:   body,
	})
	if err != nil {
		i.metrics.observeSubmit(OutcomeRejected, time.Since(started), len(body))
		i.metrics.observeOutcome(OutcomeRejected)
		i.fail(req.Store, err)
		log.Warn("profile save rejected", zap.Error(err))
		i.recordFailure(ctx, req, err)
		return nil, fmt.Errorf("%w: %w", domain.ErrSaveFailed, err)
	}
	i.metrics.observeSubmit(OutcomeSaved, time.Since(started), len(body))
	i.metrics.observeOutcome(OutcomeSaved)

	// 5. Promote draft to saved
	changed := domain.ComputeProfileDiff(snap.Draft, snap.Saved).Fields()
	req.Store.SetSavedProfile(snap.Draft)
	if i.cache != nil {
		i.cache.Invalidate(req.PartnerID, req.UserID)
	}

	taskID := ""
	if status != nil {
		taskID = status.TaskID
	}
	log.Info("profile saved", zap.String("task_id", taskID), zap.Int("changed_fields", len(changed)))

	// 6. Record history; failures here never undo the save
	i.recordSuccess(ctx, req, body, changed, taskID)

	return &Response{Saved: true, TaskID: taskID, ChangedFields: changed}, nil
}

func (i *Interactor) fail(s *store.Store, err error) {
	s.SetError(err.Error())
	s.SetIsSaving(false)
}

func (i *Interactor) historyEnabled() bool {
	return i.snapshotRepo != nil && i.outboxRepo != nil && i.committer != nil
}

func (i *Interactor) recordSuccess(ctx context.Context, req *Request, body wire.Object, changed []domain.Field, taskID string) {
	if !i.historyEnabled() {
		return
	}
	now := i.clock.Now()
	profileJSON, err := json.Marshal(body)
	if err != nil {
		i.logger.Error("failed to serialize saved profile", zap.Error(err))
		return
	}

	fields := make([]string, len(changed))
	for n, f := range changed {
		fields[n] = string(f)
	}

	plan := committer.NewPlan()
	plan.Add(i.snapshotRepo.InsertMut(&contracts.Snapshot{
		SnapshotID:    uuid.New().String(),
		PartnerID:     req.PartnerID,
		UserID:        req.UserID,
		Profile:       string(profileJSON),
		ChangedFields: fields,
		TaskID:        taskID,
		SavedAt:       now,
	}))
	if err := i.addEvent(plan, &domain.ProfileSavedEvent{
		PartnerID:     req.PartnerID,
		UserID:        req.UserID,
		ChangedFields: changed,
		TaskID:        taskID,
		SavedAt:       now,
	}); err != nil {
		i.logger.Error("failed to serialize event", zap.Error(err))
		return
	}
	if err := i.committer.Apply(ctx, plan); err != nil {
		i.logger.Error("failed to record profile snapshot", zap.String("partner_id", req.PartnerID), zap.Error(err))
	}
}

func (i *Interactor) recordFailure(ctx context.Context, req *Request, cause error) {
	if !i.historyEnabled() {
		return
	}
	plan := committer.NewPlan()
	if err := i.addEvent(plan, &domain.ProfileSaveFailedEvent{
		PartnerID: req.PartnerID,
		UserID:    req.UserID,
		Reason:    cause.Error(),
		FailedAt:  i.clock.Now(),
	}); err != nil {
		i.logger.Error("failed to serialize event", zap.Error(err))
		return
	}
	if err := i.committer.Apply(ctx, plan); err != nil {
		i.logger.Error("failed to record save failure", zap.String("partner_id", req.PartnerID), zap.Error(err))
	}
}

func (i *Interactor) addEvent(plan *committer.CommitPlan, event domain.DomainEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, string(data))))
	return nil
}

// validate validates the request.
func (i *Interactor) validate(req *Request) error {
	if req == nil || req.Store == nil {
		return errors.New("session store is required")
	}
	if req.PartnerID == "" {
		return fmt.Errorf("partner ID is required")
	}
	if req.UserID == "" {
		return fmt.Errorf("user ID is required")
	}
	return nil
}
