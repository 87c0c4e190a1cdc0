package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"time"
	"unicode/utf8"

	"bid-ledger-api/config"
	"bid-ledger-api/internal/lock"
	"bid-ledger-api/internal/metrics"
	"bid-ledger-api/internal/models"
	"bid-ledger-api/internal/storage"
	"bid-ledger-api/internal/transport/dto"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// DefaultMaxPitchLength is used when the configuration leaves the limit unset.
const DefaultMaxPitchLength = 300

type applicationLedger struct {
	store    storage.ApplicationStore
	locker   lock.Locker
	clock    clockwork.Clock
	validate *validator.Validate
	rules    config.LedgerConfig
}

// NewApplicationLedger creates the ledger over store. A nil locker, clock or
// validator falls back to an in-process lock, the wall clock and a default
// validator.
func NewApplicationLedger(
	store storage.ApplicationStore,
	locker lock.Locker,
	clock clockwork.Clock,
	validate *validator.Validate,
	rules config.LedgerConfig,
) ApplicationLedger {
	if locker == nil {
		locker = lock.NewLocal()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if validate == nil {
		validate = validator.New()
	}
	if rules.MaxPitchLength <= 0 {
		rules.MaxPitchLength = DefaultMaxPitchLength
	}
	return &applicationLedger{
		store:    store,
		locker:   locker,
		clock:    clock,
		validate: validate,
		rules:    rules,
	}
}

// Submit validates the payload, assigns the next position for the job and
// persists the application with status submitted.
func (l *applicationLedger) Submit(ctx context.Context, req *dto.SubmitApplicationRequest) (*models.Application, error) {
	if err := l.validateSubmission(req); err != nil {
		metrics.SubmissionsRefused.WithLabelValues("validation").Inc()
		return nil, err
	}

	var created models.Application
	err := l.mutate(ctx, "submitting application", func(apps []models.Application) ([]models.Application, error) {
		now := l.now()
		position := 1
		for _, app := range apps {
			if app.JobID != req.JobID {
				continue
			}
			if app.FreelancerID == req.FreelancerID {
				return nil, fmt.Errorf("%w: job %s, freelancer %s", ErrDuplicateApplication, req.JobID, req.FreelancerID)
			}
			position++
		}

		if l.rules.SubmissionQuota > 0 {
			recent, _ := l.recentSubmissions(apps, req.FreelancerID, now)
			if recent >= l.rules.SubmissionQuota {
				return nil, fmt.Errorf("%w: %d applications within %s", ErrQuotaExceeded, recent, l.rules.SubmissionWindow)
			}
		}

		created = models.Application{
			ID:           uuid.New(),
			JobID:        req.JobID,
			FreelancerID: req.FreelancerID,
			Freelancer: models.FreelancerSnapshot{
				Name:         req.FreelancerName,
				Username:     req.FreelancerUsername,
				Avatar:       req.FreelancerAvatar,
				GradientFrom: req.FreelancerGradientFrom,
				GradientTo:   req.FreelancerGradientTo,
				Rating:       req.FreelancerRating,
			},
			ProposedPrice:      req.ProposedPrice,
			DeliveryDays:       req.DeliveryDays,
			Pitch:              req.Pitch,
			PortfolioSampleURL: req.PortfolioSampleURL,
			QuestionForCreator: req.QuestionForCreator,
			Position:           position,
			Status:             models.ApplicationStatusSubmitted,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		return append(apps, created), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateApplication):
			metrics.SubmissionsRefused.WithLabelValues("duplicate").Inc()
		case errors.Is(err, ErrQuotaExceeded):
			metrics.SubmissionsRefused.WithLabelValues("quota").Inc()
		}
		log.Printf("Submit: Refused application to job %s by freelancer %s: %v", req.JobID, req.FreelancerID, err)
		return nil, err
	}

	metrics.ApplicationsSubmitted.Inc()
	log.Printf("Application %s submitted to job %s by freelancer %s at position %d", created.ID, created.JobID, created.FreelancerID, created.Position)
	return &created, nil
}

func (l *applicationLedger) validateSubmission(req *dto.SubmitApplicationRequest) error {
	if req == nil {
		return &ValidationError{Fields: map[string]string{"request": "request body is required"}}
	}
	fields := make(map[string]string)
	if err := l.validate.Struct(req); err != nil {
		for name, msg := range fieldErrors(err) {
			fields[name] = msg
		}
	}
	if math.IsInf(req.ProposedPrice, 0) || math.IsNaN(req.ProposedPrice) {
		fields["ProposedPrice"] = "Field 'ProposedPrice' must be a finite number"
	}
	if utf8.RuneCountInString(req.Pitch) > l.rules.MaxPitchLength {
		fields["Pitch"] = fmt.Sprintf("Field 'Pitch' must be at most %d characters long", l.rules.MaxPitchLength)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// GetApplication returns one application by id.
func (l *applicationLedger) GetApplication(ctx context.Context, applicationID uuid.UUID) (*models.Application, error) {
	if err := requireID("application_id", applicationID); err != nil {
		return nil, err
	}
	apps, err := l.load(ctx, "getting application")
	if err != nil {
		return nil, err
	}
	idx := indexOf(apps, applicationID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: application %s", ErrNotFound, applicationID)
	}
	return &apps[idx], nil
}

// ListForJob returns the job's applications in submission order.
func (l *applicationLedger) ListForJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	if err := requireID("job_id", jobID); err != nil {
		return nil, err
	}
	apps, err := l.load(ctx, fmt.Sprintf("listing applications for job %s", jobID))
	if err != nil {
		return nil, err
	}
	out := make([]models.Application, 0)
	for _, app := range apps {
		if app.JobID == jobID {
			out = append(out, app)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

// ListForFreelancer returns the freelancer's applications across jobs, most
// recent first. Records with equal timestamps keep reverse submission order.
func (l *applicationLedger) ListForFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]models.Application, error) {
	if err := requireID("freelancer_id", freelancerID); err != nil {
		return nil, err
	}
	apps, err := l.load(ctx, fmt.Sprintf("listing applications for freelancer %s", freelancerID))
	if err != nil {
		return nil, err
	}
	out := make([]models.Application, 0)
	for i := len(apps) - 1; i >= 0; i-- {
		if apps[i].FreelancerID == freelancerID {
			out = append(out, apps[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// HasApplied reports whether the pair has a record, whatever its status.
func (l *applicationLedger) HasApplied(ctx context.Context, jobID, freelancerID uuid.UUID) (bool, error) {
	if err := requireID("job_id", jobID); err != nil {
		return false, err
	}
	if err := requireID("freelancer_id", freelancerID); err != nil {
		return false, err
	}
	apps, err := l.load(ctx, "checking existing application")
	if err != nil {
		return false, err
	}
	return findPair(apps, jobID, freelancerID) >= 0, nil
}

// CanSubmit reports whether Submit would currently accept an application for
// the pair, ignoring payload validation.
func (l *applicationLedger) CanSubmit(ctx context.Context, jobID, freelancerID uuid.UUID) (*models.Eligibility, error) {
	if err := requireID("job_id", jobID); err != nil {
		return nil, err
	}
	if err := requireID("freelancer_id", freelancerID); err != nil {
		return nil, err
	}
	apps, err := l.load(ctx, "checking submission eligibility")
	if err != nil {
		return nil, err
	}

	result := &models.Eligibility{Eligible: true, RemainingQuota: -1}
	if l.rules.SubmissionQuota > 0 {
		now := l.now()
		recent, oldest := l.recentSubmissions(apps, freelancerID, now)
		result.RemainingQuota = l.rules.SubmissionQuota - recent
		if result.RemainingQuota < 0 {
			result.RemainingQuota = 0
		}
		if recent > 0 && l.rules.SubmissionWindow > 0 {
			resets := oldest.Add(l.rules.SubmissionWindow)
			result.QuotaResetsAt = &resets
		}
		if result.RemainingQuota == 0 {
			result.Eligible = false
			result.Reason = models.IneligibleQuotaExhausted
		}
	}
	if findPair(apps, jobID, freelancerID) >= 0 {
		result.HasApplied = true
		result.Eligible = false
		result.Reason = models.IneligibleAlreadyApplied
	}
	return result, nil
}

// ShortlistedCount returns how many of the job's applications are shortlisted.
func (l *applicationLedger) ShortlistedCount(ctx context.Context, jobID uuid.UUID) (int, error) {
	if err := requireID("job_id", jobID); err != nil {
		return 0, err
	}
	apps, err := l.load(ctx, fmt.Sprintf("counting shortlisted applications for job %s", jobID))
	if err != nil {
		return 0, err
	}
	return countStatus(apps, jobID, models.ApplicationStatusShortlisted), nil
}

// JobSummary returns per-status counts for the job.
func (l *applicationLedger) JobSummary(ctx context.Context, jobID uuid.UUID) (*models.JobSummary, error) {
	if err := requireID("job_id", jobID); err != nil {
		return nil, err
	}
	apps, err := l.load(ctx, fmt.Sprintf("summarizing applications for job %s", jobID))
	if err != nil {
		return nil, err
	}
	summary := &models.JobSummary{
		JobID: jobID,
		ByStatus: map[models.ApplicationStatus]int{
			models.ApplicationStatusSubmitted:   0,
			models.ApplicationStatusShortlisted: 0,
			models.ApplicationStatusHired:       0,
			models.ApplicationStatusRejected:    0,
		},
	}
	for _, app := range apps {
		if app.JobID != jobID {
			continue
		}
		summary.Total++
		summary.ByStatus[app.Status]++
		if app.Status == models.ApplicationStatusHired {
			id := app.ID
			summary.HiredID = &id
		}
	}
	return summary, nil
}

// Shortlist moves a submitted application to shortlisted. Shortlisting an
// already shortlisted application is a no-op.
func (l *applicationLedger) Shortlist(ctx context.Context, applicationID uuid.UUID) (*models.Application, error) {
	return l.transition(ctx, "shortlist", applicationID, func(apps []models.Application, idx int, now time.Time) (bool, error) {
		app := &apps[idx]
		if app.Status == models.ApplicationStatusShortlisted {
			return false, nil
		}
		if !isValidApplicationTransition(app.Status, models.ApplicationStatusShortlisted) {
			return false, fmt.Errorf("%w: cannot shortlist %s application %s", ErrInvalidTransition, app.Status, app.ID)
		}
		if limit := l.rules.ShortlistLimit; limit > 0 {
			if n := countStatus(apps, app.JobID, models.ApplicationStatusShortlisted); n >= limit {
				return false, fmt.Errorf("%w: job %s already has %d shortlisted applications", ErrShortlistFull, app.JobID, n)
			}
		}
		app.Status = models.ApplicationStatusShortlisted
		app.UpdatedAt = now
		return true, nil
	})
}

// Hire moves the application to hired and rejects every other application of
// the same job that is still submitted. Shortlisted applications are left
// shortlisted for the reviewer to settle explicitly.
func (l *applicationLedger) Hire(ctx context.Context, applicationID uuid.UUID) (*models.Application, error) {
	rejected := 0
	app, err := l.transition(ctx, "hire", applicationID, func(apps []models.Application, idx int, now time.Time) (bool, error) {
		rejected = 0
		target := &apps[idx]
		if target.Status != models.ApplicationStatusHired &&
			!isValidApplicationTransition(target.Status, models.ApplicationStatusHired) {
			return false, fmt.Errorf("%w: cannot hire %s application %s", ErrInvalidTransition, target.Status, target.ID)
		}
		for i := range apps {
			if i != idx && apps[i].JobID == target.JobID && apps[i].Status == models.ApplicationStatusHired {
				return false, fmt.Errorf("%w: job %s already has hired application %s", ErrInvalidTransition, target.JobID, apps[i].ID)
			}
		}

		changed := false
		if target.Status != models.ApplicationStatusHired {
			target.Status = models.ApplicationStatusHired
			target.UpdatedAt = now
			changed = true
		}
		for i := range apps {
			other := &apps[i]
			if i == idx || other.JobID != target.JobID {
				continue
			}
			if other.Status == models.ApplicationStatusShortlisted || other.Status == models.ApplicationStatusRejected {
				continue
			}
			if isValidApplicationTransition(other.Status, models.ApplicationStatusRejected) {
				other.Status = models.ApplicationStatusRejected
				other.UpdatedAt = now
				rejected++
				changed = true
			}
		}
		return changed, nil
	})
	if err != nil {
		return nil, err
	}
	if rejected > 0 {
		metrics.HireRejections.Add(float64(rejected))
		log.Printf("Hire: Application %s hired for job %s, %d pending applications rejected", app.ID, app.JobID, rejected)
	}
	return app, nil
}

// Reject moves a submitted or shortlisted application to rejected. Rejecting
// an already rejected application is a no-op.
func (l *applicationLedger) Reject(ctx context.Context, applicationID uuid.UUID) (*models.Application, error) {
	return l.transition(ctx, "reject", applicationID, func(apps []models.Application, idx int, now time.Time) (bool, error) {
		app := &apps[idx]
		if app.Status == models.ApplicationStatusRejected {
			return false, nil
		}
		if !isValidApplicationTransition(app.Status, models.ApplicationStatusRejected) {
			return false, fmt.Errorf("%w: cannot reject %s application %s", ErrInvalidTransition, app.Status, app.ID)
		}
		app.Status = models.ApplicationStatusRejected
		app.UpdatedAt = now
		return true, nil
	})
}

// transitionFunc mutates apps in place and reports whether anything changed.
type transitionFunc func(apps []models.Application, idx int, now time.Time) (bool, error)

func (l *applicationLedger) transition(ctx context.Context, name string, applicationID uuid.UUID, fn transitionFunc) (*models.Application, error) {
	if err := requireID("application_id", applicationID); err != nil {
		metrics.Transitions.WithLabelValues(name, "invalid").Inc()
		return nil, err
	}

	var result models.Application
	outcome := "applied"
	operation := fmt.Sprintf("%s application %s", name, applicationID)
	err := l.mutate(ctx, operation, func(apps []models.Application) ([]models.Application, error) {
		idx := indexOf(apps, applicationID)
		if idx < 0 {
			return nil, fmt.Errorf("%w: application %s", ErrNotFound, applicationID)
		}
		changed, err := fn(apps, idx, l.now())
		if err != nil {
			return nil, err
		}
		result = apps[idx]
		if !changed {
			outcome = "noop"
			return nil, nil
		}
		return apps, nil
	})
	if err != nil {
		metrics.Transitions.WithLabelValues(name, outcomeFor(err)).Inc()
		log.Printf("Transition: Error during %s: %v", operation, err)
		return nil, err
	}

	metrics.Transitions.WithLabelValues(name, outcome).Inc()
	if outcome == "applied" {
		log.Printf("Application %s of job %s is now %s", result.ID, result.JobID, result.Status)
	}
	return &result, nil
}

// mutate runs one read-modify-write cycle under the store lock. fn returning
// a nil slice without error means there is nothing to write.
func (l *applicationLedger) mutate(ctx context.Context, operation string, fn func([]models.Application) ([]models.Application, error)) error {
	waitStart := time.Now()
	release, err := l.locker.Acquire(ctx)
	if err != nil {
		log.Printf("Ledger: Error acquiring store lock for %s: %v", operation, err)
		return fmt.Errorf("internal error acquiring lock for %s: %w", operation, err)
	}
	metrics.LockWait.Observe(time.Since(waitStart).Seconds())
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			log.Printf("Ledger: Error releasing store lock after %s: %v", operation, err)
		}
	}()

	apps, err := l.store.Load(ctx)
	if err != nil {
		return MapRepoError(err, "loading applications for "+operation)
	}
	next, err := fn(apps)
	if err != nil {
		return err
	}
	if next == nil {
		return nil
	}
	if err := l.store.Save(ctx, next); err != nil {
		return MapRepoError(err, "saving applications for "+operation)
	}
	return nil
}

func (l *applicationLedger) load(ctx context.Context, operation string) ([]models.Application, error) {
	apps, err := l.store.Load(ctx)
	if err != nil {
		return nil, MapRepoError(err, operation)
	}
	return apps, nil
}

func (l *applicationLedger) now() time.Time {
	return l.clock.Now().UTC()
}

// recentSubmissions counts the freelancer's applications created inside the
// quota window ending at now and returns the oldest creation time among them.
// A non-positive window counts every application.
func (l *applicationLedger) recentSubmissions(apps []models.Application, freelancerID uuid.UUID, now time.Time) (int, time.Time) {
	var oldest time.Time
	count := 0
	windowStart := now.Add(-l.rules.SubmissionWindow)
	for _, app := range apps {
		if app.FreelancerID != freelancerID {
			continue
		}
		if l.rules.SubmissionWindow > 0 && !app.CreatedAt.After(windowStart) {
			continue
		}
		count++
		if oldest.IsZero() || app.CreatedAt.Before(oldest) {
			oldest = app.CreatedAt
		}
	}
	return count, oldest
}

func requireID(field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return &ValidationError{Fields: map[string]string{field: fmt.Sprintf("Field '%s' must be a non-nil UUID", field)}}
	}
	return nil
}

func indexOf(apps []models.Application, id uuid.UUID) int {
	for i := range apps {
		if apps[i].ID == id {
			return i
		}
	}
	return -1
}

func findPair(apps []models.Application, jobID, freelancerID uuid.UUID) int {
	for i := range apps {
		if apps[i].JobID == jobID && apps[i].FreelancerID == freelancerID {
			return i
		}
	}
	return -1
}

func countStatus(apps []models.Application, jobID uuid.UUID, status models.ApplicationStatus) int {
	n := 0
	for _, app := range apps {
		if app.JobID == jobID && app.Status == status {
			n++
		}
	}
	return n
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrShortlistFull), errors.Is(err, ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}
