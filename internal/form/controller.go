package form

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/errors"
)

// Tracker receives best-effort analytics events. Implementations must never
// let a delivery failure reach the controller.
type Tracker interface {
	Track(eventType string, data map[string]interface{})
}

// FieldErrors is returned by a Submitter when the server rejected the
// payload with per-field validation messages.
type FieldErrors struct {
	Fields map[string]string
}

func (e *FieldErrors) Error() string {
	return "submission rejected with field errors"
}

// Submitter delivers the finalized payload to the registration endpoint and
// returns the server-assigned registration identifier.
type Submitter interface {
	Submit(ctx context.Context, payload SubmissionPayload, sessionID string) (string, error)
}

// Options configures a Controller.
type Options struct {
	Store         Store
	Tracker       Tracker
	Submitter     Submitter
	Logger        *zap.Logger
	SessionID     string
	SaveDelay     time.Duration
	RedirectDelay time.Duration

	// OnRedirect runs after a successful submission, RedirectDelay later.
	OnRedirect func()
}

// Controller is the single source of truth for the in-progress registration.
// It drives step transitions, validates on transition attempts (not on every
// edit), autosaves drafts after a debounce delay, and emits analytics.
//
// The draft is single-owner state; the mutex only serializes the autosave
// timer goroutine against the owning caller.
type Controller struct {
	mu sync.Mutex

	draft      Draft
	step       int
	errors     map[string]string
	general    string
	submitting bool
	submitted  bool

	store     Store
	tracker   Tracker
	submitter Submitter
	logger    *zap.Logger

	sessionID     string
	saveDelay     time.Duration
	redirectDelay time.Duration
	onRedirect    func()
	saveTimer     *time.Timer
}

// NewController mounts the form: a fresh draft with documented defaults, or
// a rehydrated one when a compatible autosaved draft exists. A stored draft
// with a mismatched version is discarded, not merged.
func NewController(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	saveDelay := opts.SaveDelay
	if saveDelay <= 0 {
		saveDelay = 2 * time.Second
	}
	redirectDelay := opts.RedirectDelay
	if redirectDelay <= 0 {
		redirectDelay = 3 * time.Second
	}

	c := &Controller{
		draft:         NewDraft(),
		step:          FirstStep,
		errors:        make(map[string]string),
		store:         opts.Store,
		tracker:       opts.Tracker,
		submitter:     opts.Submitter,
		logger:        logger,
		sessionID:     opts.SessionID,
		saveDelay:     saveDelay,
		redirectDelay: redirectDelay,
		onRedirect:    opts.OnRedirect,
	}

	if c.rehydrate() {
		return c
	}

	c.track(eventFormStarted, map[string]interface{}{"step": c.step})
	return c
}

const (
	eventFormStarted     = "form_started"
	eventStepCompleted   = "step_completed"
	eventStepAbandoned   = "step_abandoned"
	eventValidationError = "validation_error"
	eventFormSubmitted   = "form_submitted"
)

// ErrValidationFailed reports that a transition or submission was blocked by
// the step's validation rules. The field messages are on the controller.
var ErrValidationFailed = errors.New("validation failed")

// Draft returns a copy of the current draft.
func (c *Controller) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// CurrentStep returns the active step number.
func (c *Controller) CurrentStep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Errors returns a copy of the current field error map.
func (c *Controller) Errors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

// GeneralError returns the non-field error banner message, if any.
func (c *Controller) GeneralError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.general
}

// Submitting reports whether a submission is in flight.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// Submitted reports whether the form reached its terminal state.
func (c *Controller) Submitted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitted
}

// Update merges a partial field set into the draft and clears all current
// validation errors. Errors are recomputed only on explicit transition
// attempts, not on every edit. Schedules a debounced autosave.
func (c *Controller) Update(p Patch) {
	c.mu.Lock()
	p.apply(&c.draft)
	c.errors = make(map[string]string)
	c.general = ""
	c.mu.Unlock()

	c.scheduleSave()
}

// ValidateStep checks the named step's rules against the current draft and
// replaces the error map with the result.
func (c *Controller) ValidateStep(step int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validateLocked(step)
}

func (c *Controller) validateLocked(step int) bool {
	errs := ValidateStep(c.draft, step)
	c.errors = errs
	return len(errs) == 0
}

// GoToStep navigates to step n; out-of-range values are a no-op. A backward
// move emits step_abandoned for the step being left, and every accepted
// navigation emits step_completed — including backward ones. The double
// emission on backward moves matches the shipped web client and is kept so
// funnel numbers stay comparable.
func (c *Controller) GoToStep(n int) {
	c.mu.Lock()
	if n < FirstStep || n > LastStep {
		c.mu.Unlock()
		return
	}
	from := c.step
	backward := n < from
	c.step = n
	c.mu.Unlock()

	if backward {
		c.track(eventStepAbandoned, map[string]interface{}{"step": from, "to": n})
	}
	c.track(eventStepCompleted, map[string]interface{}{"step": from, "to": n})

	c.scheduleSave()
}

// NextStep validates the current step and advances on success. On failure it
// emits validation_error with the failing field names and stays put.
func (c *Controller) NextStep() bool {
	c.mu.Lock()
	current := c.step
	ok := c.validateLocked(current)
	failing := fieldNames(c.errors)
	c.mu.Unlock()

	if !ok {
		c.track(eventValidationError, map[string]interface{}{"step": current, "fields": failing})
		return false
	}

	c.GoToStep(current + 1)
	return true
}

// PrevStep navigates back one step unconditionally.
func (c *Controller) PrevStep() {
	c.mu.Lock()
	current := c.step
	c.mu.Unlock()
	c.GoToStep(current - 1)
}

// Submit re-validates the final step, transforms the draft into the wire
// payload and delivers it. On success the local draft is cleared, the
// terminal state is entered and the redirect callback is scheduled. A 400
// with structured field errors maps onto the error display; anything else
// becomes a single general error and the submission stays retryable.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return nil
	}
	if !c.validateLocked(LastStep) {
		failing := fieldNames(c.errors)
		c.mu.Unlock()
		c.track(eventValidationError, map[string]interface{}{"step": LastStep, "fields": failing})
		return ErrValidationFailed
	}
	c.submitting = true
	c.general = ""
	payload := BuildPayload(c.draft)
	c.mu.Unlock()

	registrationID, err := c.submitter.Submit(ctx, payload, c.sessionID)

	c.mu.Lock()
	c.submitting = false
	if err != nil {
		var fieldErrs *FieldErrors
		if errors.As(err, &fieldErrs) {
			c.errors = fieldErrs.Fields
		} else {
			c.general = "Something went wrong submitting your registration. Please try again."
		}
		c.mu.Unlock()
		return err
	}

	c.submitted = true
	c.cancelSaveLocked()
	c.mu.Unlock()

	if c.store != nil {
		if err := c.store.Remove(DraftKey); err != nil {
			c.logger.Warn("clear draft failed", zap.Error(err))
		}
	}

	c.track(eventFormSubmitted, map[string]interface{}{"registrationId": registrationID})

	if c.onRedirect != nil {
		time.AfterFunc(c.redirectDelay, c.onRedirect)
	}

	return nil
}

// rehydrate loads an autosaved draft, reporting whether one was restored.
func (c *Controller) rehydrate() bool {
	if c.store == nil {
		return false
	}
	raw, err := c.store.Get(DraftKey)
	if err != nil {
		if !errors.Is(err, ErrDraftNotFound) {
			c.logger.Warn("read stored draft failed", zap.Error(err))
		}
		return false
	}

	env, err := decodeEnvelope(raw)
	if err != nil {
		c.logger.Warn("discarding stored draft", zap.Error(err))
		if removeErr := c.store.Remove(DraftKey); removeErr != nil {
			c.logger.Warn("remove stale draft failed", zap.Error(removeErr))
		}
		return false
	}

	c.draft = env.Draft
	if env.LastStep >= FirstStep && env.LastStep <= LastStep {
		c.step = env.LastStep
	}
	return true
}

// Flush persists the draft immediately, bypassing the debounce. Exposed for
// page-unload hooks and tests.
func (c *Controller) Flush() {
	c.mu.Lock()
	c.cancelSaveLocked()
	c.mu.Unlock()
	c.save()
}

func (c *Controller) scheduleSave() {
	if c.store == nil {
		return
	}
	c.mu.Lock()
	c.cancelSaveLocked()
	c.saveTimer = time.AfterFunc(c.saveDelay, c.save)
	c.mu.Unlock()
}

func (c *Controller) cancelSaveLocked() {
	if c.saveTimer != nil {
		c.saveTimer.Stop()
		c.saveTimer = nil
	}
}

func (c *Controller) save() {
	if c.store == nil {
		return
	}
	c.mu.Lock()
	if c.submitted {
		c.mu.Unlock()
		return
	}
	raw, err := encodeEnvelope(c.draft, c.step)
	c.mu.Unlock()
	if err != nil {
		c.logger.Warn("encode draft failed", zap.Error(err))
		return
	}
	if err := c.store.Set(DraftKey, raw); err != nil {
		c.logger.Warn("autosave failed", zap.Error(err))
	}
}

func (c *Controller) track(eventType string, data map[string]interface{}) {
	if c.tracker == nil {
		return
	}
	c.tracker.Track(eventType, data)
}

func fieldNames(errs map[string]string) []string {
	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	return names
}

// AsFieldErrors converts a server-side validation error envelope into the
// FieldErrors shape the controller maps back onto the display.
func AsFieldErrors(fields []appErrors.FieldError) *FieldErrors {
	out := &FieldErrors{Fields: make(map[string]string, len(fields))}
	for _, fe := range fields {
		if len(fe.Path) == 0 {
			continue
		}
		out.Fields[fe.Path[0]] = fe.Message
	}
	return out
}
