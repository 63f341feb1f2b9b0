// Package workflow drives the submission session: step transitions,
// validation gating, the single transport call, and conversion of every
// transport failure into displayable error state. Failures never propagate
// past this boundary as raw errors.
package workflow

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/dst-portal/upload-portal/internal/form"
	"github.com/dst-portal/upload-portal/internal/models"
	"github.com/dst-portal/upload-portal/internal/progress"
	"github.com/dst-portal/upload-portal/internal/validator"
	apperrors "github.com/dst-portal/upload-portal/pkg/errors"
	"github.com/dst-portal/upload-portal/pkg/i18n"
)

// Uploader is the transport seam; satisfied by transport.Client.
type Uploader interface {
	Submit(ctx context.Context, form *models.FormState, categories []models.FileCategory) (*models.UploadResult, error)
}

// Controller owns one submission session. Reads and mutations may come
// from the UI loop and the submit goroutine, so all state is behind a
// mutex.
type Controller struct {
	store     *form.Store
	validator *validator.Validator
	uploader  Uploader
	presenter *progress.Sequencer
	tr        *i18n.Translator
	log       *zap.Logger

	mu           sync.Mutex
	step         models.WorkflowStep
	isSubmitting bool
	errors       []string
	result       *models.UploadResult
}

func NewController(store *form.Store, v *validator.Validator, uploader Uploader, presenter *progress.Sequencer, tr *i18n.Translator, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		store:     store,
		validator: v,
		uploader:  uploader,
		presenter: presenter,
		tr:        tr,
		log:       log,
		step:      models.StepProjectType,
	}
}

func (c *Controller) Store() *form.Store { return c.store }

func (c *Controller) Step() models.WorkflowStep {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

func (c *Controller) IsSubmitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isSubmitting
}

// Errors returns the current display list: validation messages or the one
// classified transport error.
func (c *Controller) Errors() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.errors))
	copy(out, c.errors)
	return out
}

// Result is the successful upload outcome, nil before the done step.
func (c *Controller) Result() *models.UploadResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// SelectProjectType leaves the project-type screen and installs the
// matching category set.
func (c *Controller) SelectProjectType(pt models.ProjectType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.step != models.StepProjectType {
		return
	}
	c.store.SetProjectType(pt)
	switch pt {
	case models.ProjectTypeExisting:
		c.step = models.StepExistingProject
	default:
		c.step = models.StepForm
	}
	c.log.Info("workflow_step", zap.String("step", string(c.step)))
}

// Back returns from either form to the project-type screen. The category
// set reverts to the new-project default, discarding attached files; the
// next selection installs a fresh set again.
func (c *Controller) Back() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.step != models.StepForm && c.step != models.StepExistingProject {
		return
	}
	if c.isSubmitting {
		return
	}
	c.store.SetProjectType(models.ProjectTypeNone)
	c.step = models.StepProjectType
	c.errors = nil
}

// Validate recomputes the error list without submitting.
func (c *Controller) Validate() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	errs := c.validator.Validate(c.store.State(), c.store.Categories())
	c.errors = errs
	return errs
}

// Submit validates and, when clean, performs the upload while the progress
// presenter narrates. It blocks until the transport settles, so callers run
// it off the UI loop. A submit while one is in flight is ignored — no
// second network call, no queueing. Returns true when the workflow reached
// the done step.
func (c *Controller) Submit(ctx context.Context) bool {
	c.mu.Lock()
	if c.isSubmitting {
		c.mu.Unlock()
		c.log.Warn("submit_ignored_in_flight")
		return false
	}
	if c.step != models.StepForm && c.step != models.StepExistingProject {
		c.mu.Unlock()
		return false
	}
	errs := c.validator.Validate(c.store.State(), c.store.Categories())
	if len(errs) > 0 {
		c.errors = errs
		c.mu.Unlock()
		c.log.Warn("submit_validation_failed", zap.Int("error_count", len(errs)))
		return false
	}
	c.isSubmitting = true
	c.errors = nil
	fileCount := c.store.TotalFiles()
	state := *c.store.State()
	categories := c.store.Categories()
	c.mu.Unlock()

	c.store.LogSnapshot("submit_started")
	if c.presenter != nil {
		c.presenter.Start(fileCount)
	}

	result, err := c.uploader.Submit(ctx, &state, categories)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.isSubmitting = false

	if err != nil {
		message := c.messageForError(err)
		c.errors = []string{message}
		if c.presenter != nil {
			c.presenter.Fail(message)
		}
		return false
	}

	if !result.Success {
		message := result.Message
		if message == "" {
			message = c.tr.T("error.uploadNotSuccessful")
		}
		c.errors = []string{message}
		if c.presenter != nil {
			c.presenter.Fail(message)
		}
		c.log.Warn("submit_not_successful")
		return false
	}

	// The server timestamp is displayed verbatim, never reformatted.
	c.result = result
	c.step = models.StepDone
	if c.presenter != nil {
		c.presenter.Complete()
	}
	c.log.Info("submit_succeeded", zap.String("timestamp", result.Timestamp), zap.Int("files_uploaded", result.FilesUploaded))
	return true
}

// DismissError clears the error display and any stale progress timers,
// keeping every entered field and attached file.
func (c *Controller) DismissError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = nil
	if c.presenter != nil {
		c.presenter.Stop()
	}
}

// NewUpload leaves the done step and resets the whole session.
func (c *Controller) NewUpload() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.step != models.StepDone {
		return
	}
	c.store.Reset()
	c.result = nil
	c.errors = nil
	c.step = models.StepProjectType
	c.log.Info("workflow_reset")
}

// messageForError maps the closed error-kind set onto translated display
// messages. Unknown errors fall back to their own text, then to the
// generic upload failure.
func (c *Controller) messageForError(err error) string {
	e := apperrors.FromError(err)
	switch e.Kind {
	case apperrors.KindConfig, apperrors.KindAuth, apperrors.KindConnectivity, apperrors.KindUploadFailed, apperrors.KindValidation:
		return c.tr.T(e.MessageKey)
	case apperrors.KindUnknown:
		if e.Err != nil && e.Err.Error() != "" {
			return e.Err.Error()
		}
		return c.tr.T("error.uploadFailed")
	default:
		return c.tr.T("error.uploadFailed")
	}
}
