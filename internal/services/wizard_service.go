package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"marketplace-bff/config"
	"marketplace-bff/internal/models"
	"marketplace-bff/internal/storage"
	"marketplace-bff/internal/storage/images"
	"marketplace-bff/internal/transport/dto"
	"marketplace-bff/internal/validation"

	"github.com/google/uuid"
)

// SubmitSuccessMessage is shown after a job is published.
const SubmitSuccessMessage = "Your job has been posted"

// wizardState is persisted between requests.
type wizardState struct {
	JobID     *uuid.UUID          `json:"jobId,omitempty"`
	StepIndex int                 `json:"stepIndex"`
	Form      dto.JobForm         `json:"form"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

func (w wizardState) step() string {
	return validation.Steps[w.StepIndex]
}

func (w wizardState) response() *dto.WizardResponse {
	return &dto.WizardResponse{
		JobID:     w.JobID,
		Step:      w.step(),
		StepIndex: w.StepIndex,
		Form:      w.Form,
		Errors:    w.Errors,
	}
}

type wizardService struct {
	kv       storage.KVStore
	jobs     JobGateway
	users    UserGateway
	sessions SessionStore
	images   storage.ImageStore
	rules    config.RulesConfig
	maxWidth uint
	ttl      time.Duration

	inFlight sync.Map // user ID -> struct{}
}

// NewWizardService creates a new instance of WizardService.
func NewWizardService(
	kv storage.KVStore,
	jobs JobGateway,
	users UserGateway,
	sessions SessionStore,
	imageStore storage.ImageStore,
	rules config.RulesConfig,
	maxImageWidth uint,
	ttl time.Duration,
) WizardService {
	return &wizardService{
		kv:       kv,
		jobs:     jobs,
		users:    users,
		sessions: sessions,
		images:   imageStore,
		rules:    rules,
		maxWidth: maxImageWidth,
		ttl:      ttl,
	}
}

func wizardKey(userID uuid.UUID) string {
	return "wizard:" + userID.String()
}

// begin marks a network-bound wizard request as running. Callers must call the returned func.
func (s *wizardService) begin(userID uuid.UUID) (func(), error) {
	if _, busy := s.inFlight.LoadOrStore(userID, struct{}{}); busy {
		return nil, ErrRequestInFlight
	}
	return func() { s.inFlight.Delete(userID) }, nil
}

func (s *wizardService) load(ctx context.Context, userID uuid.UUID) (wizardState, error) {
	raw, err := s.kv.Get(ctx, wizardKey(userID))
	if errors.Is(err, storage.ErrNotFound) {
		return wizardState{}, fmt.Errorf("%w: no job is being posted", ErrNotFound)
	}
	if err != nil {
		log.Printf("WizardService: Error loading state for %s: %v", userID, err)
		return wizardState{}, fmt.Errorf("internal error loading wizard: %w", err)
	}
	var w wizardState
	if err := json.Unmarshal(raw, &w); err != nil {
		return wizardState{}, fmt.Errorf("internal error decoding wizard: %w", err)
	}
	if w.StepIndex < 0 || w.StepIndex >= len(validation.Steps) {
		w.StepIndex = 0
	}
	return w, nil
}

func (s *wizardService) save(ctx context.Context, userID uuid.UUID, w wizardState) error {
	raw, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("internal error encoding wizard: %w", err)
	}
	if err := s.kv.Set(ctx, wizardKey(userID), raw, s.ttl); err != nil {
		log.Printf("WizardService: Error saving state for %s: %v", userID, err)
		return fmt.Errorf("internal error saving wizard: %w", err)
	}
	return nil
}

func (s *wizardService) Start(ctx context.Context, userID uuid.UUID, req *dto.StartWizardRequest) (*dto.WizardResponse, error) {
	user, _, err := currentUser(ctx, s.sessions, s.users, userID)
	if err != nil {
		return nil, err
	}
	if !user.HasType(models.UserTypeClient) {
		return nil, fmt.Errorf("%w: only clients can post jobs", ErrForbidden)
	}

	w := wizardState{Form: dto.JobForm{Skills: []models.Skill{}, Images: []string{}}}
	if req != nil && req.JobID != nil {
		job, err := s.jobs.Job(ctx, *req.JobID)
		if err != nil {
			return nil, MapGatewayError(err, "loading draft")
		}
		if job.UserID != userID {
			return nil, fmt.Errorf("%w: draft belongs to another user", ErrForbidden)
		}
		if !job.IsDraft {
			return nil, fmt.Errorf("%w: job %s is already published", ErrInvalidState, job.ID)
		}
		w.JobID = ptrUUID(job.ID)
		w.Form = formFromJob(job)
	}

	if err := s.save(ctx, userID, w); err != nil {
		return nil, err
	}
	return w.response(), nil
}

func (s *wizardService) Get(ctx context.Context, userID uuid.UUID) (*dto.WizardResponse, error) {
	w, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return w.response(), nil
}

func (s *wizardService) UpdateForm(ctx context.Context, userID uuid.UUID, req *dto.UpdateWizardFormRequest) (*dto.WizardResponse, error) {
	w, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	w.Form = req.Form
	if err := s.save(ctx, userID, w); err != nil {
		return nil, err
	}
	return w.response(), nil
}

func (s *wizardService) Next(ctx context.Context, userID uuid.UUID) (*dto.WizardResponse, error) {
	done, err := s.begin(userID)
	if err != nil {
		return nil, err
	}
	defer done()

	w, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if w.StepIndex >= len(validation.Steps)-1 {
		return nil, fmt.Errorf("%w: already on the last step", ErrInvalidState)
	}

	msgs, fieldErrs := validation.ValidateFields(s.rules, w.step(), w.Form, false)
	if len(msgs) > 0 {
		w.Errors = fieldErrs.ByStep()
		if err := s.save(ctx, userID, w); err != nil {
			return nil, err
		}
		return nil, newValidationError(msgs, w.Errors)
	}

	if w.StepIndex >= 1 {
		job, err := s.createOrUpdateJob(ctx, &w, true)
		if err != nil {
			return nil, err
		}
		w.JobID = ptrUUID(job.ID)
	}

	w.StepIndex++
	w.Errors = nil
	if err := s.save(ctx, userID, w); err != nil {
		return nil, err
	}
	return w.response(), nil
}

func (s *wizardService) Back(ctx context.Context, userID uuid.UUID) (*dto.WizardResponse, error) {
	w, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if w.StepIndex > 0 {
		w.StepIndex--
	}
	w.Errors = nil
	if err := s.save(ctx, userID, w); err != nil {
		return nil, err
	}
	return w.response(), nil
}

func (s *wizardService) Submit(ctx context.Context, userID uuid.UUID) (*dto.SubmitWizardResponse, error) {
	done, err := s.begin(userID)
	if err != nil {
		return nil, err
	}
	defer done()

	w, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if w.StepIndex != len(validation.Steps)-1 {
		return nil, fmt.Errorf("%w: submit is only available on the preview step", ErrInvalidState)
	}

	msgs, fieldErrs := validation.ValidateFields(s.rules, w.step(), w.Form, true)
	if len(msgs) > 0 {
		w.Errors = fieldErrs.ByStep()
		if err := s.save(ctx, userID, w); err != nil {
			return nil, err
		}
		return nil, newValidationError(msgs, w.Errors)
	}

	job, err := s.createOrUpdateJob(ctx, &w, false)
	if err != nil {
		return nil, err
	}

	if err := s.kv.Delete(ctx, wizardKey(userID)); err != nil {
		// the job is live, a stale wizard only costs the user a reset
		log.Printf("WizardService: Error clearing state for %s: %v", userID, err)
	}
	return &dto.SubmitWizardResponse{Job: job, Message: SubmitSuccessMessage}, nil
}

// createOrUpdateJob updates the draft the wizard already created, or creates one.
func (s *wizardService) createOrUpdateJob(ctx context.Context, w *wizardState, isDraft bool) (*models.Job, error) {
	input := dto.JobInput{JobForm: w.Form, IsDraft: isDraft}
	if w.JobID != nil {
		job, err := s.jobs.UpdateJob(ctx, *w.JobID, input)
		if err != nil {
			return nil, MapGatewayError(err, "updating job")
		}
		return job, nil
	}
	job, err := s.jobs.CreateJob(ctx, input)
	if err != nil {
		return nil, MapGatewayError(err, "creating job")
	}
	return job, nil
}

func (s *wizardService) UploadImage(ctx context.Context, userID uuid.UUID, data io.Reader) (*dto.WizardResponse, error) {
	done, err := s.begin(userID)
	if err != nil {
		return nil, err
	}
	defer done()

	w, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(w.Form.Images) >= s.rules.MaxImages {
		msg := fmt.Sprintf("You can upload at most %d images", s.rules.MaxImages)
		return nil, newValidationError([]string{msg}, map[string][]string{"images": {msg}})
	}

	buf, err := images.Normalize(data, s.maxWidth)
	if err != nil {
		if errors.Is(err, images.ErrNotAnImage) {
			msg := "The file is not a supported image"
			return nil, newValidationError([]string{msg}, map[string][]string{"images": {msg}})
		}
		return nil, fmt.Errorf("internal error processing image: %w", err)
	}

	name := images.ObjectName("jobs")
	url, err := s.images.Put(ctx, name, "image/jpeg", buf)
	if err != nil {
		log.Printf("WizardService: Error storing image for %s: %v", userID, err)
		return nil, fmt.Errorf("internal error storing image: %w", err)
	}

	w.Form.Images = append(w.Form.Images, url)
	if err := s.save(ctx, userID, w); err != nil {
		// the form never referenced the object, drop it
		if delErr := s.images.Delete(ctx, name); delErr != nil {
			log.Printf("WizardService: Error removing orphaned image %s: %v", name, delErr)
		}
		return nil, err
	}
	return w.response(), nil
}

func (s *wizardService) Validate(req *dto.ValidateJobRequest) ([]string, validation.JobFormErrors) {
	return validation.ValidateFields(s.rules, req.Step, req.Form, req.CheckAllSteps)
}

func formFromJob(job *models.Job) dto.JobForm {
	form := dto.JobForm{
		Title:       job.Title,
		Skills:      job.Skills,
		Budget:      job.Budget,
		Description: job.Description,
		Address:     job.Address,
		Images:      job.Images,
		StartDate:   job.StartDate,
		EndDate:     job.EndDate,
	}
	if form.Skills == nil {
		form.Skills = []models.Skill{}
	}
	if form.Images == nil {
		form.Images = []string{}
	}
	return form
}
