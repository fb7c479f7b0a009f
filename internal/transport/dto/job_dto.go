// internal/transport/dto/job_dto.go
package dto

import (
	"time"

	"marketplace-bff/internal/models"

	"github.com/google/uuid"
)

// --- Job Wizard DTOs ---

// JobForm is the input accumulated across the posting wizard steps.
type JobForm struct {
	Title       string          `json:"title"`
	Skills      []models.Skill  `json:"skills"`
	Budget      models.Budget   `json:"budget"`
	Description string          `json:"description"`
	Address     *models.Address `json:"address,omitempty"`
	Images      []string        `json:"images"`
	StartDate   *time.Time      `json:"startDate,omitempty"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
}

// JobInput is what gets sent to the createJob/updateJob mutations.
type JobInput struct {
	JobForm
	IsDraft bool `json:"isDraft"`
}

// ValidateJobRequest validates a form without touching wizard state.
type ValidateJobRequest struct {
	Step          string  `json:"step" validate:"required,oneof=basic budget description preview"`
	Form          JobForm `json:"form"`
	CheckAllSteps bool    `json:"checkAllSteps"`
}

// StartWizardRequest starts a fresh wizard, or resumes a draft when JobID is set.
type StartWizardRequest struct {
	JobID *uuid.UUID `json:"jobId,omitempty"`
}

// UpdateWizardFormRequest replaces the form being edited.
type UpdateWizardFormRequest struct {
	Form JobForm `json:"form"`
}

// WizardResponse is the current wizard state returned to the client.
type WizardResponse struct {
	JobID     *uuid.UUID          `json:"jobId,omitempty"`
	Step      string              `json:"step"`
	StepIndex int                 `json:"stepIndex"`
	Form      JobForm             `json:"form"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

// SubmitWizardResponse is returned once the job is published.
type SubmitWizardResponse struct {
	Job     *models.Job `json:"job"`
	Message string      `json:"message"`
}

// CompleteJobResponse tells the client to prompt for a review.
type CompleteJobResponse struct {
	Job          *models.Job `json:"job"`
	PromptReview bool        `json:"promptReview"`
}
