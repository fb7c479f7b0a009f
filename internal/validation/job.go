// Package validation holds the form rules shared by the mobile and web clients.
package validation

import (
	"fmt"

	"marketplace-bff/config"
	"marketplace-bff/internal/models"
	"marketplace-bff/internal/transport/dto"
)

// Wizard step names, in order.
const (
	StepBasic       = "basic"
	StepBudget      = "budget"
	StepDescription = "description"
	StepPreview     = "preview"
)

// Steps lists the wizard steps by index.
var Steps = []string{StepBasic, StepBudget, StepDescription, StepPreview}

// StepIndex returns the position of a step name, or -1.
func StepIndex(step string) int {
	for i, s := range Steps {
		if s == step {
			return i
		}
	}
	return -1
}

// JobFormErrors holds one message per invalid field. Empty means valid.
type JobFormErrors struct {
	Title       string `json:"title,omitempty"`
	Skills      string `json:"skills,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
	MaxHours    string `json:"maxHours,omitempty"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
	Images      string `json:"images,omitempty"`
}

// ByStep groups the non-empty field errors under the step that owns them.
func (e JobFormErrors) ByStep() map[string][]string {
	out := make(map[string][]string)
	add := func(step, msg string) {
		if msg != "" {
			out[step] = append(out[step], msg)
		}
	}
	add(StepBasic, e.Title)
	add(StepBasic, e.Skills)
	add(StepBasic, e.StartDate)
	add(StepBudget, e.From)
	add(StepBudget, e.To)
	add(StepBudget, e.MaxHours)
	add(StepDescription, e.Address)
	add(StepDescription, e.Description)
	add(StepDescription, e.Images)
	return out
}

// ValidateFields checks the fields of one wizard step. With checkAllSteps, or on the
// preview step, every step is checked. The returned messages are in field order.
func ValidateFields(rules config.RulesConfig, step string, form dto.JobForm, checkAllSteps bool) ([]string, JobFormErrors) {
	var fe JobFormErrors
	var msgs []string

	all := checkAllSteps || step == StepPreview

	if all || step == StepBasic {
		msgs = append(msgs, validateBasic(rules, form, &fe)...)
	}
	if all || step == StepBudget {
		msgs = append(msgs, validateBudget(rules, form.Budget, &fe)...)
	}
	if all || step == StepDescription {
		msgs = append(msgs, validateDescription(rules, form, &fe)...)
	}
	return msgs, fe
}

func validateBasic(rules config.RulesConfig, form dto.JobForm, fe *JobFormErrors) []string {
	var msgs []string
	if len([]rune(form.Title)) < rules.MinTitle {
		fe.Title = fmt.Sprintf("Title must be at least %d characters", rules.MinTitle)
		msgs = append(msgs, fe.Title)
	}
	if len(form.Skills) < rules.MinSkills {
		fe.Skills = fmt.Sprintf("Select at least %d skill(s)", rules.MinSkills)
		msgs = append(msgs, fe.Skills)
	}
	if form.EndDate != nil && form.StartDate == nil {
		fe.StartDate = "Start date is required when an end date is set"
		msgs = append(msgs, fe.StartDate)
	} else if form.StartDate != nil && form.EndDate != nil && form.StartDate.After(*form.EndDate) {
		fe.StartDate = "Start date must be before the end date"
		msgs = append(msgs, fe.StartDate)
	}
	return msgs
}

func validateBudget(rules config.RulesConfig, b models.Budget, fe *JobFormErrors) []string {
	var msgs []string
	if b.From < rules.MinWage {
		fe.From = fmt.Sprintf("Minimum budget must be at least $%g", rules.MinWage)
		msgs = append(msgs, fe.From)
	}
	if b.To < rules.MinWage {
		fe.To = fmt.Sprintf("Maximum budget must be at least $%g", rules.MinWage)
		msgs = append(msgs, fe.To)
	} else if b.From >= rules.MinWage && b.To < b.From {
		fe.To = "Maximum budget must be greater than or equal to the minimum budget"
		msgs = append(msgs, fe.To)
	}
	if b.Type == models.BudgetTypeHourly && b.MaxHours < rules.MinHours {
		fe.MaxHours = fmt.Sprintf("Maximum hours must be at least %d", rules.MinHours)
		msgs = append(msgs, fe.MaxHours)
	}
	return msgs
}

func validateDescription(rules config.RulesConfig, form dto.JobForm, fe *JobFormErrors) []string {
	var msgs []string
	if form.Address == nil || form.Address.Formatted == "" {
		fe.Address = "Select the job address"
		msgs = append(msgs, fe.Address)
	}
	if len([]rune(form.Description)) < rules.MinDescription {
		fe.Description = fmt.Sprintf("Description must be at least %d characters", rules.MinDescription)
		msgs = append(msgs, fe.Description)
	}
	if len(form.Images) > rules.MaxImages {
		fe.Images = fmt.Sprintf("You can upload at most %d images", rules.MaxImages)
		msgs = append(msgs, fe.Images)
	}
	return msgs
}
