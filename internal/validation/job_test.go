package validation_test

import (
	"testing"
	"time"

	"marketplace-bff/config"
	"marketplace-bff/internal/models"
	"marketplace-bff/internal/transport/dto"
	"marketplace-bff/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrTime(t time.Time) *time.Time { return &t }

func validForm() dto.JobForm {
	start := time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC)
	return dto.JobForm{
		Title:       "Fix my roof",
		Skills:      []models.Skill{{Label: "Roofing"}},
		Budget:      models.Budget{Type: models.BudgetTypeProject, From: 100, To: 200},
		Description: "Several shingles blew off during the storm last week.",
		Address:     &models.Address{Formatted: "1 Main St", Lat: 40.7, Lng: -74},
		StartDate:   ptrTime(start),
		EndDate:     ptrTime(start.Add(48 * time.Hour)),
	}
}

func TestValidateFields_BasicStep(t *testing.T) {
	rules := config.DefaultRules()
	rules.MinTitle = 5
	rules.MinSkills = 1

	msgs, fe := validation.ValidateFields(rules, validation.StepBasic, dto.JobForm{Title: "Fix"}, false)
	require.Len(t, msgs, 2)
	assert.NotEmpty(t, fe.Title)
	assert.NotEmpty(t, fe.Skills)
	assert.Empty(t, fe.StartDate)

	msgs, fe = validation.ValidateFields(rules, validation.StepBasic, dto.JobForm{
		Title:  "Fix my roof",
		Skills: []models.Skill{{Label: "Roofing"}},
	}, false)
	assert.Empty(t, msgs)
	assert.Equal(t, validation.JobFormErrors{}, fe)
}

func TestValidateFields_BasicStepDates(t *testing.T) {
	rules := config.DefaultRules()
	form := validForm()

	form.StartDate = nil
	msgs, fe := validation.ValidateFields(rules, validation.StepBasic, form, false)
	require.Len(t, msgs, 1)
	assert.Contains(t, fe.StartDate, "required")

	form = validForm()
	form.StartDate, form.EndDate = form.EndDate, form.StartDate
	msgs, fe = validation.ValidateFields(rules, validation.StepBasic, form, false)
	require.Len(t, msgs, 1)
	assert.Contains(t, fe.StartDate, "before")

	form = validForm()
	form.EndDate = nil
	msgs, _ = validation.ValidateFields(rules, validation.StepBasic, form, false)
	assert.Empty(t, msgs, "start date without end date is fine")
}

func TestValidateFields_BudgetTieBreak(t *testing.T) {
	rules := config.DefaultRules()
	rules.MinWage = 14
	rules.MinHours = 1

	form := dto.JobForm{Budget: models.Budget{Type: models.BudgetTypeHourly, From: 10, To: 8, MaxHours: 0}}
	msgs, fe := validation.ValidateFields(rules, validation.StepBudget, form, false)

	require.Len(t, msgs, 3)
	assert.Contains(t, fe.From, "at least")
	assert.Contains(t, fe.To, "at least", "below-minimum wins over to<from")
	assert.NotEmpty(t, fe.MaxHours)

	form.Budget = models.Budget{Type: models.BudgetTypeProject, From: 50, To: 20}
	msgs, fe = validation.ValidateFields(rules, validation.StepBudget, form, false)
	require.Len(t, msgs, 1)
	assert.Empty(t, fe.From)
	assert.Contains(t, fe.To, "greater than or equal")
	assert.Empty(t, fe.MaxHours, "max hours only applies to hourly budgets")

	form.Budget = models.Budget{Type: models.BudgetTypeProject, From: 10, To: 15}
	_, fe = validation.ValidateFields(rules, validation.StepBudget, form, false)
	assert.NotEmpty(t, fe.From)
	assert.Empty(t, fe.To, "to<from is not reported while from is below the minimum")
}

func TestValidateFields_DescriptionStep(t *testing.T) {
	rules := config.DefaultRules()
	rules.MaxImages = 2

	form := validForm()
	form.Address = nil
	form.Description = "short"
	form.Images = []string{"a", "b", "c"}

	msgs, fe := validation.ValidateFields(rules, validation.StepDescription, form, false)
	assert.Len(t, msgs, 3)
	assert.NotEmpty(t, fe.Address)
	assert.NotEmpty(t, fe.Description)
	assert.NotEmpty(t, fe.Images)
}

func TestValidateFields_CheckAllSteps(t *testing.T) {
	rules := config.DefaultRules()

	msgs, _ := validation.ValidateFields(rules, validation.StepPreview, validForm(), true)
	assert.Empty(t, msgs)

	form := validForm()
	form.Title = ""
	form.Budget.From = 1

	msgs, fe := validation.ValidateFields(rules, validation.StepDescription, form, false)
	assert.Empty(t, msgs, "only the current step is checked")

	msgs, fe = validation.ValidateFields(rules, validation.StepDescription, form, true)
	assert.Len(t, msgs, 2)
	byStep := fe.ByStep()
	assert.Len(t, byStep[validation.StepBasic], 1)
	assert.Len(t, byStep[validation.StepBudget], 1)
	assert.Empty(t, byStep[validation.StepDescription])

	msgs, _ = validation.ValidateFields(rules, validation.StepPreview, form, false)
	assert.Len(t, msgs, 2, "preview always checks every step")
}

func TestStepIndex(t *testing.T) {
	assert.Equal(t, 0, validation.StepIndex(validation.StepBasic))
	assert.Equal(t, 3, validation.StepIndex(validation.StepPreview))
	assert.Equal(t, -1, validation.StepIndex("nope"))
}
