package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"marketplace-bff/config"
	"marketplace-bff/internal/transport/dto"

	"github.com/go-playground/validator/v10"
)

// Profile sections that can be edited independently.
const (
	SectionBio       = "bio"
	SectionSkills    = "skills"
	SectionLicenses  = "licenses"
	SectionPortfolio = "portfolio"
	SectionBasic     = "basic"
)

// ErrUnknownSection is returned for a section name that is not editable.
var ErrUnknownSection = errors.New("unknown profile section")

// ValidateProfile checks the part of req that belongs to req.Section.
// Field errors are keyed by field name.
func ValidateProfile(rules config.RulesConfig, v *validator.Validate, req dto.UpdateProfileRequest) ([]string, map[string]string, error) {
	fields := make(map[string]string)

	switch req.Section {
	case SectionBio:
		if len([]rune(strings.TrimSpace(req.Bio))) < rules.MinBio {
			fields["bio"] = fmt.Sprintf("Bio must be at least %d characters", rules.MinBio)
		}
	case SectionSkills:
		if len(req.Skills) < rules.MinSkills {
			fields["skills"] = fmt.Sprintf("Select at least %d skill(s)", rules.MinSkills)
		}
		for _, s := range req.Skills {
			if strings.TrimSpace(s.Label) == "" {
				fields["skills"] = "Skill names cannot be empty"
				break
			}
		}
	case SectionLicenses:
		for i, l := range req.Licenses {
			if strings.TrimSpace(l.Name) == "" {
				fields[fmt.Sprintf("licenses[%d].name", i)] = "License name is required"
			}
			if strings.TrimSpace(l.Number) == "" {
				fields[fmt.Sprintf("licenses[%d].number", i)] = "License number is required"
			}
		}
	case SectionPortfolio:
		for i, p := range req.Portfolios {
			if strings.TrimSpace(p.Title) == "" {
				fields[fmt.Sprintf("portfolios[%d].title", i)] = "Title is required"
			}
			if len([]rune(p.Description)) < rules.MinDescription {
				fields[fmt.Sprintf("portfolios[%d].description", i)] = fmt.Sprintf("Description must be at least %d characters", rules.MinDescription)
			}
			if len(p.Images) == 0 {
				fields[fmt.Sprintf("portfolios[%d].images", i)] = "Add at least one image"
			} else if len(p.Images) > rules.MaxImages {
				fields[fmt.Sprintf("portfolios[%d].images", i)] = fmt.Sprintf("You can upload at most %d images", rules.MaxImages)
			}
		}
	case SectionBasic:
		if req.Basic == nil {
			fields["basic"] = "Basic info is required"
			break
		}
		if err := v.Struct(req.Basic); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				return nil, nil, err
			}
			for k, msg := range FormatValidationErrors(verrs) {
				fields[k] = msg
			}
		}
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSection, req.Section)
	}

	msgs := make([]string, 0, len(fields))
	for _, msg := range fields {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return msgs, fields, nil
}

// FormatValidationErrors turns validator tag failures into readable messages keyed by field.
func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorsMap := make(map[string]string)
	for _, fieldError := range errs {
		fieldName := fieldError.Field()
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "e164":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a phone number in international format", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, fieldError.Param())
		default:
			errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		}
	}
	return errorsMap
}
