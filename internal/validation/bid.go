package validation

import (
	"fmt"
	"time"

	"marketplace-bff/config"
	"marketplace-bff/internal/transport/dto"
)

// BidFormErrors holds one message per invalid bid field.
type BidFormErrors struct {
	Quote     string `json:"quote,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	Proposal  string `json:"proposal,omitempty"`
	Agreement string `json:"agreement,omitempty"`
}

// ValidateBid checks a bid placement form. now decides what "today" is.
func ValidateBid(rules config.RulesConfig, form dto.BidForm, now time.Time) ([]string, BidFormErrors) {
	var fe BidFormErrors
	var msgs []string

	if form.Quote < rules.MinQuote {
		fe.Quote = fmt.Sprintf("Quote must be at least $%g", rules.MinQuote)
		msgs = append(msgs, fe.Quote)
	}

	switch {
	case form.StartDate != nil && startOfDay(form.StartDate.In(now.Location())).Before(startOfDay(now)):
		fe.StartDate = "Start date must be today or in the future"
	case form.EndDate != nil && form.StartDate == nil:
		fe.StartDate = "Start date is required when an end date is set"
	case form.StartDate != nil && form.EndDate != nil && form.StartDate.After(*form.EndDate):
		fe.StartDate = "Start date must be before the end date"
	}
	if fe.StartDate != "" {
		msgs = append(msgs, fe.StartDate)
	}

	if len([]rune(form.Proposal)) < rules.MinProposal {
		fe.Proposal = fmt.Sprintf("Proposal must be at least %d characters", rules.MinProposal)
		msgs = append(msgs, fe.Proposal)
	}

	if !AgreementAccepted(form) {
		fe.Agreement = "You must accept the agreement to place a bid"
		msgs = append(msgs, fe.Agreement)
	}
	return msgs, fe
}

// AgreementAccepted is true once the box is ticked or the agreement was scrolled to the end.
func AgreementAccepted(form dto.BidForm) bool {
	return form.AgreementAccepted || form.ScrolledToEnd
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Fields returns the non-empty errors keyed by JSON field name.
func (e BidFormErrors) Fields() map[string][]string {
	out := make(map[string][]string)
	for name, msg := range map[string]string{
		"quote":     e.Quote,
		"startDate": e.StartDate,
		"proposal":  e.Proposal,
		"agreement": e.Agreement,
	} {
		if msg != "" {
			out[name] = []string{msg}
		}
	}
	return out
}
