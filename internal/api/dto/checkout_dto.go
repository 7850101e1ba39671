package dto

import (
	"github.com/BERSERKRobot/chess-website-v2/internal/checkout"
	"github.com/BERSERKRobot/chess-website-v2/internal/domain"
)

// SelectPlanRequest payload for plan selection.
type SelectPlanRequest struct {
	PlanID string `json:"plan_id"`
}

// CustomerDetailsRequest payload for the step-2 form.
type CustomerDetailsRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Experience string `json:"experience"`
}

// ToDomain converts the request into the domain value. An unknown experience
// level falls back to intermediate, matching the form's default.
func (r CustomerDetailsRequest) ToDomain() domain.CustomerDetails {
	experience := domain.ExperienceLevel(r.Experience)
	switch experience {
	case domain.ExperienceBeginner, domain.ExperienceIntermediate, domain.ExperienceAdvanced:
	default:
		experience = domain.ExperienceIntermediate
	}
	return domain.CustomerDetails{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Phone:      r.Phone,
		Experience: experience,
	}
}

// SessionResponse is the wizard state returned to the client.
type SessionResponse struct {
	ID          string                 `json:"id"`
	Step        string                 `json:"step"`
	StepNumber  int                    `json:"step_number"`
	PlanID      string                 `json:"plan_id,omitempty"`
	Details     CustomerDetailsRequest `json:"details"`
	ScrollToTop bool                   `json:"scroll_to_top,omitempty"`
}

// NewSessionResponse builds the response view of a session. scrollToTop is
// set after a successful step change so the client restores the viewport.
func NewSessionResponse(s *domain.CheckoutSession, scrollToTop bool) SessionResponse {
	return SessionResponse{
		ID:         s.ID,
		Step:       string(s.Step),
		StepNumber: checkout.StepNumber(s),
		PlanID:     s.PlanID,
		Details: CustomerDetailsRequest{
			FirstName:  s.Details.FirstName,
			LastName:   s.Details.LastName,
			Email:      s.Details.Email,
			Phone:      s.Details.Phone,
			Experience: string(s.Details.Experience),
		},
		ScrollToTop: scrollToTop,
	}
}
