// Package checkout implements the three-step wizard state machine:
// select_plan -> customer_details -> payment. Each step gates entry to the
// next via validation; invalid input leaves the state untouched and returns
// a field-keyed error map.
package checkout

import (
	"errors"
	"regexp"
	"strings"

	"github.com/BERSERKRobot/chess-website-v2/internal/catalog"
	"github.com/BERSERKRobot/chess-website-v2/internal/domain"
)

var (
	// ErrInvalidTransition is returned when an operation is not permitted in
	// the session's current step.
	ErrInvalidTransition = errors.New("operation not permitted in current step")

	// ErrUnknownPlan is returned when a plan id is not in the catalog.
	ErrUnknownPlan = errors.New("unknown plan")
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// FieldErrors maps form field names to validation messages.
type FieldErrors map[string]string

// SelectPlan records the chosen plan. Only permitted while the wizard sits
// on the select_plan step.
func SelectPlan(s *domain.CheckoutSession, planID string) error {
	if s.Step != domain.StepSelectPlan {
		return ErrInvalidTransition
	}
	if _, ok := catalog.FindPlan(planID); !ok {
		return ErrUnknownPlan
	}
	s.PlanID = planID
	return nil
}

// SetDetails stores the step-2 form data. Only permitted on the
// customer_details step; validation happens on Advance, not here.
func SetDetails(s *domain.CheckoutSession, details domain.CustomerDetails) error {
	if s.Step != domain.StepCustomerDetails {
		return ErrInvalidTransition
	}
	s.Details = details
	return nil
}

// Advance moves the wizard one step forward. The current step's required
// fields must validate; on failure the returned map is non-empty and the
// session is unchanged.
func Advance(s *domain.CheckoutSession) (FieldErrors, error) {
	switch s.Step {
	case domain.StepSelectPlan:
		if fieldErrs := validatePlan(s); len(fieldErrs) > 0 {
			return fieldErrs, nil
		}
		s.Step = domain.StepCustomerDetails
		return nil, nil
	case domain.StepCustomerDetails:
		if fieldErrs := validateDetails(s.Details); len(fieldErrs) > 0 {
			return fieldErrs, nil
		}
		s.Step = domain.StepPayment
		return nil, nil
	default:
		return nil, ErrInvalidTransition
	}
}

// Retreat moves the wizard one step back without losing entered data.
func Retreat(s *domain.CheckoutSession) error {
	switch s.Step {
	case domain.StepCustomerDetails:
		s.Step = domain.StepSelectPlan
	case domain.StepPayment:
		s.Step = domain.StepCustomerDetails
	default:
		return ErrInvalidTransition
	}
	return nil
}

// StepNumber reports the 1-based position of the session's current step.
func StepNumber(s *domain.CheckoutSession) int {
	for i, step := range domain.CheckoutSteps {
		if step == s.Step {
			return i + 1
		}
	}
	return 0
}

func validatePlan(s *domain.CheckoutSession) FieldErrors {
	fieldErrs := FieldErrors{}
	if s.PlanID == "" {
		fieldErrs["plan"] = "Please select a plan"
	} else if _, ok := catalog.FindPlan(s.PlanID); !ok {
		fieldErrs["plan"] = "Please select a plan"
	}
	return fieldErrs
}

func validateDetails(d domain.CustomerDetails) FieldErrors {
	fieldErrs := FieldErrors{}
	if strings.TrimSpace(d.FirstName) == "" {
		fieldErrs["first_name"] = "First name is required"
	}
	if strings.TrimSpace(d.LastName) == "" {
		fieldErrs["last_name"] = "Last name is required"
	}
	if strings.TrimSpace(d.Email) == "" {
		fieldErrs["email"] = "Email is required"
	} else if !emailPattern.MatchString(d.Email) {
		fieldErrs["email"] = "Please enter a valid email"
	}
	if strings.TrimSpace(d.Phone) == "" {
		fieldErrs["phone"] = "Phone number is required"
	}
	return fieldErrs
}
