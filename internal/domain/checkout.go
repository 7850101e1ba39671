package domain

import "time"

// CheckoutStep enumerates the wizard states in order.
type CheckoutStep string

const (
	StepSelectPlan      CheckoutStep = "select_plan"
	StepCustomerDetails CheckoutStep = "customer_details"
	StepPayment         CheckoutStep = "payment"
)

// CheckoutSteps is the ordered list of wizard steps. The controller walks
// this list; it is the single source of truth for step order.
var CheckoutSteps = []CheckoutStep{StepSelectPlan, StepCustomerDetails, StepPayment}

// ExperienceLevel describes a customer's self-reported chess strength.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// CustomerDetails is the step-2 form data. Mutable while the wizard sits on
// the customer_details step, validated before advancing.
type CustomerDetails struct {
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Experience ExperienceLevel `json:"experience"`
}

// FullName joins first and last name for the payment processor.
func (d CustomerDetails) FullName() string {
	return d.FirstName + " " + d.LastName
}

// CheckoutSession is one wizard run: a selected plan plus customer details.
// Created fresh when a wizard starts, kept in Redis with a TTL, deleted on
// completion. Never written to the database.
type CheckoutSession struct {
	ID        string          `json:"id"`
	Step      CheckoutStep    `json:"step"`
	PlanID    string          `json:"plan_id,omitempty"`
	Details   CustomerDetails `json:"details"`
	CreatedAt time.Time       `json:"created_at"`
}
