package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BERSERKRobot/chess-website-v2/internal/domain"
)

func TestCustomerDetailsExperienceFallback(t *testing.T) {
	tests := []struct {
		in   string
		want domain.ExperienceLevel
	}{
		{in: "beginner", want: domain.ExperienceBeginner},
		{in: "intermediate", want: domain.ExperienceIntermediate},
		{in: "advanced", want: domain.ExperienceAdvanced},
		{in: "grandmaster", want: domain.ExperienceIntermediate},
		{in: "", want: domain.ExperienceIntermediate},
	}

	for _, tt := range tests {
		got := CustomerDetailsRequest{Experience: tt.in}.ToDomain()
		assert.Equal(t, tt.want, got.Experience, "experience %q", tt.in)
	}
}

func TestSessionResponseReflectsStep(t *testing.T) {
	s := &domain.CheckoutSession{
		ID:     "sess-1",
		Step:   domain.StepCustomerDetails,
		PlanID: "5-lessons",
	}

	resp := NewSessionResponse(s, true)
	assert.Equal(t, "customer_details", resp.Step)
	assert.Equal(t, 2, resp.StepNumber)
	assert.True(t, resp.ScrollToTop)
}
