package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountCentsMatchesDecimalPrice(t *testing.T) {
	for _, plan := range Plans() {
		want := int64(math.Round(plan.Price * 100))
		assert.Equal(t, want, plan.AmountCents(), "plan %s", plan.ID)
	}
}

func TestCatalogContents(t *testing.T) {
	plans := Plans()
	require.Len(t, plans, 3)

	single, ok := FindPlan("single-lesson")
	require.True(t, ok)
	assert.Equal(t, int64(7000), single.AmountCents())

	five, ok := FindPlan("5-lessons")
	require.True(t, ok)
	assert.Equal(t, int64(32500), five.AmountCents())
	assert.True(t, five.Popular)

	ten, ok := FindPlan("10-lessons")
	require.True(t, ok)
	assert.Equal(t, int64(60000), ten.AmountCents())
}

func TestFindPlanUnknown(t *testing.T) {
	_, ok := FindPlan("20-lessons")
	assert.False(t, ok)
}
