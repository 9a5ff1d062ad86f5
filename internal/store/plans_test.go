package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"petcare-service/internal/seed"
)

func TestListHealthPlansReturnsCopy(t *testing.T) {
	s := New(seed.Default())

	plans := s.ListHealthPlans()
	require.Len(t, plans, 4)

	plans[0].Coverage[0] = "mutated"

	fresh, err := s.GetHealthPlan("1")
	require.NoError(t, err)
	require.Equal(t, "Consultas ilimitadas", fresh.Coverage[0])
}

func TestGetHealthPlanNotFound(t *testing.T) {
	s := New(seed.Default())

	_, err := s.GetHealthPlan("missing")
	require.ErrorIs(t, err, ErrNotFound)
}
