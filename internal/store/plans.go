package store

import "petcare-service/internal/models"

// PlanStore is the read-only plan catalog surface handlers depend on.
type PlanStore interface {
	ListHealthPlans() []models.HealthPlan
	GetHealthPlan(id string) (models.HealthPlan, error)
}

// ListHealthPlans returns the plan catalog. The catalog is never mutated
// by the store.
func (s *Store) ListHealthPlans() []models.HealthPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.HealthPlan, 0, len(s.plans))
	for _, p := range s.plans {
		out = append(out, clonePlan(p))
	}
	return out
}

// GetHealthPlan returns the catalog entry with the given id.
func (s *Store) GetHealthPlan(id string) (models.HealthPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.plans {
		if p.ID == id {
			return clonePlan(p), nil
		}
	}
	return models.HealthPlan{}, ErrNotFound
}

func clonePlan(p models.HealthPlan) models.HealthPlan {
	p.Coverage = append([]string(nil), p.Coverage...)
	return p
}
