// Package seed supplies the static initial contents of the domain
// collections. The store never re-reads this data after startup.
package seed

import (
	"time"

	"petcare-service/internal/models"
)

// Data holds the initial collections handed to the store at construction.
type Data struct {
	Pets         []models.Pet
	HealthPlans  []models.HealthPlan
	Appointments []models.Appointment
	Groups       []models.Group
	// Messages maps group id to its chronological message sequence.
	Messages map[string][]models.Message
}

// Default builds the demo dataset. Every call returns freshly allocated
// slices and maps so two stores never share backing storage.
func Default() Data {
	return Data{
		Pets: []models.Pet{
			{
				ID:           "1",
				Name:         "Rex",
				Species:      "Cachorro",
				Breed:        "Golden Retriever",
				Age:          3,
				AgeUnit:      "years",
				Weight:       28,
				OwnerID:      "user1",
				HealthPlanID: "1",
			},
			{
				ID:      "2",
				Name:    "Mia",
				Species: "Gato",
				Breed:   "Persa",
				Age:     2,
				AgeUnit: "years",
				Weight:  4.5,
				OwnerID: "user1",
				Photo:   "https://images.unsplash.com/photo-1513360371669-4adf3dd7dff8?w=1080",
			},
		},
		HealthPlans: []models.HealthPlan{
			{
				ID:          "1",
				Name:        "Plano Essencial",
				Provider:    "PetCare",
				Price:       89.90,
				Coverage:    []string{"Consultas ilimitadas", "Vacinas anuais", "Emergências 24h"},
				Description: "Proteção básica para seu pet com consultas e vacinas incluídas.",
				MaxPets:     1,
			},
			{
				ID:          "2",
				Name:        "Plano Completo",
				Provider:    "VetPlus",
				Price:       149.90,
				Coverage:    []string{"Consultas ilimitadas", "Exames laboratoriais", "Cirurgias", "Internação", "Medicamentos"},
				Description: "Cobertura completa para todas as necessidades do seu pet.",
				MaxPets:     3,
			},
			{
				ID:          "3",
				Name:        "Plano Premium",
				Provider:    "PetCare",
				Price:       249.90,
				Coverage:    []string{"Tudo do Plano Completo", "Fisioterapia", "Nutricionista", "Dentista especializado"},
				Description: "O melhor em cuidados e bem-estar para seu melhor amigo.",
				MaxPets:     5,
			},
			{
				ID:          "4",
				Name:        "Plano Filhote",
				Provider:    "AnimaisVida",
				Price:       69.90,
				Coverage:    []string{"Vacinas múltiplas", "Vermifugação", "Consultas mensais", "Castração"},
				Description: "Ideal para os primeiros anos de vida do seu pet.",
				MaxPets:     1,
			},
		},
		Appointments: []models.Appointment{
			{
				ID:         "1",
				PetID:      "1",
				PetName:    "Rex",
				ClinicName: "Clínica VetCare",
				Date:       "2025-11-25",
				Time:       "10:00",
				Type:       "Consulta de rotina",
				Status:     models.AppointmentScheduled,
				Notes:      "Checkup anual",
			},
			{
				ID:         "2",
				PetID:      "2",
				PetName:    "Mia",
				ClinicName: "Hospital Pet",
				Date:       "2025-11-28",
				Time:       "14:30",
				Type:       "Vacinação",
				Status:     models.AppointmentScheduled,
			},
		},
		Groups: []models.Group{
			{
				ID:          "1",
				Name:        "Amantes de Golden Retriever",
				Description: "Grupo para compartilhar dicas e experiências sobre Goldens",
				Members:     []string{"user1", "user2", "user3"},
				CreatedAt:   mustTime("2025-11-01T10:00:00Z"),
			},
			{
				ID:          "2",
				Name:        "Gatos Persas Brasil",
				Description: "Comunidade de tutores de gatos persas",
				Members:     []string{"user1", "user4", "user5"},
				CreatedAt:   mustTime("2025-11-10T15:30:00Z"),
			},
			{
				ID:          "3",
				Name:        "Pets Saudáveis",
				Description: "Dicas de alimentação e exercícios para pets",
				Members:     []string{"user1", "user2", "user6"},
				CreatedAt:   mustTime("2025-11-15T09:00:00Z"),
			},
		},
		Messages: map[string][]models.Message{
			"1": {
				{
					ID:        "m1",
					GroupID:   "1",
					UserID:    "user2",
					UserName:  "Maria Silva",
					Content:   "Olá pessoal! Alguém tem dica de ração para Golden?",
					Timestamp: mustTime("2025-11-21T09:00:00Z"),
				},
				{
					ID:        "m2",
					GroupID:   "1",
					UserID:    "user1",
					UserName:  "Você",
					Content:   "Eu uso a marca Premium Golden, meu Rex adora!",
					Timestamp: mustTime("2025-11-21T09:15:00Z"),
				},
				{
					ID:        "m3",
					GroupID:   "1",
					UserID:    "user3",
					UserName:  "João Santos",
					Content:   "Também recomendo! Meu dog teve uma melhora no pelo.",
					Timestamp: mustTime("2025-11-21T09:30:00Z"),
				},
			},
			"2": {
				{
					ID:        "m4",
					GroupID:   "2",
					UserID:    "user4",
					UserName:  "Ana Costa",
					Content:   "Bom dia! Como vocês fazem a escovação dos pelos?",
					Timestamp: mustTime("2025-11-21T08:00:00Z"),
				},
			},
			"3": {
				{
					ID:        "m5",
					GroupID:   "3",
					UserID:    "user6",
					UserName:  "Pedro Lima",
					Content:   "Alguém já tentou alimentação natural?",
					Timestamp: mustTime("2025-11-20T18:00:00Z"),
				},
			},
		},
	}
}

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}
