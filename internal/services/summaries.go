package services

import "github.com/medtrack-app/medtrack/internal/models"

// Summary shapes joined into list responses. Built by read-time lookups on
// the explicit foreign keys rather than ORM association loading.

type MedicineSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
}

type UserSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func summarizeMedicine(medicine models.Medicine) MedicineSummary {
	return MedicineSummary{
		ID:        medicine.ID,
		Name:      medicine.Name,
		Dosage:    medicine.Dosage,
		Frequency: medicine.Frequency,
	}
}

func summarizeUser(user models.User) UserSummary {
	return UserSummary{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

func medicineSummariesByID(medicines []models.Medicine) map[uint]MedicineSummary {
	summaries := make(map[uint]MedicineSummary, len(medicines))
	for _, medicine := range medicines {
		summaries[medicine.ID] = summarizeMedicine(medicine)
	}
	return summaries
}

func userSummariesByID(users []models.User) map[uint]UserSummary {
	summaries := make(map[uint]UserSummary, len(users))
	for _, user := range users {
		summaries[user.ID] = summarizeUser(user)
	}
	return summaries
}
