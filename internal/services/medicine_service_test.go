package services

import (
	"errors"
	"testing"

	"github.com/medtrack-app/medtrack/internal/models"
)

func newMedicineFixture() (*MedicineService, *fakeMedicineStore, models.User, models.User) {
	owner := models.User{ID: 1, Role: models.RoleUser}
	admin := models.User{ID: 9, Role: models.RoleAdmin}
	store := &fakeMedicineStore{medicines: map[uint]models.Medicine{
		10: {ID: 10, UserID: owner.ID, Name: "Aspirin", Dosage: "100mg", ScheduleTime: "08:00", Frequency: models.FrequencyDaily},
		20: {ID: 20, UserID: 2, Name: "Foreign", Dosage: "5mg", ScheduleTime: "09:00", Frequency: models.FrequencyDaily},
	}}
	return NewMedicineService(store), store, owner, admin
}

func TestMedicineServiceCreateAppliesDefaults(t *testing.T) {
	service, store, owner, _ := newMedicineFixture()

	medicine := models.Medicine{Name: "Metformin", Dosage: "500mg", ScheduleTime: "09:30"}
	if err := service.Create(&owner, &medicine); err != nil {
		t.Fatalf("create: %v", err)
	}

	if medicine.UserID != owner.ID {
		t.Fatalf("expected the caller's user id, got %d", medicine.UserID)
	}
	if medicine.Frequency != models.FrequencyDaily {
		t.Fatalf("expected frequency to default to daily, got %q", medicine.Frequency)
	}
	if medicine.StartDate.IsZero() {
		t.Fatal("expected start date to default to today")
	}
	if medicine.StartDate.Hour() != 0 || medicine.StartDate.Minute() != 0 {
		t.Fatalf("expected start date at midnight, got %v", medicine.StartDate)
	}
	if _, ok := store.medicines[medicine.ID]; !ok {
		t.Fatal("expected the row to be stored")
	}
}

func TestMedicineServiceCreateRejectsInvalid(t *testing.T) {
	service, store, owner, _ := newMedicineFixture()

	medicine := models.Medicine{Name: "Broken", Dosage: "1mg", ScheduleTime: "25:00"}
	if err := service.Create(&owner, &medicine); !errors.Is(err, ErrInvalidScheduleTime) {
		t.Fatalf("expected ErrInvalidScheduleTime, got %v", err)
	}
	if len(store.medicines) != 2 {
		t.Fatalf("rejected create must not write, got %d rows", len(store.medicines))
	}
}

func TestMedicineServiceScoping(t *testing.T) {
	service, _, owner, admin := newMedicineFixture()

	if _, err := service.GetFor(&owner, 20); !errors.Is(err, ErrMedicineNotFound) {
		t.Fatalf("expected ErrMedicineNotFound for a foreign row, got %v", err)
	}
	if _, err := service.GetFor(&admin, 20); err != nil {
		t.Fatalf("admin read must reach any row, got %v", err)
	}

	ownerRows, err := service.ListFor(&owner)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ownerRows) != 1 || ownerRows[0].ID != 10 {
		t.Fatalf("expected only the caller's rows, got %v", ownerRows)
	}

	adminRows, err := service.ListFor(&admin)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(adminRows) != 2 {
		t.Fatalf("expected the admin listing to span all users, got %d rows", len(adminRows))
	}
}

func TestMedicineServiceUpdateRevalidates(t *testing.T) {
	service, store, owner, _ := newMedicineFixture()

	weekly := models.FrequencyWeekly
	if _, err := service.Update(&owner, 10, MedicineUpdate{Frequency: &weekly}); !errors.Is(err, ErrMissingWeeklyDays) {
		t.Fatalf("expected ErrMissingWeeklyDays when switching to weekly without days, got %v", err)
	}
	if store.medicines[10].Frequency != models.FrequencyDaily {
		t.Fatal("rejected update must leave the row unchanged")
	}

	days := "1,4"
	updated, err := service.Update(&owner, 10, MedicineUpdate{Frequency: &weekly, DaysOfWeek: &days})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Frequency != models.FrequencyWeekly || updated.DaysOfWeek != "1,4" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Name != "Aspirin" {
		t.Fatalf("omitted fields must stay unchanged, got %q", updated.Name)
	}
}
