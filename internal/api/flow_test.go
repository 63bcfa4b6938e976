package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/medtrack-app/medtrack/internal/models"
)

// Exercises the whole patient lifecycle against one app: register, fail a
// login, create a medicine, acknowledge a dose, verify cross-user scoping
// and the admin reporting view.
func TestPatientLifecycle(t *testing.T) {
	app, database := newTestApp(t)

	registered := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"first_name": "Pat",
		"last_name":  "Ient",
		"email":      "pat@example.com",
		"password":   "p4ssword",
	})
	if registered.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", registered.StatusCode)
	}
	registered.Body.Close()

	badLogin := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    "pat@example.com",
		"password": "wrong",
	})
	if badLogin.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d", badLogin.StatusCode)
	}
	badLogin.Body.Close()

	token := loginToken(t, app, "pat@example.com", "p4ssword")

	created := doJSON(t, app, http.MethodPost, "/medicines", token, fiber.Map{
		"name":          "Lisinopril",
		"dosage":        "10mg",
		"schedule_time": "07:30",
	})
	if created.StatusCode != http.StatusCreated {
		t.Fatalf("create medicine: expected 201, got %d", created.StatusCode)
	}
	medicine, _ := decodeBody(t, created.Body)["medicine"].(map[string]any)
	created.Body.Close()
	if medicine == nil {
		t.Fatal("expected a medicine in the create response")
	}
	medicineID := uint(medicine["id"].(float64))

	acknowledged := doJSON(t, app, http.MethodPost, "/logs", token, fiber.Map{
		"medicine_id":   medicineID,
		"scheduled_for": "2026-03-01T07:30:00Z",
	})
	if acknowledged.StatusCode != http.StatusCreated {
		t.Fatalf("acknowledge: expected 201, got %d", acknowledged.StatusCode)
	}
	entry := decodeBody(t, acknowledged.Body)
	acknowledged.Body.Close()
	if entry["status"] != models.StatusTaken {
		t.Fatalf("expected default status taken, got %v", entry["status"])
	}

	createTestUser(t, database, "intruder@example.com", "p4ssword", models.RoleUser)
	intruderToken := loginToken(t, app, "intruder@example.com", "p4ssword")
	blocked := doJSON(t, app, http.MethodGet, fmt.Sprintf("/medicines/%d", medicineID), intruderToken, nil)
	if blocked.StatusCode != http.StatusNotFound {
		t.Fatalf("cross-user fetch: expected 404, got %d", blocked.StatusCode)
	}
	blocked.Body.Close()

	createTestUser(t, database, "admin@example.com", "p4ssword", models.RoleAdmin)
	adminToken := loginToken(t, app, "admin@example.com", "p4ssword")
	report := doJSON(t, app, http.MethodGet, "/admin/logs", adminToken, nil)
	if report.StatusCode != http.StatusOK {
		t.Fatalf("admin logs: expected 200, got %d", report.StatusCode)
	}
	entries := decodeList(t, report.Body)
	report.Body.Close()
	if len(entries) != 1 {
		t.Fatalf("expected the single acknowledgment in the admin view, got %d", len(entries))
	}
	user, _ := entries[0]["user"].(map[string]any)
	joined, _ := entries[0]["medicine"].(map[string]any)
	if user == nil || user["email"] != "pat@example.com" {
		t.Fatalf("expected the owner summary joined in, got %v", entries[0]["user"])
	}
	if joined == nil || joined["name"] != "Lisinopril" {
		t.Fatalf("expected the medicine summary joined in, got %v", entries[0]["medicine"])
	}
}
