package api

import (
	"fmt"
	"net/http"
	"testing"

	"pda-backend/internal/models"
)

func TestTestRoutesRequireAuthorizationHeader(t *testing.T) {
	app, _, _ := newTestApp(t)

	response := doRequest(t, app, http.MethodGet, "/tests/user/5", nil)
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without header, got %d", response.StatusCode)
	}
}

func TestCreateTestRecordReturnsRow(t *testing.T) {
	app, _, _ := newTestApp(t)

	request := map[string]any{
		"user_id":         5,
		"test_name":       "CBC",
		"doctor_name":     "Dr. Rao",
		"test_for_person": "self",
		"date":            "2024-03-01",
		"lab_name":        "City Lab",
	}
	response := postJSONWithAuth(t, app, "/tests", request)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var created models.TestRecord
	decodeJSONBody(t, response, &created)
	if created.ID == 0 || created.TestName != "CBC" || created.TestForPerson != "self" {
		t.Fatalf("unexpected created record: %+v", created)
	}
}

func TestCreateTestRecordRequiresUserID(t *testing.T) {
	app, _, _ := newTestApp(t)

	response := postJSONWithAuth(t, app, "/tests", map[string]any{
		"test_name": "CBC",
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestListTestRecordsDescendingOrder(t *testing.T) {
	app, database, _ := newTestApp(t)

	for _, name := range []string{"first", "second"} {
		record := models.TestRecord{UserID: 5, TestName: name, DoctorName: "d", TestForPerson: "self", Date: "2024-01-01", LabName: "l"}
		if err := database.Create(&record).Error; err != nil {
			t.Fatalf("seed test record: %v", err)
		}
	}

	response := doRequest(t, app, http.MethodGet, "/tests/user/5", map[string]string{
		"Authorization": "Bearer anything",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	var records []models.TestRecord
	decodeJSONBody(t, response, &records)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].TestName != "second" {
		t.Fatalf("expected descending id order, got %q first", records[0].TestName)
	}
}

func TestDeleteTestRecordEnforcesOwnership(t *testing.T) {
	app, database, _ := newTestApp(t)

	record := models.TestRecord{UserID: 5, TestName: "CBC", DoctorName: "d", TestForPerson: "self", Date: "2024-01-01", LabName: "l"}
	if err := database.Create(&record).Error; err != nil {
		t.Fatalf("seed test record: %v", err)
	}

	mismatched := doRequest(t, app, http.MethodDelete,
		fmt.Sprintf("/tests/%d/user/99", record.ID), map[string]string{
			"Authorization": "Bearer anything",
		})
	if mismatched.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", mismatched.StatusCode)
	}

	owned := doRequest(t, app, http.MethodDelete,
		fmt.Sprintf("/tests/%d/user/5", record.ID), map[string]string{
			"Authorization": "Bearer anything",
		})
	if owned.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", owned.StatusCode)
	}
	var payload struct {
		Success bool `json:"success"`
	}
	decodeJSONBody(t, owned, &payload)
	if !payload.Success {
		t.Fatal("expected success:true")
	}
}
