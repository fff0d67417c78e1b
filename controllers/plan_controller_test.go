package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/namratah118/trykymi/config"
	"github.com/namratah118/trykymi/models"
	"github.com/namratah118/trykymi/utils"
)

func TestPlanCompleteResponseMatchesRow(t *testing.T) {
	setupTestDB(t)

	plan := models.Plan{
		ID:        utils.GenerateID(),
		UserID:    testUID,
		Title:     "Morning focus block",
		PlanDate:  "2026-02-14",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := config.DB.Create(&plan).Error; err != nil {
		t.Fatal(err)
	}

	pc := PlanController{}
	r := newTestRouter()
	r.PUT("/plans/:id/complete", pc.Complete)

	toggle := func(t *testing.T) bool {
		t.Helper()

		req := httptest.NewRequest(http.MethodPut, "/plans/"+plan.ID+"/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Completed bool `json:"completed"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		return resp.Completed
	}

	// each toggle must report the state it just wrote
	for i, want := range []bool{true, false} {
		got := toggle(t)

		var row models.Plan
		if err := config.DB.First(&row, "id = ?", plan.ID).Error; err != nil {
			t.Fatal(err)
		}
		if row.Completed != want {
			t.Fatalf("toggle %d: row completed = %v, want %v", i+1, row.Completed, want)
		}
		if got != row.Completed {
			t.Errorf("toggle %d: response completed = %v, row has %v", i+1, got, row.Completed)
		}
	}
}
