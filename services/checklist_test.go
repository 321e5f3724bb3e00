package services

import (
	"testing"

	"github.com/railcoach/SpringShop/models"
)

func activityFixture() []models.InspectionActivity {
	return []models.InspectionActivity{
		{ID: 1, ActivityText: "Check spring seating", ActivityType: models.ActivityVisual, SequenceNumber: 1, IsActive: true},
		{ID: 2, ActivityText: "Check for cracks", ActivityType: models.ActivityVisual, SequenceNumber: 2, IsActive: true},
	}
}

func TestBuildDefaultChecklist(t *testing.T) {
	cfg := NewSpringConfiguration()
	cfg.Set("Primary", 4)
	cfg.Set("Secondary Outer", 2)

	rows := BuildDefaultChecklist(activityFixture(), cfg, StatusSatisfactory)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Remarks != "" {
			t.Fatalf("remarks must start empty, got %q", row.Remarks)
		}
		if row.Answers["primary"] != StatusSatisfactory {
			t.Fatalf("expected default %q, got %q", StatusSatisfactory, row.Answers["primary"])
		}
		if row.Answers["secondaryouter"] != StatusSatisfactory {
			t.Fatalf("position key must be lower-case without spaces, answers: %v", row.Answers)
		}
	}
}

func TestFinalizeChecklistMerge(t *testing.T) {
	cfg := NewSpringConfiguration()
	cfg.Set("Primary", 4)
	cfg.Set("Secondary Outer", 2)

	rows := []InspectionRow{
		{
			ActivityID: 1,
			Activity:   "Check spring seating",
			Answers: map[string]string{
				"primary":        "",
				"secondaryouter": StatusUnsatisfactory,
			},
		},
	}

	merged := FinalizeChecklist(rows, cfg, StatusSatisfactory)
	if merged[0].Answers["primary"] != StatusSatisfactory {
		t.Fatalf("blank cell must revert to default, got %q", merged[0].Answers["primary"])
	}
	if merged[0].Answers["secondaryouter"] != StatusUnsatisfactory {
		t.Fatalf("edited cell must be preserved verbatim, got %q", merged[0].Answers["secondaryouter"])
	}
}

func TestFinalizeChecklistFillsMissingKeys(t *testing.T) {
	cfg := NewSpringConfiguration()
	cfg.Set("Primary", 4)

	rows := []InspectionRow{{ActivityID: 7, Activity: "Gauge free height", Answers: map[string]string{}}}
	merged := FinalizeChecklist(rows, cfg, StatusDone)
	if merged[0].Answers["primary"] != StatusDone {
		t.Fatalf("missing key must be filled with default, got %v", merged[0].Answers)
	}
}
