package services

import (
	"testing"

	"github.com/railcoach/SpringShop/models"
)

func TestPartitionDefectsTotalAndExclusive(t *testing.T) {
	records := []models.SpringFailure{
		{BogieNumber: "2", TypeOfSpring: "Primary", TypeOfFailure: "CRK"},
		{BogieNumber: "", TypeOfSpring: "Primary", TypeOfFailure: "CRK"},
		{BogieNumber: "1", TypeOfSpring: "Secondary Outer", TypeOfFailure: "COR"},
	}
	b1, b2 := PartitionDefects(records, nil)
	if len(b1) != 2 || len(b2) != 1 {
		t.Fatalf("expected 2/1 split, got %d/%d", len(b1), len(b2))
	}
	if len(b1)+len(b2) != len(records) {
		t.Fatalf("partition must be total: %d + %d != %d", len(b1), len(b2), len(records))
	}
}

func TestPartitionDefectsTrimsBogieNumber(t *testing.T) {
	records := []models.SpringFailure{
		{BogieNumber: " 2 "},
		{BogieNumber: "3"},
		{BogieNumber: "two"},
	}
	b1, b2 := PartitionDefects(records, nil)
	if len(b2) != 1 {
		t.Fatalf("trimmed \"2\" must land in bogie2, got %d", len(b2))
	}
	if len(b1) != 2 {
		t.Fatalf("everything else goes to bogie1, got %d", len(b1))
	}
}

func TestPartitionDefectsResolvesDisplayName(t *testing.T) {
	records := []models.SpringFailure{
		{BogieNumber: "1", TypeOfFailure: "CRK"},
		{BogieNumber: "1", TypeOfFailure: "XX9"},
	}
	codeToName := map[string]string{"CRK": "Crack"}
	b1, _ := PartitionDefects(records, codeToName)
	if b1[0].Defect != "Crack" {
		t.Fatalf("expected display name, got %q", b1[0].Defect)
	}
	if b1[1].Defect != "XX9" {
		t.Fatalf("unknown code must fall back to the raw code, got %q", b1[1].Defect)
	}
}
