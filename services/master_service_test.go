package services

import (
	"testing"

	"github.com/railcoach/SpringShop/models"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(&models.SpringType{}, &models.DefectType{}, &models.InspectionActivity{}, &models.Inspector{})
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestLoadMasterTables(t *testing.T) {
	db := openTestDB(t)

	seed := []interface{}{
		&models.SpringType{SpringType: "Primary", CoachTypes: datatypes.JSON(`["VB","LHB"]`), MaxPerBogie: 4},
		&models.DefectType{DefectCode: "CRK", DefectName: "Crack"},
		&models.DefectType{DefectCode: "COR", DefectName: "Corrosion"},
		&models.InspectionActivity{ActivityText: "Check seating", ActivityType: models.ActivityVisual, SequenceNumber: 2, IsActive: true},
		&models.InspectionActivity{ActivityText: "Check cracks", ActivityType: models.ActivityVisual, SequenceNumber: 1, IsActive: true},
		&models.InspectionActivity{ActivityText: "Retired step", ActivityType: models.ActivityVisual, SequenceNumber: 3, IsActive: false},
		&models.InspectionActivity{ActivityText: "Gauge free height", ActivityType: models.ActivityMustDo, SequenceNumber: 1, IsActive: true},
		&models.Inspector{Name: "R. Sharma", IsActive: true},
		&models.Inspector{Name: "A. Gupta", IsActive: false},
	}
	for _, row := range seed {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	var inactiveActivities, inactiveInspectors int64
	db.Model(&models.InspectionActivity{}).Where("is_active = ?", false).Count(&inactiveActivities)
	db.Model(&models.Inspector{}).Where("is_active = ?", false).Count(&inactiveInspectors)
	if inactiveActivities != 1 || inactiveInspectors != 1 {
		t.Fatalf("IsActive=false must round-trip through create, got %d/%d inactive rows", inactiveActivities, inactiveInspectors)
	}

	md, err := LoadMasterTables(db)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(md.VisualActivities) != 2 {
		t.Fatalf("expected 2 active visual activities, got %d", len(md.VisualActivities))
	}
	if md.VisualActivities[0].ActivityText != "Check cracks" {
		t.Fatalf("visual activities must be ordered by sequence, got %q first", md.VisualActivities[0].ActivityText)
	}
	if len(md.MustDoActivities) != 1 {
		t.Fatalf("expected 1 must-do activity, got %d", len(md.MustDoActivities))
	}
	if len(md.Inspectors) != 1 || md.Inspectors[0].Name != "R. Sharma" {
		t.Fatalf("expected only the active inspector, got %+v", md.Inspectors)
	}

	codeToName := md.DefectCodeToName()
	if codeToName["CRK"] != "Crack" || codeToName["COR"] != "Corrosion" {
		t.Fatalf("unexpected defect lookup: %v", codeToName)
	}

	defs := md.SpringTypeDefs()
	if len(defs) != 1 {
		t.Fatalf("expected 1 spring type def, got %d", len(defs))
	}
	if len(defs[0].CoachTypes) != 2 || defs[0].CoachTypes[0] != "VB" {
		t.Fatalf("coach_types jsonb not decoded: %+v", defs[0])
	}

	if got := md.InspectorName(md.Inspectors[0].ID); got != "R. Sharma" {
		t.Fatalf("InspectorName = %q", got)
	}
	if got := md.InspectorName(9999); got != "" {
		t.Fatalf("unknown inspector must yield blank, got %q", got)
	}
}
