package services

import (
	"fmt"

	"github.com/railcoach/SpringShop/models"
	"gorm.io/gorm"
)

// MasterData is a caller-owned snapshot of the master tables. Each report
// request works off one snapshot; refresh policy is up to the caller.
type MasterData struct {
	SpringTypes      []models.SpringType
	DefectTypes      []models.DefectType
	VisualActivities []models.InspectionActivity
	MustDoActivities []models.InspectionActivity
	Inspectors       []models.Inspector
}

// LoadMasterTables reads all master tables in their report order. A load
// failure is returned to the caller together with the empty snapshot, so
// downstream components can proceed degraded instead of crashing.
func LoadMasterTables(db *gorm.DB) (*MasterData, error) {
	md := &MasterData{}

	if err := db.Order("id").Find(&md.SpringTypes).Error; err != nil {
		return &MasterData{}, fmt.Errorf("load spring_types: %w", err)
	}
	if err := db.Order("defect_code").Find(&md.DefectTypes).Error; err != nil {
		return &MasterData{}, fmt.Errorf("load defect_types: %w", err)
	}
	if err := db.Where("activity_type = ? AND is_active = ?", models.ActivityVisual, true).
		Order("sequence_number").Find(&md.VisualActivities).Error; err != nil {
		return &MasterData{}, fmt.Errorf("load inspection_activities: %w", err)
	}
	if err := db.Where("activity_type = ? AND is_active = ?", models.ActivityMustDo, true).
		Order("sequence_number").Find(&md.MustDoActivities).Error; err != nil {
		return &MasterData{}, fmt.Errorf("load inspection_activities: %w", err)
	}
	if err := db.Where("is_active = ?", true).Order("name").Find(&md.Inspectors).Error; err != nil {
		return &MasterData{}, fmt.Errorf("load inspectors: %w", err)
	}

	return md, nil
}

// DefectCodeToName builds the code -> display name lookup
func (md *MasterData) DefectCodeToName() map[string]string {
	out := make(map[string]string, len(md.DefectTypes))
	for _, dt := range md.DefectTypes {
		out[dt.DefectCode] = dt.DefectName
	}
	return out
}

// SpringTypeDefs decodes the spring-type master into resolver input
func (md *MasterData) SpringTypeDefs() []SpringTypeDef {
	defs := make([]SpringTypeDef, 0, len(md.SpringTypes))
	for i := range md.SpringTypes {
		st := &md.SpringTypes[i]
		defs = append(defs, SpringTypeDef{
			SpringType:  st.SpringType,
			CoachTypes:  st.CoachTypeList(),
			MaxPerBogie: st.MaxPerBogie,
		})
	}
	return defs
}

// InspectorName looks an inspector's display name up by id, blank when absent
func (md *MasterData) InspectorName(id int64) string {
	for _, ins := range md.Inspectors {
		if ins.ID == id {
			return ins.Name
		}
	}
	return ""
}
