package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

const (
	ActivityVisual = "VISUAL_INSPECTION"
	ActivityMustDo = "MUST_DO"
)

// SpringType master row; CoachTypes holds the applicable coach types as a JSON array
type SpringType struct {
	ID          int64          `gorm:"primary_key;autoIncrement" json:"id"`
	SpringType  string         `gorm:"type:varchar(128)" json:"spring_type"`
	CoachTypes  datatypes.JSON `gorm:"type:jsonb" json:"coach_types"`
	MaxPerBogie int            `json:"max_per_bogie"`
}

func (SpringType) TableName() string {
	return "spring_types"
}

// CoachTypeList decodes the jsonb coach_types column, empty on malformed data
func (s *SpringType) CoachTypeList() []string {
	var types []string
	if len(s.CoachTypes) == 0 {
		return types
	}
	if err := json.Unmarshal(s.CoachTypes, &types); err != nil {
		return nil
	}
	return types
}

type DefectType struct {
	ID         int64  `gorm:"primary_key;autoIncrement" json:"id"`
	DefectCode string `gorm:"type:varchar(64);uniqueIndex" json:"defect_code"`
	DefectName string `gorm:"type:varchar(255)" json:"defect_name"`
}

func (DefectType) TableName() string {
	return "defect_types"
}

type InspectionActivity struct {
	ID             int64  `gorm:"primary_key;autoIncrement" json:"id"`
	ActivityText   string `gorm:"type:varchar(255)" json:"activity_text"`
	ActivityType   string `gorm:"type:varchar(32);index" json:"activity_type"`
	SequenceNumber int    `gorm:"index" json:"sequence_number"`
	// no column default: gorm omits zero-valued fields that carry one, so an
	// inactive row created via struct would silently come back active
	IsActive bool `json:"is_active"`
}

func (InspectionActivity) TableName() string {
	return "inspection_activities"
}

type Inspector struct {
	ID       int64  `gorm:"primary_key;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(128)" json:"name"`
	IsActive bool   `json:"is_active"`
}

func (Inspector) TableName() string {
	return "inspectors"
}
