package models

import (
	"time"

	"gorm.io/datatypes"
)

// ReportDraft keeps the edited checklist/signature payload of an unfinished report
type ReportDraft struct {
	ID        int64          `gorm:"primary_key;autoIncrement" json:"id"`
	CoachNo   string         `gorm:"type:varchar(64);index" json:"coach_no"`
	Content   datatypes.JSON `gorm:"type:jsonb" json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (ReportDraft) TableName() string {
	return "report_drafts"
}
