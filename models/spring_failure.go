package models

import "time"

// SpringFailure is one raw failure observation recorded against a coach
type SpringFailure struct {
	ID                      int64  `gorm:"primary_key;autoIncrement" json:"id"`
	CoachNo                 string `gorm:"type:varchar(64);index" json:"coach_no"`
	CoachCode               string `gorm:"type:varchar(64)" json:"coach_code"`
	CoachType               string `gorm:"type:varchar(32)" json:"coach_type"`
	Schedule                string `gorm:"type:varchar(64)" json:"schedule"`
	Division                string `gorm:"type:varchar(64)" json:"division"`
	BogieNumber             string `gorm:"type:varchar(32)" json:"bogie_number"`
	ReceiptDate             string `gorm:"type:varchar(32)" json:"receipt_date"`
	SecondarySuspensionType string `gorm:"type:varchar(64)" json:"secondary_suspension_type"`
	TypeOfSpring            string `gorm:"type:varchar(128)" json:"type_of_spring"`
	ColourOfSpring          string `gorm:"type:varchar(64)" json:"colour_of_spring"`
	TypeOfFailure           string `gorm:"type:varchar(128)" json:"type_of_failure"`
	Location                string `gorm:"type:varchar(128)" json:"location"`
	LocationInBogie         string `gorm:"type:varchar(128)" json:"location_in_bogie"`
	Remarks                 string `gorm:"type:text" json:"remarks"`
	MFG                     string `gorm:"type:varchar(64)" json:"mfg"`
	DefectCount             int    `gorm:"default:1" json:"defect_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SpringFailure) TableName() string {
	return "spring_failures"
}
