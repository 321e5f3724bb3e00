package services

import (
	"strings"

	"github.com/railcoach/SpringShop/models"
)

// DefectItem is one defect line of the report; Defect carries the display
// name resolved from the code table, the raw code is kept alongside
type DefectItem struct {
	SpringType   string `json:"springType"`
	SpringNumber string `json:"springNumber"`
	DefectCode   string `json:"defectCode"`
	Defect       string `json:"defect"`
	Location     string `json:"location"`
}

// PartitionDefects splits a coach's failure rows by bogie. A trimmed bogie
// number of "2" goes to bogie 2, everything else (including blank) to bogie 1,
// so the partition is total and exclusive.
func PartitionDefects(records []models.SpringFailure, codeToName map[string]string) (bogie1 []DefectItem, bogie2 []DefectItem) {
	for _, rec := range records {
		display := rec.TypeOfFailure
		if name, ok := codeToName[rec.TypeOfFailure]; ok {
			display = name
		}
		item := DefectItem{
			SpringType:   rec.TypeOfSpring,
			SpringNumber: rec.LocationInBogie,
			DefectCode:   rec.TypeOfFailure,
			Defect:       display,
			Location:     rec.Location,
		}
		if strings.TrimSpace(rec.BogieNumber) == "2" {
			bogie2 = append(bogie2, item)
		} else {
			bogie1 = append(bogie1, item)
		}
	}
	return bogie1, bogie2
}
