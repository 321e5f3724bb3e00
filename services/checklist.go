package services

import (
	"github.com/railcoach/SpringShop/methods"
	"github.com/railcoach/SpringShop/models"
)

// Status vocabularies per checklist kind
const (
	StatusSatisfactory   = "Satisfactory"
	StatusUnsatisfactory = "Unsatisfactory"
	StatusDone           = "Done"
	StatusNotDone        = "Not Done"
)

// InspectionRow is one editable checklist row; Answers is keyed by the
// normalized spring position key (methods.PositionKey)
type InspectionRow struct {
	ActivityID int64             `json:"activity_id"`
	Activity   string            `json:"activity"`
	Remarks    string            `json:"remarks"`
	Answers    map[string]string `json:"answers"`
}

// BuildDefaultChecklist produces one row per activity with every spring
// position initialized to defaultStatus. The builder only supplies defaults;
// edited content is not validated here.
func BuildDefaultChecklist(activities []models.InspectionActivity, cfg *SpringConfiguration, defaultStatus string) []InspectionRow {
	rows := make([]InspectionRow, 0, len(activities))
	for _, act := range activities {
		row := InspectionRow{
			ActivityID: act.ID,
			Activity:   act.ActivityText,
			Remarks:    "",
			Answers:    make(map[string]string, cfg.Len()),
		}
		for _, name := range cfg.Names() {
			row.Answers[methods.PositionKey(name)] = defaultStatus
		}
		rows = append(rows, row)
	}
	return rows
}

// FinalizeChecklist applies the finalize-time merge rule: any answer cell left
// blank reverts to defaultStatus, non-blank edits are preserved verbatim.
// Cells for positions missing from the row are filled in as well, so the key
// set always matches the configuration.
func FinalizeChecklist(rows []InspectionRow, cfg *SpringConfiguration, defaultStatus string) []InspectionRow {
	out := make([]InspectionRow, 0, len(rows))
	for _, row := range rows {
		merged := InspectionRow{
			ActivityID: row.ActivityID,
			Activity:   row.Activity,
			Remarks:    row.Remarks,
			Answers:    make(map[string]string, cfg.Len()),
		}
		for _, key := range cfg.Keys() {
			if v, ok := row.Answers[key]; ok && v != "" {
				merged.Answers[key] = v
			} else {
				merged.Answers[key] = defaultStatus
			}
		}
		out = append(out, merged)
	}
	return out
}
