package views

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/railcoach/SpringShop/config"
	"github.com/railcoach/SpringShop/models"
	"github.com/railcoach/SpringShop/services"
	"gorm.io/datatypes"
)

// inferCoachType falls back to the coach code when the record carries no type
func inferCoachType(coachType string, coachCode string) string {
	if strings.TrimSpace(coachType) != "" {
		return coachType
	}
	code := strings.ToUpper(strings.TrimSpace(coachCode))
	if strings.Contains(code, "VB") {
		return "VB"
	}
	if strings.Contains(code, "LHB") || strings.Contains(code, "LW") {
		return "LHB"
	}
	return "LHB"
}

// PrepareReportResponse carries everything the report editor needs up front
type PrepareReportResponse struct {
	CoachNumber   string                      `json:"coach_number"`
	CoachCode     string                      `json:"coach_code"`
	CoachType     string                      `json:"coach_type"`
	SecondaryType string                      `json:"secondary_type"`
	ReceiptDate   string                      `json:"receipt_date"`
	BogieNumber   string                      `json:"bogie_number"`
	DefectCount   int                         `json:"defect_count"`
	SpringCounts  map[string]int              `json:"spring_counts"`
	SpringOrder   []string                    `json:"spring_order"`
	VisualRows    []services.InspectionRow    `json:"visual_rows"`
	MustDoRows    []services.InspectionRow    `json:"mustdo_rows"`
	Bogie1Defects []services.DefectItem       `json:"bogie1_defects"`
	Bogie2Defects []services.DefectItem       `json:"bogie2_defects"`
	Failures      []models.SpringFailure      `json:"failures"`
	Inspectors    []models.Inspector          `json:"inspectors"`
}

// PrepareReport resolves the spring configuration and default checklist rows
// for one coach so the preparer can review and edit them before generating
func (uc *UserController) PrepareReport(c *gin.Context) {
	coachNo := strings.TrimSpace(c.Query("coach_no"))
	if coachNo == "" {
		c.JSON(http.StatusBadRequest, Response{Code: 400, Message: "coach_no is required"})
		return
	}

	DB := models.DB
	var failures []models.SpringFailure
	if err := DB.Where("coach_no = ?", coachNo).Order("id").Find(&failures).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{Code: 500, Message: fmt.Sprintf("query failed: %v", err)})
		return
	}
	if len(failures) == 0 {
		c.JSON(http.StatusNotFound, Response{Code: 404, Message: "no failure records for coach " + coachNo})
		return
	}

	md, err := services.LoadMasterTables(DB)
	if err != nil {
		// degraded: proceed with the empty snapshot
		config.Log.Errorw("Error loading master tables", "error", err)
	}

	first := failures[0]
	coachType := inferCoachType(first.CoachType, first.CoachCode)
	secondaryType := first.SecondarySuspensionType
	if strings.TrimSpace(secondaryType) == "" {
		secondaryType = "Air Spring"
	}

	cfg := services.ResolveSpringConfiguration(coachType, secondaryType, md.SpringTypeDefs())
	b1, b2 := services.PartitionDefects(failures, md.DefectCodeToName())

	counts := make(map[string]int, cfg.Len())
	for _, name := range cfg.Names() {
		n, _ := cfg.Get(name)
		counts[name] = n
	}

	resp := PrepareReportResponse{
		CoachNumber:   coachNo,
		CoachCode:     first.CoachCode,
		CoachType:     coachType,
		SecondaryType: secondaryType,
		ReceiptDate:   first.ReceiptDate,
		BogieNumber:   first.BogieNumber,
		DefectCount:   len(failures),
		SpringCounts:  counts,
		SpringOrder:   cfg.Names(),
		VisualRows:    services.BuildDefaultChecklist(md.VisualActivities, cfg, services.StatusSatisfactory),
		MustDoRows:    services.BuildDefaultChecklist(md.MustDoActivities, cfg, services.StatusDone),
		Bogie1Defects: b1,
		Bogie2Defects: b2,
		Failures:      failures,
		Inspectors:    md.Inspectors,
	}
	c.JSON(http.StatusOK, Response{Code: 200, Message: "ok", Data: resp})
}

// GenerateReportPayload is the JSON part of the multipart generate request
type GenerateReportPayload struct {
	CoachNo          string                   `json:"coach_no"`
	Bogie1Number     string                   `json:"bogie1_number"`
	Bogie2Number     string                   `json:"bogie2_number"`
	InspectorID      int64                    `json:"inspector_id"`
	SigShopName      string                   `json:"sig_shop_name"`
	SigShopDate      string                   `json:"sig_shop_date"`
	SigInsName       string                   `json:"sig_ins_name"`
	SigInsDate       string                   `json:"sig_ins_date"`
	BogieCorrections map[string]string        `json:"bogie_corrections"` // failure id -> corrected bogie number
	VisualBogie1     []services.InspectionRow `json:"visual_bogie1"`
	VisualBogie2     []services.InspectionRow `json:"visual_bogie2"`
	MustDoBogie1     []services.InspectionRow `json:"mustdo_bogie1"`
	MustDoBogie2     []services.InspectionRow `json:"mustdo_bogie2"`
}

func readFormFile(c *gin.Context, field string) []byte {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	f, err := fileHeader.Open()
	if err != nil {
		return nil
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil
	}
	return data
}

// GenerateReport assembles the final inspection document for one coach and
// streams it back. Multipart form: "payload" JSON field plus optional
// "sig_shop" / "sig_ins" signature images.
func (uc *UserController) GenerateReport(c *gin.Context) {
	payloadText := c.PostForm("payload")
	if payloadText == "" {
		c.JSON(http.StatusBadRequest, Response{Code: 400, Message: "payload is required"})
		return
	}
	var payload GenerateReportPayload
	if err := json.Unmarshal([]byte(payloadText), &payload); err != nil {
		c.JSON(http.StatusBadRequest, Response{Code: 400, Message: fmt.Sprintf("bad payload: %v", err)})
		return
	}
	if strings.TrimSpace(payload.CoachNo) == "" {
		c.JSON(http.StatusBadRequest, Response{Code: 400, Message: "coach_no is required"})
		return
	}

	DB := models.DB
	var failures []models.SpringFailure
	if err := DB.Where("coach_no = ?", payload.CoachNo).Order("id").Find(&failures).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{Code: 500, Message: fmt.Sprintf("query failed: %v", err)})
		return
	}
	if len(failures) == 0 {
		c.JSON(http.StatusNotFound, Response{Code: 404, Message: "no failure records for coach " + payload.CoachNo})
		return
	}

	// session-only bogie corrections, never written back to the store
	for i := range failures {
		key := fmt.Sprintf("%d", failures[i].ID)
		if corrected, ok := payload.BogieCorrections[key]; ok && strings.TrimSpace(corrected) != "" {
			failures[i].BogieNumber = corrected
		}
	}

	md, err := services.LoadMasterTables(DB)
	if err != nil {
		config.Log.Errorw("Error loading master tables", "error", err)
	}
	codeToName := md.DefectCodeToName()

	first := failures[0]
	coachType := inferCoachType(first.CoachType, first.CoachCode)
	secondaryType := first.SecondarySuspensionType
	if strings.TrimSpace(secondaryType) == "" {
		secondaryType = "Air Spring"
	}

	cfg := services.ResolveSpringConfiguration(coachType, secondaryType, md.SpringTypeDefs())
	b1, b2 := services.PartitionDefects(failures, codeToName)

	bogie1Number := payload.Bogie1Number
	if strings.TrimSpace(bogie1Number) == "" {
		bogie1Number = "Bogie 1"
	}

	rec := &services.ReportRecord{
		CoachNumber:   payload.CoachNo,
		CoachCode:     first.CoachCode,
		CoachType:     coachType,
		SecondaryType: secondaryType,
		Bogie1Number:  bogie1Number,
		Bogie2Number:  payload.Bogie2Number,
		DateOfReceipt: first.ReceiptDate,
		InspectorID:   payload.InspectorID,
		InspectorName: md.InspectorName(payload.InspectorID),
		SpringCounts:  cfg,

		Bogie1Inspections: services.FinalizeChecklist(payload.VisualBogie1, cfg, services.StatusSatisfactory),
		Bogie2Inspections: services.FinalizeChecklist(payload.VisualBogie2, cfg, services.StatusSatisfactory),
		Bogie1MustDo:      services.FinalizeChecklist(payload.MustDoBogie1, cfg, services.StatusDone),
		Bogie2MustDo:      services.FinalizeChecklist(payload.MustDoBogie2, cfg, services.StatusDone),

		Bogie1Defects: b1,
		Bogie2Defects: b2,

		SigShop: services.SignatureMeta{Name: payload.SigShopName, Date: services.NormalizeSignatureDate(payload.SigShopDate)},
		SigIns:  services.SignatureMeta{Name: payload.SigInsName, Date: services.NormalizeSignatureDate(payload.SigInsDate)},
	}

	sigShop := readFormFile(c, "sig_shop")
	sigIns := readFormFile(c, "sig_ins")

	docBytes, err := services.RenderInspectionReport(rec, codeToName, sigShop, sigIns)
	if err != nil {
		config.Log.Errorw("Failed to render report", "coach_no", payload.CoachNo, "error", err)
		c.JSON(http.StatusInternalServerError, Response{Code: 500, Message: fmt.Sprintf("render failed: %v", err)})
		return
	}

	taskid := uuid.New().String()
	filename := fmt.Sprintf("inspection_%s_%s_%s.docx", first.CoachCode, payload.CoachNo, taskid[:8])
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", docBytes)
}

type SaveDraftRequest struct {
	CoachNo string          `json:"coach_no" binding:"required"`
	Content json.RawMessage `json:"content" binding:"required"`
}

// SaveReportDraft stores the edited report payload so a preparer can resume later
func (uc *UserController) SaveReportDraft(c *gin.Context) {
	var req SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Code: 400, Message: fmt.Sprintf("bad request: %v", err)})
		return
	}

	draft := models.ReportDraft{
		CoachNo: req.CoachNo,
		Content: datatypes.JSON(req.Content),
	}
	DB := models.DB
	if err := DB.Create(&draft).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{Code: 500, Message: fmt.Sprintf("save failed: %v", err)})
		return
	}
	c.JSON(http.StatusOK, Response{Code: 200, Message: "Draft saved", Data: gin.H{"draft_id": draft.ID}})
}

// GetReportDraft returns the latest draft for a coach
func (uc *UserController) GetReportDraft(c *gin.Context) {
	coachNo := strings.TrimSpace(c.Query("coach_no"))
	if coachNo == "" {
		c.JSON(http.StatusBadRequest, Response{Code: 400, Message: "coach_no is required"})
		return
	}

	var draft models.ReportDraft
	err := models.DB.Where("coach_no = ?", coachNo).Order("id DESC").First(&draft).Error
	if err != nil {
		c.JSON(http.StatusNotFound, Response{Code: 404, Message: "no draft for coach " + coachNo})
		return
	}
	c.JSON(http.StatusOK, Response{Code: 200, Message: "ok", Data: draft})
}
