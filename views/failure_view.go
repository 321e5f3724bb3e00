package views

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/railcoach/SpringShop/config"
	"github.com/railcoach/SpringShop/methods"
	"github.com/railcoach/SpringShop/models"
)

type AddFailureRequest struct {
	CoachNo                 string `json:"coach_no" binding:"required"`
	CoachCode               string `json:"coach_code"`
	CoachType               string `json:"coach_type" binding:"required"`
	Schedule                string `json:"schedule"`
	Division                string `json:"division"`
	BogieNumber             string `json:"bogie_number"`
	ReceiptDate             string `json:"receipt_date"`
	SecondarySuspensionType string `json:"secondary_suspension_type"`
	TypeOfSpring            string `json:"type_of_spring"`
	ColourOfSpring          string `json:"colour_of_spring"`
	TypeOfFailure           string `json:"type_of_failure"`
	Location                string `json:"location"`
	LocationInBogie         string `json:"location_in_bogie"`
	Remarks                 string `json:"remarks"`
	MFG                     string `json:"mfg"`
	DefectCount             int    `json:"defect_count"`
}

// AddFailure inserts one spring failure record
func (uc *UserController) AddFailure(c *gin.Context) {
	var req AddFailureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Code: 400, Message: fmt.Sprintf("bad request: %v", err)})
		return
	}

	if req.DefectCount < 1 {
		req.DefectCount = 1
	}
	record := models.SpringFailure{
		CoachNo:                 strings.TrimSpace(req.CoachNo),
		CoachCode:               strings.TrimSpace(req.CoachCode),
		CoachType:               strings.TrimSpace(req.CoachType),
		Schedule:                strings.TrimSpace(req.Schedule),
		Division:                strings.TrimSpace(req.Division),
		BogieNumber:             strings.TrimSpace(req.BogieNumber),
		ReceiptDate:             strings.TrimSpace(req.ReceiptDate),
		SecondarySuspensionType: strings.TrimSpace(req.SecondarySuspensionType),
		TypeOfSpring:            strings.TrimSpace(req.TypeOfSpring),
		ColourOfSpring:          strings.TrimSpace(req.ColourOfSpring),
		TypeOfFailure:           strings.TrimSpace(req.TypeOfFailure),
		Location:                strings.TrimSpace(req.Location),
		LocationInBogie:         strings.TrimSpace(req.LocationInBogie),
		Remarks:                 strings.TrimSpace(req.Remarks),
		MFG:                     strings.TrimSpace(req.MFG),
		DefectCount:             req.DefectCount,
	}

	DB := models.DB
	if err := DB.Create(&record).Error; err != nil {
		config.Log.Errorw("Failed to add failure record", "coach_no", req.CoachNo, "error", err)
		c.JSON(http.StatusInternalServerError, Response{Code: 500, Message: fmt.Sprintf("create failed: %v", err)})
		return
	}
	c.JSON(http.StatusOK, Response{Code: 200, Message: "Record added successfully", Data: record})
}

// GetFailures lists failure records, filterable by coach/defect/spring/coach type
func (uc *UserController) GetFailures(c *gin.Context) {
	DB := models.DB
	query := DB.Model(&models.SpringFailure{})

	if v := c.Query("coach_no"); v != "" {
		query = query.Where("coach_no = ?", v)
	}
	if v := c.Query("coach_type"); v != "" {
		query = query.Where("coach_type = ?", v)
	}
	if v := c.Query("type_of_failure"); v != "" {
		query = query.Where("type_of_failure = ?", v)
	}
	if v := c.Query("type_of_spring"); v != "" {
		query = query.Where("type_of_spring = ?", v)
	}

	var records []models.SpringFailure
	if err := query.Order("id").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{Code: 500, Message: fmt.Sprintf("query failed: %v", err)})
		return
	}
	c.JSON(http.StatusOK, Response{Code: 200, Message: "ok", Data: records})
}

// ChangeFailure updates an existing record by id
func (uc *UserController) ChangeFailure(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Code: 400, Message: "invalid id"})
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, Response{Code: 400, Message: fmt.Sprintf("bad request: %v", err)})
		return
	}
	// only whitelisted columns may be changed
	allowed := append([]string{"coach_type", "bogie_number", "receipt_date", "remarks", "mfg", "defect_count"}, uniqueValueColumns...)
	for key := range updates {
		if !methods.IsStringInSlice(key, allowed) {
			delete(updates, key)
		}
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, Response{Code: 400, Message: "no updatable fields"})
		return
	}

	DB := models.DB
	result := DB.Model(&models.SpringFailure{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, Response{Code: 500, Message: fmt.Sprintf("update failed: %v", result.Error)})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, Response{Code: 404, Message: "record not found"})
		return
	}
	c.JSON(http.StatusOK, Response{Code: 200, Message: "Record updated"})
}

// DelFailure deletes a record by id
func (uc *UserController) DelFailure(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Code: 400, Message: "invalid id"})
		return
	}

	DB := models.DB
	if err := DB.Delete(&models.SpringFailure{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{Code: 500, Message: fmt.Sprintf("delete failed: %v", err)})
		return
	}
	c.JSON(http.StatusOK, Response{Code: 200, Message: "Record deleted"})
}

// GetUniqueValues returns the distinct non-empty values of one column,
// for the combined dropdown/typing inputs of the entry form
func (uc *UserController) GetUniqueValues(c *gin.Context) {
	column := c.Query("column")
	if !methods.IsStringInSlice(column, uniqueValueColumns) {
		c.JSON(http.StatusBadRequest, Response{Code: 400, Message: fmt.Sprintf("unsupported column: %s", column)})
		return
	}

	DB := models.DB
	var values []string
	err := DB.Model(&models.SpringFailure{}).
		Distinct(column).
		Where(column+" <> ''").
		Order(column).
		Pluck(column, &values).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Code: 500, Message: fmt.Sprintf("query failed: %v", err)})
		return
	}
	c.JSON(http.StatusOK, Response{Code: 200, Message: "ok", Data: values})
}

// FailuresToCSV streams all failure records as a CSV download
func (uc *UserController) FailuresToCSV(c *gin.Context) {
	DB := models.DB
	var records []models.SpringFailure
	if err := DB.Order("id").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{Code: 500, Message: fmt.Sprintf("query failed: %v", err)})
		return
	}

	filename := fmt.Sprintf("spring_failures_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "text/csv")

	w := csv.NewWriter(c.Writer)
	header := []string{"id", "coach_no", "coach_code", "coach_type", "schedule", "division",
		"bogie_number", "receipt_date", "secondary_suspension_type", "type_of_spring",
		"colour_of_spring", "type_of_failure", "location", "location_in_bogie",
		"remarks", "mfg", "defect_count"}
	w.Write(header)
	for _, r := range records {
		w.Write([]string{
			strconv.FormatInt(r.ID, 10), r.CoachNo, r.CoachCode, r.CoachType, r.Schedule, r.Division,
			r.BogieNumber, r.ReceiptDate, r.SecondarySuspensionType, r.TypeOfSpring,
			r.ColourOfSpring, r.TypeOfFailure, r.Location, r.LocationInBogie,
			r.Remarks, r.MFG, strconv.Itoa(r.DefectCount),
		})
	}
	w.Flush()
}
