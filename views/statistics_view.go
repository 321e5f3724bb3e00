package views

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/railcoach/SpringShop/config"
	"github.com/railcoach/SpringShop/models"
)

// CountItem one group count
type CountItem struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// CrossTabItem one cell of a two-field cross tabulation
type CrossTabItem struct {
	RowValue string `json:"row_value"`
	ColValue string `json:"col_value"`
	Count    int64  `json:"count"`
}

type DashboardData struct {
	TotalFailures    int64          `json:"total_failures"`
	UniqueCoachCodes int64          `json:"unique_coach_codes"`
	FailureTypes     int64          `json:"failure_types"`
	SpringTypes      int64          `json:"spring_types"`
	TopDefects       []CountItem    `json:"top_defects"`
	BySpringType     []CountItem    `json:"by_spring_type"`
	ByCoachType      []CountItem    `json:"by_coach_type"`
	ByColour         []CountItem    `json:"by_colour"`
	BySuspension     []CountItem    `json:"by_suspension"`
	CoachTypeDefect  []CrossTabItem `json:"coach_type_defect"`
	SpringTypeDefect []CrossTabItem `json:"spring_type_defect"`
}

func groupCounts(column string, limit int) ([]CountItem, error) {
	DB := models.DB
	var items []CountItem
	query := DB.Model(&models.SpringFailure{}).
		Select(column + " AS value, COUNT(*) AS count").
		Where(column + " <> ''").
		Group(column).
		Order("count DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Scan(&items).Error
	return items, err
}

func crossTab(rowColumn string, colColumn string) ([]CrossTabItem, error) {
	DB := models.DB
	var items []CrossTabItem
	err := DB.Model(&models.SpringFailure{}).
		Select(rowColumn+" AS row_value, "+colColumn+" AS col_value, COUNT(*) AS count").
		Where(rowColumn+" <> '' AND "+colColumn+" <> ''").
		Group(rowColumn + ", " + colColumn).
		Order("row_value, col_value").
		Scan(&items).Error
	return items, err
}

// DashboardStats returns the aggregate failure analytics the dashboard plots:
// totals, top defect types, group counts and the two cross tabulations
func (uc *UserController) DashboardStats(c *gin.Context) {
	DB := models.DB
	data := DashboardData{}

	if err := DB.Model(&models.SpringFailure{}).Count(&data.TotalFailures).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{Code: 500, Message: fmt.Sprintf("query failed: %v", err)})
		return
	}
	DB.Model(&models.SpringFailure{}).Distinct("coach_code").Where("coach_code <> ''").Count(&data.UniqueCoachCodes)
	DB.Model(&models.SpringFailure{}).Distinct("type_of_failure").Where("type_of_failure <> ''").Count(&data.FailureTypes)
	DB.Model(&models.SpringFailure{}).Distinct("type_of_spring").Where("type_of_spring <> ''").Count(&data.SpringTypes)

	var err error
	if data.TopDefects, err = groupCounts("type_of_failure", 10); err != nil {
		c.JSON(http.StatusInternalServerError, Response{Code: 500, Message: fmt.Sprintf("query failed: %v", err)})
		return
	}

	// secondary aggregates degrade to empty series, but never silently
	counts := func(column string) []CountItem {
		items, err := groupCounts(column, 0)
		if err != nil {
			config.Log.Errorw("Dashboard group count failed", "column", column, "error", err)
		}
		return items
	}
	tab := func(rowColumn, colColumn string) []CrossTabItem {
		items, err := crossTab(rowColumn, colColumn)
		if err != nil {
			config.Log.Errorw("Dashboard cross tab failed", "row", rowColumn, "col", colColumn, "error", err)
		}
		return items
	}
	data.BySpringType = counts("type_of_spring")
	data.ByCoachType = counts("coach_type")
	data.ByColour = counts("colour_of_spring")
	data.BySuspension = counts("secondary_suspension_type")
	data.CoachTypeDefect = tab("coach_type", "type_of_failure")
	data.SpringTypeDefect = tab("type_of_spring", "type_of_failure")

	c.JSON(http.StatusOK, Response{Code: 200, Message: "ok", Data: data})
}
