package views

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/railcoach/SpringShop/config"
	"github.com/railcoach/SpringShop/models"
	"github.com/railcoach/SpringShop/services"
)

// GetMasterTables returns a fresh snapshot of every master table
func (uc *UserController) GetMasterTables(c *gin.Context) {
	md, err := services.LoadMasterTables(models.DB)
	if err != nil {
		config.Log.Errorw("Error loading master tables", "error", err)
		c.JSON(http.StatusInternalServerError, Response{Code: 500, Message: fmt.Sprintf("Error loading master tables: %v", err)})
		return
	}
	c.JSON(http.StatusOK, Response{Code: 200, Message: "ok", Data: gin.H{
		"spring_types": md.SpringTypes,
		"defect_types": md.DefectTypes,
		"visual_activities": md.VisualActivities,
		"mustdo_activities": md.MustDoActivities,
		"inspectors": md.Inspectors,
	}})
}

// GetInspectors lists active inspectors sorted by name
func (uc *UserController) GetInspectors(c *gin.Context) {
	var inspectors []models.Inspector
	err := models.DB.Where("is_active = ?", true).Order("name").Find(&inspectors).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Code: 500, Message: fmt.Sprintf("query failed: %v", err)})
		return
	}
	c.JSON(http.StatusOK, Response{Code: 200, Message: "ok", Data: inspectors})
}
