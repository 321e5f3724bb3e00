package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/railcoach/SpringShop/views"
)

func SpringRouters(r *gin.Engine) {
	UserController := &views.UserController{}
	failureRouter := r.Group("/failure")
	{
		failureRouter.POST("/AddFailure", UserController.AddFailure)
		failureRouter.GET("/GetFailures", UserController.GetFailures)
		failureRouter.POST("/ChangeFailure", UserController.ChangeFailure)
		failureRouter.GET("/DelFailure", UserController.DelFailure)
		failureRouter.GET("/GetUniqueValues", UserController.GetUniqueValues)
		failureRouter.GET("/FailuresToCSV", UserController.FailuresToCSV)
	}
	statsRouter := r.Group("/stats")
	{
		statsRouter.GET("/Dashboard", UserController.DashboardStats)
	}
	masterRouter := r.Group("/master")
	{
		masterRouter.GET("/GetMasterTables", UserController.GetMasterTables)
		masterRouter.GET("/GetInspectors", UserController.GetInspectors)
	}
	reportRouter := r.Group("/report")
	{
		reportRouter.GET("/PrepareReport", UserController.PrepareReport)
		reportRouter.POST("/GenerateReport", UserController.GenerateReport)
		reportRouter.POST("/SaveReportDraft", UserController.SaveReportDraft)
		reportRouter.GET("/GetReportDraft", UserController.GetReportDraft)
	}
}
