package api

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the versioned API surface. The router must already
// carry StoreMiddleware so handlers can reach the ledger.
func RegisterRoutes(router gin.IRouter) {
	v1 := router.Group("/api/v1")
	{
		v1.GET("/members", GetMembers)
		v1.POST("/members", CreateMember)
		v1.GET("/members/search", SearchMembers)
		v1.GET("/members/:id", GetMember)
		v1.PUT("/members/:id", UpdateMember)
		v1.DELETE("/members/:id", DeleteMember)
		v1.GET("/members/:id/loans", GetMemberLoans)
		v1.GET("/members/:id/stats", GetMemberStats)

		v1.GET("/loans", GetLoans)
		v1.POST("/loans", CreateLoan)
		v1.GET("/loans/summary", GetLoanSummary)
		v1.GET("/loans/overdue", GetOverdueLoans)
		v1.GET("/loans/:id", GetLoan)
		v1.PUT("/loans/:id", UpdateLoan)
		v1.DELETE("/loans/:id", DeleteLoan)
		v1.GET("/loans/:id/payments", GetLoanPayments)

		v1.GET("/payments", GetPayments)
		v1.POST("/payments", RecordPayment)

		v1.GET("/dashboard/analytics", GetDashboardAnalytics)
		v1.GET("/dashboard/recent-loans", GetRecentLoans)

		v1.GET("/activity-logs", GetActivityLogs)
		v1.GET("/settings", GetSettings)
		v1.PUT("/settings", UpdateSettings)
		v1.GET("/system/export", ExportData)
		v1.POST("/system/import", ImportData)
		v1.POST("/system/reset", ResetData)
	}
}
