package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetDashboardAnalytics returns the aggregate dashboard figures
func GetDashboardAnalytics(c *gin.Context) {
	respondOK(c, getStore(c).DashboardAnalytics())
}

// GetRecentLoans returns the most recently created loans, newest first
func GetRecentLoans(c *gin.Context) {
	limit := 5
	if value := c.Query("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			respondBadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}
	respondOK(c, getStore(c).RecentLoans(limit))
}
