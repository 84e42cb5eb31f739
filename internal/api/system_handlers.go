package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"sacco-backend/internal/models"
)

// GetActivityLogs returns the audit trail, newest first. An optional limit
// parameter caps the number of entries.
func GetActivityLogs(c *gin.Context) {
	limit := 0
	if value := c.Query("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			respondBadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}
	respondOK(c, getStore(c).ActivityLogs(limit))
}

// GetSettings returns the cooperative settings record
func GetSettings(c *gin.Context) {
	respondOK(c, getStore(c).Settings())
}

// UpdateSettings applies a partial settings update
func UpdateSettings(c *gin.Context) {
	var update models.SettingsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	settings, err := getStore(c).UpdateSettings(update)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, settings)
}

// ExportData returns a full-state backup stamped with the export time
func ExportData(c *gin.Context) {
	respondOK(c, getStore(c).ExportSnapshot())
}

// ImportData replaces ledger state from a backup
func ImportData(c *gin.Context) {
	var snapshot models.Snapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	if err := getStore(c).ImportSnapshot(&snapshot); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"imported": true})
}

// ResetData restores the seed data set, discarding all current state
func ResetData(c *gin.Context) {
	getStore(c).ResetData()
	respondOK(c, gin.H{"reset": true})
}
