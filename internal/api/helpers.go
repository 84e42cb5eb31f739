package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sacco-backend/internal/ledger"
)

const dateLayout = "2006-01-02"

// StoreMiddleware injects the ledger store into the request context so
// handlers stay free of package-level state
func StoreMiddleware(store *ledger.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("store", store)
		c.Next()
	}
}

func getStore(c *gin.Context) *ledger.Store {
	return c.MustGet("store").(*ledger.Store)
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   message,
	})
}

// respondError maps the ledger error taxonomy onto HTTP status codes
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch err.(type) {
	case *ledger.ValidationError:
		status = http.StatusBadRequest
	case *ledger.NotFoundError:
		status = http.StatusNotFound
	case *ledger.ConflictError:
		status = http.StatusConflict
	}

	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

// parseDate accepts plain dates and full timestamps
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// parseDatePtr converts an optional date string for partial updates. A nil
// input stays nil.
func parseDatePtr(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := parseDate(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
