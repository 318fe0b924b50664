package handlers

import (
	"net/http"

	"fixly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to
// the global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// serviceError writes the HTTP shape of a coded service error. Anything
// uncoded is an internal failure and stays generic.
func serviceError(c *gin.Context, err error) {
	if se, ok := utils.AsServiceError(err); ok {
		c.JSON(utils.HTTPStatus(se.Code), gin.H{"message": se.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}
