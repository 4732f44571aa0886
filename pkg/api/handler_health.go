package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TheSmartAz/instant-coffee-sub001/pkg/database"
)

func (s *Server) handleHealth(c *gin.Context) {
	status, err := database.Health(c.Request.Context(), s.deps.DB.DB())
	code := http.StatusOK
	if err != nil {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":   status.Status,
		"database": status,
	})
}
