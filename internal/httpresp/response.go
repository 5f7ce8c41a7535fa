package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body builds the uniform {success, message, ...} envelope every endpoint
// returns. Extra keys are merged in alongside the envelope fields.
func Body(message string, extra gin.H) gin.H {
	body := gin.H{
		"success": true,
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}
	return body
}

func OK(c *gin.Context, message string, extra gin.H) {
	c.JSON(http.StatusOK, Body(message, extra))
}

func Created(c *gin.Context, message string, extra gin.H) {
	c.JSON(http.StatusCreated, Body(message, extra))
}
