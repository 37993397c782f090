package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// allowCORS lets any origin call the API and answers preflight requests directly.
func allowCORS(ctx *gin.Context) {
	ctx.Header("Access-Control-Allow-Origin", "*")
	ctx.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
	ctx.Header("Access-Control-Allow-Headers", "Content-Type")

	if ctx.Request.Method == http.MethodOptions {
		ctx.AbortWithStatus(http.StatusOK)
		return
	}

	ctx.Next()
}
