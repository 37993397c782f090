package web

import (
	"net/http"

	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/Laisky/keyword-extractor/internal/keywords"
)

const (
	msgMissingQuestion  = keywords.MissingQuestionMessage
	msgMethodNotAllowed = "Method Not Allowed"
	msgInternalError    = "Internal Server Error"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps an error to its HTTP status and the message shown to callers.
// Anything that is not a caller mistake becomes an opaque 500.
func statusFor(err error) (int, string) {
	switch keywords.KindOf(err) {
	case keywords.KindValidation:
		return http.StatusBadRequest, msgMissingQuestion
	case keywords.KindMethodNotAllowed:
		return http.StatusMethodNotAllowed, msgMethodNotAllowed
	default:
		return http.StatusInternalServerError, msgInternalError
	}
}

// abortWithError logs err and writes the mapped JSON error response.
func abortWithError(ctx *gin.Context, logger logSDK.Logger, requestID string, err error) {
	status, msg := statusFor(err)
	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("kind", string(keywords.KindOf(err))),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		logger.Error("extract keywords", fields...)
	} else {
		logger.Warn("reject extract request", fields...)
	}

	ctx.AbortWithStatusJSON(status, errorResponse{Error: msg})
}
