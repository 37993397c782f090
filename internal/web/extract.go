package web

import (
	"context"
	"net/http"

	gmw "github.com/Laisky/gin-middlewares/v7"
	gutils "github.com/Laisky/go-utils/v6"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/Laisky/keyword-extractor/internal/keywords"
	"github.com/Laisky/keyword-extractor/library/log"
)

type extractRequest struct {
	Question string `json:"question" binding:"required"`
}

type extractResponse struct {
	Keywords []string `json:"keywords"`
}

// ExtractController serves the keyword extraction endpoint.
type ExtractController struct {
	service *keywords.Service
}

// NewExtractController creates a controller backed by svc.
func NewExtractController(svc *keywords.Service) *ExtractController {
	return &ExtractController{service: svc}
}

// Extract handles POST {"question": "..."} and answers {"keywords": [...]}.
// Preflight requests never reach here, allowCORS answers them.
func (c *ExtractController) Extract(ctx *gin.Context) {
	logger := logFromCtx(ctx)
	requestID := gutils.UUID7()

	if ctx.Request.Method != http.MethodPost {
		abortWithError(ctx, logger, requestID,
			keywords.NewError(keywords.KindMethodNotAllowed, "method "+ctx.Request.Method))
		return
	}

	var req extractRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortWithError(ctx, logger, requestID,
			keywords.WrapError(keywords.KindValidation, err, "bind extract request"))
		return
	}

	kws, err := c.service.Extract(ctx.Request.Context(), req.Question)
	if err != nil {
		abortWithError(ctx, logger, requestID, err)
		return
	}

	logger.Debug("keywords extracted",
		zap.String("request_id", requestID),
		zap.Strings("keywords", kws))
	ctx.JSON(http.StatusOK, extractResponse{Keywords: kws})
}

// logFromCtx returns the request-scoped logger installed by the gin logger middleware.
func logFromCtx(ctx context.Context) logSDK.Logger {
	if logger := gmw.GetLogger(ctx); logger != nil {
		return logger.Named("extract")
	}
	return log.Logger.Named("extract")
}
