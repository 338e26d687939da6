package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/calorielens/backend/internal/service"
	"github.com/pageza/calorielens/backend/internal/types"
	"go.uber.org/zap"
)

// multipartOverhead leaves room for boundaries and part headers on top of
// the file itself.
const multipartOverhead = 64 << 10

type PredictHandler struct {
	predictions    service.IPredictionService
	maxUploadBytes int64
	logger         *zap.Logger
}

func NewPredictHandler(predictions service.IPredictionService, maxUploadBytes int64, logger *zap.Logger) *PredictHandler {
	return &PredictHandler{predictions: predictions, maxUploadBytes: maxUploadBytes, logger: logger}
}

func (h *PredictHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/predict", h.Predict)
}

// Predict accepts a multipart upload in the "file" field.
func (h *PredictHandler) Predict(c *gin.Context) {
	limit := h.maxUploadBytes + multipartOverhead
	if c.Request.ContentLength > limit {
		h.tooLarge(c)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	header, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.tooLarge(c)
			return
		}
		badRequest(c, "file is required")
		return
	}
	if header.Size > h.maxUploadBytes {
		h.tooLarge(c)
		return
	}

	f, err := header.Open()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	result, err := h.predictions.Predict(c.Request.Context(), data)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *PredictHandler) tooLarge(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, types.ErrorResponse{Detail: "Uploaded file is too large"})
}
