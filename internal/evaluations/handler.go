package evaluations

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"ats-resume/internal/extract"
	"ats-resume/internal/shared/server/middleware"
	"ats-resume/internal/shared/server/respond"
	"ats-resume/resume/model"
)

const maxUploadSize = 10 << 20 // 10MB

var allowedMimeTypes = map[string]bool{
	extract.MimePDF:  true,
	extract.MimeDOCX: true,
	extract.MimeText: true,
}

// Handler wires HTTP handlers to the evaluation service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches evaluation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/evaluations", h.create)
}

func (h *Handler) create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "upload must be at most 10MB", gin.H{
				"limitBytes": tooLarge.Limit,
			})
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	mimeType := extract.NormalizeMimeType(fileHeader.Header.Get("Content-Type"), fileHeader.Filename, data)
	if !allowedMimeTypes[mimeType] {
		respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_file_type", "upload a PDF, DOCX or plain text file", gin.H{
			"mimeType": mimeType,
		})
		return
	}

	eval, err := h.Svc.Evaluate(c.Request.Context(), Input{
		JobDescription: c.PostForm("jobDescription"),
		FileName:       fileHeader.Filename,
		MimeType:       mimeType,
		Data:           data,
	})
	if eval.ID != "" {
		c.Set(middleware.EvaluationIDKey, eval.ID)
	}
	if err != nil {
		var parseErr *model.ParseError
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, model.ErrEmptyResult):
			respond.Error(c, http.StatusBadGateway, "empty_response", err.Error(), gin.H{
				"evaluationId": eval.ID,
				"rawResponse":  eval.RawResponse,
				"notices":      eval.Notices,
			})
		case errors.As(err, &parseErr):
			respond.Error(c, http.StatusBadGateway, "invalid_model_output", err.Error(), gin.H{
				"evaluationId": eval.ID,
				"rawResponse":  parseErr.Raw,
				"decodeError":  parseErr.Err.Error(),
				"notices":      eval.Notices,
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate resume", gin.H{
				"evaluationId": eval.ID,
			})
		}
		return
	}

	respond.JSON(c, http.StatusOK, eval)
}
