package generatedresumes

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"ats-resume/internal/shared/server/respond"
	"ats-resume/internal/shared/telemetry"
)

// Handler serves generated resumes.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generated resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/generated-resumes/:id", h.get)
	rg.GET("/generated-resumes/:id/download", h.download)
}

// DownloadPath is the route that serves a generated resume's PDF.
func DownloadPath(generatedResumeID string) string {
	return "/api/v1/generated-resumes/" + generatedResumeID + "/download"
}

func (h *Handler) get(c *gin.Context) {
	resume, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeLookupError(c, err)
		return
	}
	respond.OK(c, resume)
}

func (h *Handler) download(c *gin.Context) {
	resume, reader, err := h.Svc.Open(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeLookupError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Type", resume.MimeType)
	c.Header("Content-Disposition", "attachment; filename=\""+resume.FileName+"\"")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		telemetry.Error("generated_resume.download_failed", map[string]any{
			"generated_resume_id": resume.ID,
			"error":               err,
		})
	}
}

func (h *Handler) writeLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "generated resume id is required", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "generated resume not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load generated resume", nil)
	}
}
