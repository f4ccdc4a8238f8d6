package importer

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tpupu/resume-builder/internal/shared/metrics"
	"github.com/Tpupu/resume-builder/internal/shared/server/respond"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// Handler serves the resume import endpoint.
type Handler struct{}

// RegisterRoutes attaches the import route.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/import", h.importResume)
}

func (h *Handler) importResume(c *gin.Context) {
	file, _, err := c.Request.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read upload", nil)
		return
	}
	if len(data) > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "too_large", "resume file exceeds 10 MiB", nil)
		return
	}

	text, err := ExtractText(data)
	if err != nil {
		respond.Error(c, http.StatusUnprocessableEntity, "unreadable_pdf", "could not read PDF text", nil)
		return
	}
	metrics.IncImport()

	respond.OK(c, PrefillFromText(text))
}
