package drafts

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Tpupu/resume-builder/internal/shared/metrics"
	"github.com/Tpupu/resume-builder/internal/shared/server/respond"
	"github.com/Tpupu/resume-builder/resume/model"
	"github.com/Tpupu/resume-builder/resume/pdf"
)

// Handler wires HTTP handlers to the drafts repo.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches draft routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/drafts", h.create)
	rg.GET("/drafts", h.list)
	rg.GET("/drafts/:id", h.get)
	rg.GET("/drafts/:id/pdf", h.downloadPDF)
}

type draftResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Template  string    `json:"template"`
	CreatedAt time.Time `json:"createdAt"`
}

func toDraftResponse(d Draft) draftResponse {
	return draftResponse{
		ID:        d.ID,
		FullName:  d.FullName,
		Email:     d.Email,
		Template:  d.Template,
		CreatedAt: d.CreatedAt,
	}
}

func (h *Handler) create(c *gin.Context) {
	var res model.Resume
	if err := c.ShouldBindJSON(&res); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume payload", nil)
		return
	}
	res.Normalize()
	if res.FullName == "" || res.Email == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "full name and email are required", nil)
		return
	}

	d := Draft{
		ID:        uuid.NewString(),
		FullName:  res.FullName,
		Email:     res.Email,
		Template:  res.Template,
		Resume:    res,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Repo.Create(c.Request.Context(), d); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save draft", nil)
		return
	}
	c.Set("draftId", d.ID)

	respond.Created(c, toDraftResponse(d))
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}

	items, err := h.Repo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list drafts", nil)
		return
	}
	out := make([]draftResponse, 0, len(items))
	for _, d := range items {
		out = append(out, toDraftResponse(d))
	}
	respond.OK(c, gin.H{"drafts": out})
}

func (h *Handler) get(c *gin.Context) {
	d, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "draft not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load draft", nil)
		return
	}
	respond.OK(c, d)
}

func (h *Handler) downloadPDF(c *gin.Context) {
	d, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "draft not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load draft", nil)
		return
	}

	start := metrics.NowMillis()
	out, truncated, err := pdf.Render(d.Resume)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "render_failed", "failed to render PDF", nil)
		return
	}
	metrics.IncPDFRender()
	if truncated {
		metrics.IncPDFTruncated()
	}
	metrics.ObservePDFRenderDurationMs(metrics.NowMillis() - start)

	c.Header("Content-Disposition", `attachment; filename="resume_preview.pdf"`)
	c.Data(http.StatusOK, "application/pdf", out)
}
