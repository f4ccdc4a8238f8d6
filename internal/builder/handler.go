// Package builder serves the intake forms, the HTML preview, and the PDF
// download.
package builder

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Tpupu/resume-builder/internal/shared/metrics"
	"github.com/Tpupu/resume-builder/internal/shared/server/respond"
	"github.com/Tpupu/resume-builder/internal/shared/util"
	"github.com/Tpupu/resume-builder/resume/model"
	"github.com/Tpupu/resume-builder/resume/pdf"
	"github.com/Tpupu/resume-builder/resume/render"
	"github.com/Tpupu/resume-builder/resume/text"
)

// Handler serves the form-facing routes. MaxPages caps the page limit a
// request may ask for, on top of the model's own clamp.
type Handler struct {
	MaxPages int
}

// NewHandler constructs a Handler.
func NewHandler(maxPages int) *Handler {
	return &Handler{MaxPages: maxPages}
}

// RegisterRoutes attaches the builder routes to the engine.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.index)
	r.GET("/templates", h.templates)
	r.GET("/guided", h.guided)
	r.POST("/build", h.build)
	r.GET("/swap", h.swap)
	r.POST("/polish", h.polish)
	r.POST("/download_pdf", h.downloadPDF)
	r.POST("/download-pdf", h.downloadPDF)
}

func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (h *Handler) templates(c *gin.Context) {
	c.HTML(http.StatusOK, "templates.html", nil)
}

func (h *Handler) guided(c *gin.Context) {
	c.HTML(http.StatusOK, "guided.html", nil)
}

// build renders the full preview page for the chosen template.
func (h *Handler) build(c *gin.Context) {
	res := resumeFrom(c.PostForm)
	c.Set("templateChoice", res.Template)
	metrics.IncPreviewBuilt()
	c.HTML(http.StatusOK, render.ResultPage(res.Template), res)
}

// swap re-renders just the preview fragment from query parameters, so the
// page can switch templates without re-submitting the form.
func (h *Handler) swap(c *gin.Context) {
	res := resumeFrom(c.Query)
	c.Set("templateChoice", res.Template)
	c.HTML(http.StatusOK, "preview", res)
}

type polishRequest struct {
	Text string `json:"text"`
}

// polish applies the text cleanup used before rendering to caller-supplied
// text. Lines are polished independently so bullet lists keep their shape.
func (h *Handler) polish(c *gin.Context) {
	var req polishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "body must be JSON with a text field", nil)
		return
	}
	metrics.IncPolish()

	if strings.Contains(req.Text, "\n") {
		lines := text.PolishLines(strings.Split(req.Text, "\n"))
		respond.OK(c, gin.H{"polished": strings.Join(lines, "\n")})
		return
	}
	respond.OK(c, gin.H{"polished": text.Polish(req.Text)})
}

// downloadPDF renders the resume to PDF and streams it as an attachment.
func (h *Handler) downloadPDF(c *gin.Context) {
	res := resumeFrom(c.PostForm)
	c.Set("templateChoice", res.Template)
	if h.MaxPages > 0 && res.PageLimit > h.MaxPages {
		res.PageLimit = h.MaxPages
	}

	start := metrics.NowMillis()
	out, truncated, err := pdf.Render(res)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "render_failed", "failed to render PDF", nil)
		return
	}
	metrics.IncPDFRender()
	if truncated {
		metrics.IncPDFTruncated()
	}
	metrics.ObservePDFRenderDurationMs(metrics.NowMillis() - start)

	c.Header("Content-Disposition", `attachment; filename="`+downloadFileName(res.FullName)+`"`)
	c.Data(http.StatusOK, "application/pdf", out)
}

// resumeFrom builds a normalized resume from form or query values. The
// preview round-trips its derived fields (summary, skills_line, wins_joined)
// through hidden inputs, so both first-pass and round-trip names are read.
func resumeFrom(value func(string) string) model.Resume {
	pageLimit, _ := strconv.Atoi(value("page_limit"))

	skills := value("skills")
	if skills == "" {
		skills = value("skills_line")
	}
	wins := value("wins")
	if wins == "" {
		wins = strings.Join(text.SplitJoinedWins(value("wins_joined")), ", ")
	}

	res := model.Resume{
		FullName:    value("full_name"),
		Email:       value("email"),
		Phone:       value("phone"),
		TargetTitle: value("target_title"),
		YearsExp:    value("years_exp"),
		Strengths:   value("strengths"),
		Wins:        wins,
		Summary:     value("summary"),
		Skills:      skills,
		Template:    value("template_choice"),
		Font:        value("font_choice"),
		PageLimit:   pageLimit,
		Jobs:        model.ParseJobs(value("jobs")),
	}
	res.Normalize()
	return res
}

func downloadFileName(fullName string) string {
	base, err := util.SanitizeFileName(fullName)
	if err != nil {
		return "resume_preview.pdf"
	}
	return strings.ReplaceAll(base, " ", "_") + "_Resume.pdf"
}
