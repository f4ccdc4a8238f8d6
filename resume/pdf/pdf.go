// Package pdf renders a normalized resume onto a fixed-page canvas with
// manual word-wrap and page-break logic.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/Tpupu/resume-builder/resume/model"
)

const (
	inch = 72.0

	sideMargin      = 0.9 * inch
	topMargin       = 0.9 * inch
	bottomThreshold = 1.0 * inch

	nameSize    = 20
	headingSize = 13
	bodySize    = 11

	bodyLeading    = 14
	headingLeading = 12
	bulletIndent   = 12

	maxHighlights = 10
)

// Renderer flows resume sections onto letter-size pages. The vertical cursor
// advances per line; a new page starts when the cursor crosses the bottom
// threshold, but only while the page limit allows it. Once the limit is hit,
// remaining whole sections are dropped and a paragraph already flowing may
// spill past the threshold instead of starting a page it is not allowed.
type Renderer struct {
	doc        *fpdf.Fpdf
	tr         func(string) string
	font       string
	left       float64
	right      float64
	pageWidth  float64
	pageHeight float64
	y          float64
	pageLimit  int
	truncated  bool
}

// Render produces the PDF bytes for a normalized resume. The bool reports
// whether sections were dropped at the page limit.
func Render(r model.Resume) ([]byte, bool, error) {
	ren := newRenderer(r.Font, r.PageLimit)
	ren.header(r)
	ren.accentRule(r.Template)

	ren.section("Professional Summary", func() {
		ren.paragraph(r.SummaryLine, bodySize)
	})
	ren.section("Skills", func() {
		ren.paragraph(r.SkillsLine, bodySize)
	})

	if len(r.WinsList) > 0 {
		ren.section("Highlights", func() {
			ren.bullets(r.WinsList, maxHighlights)
		})
	}

	if len(r.Jobs) > 0 {
		ren.section("Experience", func() {
			for _, job := range r.Jobs {
				if ren.truncated {
					return
				}
				ren.jobEntry(job)
			}
		})
	}

	out, err := ren.output()
	return out, ren.truncated, err
}

func newRenderer(font string, pageLimit int) *Renderer {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	w, h := doc.GetPageSize()
	return &Renderer{
		doc:        doc,
		tr:         doc.UnicodeTranslatorFromDescriptor(""),
		font:       fontFamily(font),
		left:       sideMargin,
		right:      w - sideMargin,
		pageWidth:  w,
		pageHeight: h,
		y:          topMargin,
		pageLimit:  model.ClampPageLimit(pageLimit),
	}
}

func fontFamily(font string) string {
	switch model.PickFont(font) {
	case model.FontTimes:
		return "Times"
	case model.FontCourier:
		return "Courier"
	default:
		return "Helvetica"
	}
}

func (r *Renderer) header(res model.Resume) {
	r.doc.SetTextColor(18, 23, 33)
	r.doc.SetFont(r.font, "B", nameSize)
	r.doc.Text(r.left, r.y, r.tr(res.FullName))
	r.y += 18

	r.doc.SetFont(r.font, "", bodySize)
	r.doc.Text(r.left, r.y, r.tr(res.ContactLine()))
	r.y += 18
}

func (r *Renderer) accentRule(template string) {
	r.doc.SetLineWidth(2)
	if model.PickTemplate(template) == model.TemplateModern {
		r.doc.SetDrawColor(37, 99, 235)
	} else {
		r.doc.SetDrawColor(18, 23, 33)
	}
	r.doc.Line(r.left, r.y, r.right, r.y)
	r.y += 22
}

// section draws a heading and runs the body callback, then adds trailing
// space. A section whose heading no longer fits on the last allowed page is
// dropped entirely.
func (r *Renderer) section(title string, body func()) {
	if r.truncated {
		return
	}
	r.ensureSpace()
	if r.truncated {
		return
	}
	r.doc.SetFont(r.font, "B", headingSize)
	r.doc.SetTextColor(18, 23, 33)
	r.doc.Text(r.left, r.y, r.tr(title))
	r.y += headingLeading
	body()
	r.y += 6
}

// paragraph greedy-wraps text against the usable width and emits one line
// per leading step.
func (r *Renderer) paragraph(text string, size float64) {
	r.doc.SetFont(r.font, "", size)
	r.doc.SetTextColor(18, 23, 33)
	lines := wrapLines(r.measure, text, r.right-r.left)
	for _, line := range lines {
		r.emitLine(r.left, line, size)
	}
}

// bullets draws a bulleted list with hanging indent wrap.
func (r *Renderer) bullets(items []string, max int) {
	r.doc.SetFont(r.font, "", bodySize)
	r.doc.SetTextColor(18, 23, 33)
	indent := r.left + bulletIndent
	width := r.right - indent
	for i, item := range items {
		if i == max {
			break
		}
		r.ensureSpace()
		if r.truncated {
			return
		}
		r.doc.Text(r.left, r.y, r.tr("•"))
		for _, line := range wrapLines(r.measure, strings.TrimSpace(item), width) {
			r.emitLine(indent, line, bodySize)
		}
		r.y += 2
	}
}

func (r *Renderer) jobEntry(job model.Job) {
	r.ensureSpace()
	if r.truncated {
		return
	}
	r.doc.SetFont(r.font, "B", bodySize)
	r.doc.SetTextColor(18, 23, 33)
	r.doc.Text(r.left, r.y, r.tr(jobHeading(job)))
	r.y += bodyLeading

	r.doc.SetFont(r.font, "", bodySize)
	r.bullets(job.Bullets, model.MaxJobBullets)
	r.y += 4
}

func jobHeading(job model.Job) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{job.Title, job.Company, job.Dates} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "  |  ")
}

// emitLine writes one wrapped line and advances the cursor, breaking the
// page mid-paragraph only while the page limit allows. At the limit the line
// is drawn anyway; spilling past the threshold is the permitted overflow.
func (r *Renderer) emitLine(x float64, line string, size float64) {
	if r.pastThreshold() && r.doc.PageNo() < r.pageLimit {
		r.newPage(size)
	}
	r.doc.Text(x, r.y, r.tr(line))
	r.y += bodyLeading
}

// ensureSpace starts a new page before a heading or bullet that would land
// below the threshold. With no pages left it marks the renderer truncated.
func (r *Renderer) ensureSpace() {
	if !r.pastThreshold() {
		return
	}
	if r.doc.PageNo() < r.pageLimit {
		r.newPage(bodySize)
		return
	}
	r.truncated = true
}

func (r *Renderer) pastThreshold() bool {
	return r.y > r.pageHeight-bottomThreshold
}

func (r *Renderer) newPage(size float64) {
	r.doc.AddPage()
	r.y = topMargin
	r.doc.SetFont(r.font, "", size)
}

// measure returns the rendered width of s. Core fonts are single-byte, so
// the string is translated to cp1252 before measuring.
func (r *Renderer) measure(s string) float64 {
	return r.doc.GetStringWidth(r.tr(s))
}

func (r *Renderer) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// wrapLines greedy-wraps text: words accumulate while the measured line
// width stays inside maxWidth. A single word wider than maxWidth gets its
// own line rather than being split.
func wrapLines(measure func(string) float64, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := ""
	for _, w := range words {
		candidate := w
		if line != "" {
			candidate = line + " " + w
		}
		if measure(candidate) <= maxWidth || line == "" {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
