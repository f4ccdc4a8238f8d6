// Package model defines the transient resume record built from each request.
package model

import (
	"strings"

	"github.com/Tpupu/resume-builder/resume/text"
)

// Template and font identifiers accepted from the form. Anything else is
// coerced to the default.
const (
	TemplateClassic = "classic"
	TemplateModern  = "modern"
	TemplateCompact = "compact"

	FontHelvetica = "helvetica"
	FontTimes     = "times"
	FontCourier   = "courier"

	MaxPageLimit = 3
)

// Resume is the per-request record. Raw fields come straight from the form;
// the derived fields are filled by Normalize and are what the renderers read.
type Resume struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`

	TargetTitle string `json:"targetTitle"`
	YearsExp    string `json:"yearsExp"`
	Strengths   string `json:"strengths"`
	Wins        string `json:"wins"`
	Summary     string `json:"summary"`
	Skills      string `json:"skills"`

	Template  string `json:"template"`
	Font      string `json:"font"`
	PageLimit int    `json:"pageLimit"`

	Jobs []Job `json:"jobs"`

	// Derived.
	SummaryLine string   `json:"summaryLine"`
	SkillsLine  string   `json:"skillsLine"`
	WinsList    []string `json:"winsList"`
	WinsJoined  string   `json:"winsJoined"`
}

// Job is a single work-history entry. Bullets carries omitempty so a job
// without bullets round-trips through the hidden form field as valid JSON.
type Job struct {
	Title   string   `json:"title"`
	Company string   `json:"company"`
	Dates   string   `json:"dates"`
	Bullets []string `json:"bullets,omitempty"`
}

// PickTemplate coerces a template choice to a known identifier.
func PickTemplate(choice string) string {
	switch strings.ToLower(strings.TrimSpace(choice)) {
	case TemplateModern:
		return TemplateModern
	case TemplateCompact:
		return TemplateCompact
	default:
		return TemplateClassic
	}
}

// PickFont coerces a font choice to a known identifier.
func PickFont(choice string) string {
	switch strings.ToLower(strings.TrimSpace(choice)) {
	case FontTimes:
		return FontTimes
	case FontCourier:
		return FontCourier
	default:
		return FontHelvetica
	}
}

// ClampPageLimit keeps the requested page count inside 1..MaxPageLimit.
func ClampPageLimit(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxPageLimit {
		return MaxPageLimit
	}
	return n
}

// Normalize trims the raw fields, coerces choices, and fills the derived
// fields. A missing summary is synthesized and a missing skills line falls
// back to common skills for the target title, so both are always non-empty.
func (r *Resume) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.TargetTitle = strings.TrimSpace(r.TargetTitle)
	r.YearsExp = strings.TrimSpace(r.YearsExp)

	r.Template = PickTemplate(r.Template)
	r.Font = PickFont(r.Font)
	r.PageLimit = ClampPageLimit(r.PageLimit)

	r.SummaryLine = text.Polish(r.Summary)
	if r.SummaryLine == "" {
		r.SummaryLine = text.GenerateSummary(r.TargetTitle, r.YearsExp, r.Strengths, r.Wins)
	}

	r.SkillsLine = text.CleanCommaList(r.Skills)
	if r.SkillsLine == "" {
		r.SkillsLine = text.FallbackSkills(r.TargetTitle, r.Strengths)
	}

	r.WinsList = text.SplitWins(r.Wins)
	r.WinsJoined = text.JoinWins(r.WinsList)

	r.Jobs = normalizeJobs(r.Jobs)
}

// ContactLine renders the "email | phone" line under the name.
func (r Resume) ContactLine() string {
	if r.Phone != "" {
		return r.Email + " | " + r.Phone
	}
	return r.Email
}
