// Package text normalizes free-form career input into the structured
// fragments the renderers consume: deduplicated comma lists, split-out
// highlight bullets, and a synthesized summary sentence.
package text

import "strings"

const (
	// MaxWins caps the number of highlight bullets kept from a single field.
	MaxWins = 8

	summaryCloser = "Focused on reliable execution, clear communication, and strong results."
)

// CleanCommaList splits a comma-separated string, trims each part, drops
// empties, and removes duplicates case-insensitively while preserving
// first-seen order and original casing.
func CleanCommaList(s string) string {
	if s == "" {
		return ""
	}
	seen := make(map[string]struct{})
	var out []string
	for _, part := range strings.Split(s, ",") {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}
		key := strings.ToLower(p)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return strings.Join(out, ", ")
}

// SplitWins breaks a delimited achievements field into individual bullets.
// Bullet characters and semicolons are treated as commas. The list is capped
// at MaxWins to keep the rendered section readable.
func SplitWins(wins string) []string {
	if wins == "" {
		return nil
	}
	raw := strings.NewReplacer("•", ",", ";", ",").Replace(wins)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}
		out = append(out, p)
		if len(out) == MaxWins {
			break
		}
	}
	return out
}

// JoinWins produces the round-trip form of a wins list carried through a
// hidden form field between the preview and the PDF download.
func JoinWins(wins []string) string {
	return strings.Join(wins, "||")
}

// SplitJoinedWins reverses JoinWins, dropping blank segments.
func SplitJoinedWins(joined string) []string {
	if joined == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(joined, "||") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		out = append(out, strings.TrimSpace(part))
	}
	return out
}

// GenerateSummary synthesizes a professional summary from the intake fields.
// It always returns a non-empty sentence, even for all-empty input.
func GenerateSummary(targetTitle, yearsExp, strengths, wins string) string {
	title := strings.TrimSpace(targetTitle)
	if title == "" {
		title = "Professional"
	}
	yrs := strings.TrimSpace(yearsExp)
	strg := CleanCommaList(strengths)
	winsList := SplitWins(wins)

	var pieces []string
	if yrs != "" {
		pieces = append(pieces, title+" with "+yrs+" years of experience.")
	} else {
		pieces = append(pieces, title+" with proven experience.")
	}
	if strg != "" {
		pieces = append(pieces, "Strengths include "+strg+".")
	}
	if len(winsList) > 0 {
		if len(winsList) == 1 {
			pieces = append(pieces, "Known for "+winsList[0]+".")
		} else {
			pieces = append(pieces, "Known for "+winsList[0]+" and "+winsList[1]+".")
		}
	}
	pieces = append(pieces, summaryCloser)
	return strings.TrimSpace(strings.Join(pieces, " "))
}

// FallbackSkills builds a skills line when the user left the field blank.
// User strengths come first, then a common-skill bucket picked by keywords in
// the target title, merged through CleanCommaList so duplicates collapse.
func FallbackSkills(targetTitle, strengths string) string {
	base := CleanCommaList(strengths)

	var common []string
	t := strings.ToLower(targetTitle)
	switch {
	case strings.Contains(t, "manager") || strings.Contains(t, "area") || strings.Contains(t, "supervisor"):
		common = []string{
			"Team Leadership",
			"Coaching & Development",
			"Process Improvement",
			"Performance Tracking",
			"Safety & Compliance",
			"Problem Solving",
			"Shift Planning",
			"Communication",
		}
	case strings.Contains(t, "front desk") || strings.Contains(t, "hotel") || strings.Contains(t, "guest"):
		common = []string{
			"Customer Service",
			"Front Desk Operations",
			"Conflict Resolution",
			"Scheduling",
			"Cash Handling",
			"Communication",
			"Attention to Detail",
		}
	case strings.Contains(t, "it") || strings.Contains(t, "support") || strings.Contains(t, "help desk"):
		common = []string{
			"Troubleshooting",
			"Customer Support",
			"Ticketing",
			"Documentation",
			"Windows",
			"Networking Basics",
			"Communication",
		}
	default:
		common = []string{
			"Communication",
			"Problem Solving",
			"Time Management",
			"Teamwork",
			"Adaptability",
		}
	}

	joined := strings.Join(common, ", ")
	if base != "" {
		return CleanCommaList(base + ", " + joined)
	}
	return CleanCommaList(joined)
}
