// Package importer extracts text from an uploaded resume PDF and guesses
// intake fields to prefill the form.
package importer

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnreadablePDF signals a payload that could not be parsed as a PDF.
var ErrUnreadablePDF = errors.New("unreadable pdf")

// Prefill carries the guessed intake fields.
type Prefill struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Summary  string `json:"summary"`
}

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)
)

// ExtractText pulls plain text from an in-memory PDF.
func ExtractText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrUnreadablePDF
	}
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", ErrUnreadablePDF
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", ErrUnreadablePDF
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", ErrUnreadablePDF
	}
	return buf.String(), nil
}

// PrefillFromText guesses contact fields from extracted text. The first
// non-contact line becomes the name guess; the first few remaining lines seed
// the summary field.
func PrefillFromText(text string) Prefill {
	p := Prefill{
		Email: emailPattern.FindString(text),
		Phone: strings.TrimSpace(phonePattern.FindString(text)),
	}

	var summaryLines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if p.FullName == "" && looksLikeName(line) {
			p.FullName = line
			continue
		}
		if strings.Contains(line, p.Email) && p.Email != "" {
			continue
		}
		summaryLines = append(summaryLines, line)
		if len(summaryLines) == 3 {
			break
		}
	}
	p.Summary = strings.Join(summaryLines, " ")
	return p
}

// looksLikeName accepts short lines without digits or contact markers.
func looksLikeName(line string) bool {
	if len(line) > 60 {
		return false
	}
	if strings.ContainsAny(line, "@0123456789") {
		return false
	}
	words := strings.Fields(line)
	return len(words) >= 1 && len(words) <= 4
}
