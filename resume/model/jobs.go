package model

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/Tpupu/resume-builder/resume/text"
)

const (
	// MaxJobs and MaxJobBullets keep a single-page layout plausible.
	MaxJobs       = 5
	MaxJobBullets = 6
)

// jobsSchema validates the jobs form field before it is trusted.
const jobsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "title": {"type": "string"},
      "company": {"type": "string"},
      "dates": {"type": "string"},
      "bullets": {"type": "array", "items": {"type": "string"}}
    },
    "additionalProperties": false
  }
}`

var jobsSchemaLoader = gojsonschema.NewStringLoader(jobsSchema)

// ParseJobs decodes the JSON-encoded jobs form field. Malformed JSON or a
// payload that fails schema validation yields an empty list rather than an
// error; the rest of the request still renders.
func ParseJobs(raw string) []Job {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	result, err := gojsonschema.Validate(jobsSchemaLoader, gojsonschema.NewStringLoader(raw))
	if err != nil || !result.Valid() {
		return nil
	}
	var jobs []Job
	if err := json.Unmarshal([]byte(raw), &jobs); err != nil {
		return nil
	}
	return normalizeJobs(jobs)
}

// JobsJSON re-encodes the job list for round-tripping through a hidden form
// field. An empty list encodes as an empty string.
func (r Resume) JobsJSON() string {
	if len(r.Jobs) == 0 {
		return ""
	}
	data, err := json.Marshal(r.Jobs)
	if err != nil {
		return ""
	}
	return string(data)
}

// normalizeJobs trims fields, splits and polishes bullet lines, and drops
// entries with no usable content. Caps: MaxJobs entries, MaxJobBullets
// bullets each.
func normalizeJobs(jobs []Job) []Job {
	var out []Job
	for _, j := range jobs {
		j.Title = strings.TrimSpace(j.Title)
		j.Company = strings.TrimSpace(j.Company)
		j.Dates = strings.TrimSpace(j.Dates)
		j.Bullets = normalizeBullets(j.Bullets)
		if j.Title == "" && j.Company == "" && len(j.Bullets) == 0 {
			continue
		}
		out = append(out, j)
		if len(out) == MaxJobs {
			break
		}
	}
	return out
}

func normalizeBullets(bullets []string) []string {
	var split []string
	for _, b := range bullets {
		raw := strings.NewReplacer("•", "\n", ";", "\n").Replace(b)
		for _, line := range strings.Split(raw, "\n") {
			if strings.TrimSpace(line) != "" {
				split = append(split, line)
			}
		}
	}
	polished := text.PolishLines(split)
	if len(polished) > MaxJobBullets {
		polished = polished[:MaxJobBullets]
	}
	return polished
}
