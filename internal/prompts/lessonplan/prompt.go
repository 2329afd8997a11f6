// Package lessonplan builds the prompt and response contract for lesson
// plan generation.
package lessonplan

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"
)

//go:embed system.tmpl
var systemPromptTmpl string

//go:embed user.tmpl
var userPromptTmpl string

var (
	systemTemplate = template.Must(template.New("system").Parse(systemPromptTmpl))
	userTemplate   = template.Must(template.New("user").Parse(userPromptTmpl))
)

// Params are the inputs the prompt is a pure function of.
type Params struct {
	Competency          string
	NumberOfDays        int
	Language            string
	PDFText             string
	IntegrateObjectives bool
}

// HasCompetency reports whether the user supplied a competency.
func (p Params) HasCompetency() bool {
	return strings.TrimSpace(p.Competency) != ""
}

// HasPDF reports whether reference material accompanies the request.
func (p Params) HasPDF() bool {
	return p.PDFText != ""
}

// SystemPrompt builds the system instruction for the given inputs. The
// branches cover: deriving a competency from reference material when none
// was supplied, grounding in the reference text when one was, and the
// SOLO/HOTS versus plain objectives framing.
func SystemPrompt(p Params) string {
	var buf bytes.Buffer
	if err := systemTemplate.Execute(&buf, p); err != nil {
		return systemPromptTmpl
	}
	return buf.String()
}

// UserPrompt builds the user prompt. Reference material is embedded
// verbatim and never truncated; any size policy belongs to the caller or
// the model endpoint.
func UserPrompt(p Params) string {
	var buf bytes.Buffer
	if err := userTemplate.Execute(&buf, p); err != nil {
		return userPromptTmpl
	}
	return buf.String()
}
