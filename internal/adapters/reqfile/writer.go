package reqfile

import (
	"bytes"
	"sort"
	"strings"

	"github.com/reqwell/reqcheck/internal/core/domain"
)

// Writer renders a manifest in canonical form: requirement and directive
// order is preserved, spacing and separators are normalized.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format renders the manifest. Output always ends with a newline; runs of
// blank lines collapse to one.
func (w *Writer) Format(m *domain.Manifest) []byte {
	type renderedLine struct {
		number int
		text   string
		blank  bool
	}

	lines := make([]renderedLine, 0, m.Len()+len(m.Directives()))

	for _, r := range m.Requirements() {
		lines = append(lines, renderedLine{number: r.Line, text: formatRequirement(r)})
	}
	for _, d := range m.Directives() {
		lines = append(lines, renderedLine{
			number: d.Line,
			text:   d.String(),
			blank:  d.Kind == domain.DirectiveBlank,
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].number < lines[j].number
	})

	var buf bytes.Buffer
	prevBlank := true // suppress leading blanks
	for _, line := range lines {
		if line.blank {
			if prevBlank {
				continue
			}
			buf.WriteByte('\n')
			prevBlank = true
			continue
		}
		buf.WriteString(line.text)
		buf.WriteByte('\n')
		prevBlank = false
	}

	return buf.Bytes()
}

// formatRequirement renders one requirement line canonically:
// name[extras]constraints ; marker  # comment.
func formatRequirement(r domain.Requirement) string {
	var b strings.Builder
	b.WriteString(r.Name.String())

	if len(r.Extras) > 0 {
		b.WriteByte('[')
		b.WriteString(strings.Join(r.Extras, ","))
		b.WriteByte(']')
	}

	switch {
	case r.URL != "":
		b.WriteString(" @ ")
		b.WriteString(r.URL)
	case len(r.Specifiers) > 0:
		b.WriteString(r.Specifiers.String())
	}

	if r.Marker != "" {
		b.WriteString(" ; ")
		b.WriteString(r.Marker)
	}

	if r.Comment != "" {
		b.WriteString("  # ")
		b.WriteString(r.Comment)
	}

	return b.String()
}
