// Package reqfile parses pip-style requirements manifests into the domain
// model and renders them back canonically.
package reqfile

import (
	"os"
	"strings"

	"github.com/reqwell/reqcheck/internal/core/domain"
	"github.com/reqwell/reqcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestLoader = (*Parser)(nil)

// Parser parses requirements files. It is stateless and safe for
// concurrent use.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Load reads and parses the file at path.
func (p *Parser) Load(path string) (*domain.ParseResult, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read requirements file")
	}
	return p.Parse(data, path), nil
}

// Parse parses manifest source. Lines the parser cannot make sense of are
// reported as problems on the result rather than aborting the parse, so a
// single bad line does not hide the rest of the file.
func (p *Parser) Parse(src []byte, path string) *domain.ParseResult {
	result := &domain.ParseResult{
		Manifest: domain.NewManifest(path),
	}

	for line := range logicalLines(string(src)) {
		p.parseLine(result, path, line)
	}

	return result
}

// logicalLine is one parse unit: physical lines joined over trailing
// backslashes, tagged with the number of the first physical line.
type logicalLine struct {
	text   string
	number int
}

// logicalLines splits source into logical lines, joining continuations
// before any other interpretation, the way installers do.
func logicalLines(src string) func(yield func(logicalLine) bool) {
	return func(yield func(logicalLine) bool) {
		physical := strings.Split(src, "\n")

		for i := 0; i < len(physical); i++ {
			start := i
			text := strings.TrimSuffix(physical[i], "\r")

			for strings.HasSuffix(text, "\\") && i+1 < len(physical) {
				i++
				next := strings.TrimSuffix(physical[i], "\r")
				text = strings.TrimSuffix(text, "\\") + strings.TrimSpace(next)
			}

			if !yield(logicalLine{text: text, number: start + 1}) {
				return
			}
		}
	}
}

func (p *Parser) parseLine(result *domain.ParseResult, path string, line logicalLine) {
	m := result.Manifest
	trimmed := strings.TrimSpace(line.text)

	switch {
	case trimmed == "":
		m.AddDirective(domain.Directive{Kind: domain.DirectiveBlank, Line: line.number})
		return
	case strings.HasPrefix(trimmed, "#"):
		m.AddDirective(domain.Directive{
			Kind:  domain.DirectiveComment,
			Value: strings.TrimSpace(strings.TrimPrefix(trimmed, "#")),
			Line:  line.number,
		})
		return
	case strings.HasPrefix(trimmed, "-"):
		p.parseDirective(result, path, trimmed, line.number)
		return
	}

	text, comment := splitComment(trimmed)
	req, problem := parseRequirement(text, path, line.number)
	if problem != nil {
		result.Problems = append(result.Problems, *problem)
		return
	}
	req.Comment = comment
	req.Line = line.number

	if err := m.Add(req); err != nil {
		result.Problems = append(result.Problems, domain.Finding{
			Rule:    domain.RuleDuplicate,
			File:    path,
			Line:    line.number,
			Message: "requirement " + req.Name.String() + " is already declared",
		})
	}
}

// parseDirective handles option lines. Include and constraint directives
// get structured values; everything else is preserved verbatim.
func (p *Parser) parseDirective(result *domain.ParseResult, path, text string, number int) {
	m := result.Manifest
	stripped, _ := splitComment(text)
	fields := strings.Fields(stripped)

	kind := domain.DirectiveOption
	var flagValue string

	flag := fields[0]
	if eq := strings.IndexByte(flag, '='); eq >= 0 {
		flagValue = flag[eq+1:]
		flag = flag[:eq]
	}

	switch flag {
	case "-r", "--requirement":
		kind = domain.DirectiveInclude
	case "-c", "--constraint":
		kind = domain.DirectiveConstraint
	}

	if kind == domain.DirectiveOption {
		m.AddDirective(domain.Directive{Kind: kind, Value: stripped, Line: number})
		return
	}

	if flagValue == "" {
		if len(fields) < 2 {
			result.Problems = append(result.Problems, domain.Finding{
				Rule:    domain.RuleParseError,
				File:    path,
				Line:    number,
				Message: flag + " requires a file argument",
			})
			return
		}
		flagValue = fields[1]
	}

	m.AddDirective(domain.Directive{Kind: kind, Value: flagValue, Line: number})
}

// splitComment separates a trailing comment from line content. A "#" only
// starts a comment at the beginning of the line or after whitespace, so
// URL fragments survive.
func splitComment(line string) (content, comment string) {
	for i := 0; i < len(line); i++ {
		if line[i] != '#' {
			continue
		}
		if i == 0 || line[i-1] == ' ' || line[i-1] == '\t' {
			return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
		}
	}
	return strings.TrimSpace(line), ""
}
