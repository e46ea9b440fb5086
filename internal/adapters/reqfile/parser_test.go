package reqfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reqwell/reqcheck/internal/adapters/reqfile"
	"github.com/reqwell/reqcheck/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_Requirements(t *testing.T) {
	src := `# production dependencies
elasticsearch==2.1.0
cairosvg >= 1.0.22
Django[argon2,bcrypt]~=4.2  # web framework
requests>=2.28,<3
typing-extensions ; python_version < "3.10"
pip @ https://github.com/pypa/pip/archive/22.0.2.zip
`

	p := reqfile.NewParser()
	result := p.Parse([]byte(src), "requirements.txt")
	require.Empty(t, result.Problems)

	m := result.Manifest
	reqs := m.Requirements()
	require.Len(t, reqs, 6)

	assert.Equal(t, "elasticsearch", reqs[0].Name.String())
	assert.Equal(t, "==2.1.0", reqs[0].Constraint())
	assert.Equal(t, 2, reqs[0].Line)

	assert.Equal(t, ">=1.0.22", reqs[1].Constraint())

	assert.Equal(t, "Django", reqs[2].Name.String())
	assert.Equal(t, "django", reqs[2].Canonical.String())
	assert.Equal(t, []string{"argon2", "bcrypt"}, reqs[2].Extras)
	assert.Equal(t, "~=4.2", reqs[2].Constraint())
	assert.Equal(t, "web framework", reqs[2].Comment)

	assert.Equal(t, ">=2.28,<3", reqs[3].Constraint())

	assert.Empty(t, reqs[4].Constraint())
	assert.Equal(t, `python_version < "3.10"`, reqs[4].Marker)

	assert.Equal(t, "@ https://github.com/pypa/pip/archive/22.0.2.zip", reqs[5].Constraint())
}

func TestParser_Parse_SpacedExtrasBracket(t *testing.T) {
	src := "requests [security]>=2.20\ncelery [redis, msgpack] ~=5.3\n"

	p := reqfile.NewParser()
	result := p.Parse([]byte(src), "requirements.txt")
	require.Empty(t, result.Problems)

	reqs := result.Manifest.Requirements()
	require.Len(t, reqs, 2)

	assert.Equal(t, "requests", reqs[0].Name.String())
	assert.Equal(t, []string{"security"}, reqs[0].Extras)
	assert.Equal(t, ">=2.20", reqs[0].Constraint())

	assert.Equal(t, "celery", reqs[1].Name.String())
	assert.Equal(t, []string{"redis", "msgpack"}, reqs[1].Extras)
	assert.Equal(t, "~=5.3", reqs[1].Constraint())
}

func TestParser_Parse_Directives(t *testing.T) {
	src := `-r base.txt
-c constraints.txt
--requirement=extra.txt
--index-url https://pypi.example.org/simple
`

	p := reqfile.NewParser()
	result := p.Parse([]byte(src), "requirements.txt")
	require.Empty(t, result.Problems)

	directives := result.Manifest.Directives()
	require.Len(t, directives, 4)

	assert.Equal(t, domain.DirectiveInclude, directives[0].Kind)
	assert.Equal(t, "base.txt", directives[0].Value)
	assert.Equal(t, domain.DirectiveConstraint, directives[1].Kind)
	assert.Equal(t, "constraints.txt", directives[1].Value)
	assert.Equal(t, domain.DirectiveInclude, directives[2].Kind)
	assert.Equal(t, "extra.txt", directives[2].Value)
	assert.Equal(t, domain.DirectiveOption, directives[3].Kind)
	assert.Equal(t, "--index-url https://pypi.example.org/simple", directives[3].Value)

	includes := result.Manifest.Includes()
	require.Len(t, includes, 3)
}

func TestParser_Parse_Continuations(t *testing.T) {
	src := "requests>=2.28,\\\n    <3\nflask==2.3.2\n"

	p := reqfile.NewParser()
	result := p.Parse([]byte(src), "requirements.txt")
	require.Empty(t, result.Problems)

	reqs := result.Manifest.Requirements()
	require.Len(t, reqs, 2)
	assert.Equal(t, ">=2.28,<3", reqs[0].Constraint())
	assert.Equal(t, 1, reqs[0].Line)
	assert.Equal(t, 3, reqs[1].Line)
}

func TestParser_Parse_Problems(t *testing.T) {
	tests := []struct {
		name string
		src  string
		rule string
	}{
		{
			name: "duplicate requirement",
			src:  "flask==2.0\nFlask>=1.0\n",
			rule: domain.RuleDuplicate,
		},
		{
			name: "invalid name",
			src:  ".leading-dot==1.0\n",
			rule: domain.RuleParseError,
		},
		{
			name: "operator without version",
			src:  "flask==\n",
			rule: domain.RuleParseError,
		},
		{
			name: "wildcard on ordered operator",
			src:  "flask~=1.*\n",
			rule: domain.RuleParseError,
		},
		{
			name: "include without argument",
			src:  "-r\n",
			rule: domain.RuleParseError,
		},
		{
			name: "empty marker",
			src:  "flask ;\n",
			rule: domain.RuleParseError,
		},
		{
			name: "direct reference with constraint",
			src:  "pip ==22.0 @ https://example.org/pip.zip\n",
			rule: domain.RuleParseError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := reqfile.NewParser()
			result := p.Parse([]byte(tt.src), "requirements.txt")
			require.Len(t, result.Problems, 1)
			assert.Equal(t, tt.rule, result.Problems[0].Rule)
			assert.Equal(t, "requirements.txt", result.Problems[0].File)
		})
	}
}

func TestParser_Parse_CommentHandling(t *testing.T) {
	src := "requests==2.28.1  # pinned for CVE-2023-32681\nfoo==1.0#notacomment\n"

	p := reqfile.NewParser()
	result := p.Parse([]byte(src), "requirements.txt")
	require.Empty(t, result.Problems)

	reqs := result.Manifest.Requirements()
	require.Len(t, reqs, 2)
	assert.Equal(t, "pinned for CVE-2023-32681", reqs[0].Comment)

	// A "#" without preceding whitespace is part of the constraint text, not
	// a comment; the invalid-version rule reports it.
	assert.Empty(t, reqs[1].Comment)
	assert.Equal(t, "==1.0#notacomment", reqs[1].Constraint())
	require.Len(t, reqs[1].Specifiers, 1)
	assert.Nil(t, reqs[1].Specifiers[0].Version)
}

func TestParser_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirements.txt")
	require.NoError(t, os.WriteFile(path, []byte("flask==2.3.2\n"), 0o644))

	p := reqfile.NewParser()
	result, err := p.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, result.Manifest.Path.String())
	assert.Equal(t, 1, result.Manifest.Len())

	_, err = p.Load(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
}
