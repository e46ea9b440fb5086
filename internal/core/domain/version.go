package domain

import (
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Version is a parsed version string following the standard Python
// packaging grammar: [N!]N(.N)*[{a|b|rc}N][.postN][.devN][+local].
// The zero value is not a valid version; use ParseVersion.
type Version struct {
	// Epoch is the version epoch (the N in "N!"), usually 0.
	Epoch int

	// Release holds the dotted release segments (e.g. [2, 1, 0] for "2.1.0").
	Release []int

	// Pre is the pre-release phase and number, nil if absent.
	Pre *PreRelease

	// Post is the post-release number, nil if absent.
	Post *int

	// Dev is the development release number, nil if absent.
	Dev *int

	// Local is the local version label after "+", empty if absent.
	Local string

	original string
}

// PreRelease identifies a pre-release segment. Phase is one of "a", "b",
// "rc" after normalization (alpha->a, beta->b, c/pre/preview->rc).
type PreRelease struct {
	Phase  string
	Number int
}

// versionPattern implements the permissive form of the version grammar,
// accepting the spelling variants the canonical form normalizes away.
var versionPattern = regexp.MustCompile(`(?i)^v?` +
	`(?:(\d+)!)?` + // epoch
	`(\d+(?:\.\d+)*)` + // release
	`(?:[-_.]?(a|b|c|rc|alpha|beta|pre|preview)[-_.]?(\d+)?)?` + // pre
	`(?:(?:-(\d+))|(?:[-_.]?(post|rev|r)[-_.]?(\d+)?))?` + // post
	`(?:[-_.]?(dev)[-_.]?(\d+)?)?` + // dev
	`(?:\+([a-z0-9]+(?:[-_.][a-z0-9]+)*))?$`) // local

// ParseVersion parses a version string. It accepts the permissive spelling
// variants (leading "v", "alpha" for "a", "-1" for ".post1") and stores the
// normalized representation.
func ParseVersion(s string) (*Version, error) {
	trimmed := strings.TrimSpace(s)
	m := versionPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return nil, zerr.With(ErrInvalidVersion, "version", s)
	}

	v := &Version{original: trimmed}

	if m[1] != "" {
		epoch, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, zerr.With(ErrInvalidVersion, "version", s)
		}
		v.Epoch = epoch
	}

	for seg := range strings.SplitSeq(m[2], ".") {
		n, err := strconv.Atoi(seg)
		if err != nil {
			return nil, zerr.With(ErrInvalidVersion, "version", s)
		}
		v.Release = append(v.Release, n)
	}

	if m[3] != "" {
		v.Pre = &PreRelease{
			Phase:  normalizePrePhase(m[3]),
			Number: atoiDefault(m[4]),
		}
	}

	// Post-releases come in two spellings: "-N" (implicit) or "postN".
	switch {
	case m[5] != "":
		n := atoiDefault(m[5])
		v.Post = &n
	case m[6] != "":
		n := atoiDefault(m[7])
		v.Post = &n
	}

	if m[8] != "" {
		n := atoiDefault(m[9])
		v.Dev = &n
	}

	v.Local = strings.ToLower(m[10])

	return v, nil
}

// MustParseVersion parses a version string and panics on failure.
// Intended for tests and compile-time constants.
func MustParseVersion(s string) *Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

func normalizePrePhase(phase string) string {
	switch strings.ToLower(phase) {
	case "a", "alpha":
		return "a"
	case "b", "beta":
		return "b"
	default: // c, rc, pre, preview
		return "rc"
	}
}

func atoiDefault(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// String returns the normalized form of the version.
func (v *Version) String() string {
	var b strings.Builder

	if v.Epoch != 0 {
		b.WriteString(strconv.Itoa(v.Epoch))
		b.WriteByte('!')
	}

	for i, seg := range v.Release {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(seg))
	}

	if v.Pre != nil {
		b.WriteString(v.Pre.Phase)
		b.WriteString(strconv.Itoa(v.Pre.Number))
	}
	if v.Post != nil {
		b.WriteString(".post")
		b.WriteString(strconv.Itoa(*v.Post))
	}
	if v.Dev != nil {
		b.WriteString(".dev")
		b.WriteString(strconv.Itoa(*v.Dev))
	}
	if v.Local != "" {
		b.WriteByte('+')
		b.WriteString(v.Local)
	}

	return b.String()
}

// Original returns the version text as written in the manifest.
func (v *Version) Original() string {
	return v.original
}

// IsPreRelease reports whether the version is a pre-release or dev release.
func (v *Version) IsPreRelease() bool {
	return v.Pre != nil || v.Dev != nil
}

// Sentinels for the ordering keys below. A missing pre-release segment ranks
// above any present one (1.0 > 1.0rc1), a missing post-release ranks below
// (1.0 < 1.0.post0), and a missing dev segment ranks above (1.0 > 1.0.dev9).
const (
	rankAbsentHigh = 1 << 30
	rankAbsentLow  = -1 << 30
)

// Compare returns -1, 0, or 1 ordering v against other per the standard
// version ordering: dev < pre < release < post, with the local label as the
// final tie-breaker.
func (v *Version) Compare(other *Version) int {
	if c := cmpInt(v.Epoch, other.Epoch); c != 0 {
		return c
	}
	if c := compareRelease(v.Release, other.Release); c != 0 {
		return c
	}

	vPhase, vNum := preKey(v)
	oPhase, oNum := preKey(other)
	if c := strings.Compare(vPhase, oPhase); c != 0 {
		return c
	}
	if c := cmpInt(vNum, oNum); c != 0 {
		return c
	}

	if c := cmpInt(postKey(v), postKey(other)); c != 0 {
		return c
	}
	if c := cmpInt(devKey(v), devKey(other)); c != 0 {
		return c
	}

	return compareLocal(v.Local, other.Local)
}

// Equal reports whether two versions are equal under Compare.
func (v *Version) Equal(other *Version) bool {
	return v.Compare(other) == 0
}

// compareRelease compares release tuples, treating missing trailing
// segments as zero so that 1.0 == 1.0.0.
func compareRelease(a, b []int) int {
	n := max(len(a), len(b))
	for i := range n {
		var av, bv int
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if c := cmpInt(av, bv); c != 0 {
			return c
		}
	}
	return 0
}

// preKey collapses the pre/dev interaction into a sortable (phase, number)
// pair. A bare dev release (1.0.dev1) sorts before any pre-release of the
// same release tuple; a final release sorts after all of them.
func preKey(v *Version) (string, int) {
	if v.Pre != nil {
		return v.Pre.Phase, v.Pre.Number
	}
	if v.Post == nil && v.Dev != nil {
		return "", rankAbsentLow
	}
	return "zz", rankAbsentHigh
}

func postKey(v *Version) int {
	if v.Post != nil {
		return *v.Post
	}
	return rankAbsentLow
}

func devKey(v *Version) int {
	if v.Dev != nil {
		return *v.Dev
	}
	return rankAbsentHigh
}

// compareLocal orders local version labels segment by segment: numeric
// segments compare numerically and rank above alphanumeric ones, and a
// present label ranks above an absent one.
func compareLocal(a, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return -1
	}
	if b == "" {
		return 1
	}

	as := splitLocal(a)
	bs := splitLocal(b)
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aNum := localSegment(as[i])
		bn, bNum := localSegment(bs[i])
		switch {
		case aNum && bNum:
			if c := cmpInt(an, bn); c != 0 {
				return c
			}
		case aNum != bNum:
			// Numeric segments rank above alphanumeric ones.
			if aNum {
				return 1
			}
			return -1
		default:
			if c := strings.Compare(as[i], bs[i]); c != 0 {
				return c
			}
		}
	}
	return cmpInt(len(as), len(bs))
}

func splitLocal(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '-' || r == '_'
	})
}

func localSegment(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
