// Package fs implements the filesystem-facing adapters: include resolution
// across requirement files and content fingerprinting.
package fs

import (
	"path/filepath"

	"github.com/reqwell/reqcheck/internal/core/domain"
	"github.com/reqwell/reqcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.IncludeResolver = (*Resolver)(nil)

// Resolver follows -r and -c directives to build the include graph rooted
// at one manifest. Include paths are resolved relative to the file that
// declares them, matching installer behavior.
type Resolver struct {
	loader ports.ManifestLoader
}

// NewResolver creates a new Resolver.
func NewResolver(loader ports.ManifestLoader) *Resolver {
	return &Resolver{loader: loader}
}

// Resolve parses the root manifest and everything reachable from it. An
// unreadable root is a hard error; unreadable includes and include cycles
// become problems on the resolution, so one bad include does not hide the
// rest of the tree. The returned graph is validated and walkable.
func (r *Resolver) Resolve(root string) (*domain.Resolution, error) {
	res := &domain.Resolution{Graph: domain.NewGraph()}

	inProgress := make(map[domain.InternedString]bool)
	if err := r.load(root, res, inProgress); err != nil {
		return nil, err
	}

	if err := res.Graph.Validate(); err != nil {
		return nil, zerr.Wrap(err, "failed to validate include graph")
	}

	return res, nil
}

func (r *Resolver) load(path string, res *domain.Resolution, inProgress map[domain.InternedString]bool) error {
	result, err := r.loader.Load(path)
	if err != nil {
		return zerr.With(err, "path", path)
	}
	res.Problems = append(res.Problems, result.Problems...)

	m := result.Manifest
	if err := res.Graph.AddManifest(m); err != nil {
		return err
	}
	inProgress[m.Path] = true
	defer delete(inProgress, m.Path)

	dir := filepath.Dir(path)
	for _, inc := range m.Includes() {
		target := inc.Value
		if !filepath.IsAbs(target) {
			target = filepath.Join(dir, target)
		}
		targetKey := domain.NewInternedString(target)

		if inProgress[targetKey] {
			res.Problems = append(res.Problems, domain.Finding{
				Rule:    domain.RuleParseError,
				File:    path,
				Line:    inc.Line,
				Message: "include cycle through " + target,
			})
			continue
		}

		if res.Graph.Manifest(targetKey) == nil {
			if err := r.load(target, res, inProgress); err != nil {
				res.Problems = append(res.Problems, domain.Finding{
					Rule:    domain.RuleParseError,
					File:    path,
					Line:    inc.Line,
					Message: "included file " + target + " cannot be read",
				})
				continue
			}
		}

		res.Graph.AddInclude(m.Path, targetKey)
	}

	return nil
}
