package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Graph is the include graph spanned by -r and -c directives across
// requirement files.
type Graph struct {
	manifests map[InternedString]*Manifest
	includes  map[InternedString][]InternedString
	added     []InternedString
	walkOrder []InternedString
}

// NewGraph creates a new empty include graph.
func NewGraph() *Graph {
	return &Graph{
		manifests: make(map[InternedString]*Manifest),
		includes:  make(map[InternedString][]InternedString),
	}
}

// AddManifest adds a parsed manifest to the graph.
// It returns an error if the same path was already added.
func (g *Graph) AddManifest(m *Manifest) error {
	if _, exists := g.manifests[m.Path]; exists {
		return zerr.With(ErrManifestAlreadyAdded, "path", m.Path.String())
	}
	g.manifests[m.Path] = m
	g.added = append(g.added, m.Path)
	return nil
}

// AddInclude records that the manifest at from includes the one at to.
func (g *Graph) AddInclude(from, to InternedString) {
	g.includes[from] = append(g.includes[from], to)
}

// Includes returns the include targets of the manifest at path, in
// declaration order.
func (g *Graph) Includes(path InternedString) []InternedString {
	return g.includes[path]
}

// Manifest returns the manifest for the given path, nil if absent.
func (g *Graph) Manifest(path InternedString) *Manifest {
	return g.manifests[path]
}

// Len returns the number of manifests in the graph.
func (g *Graph) Len() int {
	return len(g.manifests)
}

// Validate checks the include graph for missing files and cycles using a
// depth-first topological sort, and populates the walk order on success.
func (g *Graph) Validate() error {
	g.walkOrder = make([]InternedString, 0, len(g.manifests))
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		if _, exists := g.manifests[u]; !exists {
			return zerr.With(ErrMissingInclude, "path", u.String())
		}

		for _, inc := range g.includes[u] {
			if visited[inc] == 1 {
				return g.buildCycleError(path, inc)
			}
			if visited[inc] == 0 {
				if err := visit(inc); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.walkOrder = append(g.walkOrder, u)
		return nil
	}

	// Insertion order keeps the walk deterministic.
	for _, p := range g.added {
		if visited[p] == 0 {
			if err := visit(p); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error carrying the cycle path metadata.
func (g *Graph) buildCycleError(path []InternedString, repeated InternedString) error {
	cyclePath := ""
	startIdx := 0
	for i, node := range path {
		if node == repeated {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += repeated.String()
	return zerr.With(ErrIncludeCycle, "cycle", cyclePath)
}

// Walk returns an iterator over manifests in dependency-first order:
// included files are yielded before the files that include them.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[*Manifest] {
	return func(yield func(*Manifest) bool) {
		for _, path := range g.walkOrder {
			if !yield(g.manifests[path]) {
				return
			}
		}
	}
}

// Resolution is the outcome of resolving a root manifest: the validated
// include graph plus every problem found while parsing the files in it.
type Resolution struct {
	Graph    *Graph
	Problems []Finding
}

// Flatten merges every manifest in walk order into a single name->constraint
// mapping. Later (including) files win over earlier (included) ones, which
// mirrors how installers override constraints.
func (g *Graph) Flatten() map[string]string {
	out := make(map[string]string)
	for m := range g.Walk() {
		for name, constraint := range m.Mapping() {
			out[name] = constraint
		}
	}
	return out
}
