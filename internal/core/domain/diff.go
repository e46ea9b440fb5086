package domain

import "slices"

// Change records a requirement whose constraint differs between two
// manifests.
type Change struct {
	Name string
	Old  string
	New  string
}

// Changes is the result of diffing two manifests.
type Changes struct {
	// Added holds requirements present only in the new manifest.
	Added []Requirement

	// Removed holds requirements present only in the old manifest.
	Removed []Requirement

	// Changed holds requirements whose constraints differ.
	Changed []Change
}

// Empty reports whether the diff found no differences.
func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Changed) == 0
}

// Diff compares two manifests by canonical name. Added and Removed follow
// the declaration order of their source manifest; Changed is sorted by name.
func Diff(oldManifest, newManifest *Manifest) Changes {
	var changes Changes

	for _, r := range newManifest.Requirements() {
		prev, ok := oldManifest.Lookup(r.Canonical.String())
		if !ok {
			changes.Added = append(changes.Added, r)
			continue
		}
		if prev.Constraint() != r.Constraint() {
			changes.Changed = append(changes.Changed, Change{
				Name: r.Canonical.String(),
				Old:  prev.Constraint(),
				New:  r.Constraint(),
			})
		}
	}

	for _, r := range oldManifest.Requirements() {
		if _, ok := newManifest.Lookup(r.Canonical.String()); !ok {
			changes.Removed = append(changes.Removed, r)
		}
	}

	slices.SortFunc(changes.Changed, func(a, b Change) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})

	return changes
}
