package ports

// Hasher computes content fingerprints for manifest files.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint returns a stable hash of the file's content.
	Fingerprint(path string) (string, error)
}
