// Package storage keeps rendered report snapshots on the local filesystem so
// a calculated result can be archived and fetched again later.
package storage

import "io"

// ArchiveStore persists immutable report blobs under hierarchical keys
// ("reports/<form>/<timestamp>.html").
type ArchiveStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	List(prefix string) ([]string, error) // keys under prefix, oldest first
}
