package main

import (
	"fmt"
	"os"

	"github.com/revelaction/phrasal/storage"
	"github.com/revelaction/phrasal/storage/filesystem"
	"github.com/revelaction/phrasal/storage/sqlite/zombiezen"
)

// NewDocRepository returns a filesystem store for a directory and a SQLite
// store for a file.
func NewDocRepository(p *Pool, path string) (storage.DocRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}
