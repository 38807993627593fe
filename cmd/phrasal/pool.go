package main

import (
	"github.com/revelaction/phrasal/storage/sqlite/zombiezen"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Pool opens the SQLite pool of a run once and closes it at exit.
type Pool struct {
	p    *sqlitex.Pool
	path string
}

func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	if p.p != nil && p.path == path {
		return p.p, nil
	}
	if err := p.Close(); err != nil {
		return nil, err
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}
	p.p, p.path = pool, path
	return p.p, nil
}

func (p *Pool) Close() error {
	if p.p == nil {
		return nil
	}
	err := p.p.Close()
	p.p = nil
	return err
}
