package zombiezen

import (
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool opens a connection pool on dbPath, one connection per CPU, in WAL
// mode.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	initString := fmt.Sprintf("file:%s", dbPath)

	pool, err := sqlitex.NewPool(initString, sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create zombiezen pool at %s: %w", dbPath, err)
	}
	return pool, nil
}

// OpenRunStore opens the database at dbPath, creates the run tables if
// missing and returns the pool and its store. The caller closes the pool.
func OpenRunStore(dbPath string) (*sqlitex.Pool, *RunStore, error) {
	pool, err := NewPool(dbPath)
	if err != nil {
		return nil, nil, err
	}

	if err := CreateSchemas(pool, RunsSchema); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return pool, NewRunStore(pool), nil
}
