package storage

import (
	"time"

	"github.com/revelaction/idensity/stat"
)

// Run is the persisted summary of one analyze invocation.
type Run struct {
	Id        int64
	Input     string
	StartedAt time.Time
	Sentences int
	Counted   int
	Skipped   int
	Vector    [3]int
	Kinds     []stat.KindCount
}

// RunReader defines read operations for run storage
type RunReader interface {
	// List returns runs, most recent first. If inputMatch is not empty,
	// only runs whose input contains the string are returned.
	List(inputMatch string) ([]Run, error)
}

// RunWriter defines write operations for run storage
type RunWriter interface {
	// Write persists a run and returns its id
	Write(run Run) (int64, error)
}

// RunRepository combines read and write operations
type RunRepository interface {
	RunReader
	RunWriter
}

// InputLister discovers analysable input files.
type InputLister interface {
	List() ([]string, error)
}
