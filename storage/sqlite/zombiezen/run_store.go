package zombiezen

import (
	"context"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/idensity/stat"
	"github.com/revelaction/idensity/storage"
)

type RunStore struct {
	pool *sqlitex.Pool
}

var _ storage.RunRepository = (*RunStore)(nil)

func NewRunStore(pool *sqlitex.Pool) *RunStore {
	return &RunStore{pool: pool}
}

// Write stores the run and its kind table in a single savepoint.
func (s *RunStore) Write(run storage.Run) (id int64, err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer s.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn,
		`INSERT INTO runs (input, started_at, sentences, counted, skipped, p, m, c)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		&sqlitex.ExecOptions{
			Args: []interface{}{
				run.Input, run.StartedAt.UnixMilli(),
				run.Sentences, run.Counted, run.Skipped,
				run.Vector[0], run.Vector[1], run.Vector[2],
			},
		})
	if err != nil {
		return 0, err
	}

	id = conn.LastInsertRowID()

	for i, kc := range run.Kinds {
		err = sqlitex.Execute(conn,
			"INSERT INTO run_kinds (run_id, position, kind, count) VALUES (?, ?, ?, ?)",
			&sqlitex.ExecOptions{
				Args: []interface{}{id, i, kc.Kind, kc.Count},
			})
		if err != nil {
			return 0, err
		}
	}

	return id, nil
}

func (s *RunStore) List(inputMatch string) ([]storage.Run, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	query := "SELECT id, input, started_at, sentences, counted, skipped, p, m, c FROM runs"
	var args []interface{}
	if inputMatch != "" {
		query += " WHERE input LIKE ?"
		args = append(args, "%"+inputMatch+"%")
	}
	query += " ORDER BY started_at DESC, id DESC"

	var runs []storage.Run
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			runs = append(runs, storage.Run{
				Id:        stmt.ColumnInt64(0),
				Input:     stmt.ColumnText(1),
				StartedAt: time.UnixMilli(stmt.ColumnInt64(2)).UTC(),
				Sentences: stmt.ColumnInt(3),
				Counted:   stmt.ColumnInt(4),
				Skipped:   stmt.ColumnInt(5),
				Vector:    [3]int{stmt.ColumnInt(6), stmt.ColumnInt(7), stmt.ColumnInt(8)},
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	for i := range runs {
		kinds, err := readKinds(conn, runs[i].Id)
		if err != nil {
			return nil, err
		}
		runs[i].Kinds = kinds
	}

	return runs, nil
}

func readKinds(conn *sqlite.Conn, runID int64) ([]stat.KindCount, error) {
	var kinds []stat.KindCount
	err := sqlitex.Execute(conn, "SELECT kind, count FROM run_kinds WHERE run_id = ? ORDER BY position", &sqlitex.ExecOptions{
		Args: []interface{}{runID},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			kinds = append(kinds, stat.KindCount{Kind: stmt.ColumnText(0), Count: stmt.ColumnInt(1)})
			return nil
		},
	})
	return kinds, err
}
