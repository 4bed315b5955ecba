// Package store keeps the history of scheduling runs in a SQLite file,
// so a published plan can be looked up after the input changed.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/TudorHulban/dayscheduler"
	goerrors "github.com/TudorHulban/go-errors"
	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

const _driverName = "sqlite"

const _schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	created_at INTEGER NOT NULL,
	plan_file  TEXT NOT NULL,
	last_day   INTEGER NOT NULL,
	tasks      INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS assignments (
	run_id    TEXT NOT NULL REFERENCES runs(id),
	seq       INTEGER NOT NULL,
	resource  TEXT NOT NULL,
	task      TEXT NOT NULL,
	day       INTEGER NOT NULL,
	work_time REAL NOT NULL,

	PRIMARY KEY (run_id, seq)
);
`

type Store struct {
	db *sql.DB
}

type Run struct {
	ID        uuid.UUID
	CreatedAt time.Time
	PlanFile  string
	LastDay   int
	Tasks     int
}

type Assignment struct {
	Resource string
	Task     string
	Day      int
	WorkTime float64
}

// Open creates the database file and its tables when missing.
func Open(ctx context.Context, path string) (*Store, error) {
	db, errOpen := sql.Open(_driverName, path)
	if errOpen != nil {
		return nil,
			fmt.Errorf("open store %s: %w", path, errOpen)
	}

	if _, errSchema := db.ExecContext(ctx, _schema); errSchema != nil {
		_ = db.Close()

		return nil,
			fmt.Errorf("create schema in %s: %w", path, errSchema)
	}

	return &Store{
			db: db,
		},
		nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

type ParamsSaveRun struct {
	Ledger   *dayscheduler.Ledger
	PlanFile string

	CreatedAt time.Time // defaults to now
}

func (p *ParamsSaveRun) IsValid() error {
	if p.Ledger == nil {
		return goerrors.ErrValidation{
			Caller: "SaveRun",
			Issue: goerrors.ErrNilInput{
				InputName: "Ledger",
			},
		}
	}

	return nil
}

// SaveRun writes the ledger records in resource order, then commit order,
// and returns the identifier of the new run.
func (s *Store) SaveRun(ctx context.Context, params *ParamsSaveRun) (uuid.UUID, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return uuid.Nil,
			errValidation
	}

	createdAt := params.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	runID := uuid.New()

	tx, errBegin := s.db.BeginTx(ctx, nil)
	if errBegin != nil {
		return uuid.Nil,
			fmt.Errorf("begin save run: %w", errBegin)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, errInsert := tx.ExecContext(
		ctx,
		`INSERT INTO runs (id, created_at, plan_file, last_day, tasks) VALUES (?, ?, ?, ?, ?)`,

		runID.String(),
		createdAt.UnixMicro(),
		params.PlanFile,
		params.Ledger.LastDay(),
		len(params.Ledger.WorkTimePerTask()),
	); errInsert != nil {
		return uuid.Nil,
			fmt.Errorf("insert run: %w", errInsert)
	}

	statement, errPrepare := tx.PrepareContext(
		ctx,
		`INSERT INTO assignments (run_id, seq, resource, task, day, work_time) VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if errPrepare != nil {
		return uuid.Nil,
			fmt.Errorf("prepare assignments: %w", errPrepare)
	}
	defer statement.Close()

	var seq int

	for _, resourceName := range params.Ledger.ResourceNames() {
		for _, assignment := range params.Ledger.Assignments(resourceName) {
			seq++

			if _, errInsert := statement.ExecContext(
				ctx,

				runID.String(),
				seq,
				resourceName,
				assignment.Task.Name,
				assignment.Day,
				assignment.WorkTime,
			); errInsert != nil {
				return uuid.Nil,
					fmt.Errorf("insert assignment %d: %w", seq, errInsert)
			}
		}
	}

	if errCommit := tx.Commit(); errCommit != nil {
		return uuid.Nil,
			fmt.Errorf("commit run: %w", errCommit)
	}

	return runID,
		nil
}

// Runs lists the stored runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, errQuery := s.db.QueryContext(
		ctx,
		`SELECT id, created_at, plan_file, last_day, tasks FROM runs ORDER BY created_at DESC, rowid DESC`,
	)
	if errQuery != nil {
		return nil,
			fmt.Errorf("query runs: %w", errQuery)
	}
	defer rows.Close()

	var result []Run

	for rows.Next() {
		var (
			run       Run
			id        string
			createdAt int64
		)

		if errScan := rows.Scan(&id, &createdAt, &run.PlanFile, &run.LastDay, &run.Tasks); errScan != nil {
			return nil,
				fmt.Errorf("scan run: %w", errScan)
		}

		runID, errParse := uuid.Parse(id)
		if errParse != nil {
			return nil,
				fmt.Errorf("run id %q: %w", id, errParse)
		}

		run.ID = runID
		run.CreatedAt = time.UnixMicro(createdAt)

		result = append(result, run)
	}

	return result,
		rows.Err()
}

// Assignments returns the records of a run in the order they were saved.
// An unknown run has no records.
func (s *Store) Assignments(ctx context.Context, runID uuid.UUID) ([]Assignment, error) {
	rows, errQuery := s.db.QueryContext(
		ctx,
		`SELECT resource, task, day, work_time FROM assignments WHERE run_id = ? ORDER BY seq`,

		runID.String(),
	)
	if errQuery != nil {
		return nil,
			fmt.Errorf("query assignments of %s: %w", runID, errQuery)
	}
	defer rows.Close()

	var result []Assignment

	for rows.Next() {
		var assignment Assignment

		if errScan := rows.Scan(
			&assignment.Resource,
			&assignment.Task,
			&assignment.Day,
			&assignment.WorkTime,
		); errScan != nil {
			return nil,
				fmt.Errorf("scan assignment: %w", errScan)
		}

		result = append(result, assignment)
	}

	return result,
		rows.Err()
}
