package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/questboard/internal/quest/store"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// querier is the subset of sqlx shared by *sqlx.DB and *sqlx.Tx, so every
// repository runs unchanged inside or outside a transaction.
type querier interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var (
	_ querier = (*sqlx.DB)(nil)
	_ querier = (*sqlx.Tx)(nil)
)

type Store struct {
	db   *sqlx.DB
	path string
}

// NewStore opens the database file at path, or a private in-memory database
// for ":memory:". Write transactions take the lock up front
// (BEGIN IMMEDIATE) so two committers serialise on BEGIN instead of failing
// half way through.
func NewStore(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn(path))
	if err != nil {
		return nil, err
	}

	// Every connection to ":memory:" is its own database.
	if isMemory(path) {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, mapErr(err)
	}

	return &Store{db: db, path: path}, nil
}

func dsn(path string) string {
	pragmas := []string{
		"_pragma=foreign_keys(1)",
		"_pragma=busy_timeout(5000)",
		"_txlock=immediate",
		"_time_format=sqlite",
	}
	if !isMemory(path) {
		pragmas = append(pragmas, "_pragma=journal_mode(WAL)")
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s%s", path, sep, strings.Join(pragmas, "&"))
}

func isMemory(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return mapErr(s.db.PingContext(ctx))
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, mapErr(err)
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return mapErr(tx.Commit())
}

func (s *Store) Users() store.Users               { return &usersRepo{q: s.db} }
func (s *Store) Completions() store.Completions   { return &completionsRepo{q: s.db} }
func (s *Store) Achievements() store.Achievements { return &achievementsRepo{q: s.db} }
func (s *Store) Progress() store.Progress         { return &progressRepo{q: s.db} }
