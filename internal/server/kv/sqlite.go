package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mlebedev/authgate/internal/common"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on a single SQLite database. All buckets
// share one table keyed by (bucket, k); BLOB keys give the byte ordering
// prefix scans rely on.
type SQLiteStore struct {
	db *sql.DB

	// Every write path holds writeMu, so the read inside Update cannot
	// interleave with any other write and the transaction never sees
	// SQLITE_BUSY from a sibling bucket.
	writeMu sync.Mutex
}

// NewSQLiteStore opens (creating if needed) the database at path and
// bootstraps the schema. Parent directories are created if needed.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL keeps readers from blocking the single writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			bucket TEXT NOT NULL,
			k BLOB NOT NULL,
			v BLOB NOT NULL,
			PRIMARY KEY (bucket, k)
		)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Bucket(name string) Bucket {
	return &sqliteBucket{store: s, name: name}
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type sqliteBucket struct {
	store *SQLiteStore
	name  string
}

func (b *sqliteBucket) Get(ctx context.Context, key []byte) ([]byte, error) {
	var value []byte
	err := b.store.db.QueryRowContext(ctx,
		`SELECT v FROM kv WHERE bucket = ? AND k = ?`, b.name, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorStoreIO, err)
	}
	return value, nil
}

func (b *sqliteBucket) Put(ctx context.Context, key, value []byte) error {
	b.store.writeMu.Lock()
	defer b.store.writeMu.Unlock()

	_, err := b.store.db.ExecContext(ctx,
		`INSERT INTO kv (bucket, k, v) VALUES (?, ?, ?)
		 ON CONFLICT (bucket, k) DO UPDATE SET v = excluded.v`,
		b.name, key, value)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStoreIO, err)
	}
	return nil
}

func (b *sqliteBucket) PutIfAbsent(ctx context.Context, key, value []byte) error {
	b.store.writeMu.Lock()
	defer b.store.writeMu.Unlock()

	res, err := b.store.db.ExecContext(ctx,
		`INSERT INTO kv (bucket, k, v) VALUES (?, ?, ?)
		 ON CONFLICT (bucket, k) DO NOTHING`,
		b.name, key, value)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStoreIO, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStoreIO, err)
	}
	if affected == 0 {
		return common.ErrorConflict
	}
	return nil
}

func (b *sqliteBucket) Delete(ctx context.Context, key []byte) error {
	b.store.writeMu.Lock()
	defer b.store.writeMu.Unlock()

	_, err := b.store.db.ExecContext(ctx,
		`DELETE FROM kv WHERE bucket = ? AND k = ?`, b.name, key)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStoreIO, err)
	}
	return nil
}

func (b *sqliteBucket) Update(ctx context.Context, key []byte, fn UpdateFunc) error {
	b.store.writeMu.Lock()
	defer b.store.writeMu.Unlock()

	tx, err := b.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStoreIO, err)
	}
	defer tx.Rollback()

	var current []byte
	found := true
	err = tx.QueryRowContext(ctx,
		`SELECT v FROM kv WHERE bucket = ? AND k = ?`, b.name, key).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		found = false
		current = nil
	} else if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStoreIO, err)
	}

	next, err := fn(current, found)
	if err != nil {
		return err
	}

	if next == nil {
		_, err = tx.ExecContext(ctx,
			`DELETE FROM kv WHERE bucket = ? AND k = ?`, b.name, key)
	} else {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO kv (bucket, k, v) VALUES (?, ?, ?)
			 ON CONFLICT (bucket, k) DO UPDATE SET v = excluded.v`,
			b.name, key, next)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStoreIO, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStoreIO, err)
	}
	return nil
}

func (b *sqliteBucket) ScanPrefix(ctx context.Context, prefix []byte, fn func(key, value []byte) error) error {
	query := `SELECT k, v FROM kv WHERE bucket = ? AND k >= ? ORDER BY k`
	args := []any{b.name, prefix}
	if end := prefixEnd(prefix); end != nil {
		query = `SELECT k, v FROM kv WHERE bucket = ? AND k >= ? AND k < ? ORDER BY k`
		args = append(args, end)
	}

	rows, err := b.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStoreIO, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("%w: %v", common.ErrorStoreIO, err)
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStoreIO, err)
	}
	return nil
}
