package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/vovakirdan/galaxy-shooter/internal/core"
)

var _ core.KVStore = (*Store)(nil)

// ProgressValue is one stored progression entry.
// Ints and floats share a key space; at most one of them is set.
type ProgressValue struct {
	Key      string
	Int      sql.NullInt64
	Float    sql.NullFloat64
	Modified string
}

// String formats the value for display.
func (v ProgressValue) String() string {
	switch {
	case v.Int.Valid:
		return fmt.Sprintf("%d", v.Int.Int64)
	case v.Float.Valid:
		return fmt.Sprintf("%.2f", v.Float.Float64)
	default:
		return "-"
	}
}

// GetInt returns the integer stored under key.
// Read errors are reported as a missing value.
func (s *Store) GetInt(key string) (int, bool) {
	var v sql.NullInt64
	err := s.db.QueryRow("SELECT int_value FROM progress WHERE key = ?", key).Scan(&v)
	if err != nil || !v.Valid {
		return 0, false
	}
	return int(v.Int64), true
}

// SetInt stores an integer under key.
func (s *Store) SetInt(key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (key, int_value, real_value, updated_at)
		 VALUES (?, ?, NULL, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET
		   int_value = excluded.int_value,
		   real_value = NULL,
		   updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", key, err)
	}
	return nil
}

// GetFloat returns the float stored under key.
func (s *Store) GetFloat(key string) (float64, bool) {
	var v sql.NullFloat64
	err := s.db.QueryRow("SELECT real_value FROM progress WHERE key = ?", key).Scan(&v)
	if err != nil || !v.Valid {
		return 0, false
	}
	return v.Float64, true
}

// SetFloat stores a float under key.
func (s *Store) SetFloat(key string, value float64) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (key, int_value, real_value, updated_at)
		 VALUES (?, NULL, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET
		   int_value = NULL,
		   real_value = excluded.real_value,
		   updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", key, err)
	}
	return nil
}

// Progress lists stored entries whose key starts with prefix, sorted by key.
func (s *Store) Progress(prefix string) ([]ProgressValue, error) {
	rows, err := s.db.Query(
		`SELECT key, int_value, real_value, COALESCE(updated_at, '')
		 FROM progress
		 WHERE substr(key, 1, length(?)) = ?
		 ORDER BY key`,
		prefix, prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	var values []ProgressValue
	for rows.Next() {
		var v ProgressValue
		var modified any
		if err := rows.Scan(&v.Key, &v.Int, &v.Float, &modified); err != nil {
			return nil, fmt.Errorf("storage: cannot scan progress row: %w", err)
		}
		switch m := modified.(type) {
		case string:
			v.Modified = m
		default:
			if t := parseTimestamp(m); !t.IsZero() {
				v.Modified = t.Format("2006-01-02 15:04")
			}
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return values, nil
}

// ClearProgress deletes every entry whose key starts with prefix.
// An empty prefix clears the whole table.
func (s *Store) ClearProgress(prefix string) error {
	_, err := s.db.Exec(
		"DELETE FROM progress WHERE substr(key, 1, length(?)) = ?",
		prefix, prefix,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	return nil
}

// Namespace returns a KVStore view that prefixes every key.
// SSH sessions use it to keep each user's progression apart.
func (s *Store) Namespace(prefix string) *Namespaced {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Namespaced{store: s, prefix: prefix}
}

// Namespaced is a prefixed view over a Store.
type Namespaced struct {
	store  *Store
	prefix string
}

var _ core.KVStore = (*Namespaced)(nil)

// Prefix returns the key prefix of this view.
func (n *Namespaced) Prefix() string { return n.prefix }

func (n *Namespaced) GetInt(key string) (int, bool) { return n.store.GetInt(n.prefix + key) }

func (n *Namespaced) SetInt(key string, value int) error {
	return n.store.SetInt(n.prefix+key, value)
}

func (n *Namespaced) GetFloat(key string) (float64, bool) { return n.store.GetFloat(n.prefix + key) }

func (n *Namespaced) SetFloat(key string, value float64) error {
	return n.store.SetFloat(n.prefix+key, value)
}

// Clear removes every entry in this view.
func (n *Namespaced) Clear() error { return n.store.ClearProgress(n.prefix) }
