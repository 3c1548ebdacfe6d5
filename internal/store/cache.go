// Package store provides a SQLite-backed cache of tool invocations
// parsed from session files, keyed by file mtime and size so unchanged
// files can be skipped on the next run.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/cwrapped/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache provides SQLite-backed invocation caching.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// FileInfo holds the tracked mtime and size for a session file.
type FileInfo struct {
	MtimeNs   int64
	SizeBytes int64
}

// GetTrackedFiles returns a map of file_path -> FileInfo for all tracked files.
func (c *Cache) GetTrackedFiles() (map[string]FileInfo, error) {
	rows, err := c.db.Query("SELECT file_path, mtime_ns, size_bytes FROM file_tracker")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]FileInfo)
	for rows.Next() {
		var path string
		var fi FileInfo
		if err := rows.Scan(&path, &fi.MtimeNs, &fi.SizeBytes); err != nil {
			return nil, err
		}
		result[path] = fi
	}
	return result, rows.Err()
}

// SaveFile replaces the cached invocations for one session file and
// updates its tracking entry.
func (c *Cache) SaveFile(filePath string, invocations []model.ToolInvocation, mtimeNs, sizeBytes int64) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM tool_uses WHERE file_path = ?", filePath); err != nil {
		return err
	}
	for _, inv := range invocations {
		_, err := tx.Exec(
			"INSERT INTO tool_uses (file_path, tool, target, ts) VALUES (?, ?, ?, ?)",
			filePath, inv.Tool, inv.FilePath, inv.Timestamp,
		)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO file_tracker (file_path, mtime_ns, size_bytes)
		VALUES (?, ?, ?)`, filePath, mtimeNs, sizeBytes)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// LoadFiles reads the cached invocations for the given session files.
func (c *Cache) LoadFiles(filePaths []string) ([]model.ToolInvocation, error) {
	if len(filePaths) == 0 {
		return nil, nil
	}

	wanted := make(map[string]struct{}, len(filePaths))
	for _, p := range filePaths {
		wanted[p] = struct{}{}
	}

	rows, err := c.db.Query("SELECT file_path, tool, target, ts FROM tool_uses")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.ToolInvocation
	for rows.Next() {
		var inv model.ToolInvocation
		if err := rows.Scan(&inv.SourceFile, &inv.Tool, &inv.FilePath, &inv.Timestamp); err != nil {
			return nil, err
		}
		if _, ok := wanted[inv.SourceFile]; ok {
			out = append(out, inv)
		}
	}
	return out, rows.Err()
}

// DeleteFile removes a session file's invocations and tracking entry.
func (c *Cache) DeleteFile(filePath string) error {
	if _, err := c.db.Exec("DELETE FROM tool_uses WHERE file_path = ?", filePath); err != nil {
		return err
	}
	_, err := c.db.Exec("DELETE FROM file_tracker WHERE file_path = ?", filePath)
	return err
}
