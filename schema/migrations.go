// Package schema contains embedded migration files.
package schema

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

// Directories inside MigrationsFS, one per store driver.
const (
	PostgresDir = "pgmigrations"
	SQLiteDir   = "sqlitemigrations"
)

// MigrationsFS contains all SQL migration files for both drivers.
//
//go:embed pgmigrations/*.sql sqlitemigrations/*.sql
var MigrationsFS embed.FS

// MigrationFiles returns the sorted .sql file names inside dir.
func MigrationFiles(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}

	// 001_xxx.sql comes before 002_xxx.sql
	sort.Strings(files)
	return files, nil
}
