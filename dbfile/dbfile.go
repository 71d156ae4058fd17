// Package dbfile implements the filesystem conventions backing CREATE/DROP/
// SHOW DATABASES: each database is one file named "<name>.db" inside a
// single configured directory.
package dbfile

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/karthikeyaspace/venus-db/config"
	"github.com/karthikeyaspace/venus-db/verr"
)

// Path returns the on-disk path for database name under dir.
func Path(dir, name string) string {
	return filepath.Join(dir, name+config.DatabaseFileExt)
}

// Create ensures dir exists and creates an empty database file for name.
// It is not an error if the file already exists.
func Create(dir, name string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return verr.Wrap(verr.IOError, err, "create database directory %s", dir)
	}
	f, err := os.OpenFile(Path(dir, name), os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return verr.Wrap(verr.IOError, err, "create database file for %s", name)
	}
	if err := f.Close(); err != nil {
		return verr.Wrap(verr.IOError, err, "close database file for %s", name)
	}
	return nil
}

// Drop removes the database file for name, reporting whether it existed.
func Drop(dir, name string) (existed bool, err error) {
	path := Path(dir, name)
	if _, statErr := os.Stat(path); statErr != nil {
		if os.IsNotExist(statErr) {
			return false, nil
		}
		return false, verr.Wrap(verr.IOError, statErr, "stat database file for %s", name)
	}
	if err := os.Remove(path); err != nil {
		return false, verr.Wrap(verr.IOError, err, "remove database file for %s", name)
	}
	return true, nil
}

// List returns the names (without extension) of every database file under
// dir, sorted. A missing directory is treated as having no databases.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, verr.Wrap(verr.IOError, err, "list database directory %s", dir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != config.DatabaseFileExt {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), config.DatabaseFileExt))
	}
	sort.Strings(names)
	return names, nil
}
