package seeder

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// Parser reads the reference tables from a data directory
type Parser struct {
	dataDir string
}

// NewParser creates a new parser instance for dataDir
func NewParser(dataDir string) *Parser {
	return &Parser{dataDir: dataDir}
}

// ReadTable returns the raw content of a table file. When the directory
// holds a tables.zip bundle the file is taken from the archive instead.
// A missing table yields an error wrapping os.ErrNotExist.
func (p *Parser) ReadTable(name string) ([]byte, error) {
	zipPath := filepath.Join(p.dataDir, BundleFile)
	if _, err := os.Stat(zipPath); err == nil {
		return p.readFromZip(zipPath, name)
	}

	data, err := os.ReadFile(filepath.Join(p.dataDir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	return data, nil
}

func (p *Parser) readFromZip(zipPath, name string) ([]byte, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if path.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s in zip: %w", name, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s in zip: %w", name, err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("no %s found in %s: %w", name, BundleFile, os.ErrNotExist)
}
