// Package emitter writes workflow documents into a target directory.
package emitter

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/qntmpulse/pulseci/internal/output"
	"github.com/qntmpulse/pulseci/internal/workflows"
)

// Status values reported per file.
const (
	StatusCreated     = "created"
	StatusOverwritten = "overwritten"

	// Plan statuses.
	StatusCreate    = "create"
	StatusOverwrite = "overwrite"
	StatusUnchanged = "unchanged"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// FileResult describes what happened (or would happen) to one document.
type FileResult struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Bytes  int    `json:"bytes"`
	Status string `json:"status"`
}

// Result is the outcome of Emit or Plan.
type Result struct {
	Dir   string       `json:"dir"`
	Files []FileResult `json:"files"`
}

// Emit creates dir (and any missing parents) and writes every document into it,
// replacing whatever was at those paths. It stops at the first failure; files
// written before the failure are left in place.
func Emit(dir string, docs []workflows.Document) (*Result, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, output.NewSystemErrorf(err, "failed to create workflows directory %s", dir)
	}

	result := &Result{Dir: dir, Files: make([]FileResult, 0, len(docs))}
	for _, doc := range docs {
		path := filepath.Join(dir, doc.Name)

		status := StatusCreated
		if _, err := os.Lstat(path); err == nil {
			status = StatusOverwritten
		}

		// #nosec G306 -- workflow files are committed to the repository and must be world-readable
		if err := os.WriteFile(path, doc.Content, filePerm); err != nil {
			return result, output.NewSystemErrorf(err, "failed to write %s", doc.Name)
		}

		result.Files = append(result.Files, FileResult{
			Name:   doc.Name,
			Path:   path,
			Bytes:  len(doc.Content),
			Status: status,
		})
	}

	return result, nil
}

// Plan reports what Emit would do without touching the filesystem.
func Plan(dir string, docs []workflows.Document) (*Result, error) {
	result := &Result{Dir: dir, Files: make([]FileResult, 0, len(docs))}
	for _, doc := range docs {
		path := filepath.Join(dir, doc.Name)

		existing, err := readExisting(path)
		if err != nil {
			return nil, output.NewSystemErrorf(err, "failed to read %s", doc.Name)
		}

		status := StatusCreate
		switch {
		case existing == nil:
		case bytes.Equal(existing, doc.Content):
			status = StatusUnchanged
		default:
			status = StatusOverwrite
		}

		result.Files = append(result.Files, FileResult{
			Name:   doc.Name,
			Path:   path,
			Bytes:  len(doc.Content),
			Status: status,
		})
	}
	return result, nil
}

// readExisting returns the file content, or nil if the file does not exist.
// A path that resolves to a directory is reported as an error.
func readExisting(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}
