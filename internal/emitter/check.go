package emitter

import (
	"bytes"
	"path/filepath"

	"github.com/qntmpulse/pulseci/internal/output"
	"github.com/qntmpulse/pulseci/internal/workflows"
)

// Drift statuses.
const (
	DriftOK       = "ok"
	DriftMissing  = "missing"
	DriftModified = "modified"
)

// FileCheck is the drift state of one document on disk.
type FileCheck struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Status string `json:"status"`
}

// Report is the drift state of every document in a directory.
type Report struct {
	Dir   string      `json:"dir"`
	Files []FileCheck `json:"files"`
}

// Clean reports whether every document is present with its exact content.
func (r *Report) Clean() bool {
	for _, f := range r.Files {
		if f.Status != DriftOK {
			return false
		}
	}
	return true
}

// Count returns how many files have the given status.
func (r *Report) Count(status string) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}

// Check compares the documents against the files in dir.
// A missing dir is not an error; every document is reported missing.
func Check(dir string, docs []workflows.Document) (*Report, error) {
	report := &Report{Dir: dir, Files: make([]FileCheck, 0, len(docs))}
	for _, doc := range docs {
		path := filepath.Join(dir, doc.Name)

		existing, err := readExisting(path)
		if err != nil {
			return nil, output.NewSystemErrorf(err, "failed to read %s", doc.Name)
		}

		status := DriftOK
		switch {
		case existing == nil:
			status = DriftMissing
		case !bytes.Equal(existing, doc.Content):
			status = DriftModified
		}

		report.Files = append(report.Files, FileCheck{Name: doc.Name, Path: path, Status: status})
	}
	return report, nil
}
