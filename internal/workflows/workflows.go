package workflows

import (
	"embed"
	"fmt"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed templates/*.yml
var templates embed.FS

// order is the fixed emission order.
var order = []string{
	"ci.yml",
	"deploy-staging.yml",
	"deploy-production.yml",
	"lighthouse.yml",
	"security-scan.yml",
}

// Document is one workflow file: a relative filename and its literal payload.
type Document struct {
	Name    string
	Content []byte
}

// header is the subset of a workflow document read for display.
type header struct {
	Name string               `yaml:"name"`
	Jobs map[string]yaml.Node `yaml:"jobs"`
}

// All returns the five workflow documents in emission order.
// The returned slice and its byte slices are fresh copies.
func All() []Document {
	docs := make([]Document, 0, len(order))
	for _, name := range order {
		data, err := templates.ReadFile(path.Join("templates", name))
		if err != nil {
			// The embed pattern guarantees every name in order is present.
			panic(fmt.Sprintf("workflows: missing embedded template %s: %v", name, err))
		}
		docs = append(docs, Document{Name: name, Content: data})
	}
	return docs
}

// Names returns the document filenames in emission order.
func Names() []string {
	return slices.Clone(order)
}

// Lookup returns the document with the given name.
// The ".yml" suffix is optional: "ci" and "ci.yml" both resolve.
func Lookup(name string) (Document, bool) {
	name = strings.TrimSpace(name)
	if !strings.HasSuffix(name, ".yml") {
		name += ".yml"
	}
	for _, doc := range All() {
		if doc.Name == name {
			return doc, true
		}
	}
	return Document{}, false
}

// Title returns the workflow's top-level name, e.g. "Continuous Integration".
func (d Document) Title() (string, error) {
	h, err := d.header()
	if err != nil {
		return "", err
	}
	return h.Name, nil
}

// Jobs returns the sorted job IDs declared under jobs:.
func (d Document) Jobs() ([]string, error) {
	info, err := d.Info()
	if err != nil {
		return nil, err
	}
	return info.Jobs, nil
}

func (d Document) header() (header, error) {
	var h header
	if err := yaml.Unmarshal(d.Content, &h); err != nil {
		return header{}, fmt.Errorf("parsing %s: %w", d.Name, err)
	}
	return h, nil
}

// Info summarizes a document for listings.
type Info struct {
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Jobs  []string `json:"jobs"`
	Bytes int      `json:"bytes"`
}

// Info parses the document's title and jobs into a summary.
func (d Document) Info() (Info, error) {
	h, err := d.header()
	if err != nil {
		return Info{}, err
	}
	jobs := make([]string, 0, len(h.Jobs))
	for id := range h.Jobs {
		jobs = append(jobs, id)
	}
	slices.Sort(jobs)
	return Info{Name: d.Name, Title: h.Name, Jobs: jobs, Bytes: len(d.Content)}, nil
}
