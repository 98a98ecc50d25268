// Package envfile loads KEY=VALUE pairs from .env files into the process
// environment. Variables already set in the environment always win.
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Var is one parsed assignment.
type Var struct {
	Key   string
	Value string
}

// Parse reads assignments from r. Blank lines, comments and lines without
// '=' are skipped. An optional "export " prefix and matching quotes around
// the value are stripped.
func Parse(r io.Reader) ([]Var, error) {
	var vars []Var
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if v, ok := parseLine(line); ok {
			vars = append(vars, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vars, nil
}

// Load applies the file at path to the environment and returns the keys it set.
// A missing file is not an error.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only file

	vars, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}

	var applied []string
	for _, v := range vars {
		if _, set := os.LookupEnv(v.Key); set {
			continue
		}
		if err := os.Setenv(v.Key, v.Value); err != nil {
			return applied, fmt.Errorf("setting %s from %s: %w", v.Key, path, err)
		}
		applied = append(applied, v.Key)
	}
	return applied, nil
}

// LoadAll loads each path in order, so earlier files take precedence.
// Loading continues past failures; the first error is returned.
func LoadAll(paths ...string) ([]string, error) {
	var applied []string
	var firstErr error
	for _, path := range paths {
		if path == "" {
			continue
		}
		keys, err := Load(path)
		applied = append(applied, keys...)
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return applied, firstErr
}

func parseLine(line string) (Var, bool) {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return Var{}, false
	}

	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	value = strings.TrimSpace(value)
	if key == "" {
		return Var{}, false
	}

	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' || first == '\'') && first == last {
			value = value[1 : len(value)-1]
		}
	}

	return Var{Key: key, Value: value}, true
}
