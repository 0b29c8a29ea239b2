// Package operation loads GraphQL operation documents from disk and derives
// tool parameter schemas from their declared variables.
package operation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoOperations is returned when the operations directory contains no
// recognized operation documents.
var ErrNoOperations = errors.New("no operation documents found")

// descriptionPrefix marks the in-document annotation carrying a tool
// description, e.g. `# @description Fetch a user by id`.
const descriptionPrefix = "@description"

// extensions are the recognized operation document file extensions.
var extensions = []string{".graphql", ".gql"}

// Operation is a single named GraphQL operation loaded from a file.
// Immutable once loaded; held for the process lifetime.
type Operation struct {
	Name        string
	Document    string
	SourceFile  string
	Description string
}

// LoadDir scans the immediate entries of dir (non-recursive) and loads every
// .graphql/.gql file as an Operation. The operation name is the file name
// with the extension stripped. Two files mapping to the same name (e.g.
// q.graphql and q.gql) are rejected rather than silently overwriting.
func LoadDir(dir string) ([]Operation, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("operations directory %s: %w", dir, err)
	}

	var ops []Operation
	seen := make(map[string]string)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !recognizedExtension(ext) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ext)
		path := filepath.Join(dir, entry.Name())

		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("duplicate operation name %q: %s and %s", name, prev, entry.Name())
		}
		seen[name] = entry.Name()

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read operation file %s: %w", path, err)
		}

		ops = append(ops, Operation{
			Name:        name,
			Document:    string(data),
			SourceFile:  path,
			Description: extractDescription(string(data)),
		})
	}

	if len(ops) == 0 {
		return nil, fmt.Errorf("%w in %s (expected *.graphql or *.gql)", ErrNoOperations, dir)
	}
	return ops, nil
}

func recognizedExtension(ext string) bool {
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// extractDescription returns the text of the first `# @description <text>`
// comment line in the document, trimmed, or "" if absent.
func extractDescription(document string) string {
	for _, line := range strings.Split(document, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "#") {
			continue
		}
		comment := strings.TrimSpace(strings.TrimPrefix(trimmed, "#"))
		if rest, ok := strings.CutPrefix(comment, descriptionPrefix); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}
