package operation

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

func TestLoadDir_Success(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "getUser.graphql", "# @description Fetch a user by id\nquery GetUser($id: ID!) { user(id: $id) { name } }\n")
	writeFile(t, dir, "listPosts.gql", "query ListPosts { posts { title } }\n")
	writeFile(t, dir, "notes.txt", "not an operation")

	ops, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("Expected 2 operations, got %d", len(ops))
	}

	byName := make(map[string]Operation)
	for _, op := range ops {
		byName[op.Name] = op
	}

	getUser, ok := byName["getUser"]
	if !ok {
		t.Fatal("Expected operation getUser")
	}
	if getUser.Description != "Fetch a user by id" {
		t.Errorf("Expected description 'Fetch a user by id', got %q", getUser.Description)
	}
	if getUser.SourceFile != filepath.Join(dir, "getUser.graphql") {
		t.Errorf("Unexpected source file %q", getUser.SourceFile)
	}

	listPosts, ok := byName["listPosts"]
	if !ok {
		t.Fatal("Expected operation listPosts")
	}
	if listPosts.Description != "" {
		t.Errorf("Expected empty description, got %q", listPosts.Description)
	}
	if listPosts.Document != "query ListPosts { posts { title } }\n" {
		t.Errorf("Document should be the full file contents, got %q", listPosts.Document)
	}
}

func TestLoadDir_MissingDirectory(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "nonexistent"))
	if err == nil {
		t.Fatal("Expected error for missing directory")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoadDir_NoOperations(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "readme.md", "nothing to see")

	_, err := LoadDir(dir)
	if err == nil {
		t.Fatal("Expected error for directory without operations")
	}
	if !errors.Is(err, ErrNoOperations) {
		t.Errorf("Expected ErrNoOperations, got %v", err)
	}
}

func TestLoadDir_DuplicateName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "getUser.graphql", "query A { f }")
	writeFile(t, dir, "getUser.gql", "query B { f }")

	_, err := LoadDir(dir)
	if err == nil {
		t.Fatal("Expected error for duplicate operation name across extensions")
	}
}

func TestLoadDir_SkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "nested.graphql"), 0o755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}
	writeFile(t, dir, "top.graphql", "query Top { f }")

	ops, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(ops) != 1 || ops[0].Name != "top" {
		t.Errorf("Expected only the top operation, got %+v", ops)
	}
}

func TestExtractDescription(t *testing.T) {
	tests := []struct {
		name     string
		document string
		want     string
	}{
		{"leading annotation", "# @description Fetch things\nquery Q { f }", "Fetch things"},
		{"annotation after comment", "# stored operation\n# @description   Second line wins  \nquery Q { f }", "Second line wins"},
		{"no annotation", "query Q { f }", ""},
		{"plain comment only", "# just a comment\nquery Q { f }", ""},
		{"first annotation wins", "# @description one\n# @description two\nquery Q { f }", "one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractDescription(tt.document); got != tt.want {
				t.Errorf("extractDescription() = %q, want %q", got, tt.want)
			}
		})
	}
}
