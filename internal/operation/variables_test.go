package operation

import "testing"

func TestExtractVariables_OrderAndFlags(t *testing.T) {
	document := `query Search($term: String!, $limit: Int, $tags: [String!]!, $exact: Boolean) {
  search(term: $term, limit: $limit, tags: $tags, exact: $exact) { id }
}`

	vars, err := ExtractVariables(document)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []Variable{
		{Name: "term", Type: "String", Required: true, IsArray: false},
		{Name: "limit", Type: "Int", Required: false, IsArray: false},
		{Name: "tags", Type: "String", Required: true, IsArray: true},
		{Name: "exact", Type: "Boolean", Required: false, IsArray: false},
	}

	if len(vars) != len(want) {
		t.Fatalf("Expected %d variables, got %d: %+v", len(want), len(vars), vars)
	}
	for i, w := range want {
		if vars[i] != w {
			t.Errorf("Variable %d: expected %+v, got %+v", i, w, vars[i])
		}
	}
}

func TestExtractVariables_NoDeclarations(t *testing.T) {
	vars, err := ExtractVariables("query Plain { items { id } }")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(vars) != 0 {
		t.Errorf("Expected no variables, got %+v", vars)
	}
}

func TestExtractVariables_NestedList(t *testing.T) {
	vars, err := ExtractVariables("query Q($matrix: [[Int]]!) { f(matrix: $matrix) }")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(vars) != 1 {
		t.Fatalf("Expected 1 variable, got %d", len(vars))
	}
	v := vars[0]
	if v.Type != "Int" || !v.IsArray || !v.Required {
		t.Errorf("Expected required Int array, got %+v", v)
	}
}

func TestExtractVariables_Duplicate(t *testing.T) {
	_, err := ExtractVariables("query Q($id: ID!, $id: String) { f }")
	if err == nil {
		t.Fatal("Expected error for duplicate variable declaration")
	}
}

func TestExtractVariables_CustomType(t *testing.T) {
	vars, err := ExtractVariables("mutation M($input: CreateUserInput!) { createUser(input: $input) { id } }")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(vars) != 1 {
		t.Fatalf("Expected 1 variable, got %d", len(vars))
	}
	if vars[0].Type != "CreateUserInput" || !vars[0].Required {
		t.Errorf("Expected required CreateUserInput, got %+v", vars[0])
	}
}

// The extractor is a lexical scan: a $name: Type pair inside the operation
// body is matched too. Known approximation, kept deliberately.
func TestExtractVariables_LexicalScanMatchesBody(t *testing.T) {
	vars, err := ExtractVariables("query Q { f @skip(if: false) ... on T { g(x: 1) } fragmentish($inner: Int) }")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(vars) != 1 || vars[0].Name != "inner" {
		t.Errorf("Expected lexical match on $inner, got %+v", vars)
	}
}
