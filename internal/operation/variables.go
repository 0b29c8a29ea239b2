package operation

import (
	"fmt"
	"regexp"
	"strings"
)

// variablePattern matches a dollar-prefixed identifier followed by a colon
// and a type token (longest run of non-whitespace, non-comma, non-close-paren
// characters). This is a lexical scan, not a GraphQL parse: it will also
// match the same syntax occurring outside the variable-definition clause.
// Accepted approximation.
var variablePattern = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)\s*:\s*([^\s,)]+)`)

// Variable describes one declared operation parameter.
type Variable struct {
	Name     string
	Type     string // declared type with !, [, ] stripped
	Required bool   // type token ended with !
	IsArray  bool   // type token contained [
}

// ExtractVariables scans an operation document for declared variables, in
// first-occurrence order. A variable name declared twice in one document is
// rejected.
func ExtractVariables(document string) ([]Variable, error) {
	matches := variablePattern.FindAllStringSubmatch(document, -1)

	var vars []Variable
	seen := make(map[string]bool)

	for _, m := range matches {
		name, token := m[1], m[2]
		if seen[name] {
			return nil, fmt.Errorf("duplicate variable declaration $%s", name)
		}
		seen[name] = true

		vars = append(vars, Variable{
			Name:     name,
			Type:     stripModifiers(token),
			Required: strings.HasSuffix(token, "!"),
			IsArray:  strings.Contains(token, "["),
		})
	}
	return vars, nil
}

// stripModifiers removes all !, [ and ] characters from a type token.
// Nesting depth is not recorded: [[Int]]! degrades to an Int array.
func stripModifiers(token string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '!', '[', ']':
			return -1
		}
		return r
	}, token)
}
