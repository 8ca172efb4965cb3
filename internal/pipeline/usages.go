package pipeline

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/codescope/internal/astctx"
	"github.com/standardbeagle/codescope/internal/parser"
	"github.com/standardbeagle/codescope/internal/types"
)

// UsageCollector finds occurrences of one symbol and classifies each by its
// syntactic role. At most one usage is reported per source position.
type UsageCollector struct {
	Symbol         string
	IncludeImports bool
	MaxContexts    int
	// ObjectFilter keeps only member accesses on the named object. Empty
	// means no filtering.
	ObjectFilter string
}

func (c *UsageCollector) CollectFile(cp *parser.CachedParser, path string) ([]types.SymbolUsage, error) {
	res, err := cp.ParseFile(path)
	if err != nil {
		return nil, err
	}
	defer res.Close()
	return c.collect(path, res.Tree, res.Content, res.Language.Usages()), nil
}

func (c *UsageCollector) collect(path string, tree *tree_sitter.Tree, content []byte, query *tree_sitter.Query) []types.SymbolUsage {
	captureNames := query.CaptureNames()

	type position struct{ line, column int }
	seen := make(map[position]bool)

	var usages []types.SymbolUsage

	qc := tree_sitter.NewQueryCursor()
	defer qc.Close()
	matches := qc.Matches(query, tree.RootNode(), content)
	for m := matches.Next(); m != nil; m = matches.Next() {
		for i := range m.Captures {
			capture := &m.Captures[i]
			if captureNames[capture.Index] != "usage" {
				continue
			}
			node := &capture.Node
			if nodeText(node, content) != c.Symbol {
				continue
			}

			line := int(node.StartPosition().Row) + 1
			column := int(node.StartPosition().Column)

			// Overlapping query patterns can capture the same node more
			// than once; the first classification wins.
			pos := position{line, column}
			if seen[pos] {
				continue
			}
			seen[pos] = true

			isImport := isInImportStatement(node)
			if isImport && !c.IncludeImports {
				continue
			}

			var usageKind types.UsageKind
			var objectName string
			if isImport {
				usageKind = types.UsageImport
			} else {
				usageKind, objectName = classifyUsage(node, content)
			}

			if c.ObjectFilter != "" && objectName != c.ObjectFilter {
				continue
			}

			qualified := c.Symbol
			if objectName != "" {
				qualified = objectName + "." + c.Symbol
			}

			usages = append(usages, types.SymbolUsage{
				FilePath:      path,
				Line:          line,
				Column:        column,
				QualifiedName: qualified,
				UsageKind:     usageKind,
				ObjectName:    objectName,
				Contexts:      astctx.ExtractContexts(node, content, c.MaxContexts),
			})
		}
	}

	return usages
}

// MethodCallCollector finds call-position member accesses of one method,
// optionally restricted to calls on a named object.
type MethodCallCollector struct {
	MethodName string
	ObjectName string
}

func (c *MethodCallCollector) CollectFile(cp *parser.CachedParser, path string) ([]types.SymbolUsage, error) {
	inner := &UsageCollector{
		Symbol:       c.MethodName,
		ObjectFilter: c.ObjectName,
	}
	usages, err := inner.CollectFile(cp, path)
	if err != nil {
		return nil, err
	}
	calls := usages[:0]
	for _, u := range usages {
		if u.UsageKind == types.UsageMethodCall {
			calls = append(calls, u)
		}
	}
	return calls, nil
}

// ImportCollector finds occurrences of one symbol inside import constructs.
type ImportCollector struct {
	Symbol string
}

func (c *ImportCollector) CollectFile(cp *parser.CachedParser, path string) ([]types.SymbolUsage, error) {
	inner := &UsageCollector{
		Symbol:         c.Symbol,
		IncludeImports: true,
	}
	usages, err := inner.CollectFile(cp, path)
	if err != nil {
		return nil, err
	}
	imports := usages[:0]
	for _, u := range usages {
		if u.UsageKind == types.UsageImport {
			imports = append(imports, u)
		}
	}
	return imports, nil
}

// memberAccessFields names the object and member fields of each language's
// member access node.
var memberAccessFields = map[string]struct{ object, member string }{
	"member_expression":   {"object", "property"},   // TS/JS
	"attribute":           {"object", "attribute"},  // Python
	"selector_expression": {"operand", "field"},     // Go
	"field_expression":    {"value", "field"},       // Rust, C++
	"field_access":        {"object", "field"},      // Java
}

var callNodeKinds = map[string]bool{
	"call_expression":       true, // TS/JS, Rust, C++
	"call":                  true, // Python
	"method_invocation":     true, // Java
	"invocation_expression": true, // C#
}

var typeNodeKinds = map[string]bool{
	"type_annotation": true,
	"type_reference":  true,
	"generic_type":    true,
}

var importNodeKinds = map[string]bool{
	"import_statement":          true, // TS/JS, Python
	"import_specifier":          true,
	"import_clause":             true,
	"import_from_statement":     true, // Python
	"import_declaration":        true, // Go, Java
	"import_spec":               true, // Go
	"use_declaration":           true, // Rust
	"using_directive":           true, // C#
	"preproc_include":           true, // C++
	"namespace_use_declaration": true, // PHP
}

func isInImportStatement(node *tree_sitter.Node) bool {
	for cur := node.Parent(); cur != nil; cur = cur.Parent() {
		if importNodeKinds[cur.Kind()] {
			return true
		}
	}
	return false
}

// classifyUsage decides the syntactic role of a symbol occurrence and, for
// member accesses, the object it is accessed on. A member access whose
// parent sits in the function position of a call is a method call. Any type
// construct in the ancestor chain makes the occurrence a type reference;
// this deliberately counts identifiers nested inside type expressions too.
func classifyUsage(node *tree_sitter.Node, content []byte) (types.UsageKind, string) {
	parent := node.Parent()
	if parent == nil {
		return types.UsageIdentifier, ""
	}

	if fields, ok := memberAccessFields[parent.Kind()]; ok {
		member := parent.ChildByFieldName(fields.member)
		if member != nil && member.Id() == node.Id() {
			if object := parent.ChildByFieldName(fields.object); object != nil {
				objectName := nodeText(object, content)
				if gp := parent.Parent(); gp != nil && callNodeKinds[gp.Kind()] {
					if fn := gp.ChildByFieldName("function"); fn != nil && fn.Id() == parent.Id() {
						return types.UsageMethodCall, objectName
					}
				}
				return types.UsagePropertyAccess, objectName
			}
		}
	}

	for cur := parent; cur != nil; cur = cur.Parent() {
		if typeNodeKinds[cur.Kind()] {
			return types.UsageTypeReference, ""
		}
	}

	return types.UsageIdentifier, ""
}
