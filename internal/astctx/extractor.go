// Package astctx walks up from a usage node to describe its enclosing
// scopes: functions, methods, classes and so on, innermost first, ending at
// the source file.
package astctx

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/codescope/internal/types"
)

// ExtractContexts climbs the ancestor chain of node and returns up to
// maxContexts recognized scopes, innermost first. Unrecognized ancestors
// are skipped, not counted. maxContexts of 0 returns nil without walking.
func ExtractContexts(node *tree_sitter.Node, content []byte, maxContexts int) []types.UsageContext {
	if maxContexts <= 0 {
		return nil
	}

	var contexts []types.UsageContext
	for current := node.Parent(); current != nil; current = current.Parent() {
		if ctx, ok := nodeToContext(current, content); ok {
			contexts = append(contexts, ctx)
			if len(contexts) >= maxContexts {
				break
			}
		}
	}
	return contexts
}

func nodeToContext(node *tree_sitter.Node, content []byte) (types.UsageContext, bool) {
	var kind types.ContextKind
	switch node.Kind() {
	case "arrow_function":
		kind = types.ContextArrowFunction
	case "function_declaration":
		kind = types.ContextFunctionDeclaration
	case "method_definition":
		kind = types.ContextMethodDeclaration
	case "class_declaration":
		kind = types.ContextClassDeclaration
	case "interface_declaration":
		kind = types.ContextInterfaceDeclaration
	case "enum_declaration":
		kind = types.ContextEnumDeclaration
	case "program":
		kind = types.ContextSourceFile
	default:
		return types.UsageContext{}, false
	}

	name := contextName(node, content)
	if kind == types.ContextMethodDeclaration && name == "constructor" {
		kind = types.ContextConstructor
	}

	return types.UsageContext{
		Kind:      kind,
		Name:      name,
		StartLine: int(node.StartPosition().Row) + 1,
		EndLine:   int(node.EndPosition().Row) + 1,
	}, true
}

func contextName(node *tree_sitter.Node, content []byte) string {
	var nameNode *tree_sitter.Node
	switch node.Kind() {
	case "function_declaration", "method_definition", "class_declaration",
		"interface_declaration", "enum_declaration":
		nameNode = node.ChildByFieldName("name")
	case "arrow_function":
		// An arrow function is named by the variable it is assigned to.
		if parent := node.Parent(); parent != nil && parent.Kind() == "variable_declarator" {
			nameNode = parent.ChildByFieldName("name")
		}
	}
	if nameNode == nil {
		return ""
	}
	return string(content[nameNode.StartByte():nameNode.EndByte()])
}
