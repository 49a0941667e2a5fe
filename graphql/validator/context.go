package validator

import (
	"github.com/ccbrown/gql-check/graphql/ast"
	"github.com/ccbrown/gql-check/graphql/schema"
)

// VariableUsage is a reference to a variable along with the type and default value expected at
// the location of the reference.
type VariableUsage struct {
	Node         *ast.Variable
	Type         schema.Type
	DefaultValue interface{}
}

// Context is shared by the rules of a single validation pass. It is not safe for concurrent use.
type Context struct {
	schema   *schema.Schema
	document *ast.Document
	typeInfo *TypeInfo
	errors   []*Error

	fragments                      map[string]*ast.FragmentDefinition
	fragmentSpreads                map[*ast.SelectionSet][]*ast.FragmentSpread
	recursivelyReferencedFragments map[*ast.OperationDefinition][]*ast.FragmentDefinition
	variableUsages                 map[ast.Node][]VariableUsage
	recursiveVariableUsages        map[*ast.OperationDefinition][]VariableUsage
	directiveArgumentNames         map[string][]string
}

func NewContext(s *schema.Schema, doc *ast.Document, typeInfo *TypeInfo) *Context {
	return &Context{
		schema:                         s,
		document:                       doc,
		typeInfo:                       typeInfo,
		fragmentSpreads:                map[*ast.SelectionSet][]*ast.FragmentSpread{},
		recursivelyReferencedFragments: map[*ast.OperationDefinition][]*ast.FragmentDefinition{},
		variableUsages:                 map[ast.Node][]VariableUsage{},
		recursiveVariableUsages:        map[*ast.OperationDefinition][]VariableUsage{},
	}
}

// ReportError records a violation. The nodes determine the error's locations.
func (c *Context) ReportError(message string, nodes ...ast.Node) {
	c.errors = append(c.errors, newError(message, nodes...))
}

// Errors returns the violations reported so far, in the order they were reported.
func (c *Context) Errors() []*Error {
	return c.errors
}

// Schema returns the schema being validated against. It may be nil.
func (c *Context) Schema() *schema.Schema {
	return c.schema
}

func (c *Context) Document() *ast.Document {
	return c.document
}

func (c *Context) Type() schema.Type { return c.typeInfo.Type() }
func (c *Context) ParentType() schema.NamedType { return c.typeInfo.ParentType() }
func (c *Context) InputType() schema.Type { return c.typeInfo.InputType() }
func (c *Context) ParentInputType() schema.Type { return c.typeInfo.ParentInputType() }
func (c *Context) FieldDefinition() *schema.FieldDefinition { return c.typeInfo.FieldDefinition() }
func (c *Context) Directive() *schema.DirectiveDefinition { return c.typeInfo.Directive() }
func (c *Context) Argument() *schema.InputValueDefinition { return c.typeInfo.Argument() }

// Fragment returns the document's fragment definition with the given name, or nil.
func (c *Context) Fragment(name string) *ast.FragmentDefinition {
	if c.fragments == nil {
		c.fragments = map[string]*ast.FragmentDefinition{}
		for _, def := range c.document.Definitions {
			if def, ok := def.(*ast.FragmentDefinition); ok {
				if _, ok := c.fragments[def.Name.Name]; !ok {
					c.fragments[def.Name.Name] = def
				}
			}
		}
	}
	return c.fragments[name]
}

// FragmentSpreads returns the spreads within the selection set, including those nested in fields
// and inline fragments. Spreads within the referenced fragments are not included.
func (c *Context) FragmentSpreads(selectionSet *ast.SelectionSet) []*ast.FragmentSpread {
	if spreads, ok := c.fragmentSpreads[selectionSet]; ok {
		return spreads
	}

	var spreads []*ast.FragmentSpread
	setsToVisit := []*ast.SelectionSet{selectionSet}
	for len(setsToVisit) > 0 {
		set := setsToVisit[len(setsToVisit)-1]
		setsToVisit = setsToVisit[:len(setsToVisit)-1]
		for _, selection := range set.Selections {
			switch selection := selection.(type) {
			case *ast.FragmentSpread:
				spreads = append(spreads, selection)
			case *ast.Field:
				if selection.SelectionSet != nil {
					setsToVisit = append(setsToVisit, selection.SelectionSet)
				}
			case *ast.InlineFragment:
				setsToVisit = append(setsToVisit, selection.SelectionSet)
			}
		}
	}
	c.fragmentSpreads[selectionSet] = spreads
	return spreads
}

// RecursivelyReferencedFragments returns every fragment reachable from the operation. Each
// fragment appears once, even if it is spread many times or cyclically.
func (c *Context) RecursivelyReferencedFragments(op *ast.OperationDefinition) []*ast.FragmentDefinition {
	if fragments, ok := c.recursivelyReferencedFragments[op]; ok {
		return fragments
	}

	var fragments []*ast.FragmentDefinition
	collected := map[string]struct{}{}
	nodesToVisit := []*ast.SelectionSet{op.SelectionSet}
	for len(nodesToVisit) > 0 {
		node := nodesToVisit[len(nodesToVisit)-1]
		nodesToVisit = nodesToVisit[:len(nodesToVisit)-1]
		for _, spread := range c.FragmentSpreads(node) {
			name := spread.FragmentName.Name
			if _, ok := collected[name]; ok {
				continue
			}
			collected[name] = struct{}{}
			if fragment := c.Fragment(name); fragment != nil {
				fragments = append(fragments, fragment)
				nodesToVisit = append(nodesToVisit, fragment.SelectionSet)
			}
		}
	}
	c.recursivelyReferencedFragments[op] = fragments
	return fragments
}

// VariableUsages returns the variable references within an operation or fragment definition, in
// document order. Spreads are not followed.
func (c *Context) VariableUsages(node ast.Node) []VariableUsage {
	if usages, ok := c.variableUsages[node]; ok {
		return usages
	}

	var usages []VariableUsage
	typeInfo := NewTypeInfo(c.schema)
	ast.Walk(node, withTypeInfo(typeInfo, ast.VisitorFuncs{
		EnterFunc: func(node ast.Node) ast.VisitAction {
			switch node := node.(type) {
			case *ast.VariableDefinition:
				return ast.SkipChildren
			case *ast.Variable:
				usages = append(usages, VariableUsage{
					Node:         node,
					Type:         typeInfo.InputType(),
					DefaultValue: typeInfo.DefaultValue(),
				})
			}
			return ast.Continue
		},
	}))
	c.variableUsages[node] = usages
	return usages
}

// RecursiveVariableUsages returns the variable references within the operation and every fragment
// it recursively references. Usages are not deduplicated.
func (c *Context) RecursiveVariableUsages(op *ast.OperationDefinition) []VariableUsage {
	if usages, ok := c.recursiveVariableUsages[op]; ok {
		return usages
	}

	usages := append([]VariableUsage(nil), c.VariableUsages(op)...)
	for _, fragment := range c.RecursivelyReferencedFragments(op) {
		usages = append(usages, c.VariableUsages(fragment)...)
	}
	c.recursiveVariableUsages[op] = usages
	return usages
}

// DirectiveArgumentNames returns the argument names of every known directive, keyed by directive
// name.
func (c *Context) DirectiveArgumentNames() map[string][]string {
	if c.directiveArgumentNames == nil {
		c.directiveArgumentNames = directiveArgumentNames(c.schema, c.document)
	}
	return c.directiveArgumentNames
}

// directiveArgumentNames merges the schema's directives with the document's directive
// definitions. A document definition replaces a schema directive with the same name.
func directiveArgumentNames(s *schema.Schema, doc *ast.Document) map[string][]string {
	directives := schema.SpecifiedDirectives
	if s != nil {
		directives = s.Directives()
	}

	ret := make(map[string][]string, len(directives))
	for name, def := range directives {
		ret[name] = def.ArgumentNames()
	}

	if doc != nil {
		for _, def := range doc.Definitions {
			if def, ok := def.(*ast.DirectiveDefinition); ok {
				names := make([]string, len(def.Arguments))
				for i, arg := range def.Arguments {
					names[i] = arg.Name.Name
				}
				ret[def.Name.Name] = names
			}
		}
	}
	return ret
}
