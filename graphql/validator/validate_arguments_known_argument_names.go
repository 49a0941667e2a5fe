package validator

import (
	"fmt"
	"slices"

	"github.com/ccbrown/gql-check/graphql/ast"
)

type knownArgumentNames struct {
	ctx    *Context
	fields []*ast.Field
}

// KnownArgumentNames reports arguments that aren't defined by their field or directive.
func KnownArgumentNames(ctx *Context) ast.Visitor {
	return &knownArgumentNames{
		ctx: ctx,
	}
}

func (r *knownArgumentNames) Enter(node ast.Node) ast.VisitAction {
	switch node := node.(type) {
	case *ast.Field:
		r.fields = append(r.fields, node)
	case *ast.Argument:
		fieldDef := r.ctx.FieldDefinition()
		parentType := r.ctx.ParentType()
		if r.ctx.Argument() == nil && fieldDef != nil && parentType != nil {
			name := node.Name.Name
			r.ctx.ReportError(
				fmt.Sprintf(`Unknown argument "%v" on field "%v" of type "%v".`, name, top(r.fields).Name.Name, parentType.TypeName())+
					didYouMean(SuggestionList(name, fieldDef.ArgumentNames())),
				node,
			)
		}
	case *ast.Directive:
		known, ok := r.ctx.DirectiveArgumentNames()[node.Name.Name]
		if !ok {
			return ast.SkipChildren
		}
		for _, arg := range node.Arguments {
			if name := arg.Name.Name; !slices.Contains(known, name) {
				r.ctx.ReportError(
					fmt.Sprintf(`Unknown argument "%v" on directive "@%v".`, name, node.Name.Name)+
						didYouMean(SuggestionList(name, known)),
					arg,
				)
			}
		}
		return ast.SkipChildren
	}
	return ast.Continue
}

func (r *knownArgumentNames) Leave(node ast.Node) {
	if _, ok := node.(*ast.Field); ok {
		r.fields = pop(r.fields)
	}
}
