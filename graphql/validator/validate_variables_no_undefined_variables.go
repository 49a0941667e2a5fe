package validator

import (
	"fmt"

	"github.com/ccbrown/gql-check/graphql/ast"
)

type noUndefinedVariables struct {
	ctx     *Context
	defined map[string]struct{}
}

// NoUndefinedVariables reports variable references, direct or through spreads, that the enclosing
// operation doesn't define.
func NoUndefinedVariables(ctx *Context) ast.Visitor {
	return &noUndefinedVariables{
		ctx: ctx,
	}
}

func (r *noUndefinedVariables) Enter(node ast.Node) ast.VisitAction {
	switch node := node.(type) {
	case *ast.OperationDefinition:
		r.defined = map[string]struct{}{}
	case *ast.VariableDefinition:
		r.defined[node.Variable.Name.Name] = struct{}{}
	}
	return ast.Continue
}

func (r *noUndefinedVariables) Leave(node ast.Node) {
	op, ok := node.(*ast.OperationDefinition)
	if !ok {
		return
	}

	for _, usage := range r.ctx.RecursiveVariableUsages(op) {
		name := usage.Node.Name.Name
		if _, ok := r.defined[name]; ok {
			continue
		}
		if op.Name != nil {
			r.ctx.ReportError(fmt.Sprintf(`Variable "$%v" is not defined by operation "%v".`, name, op.Name.Name), usage.Node, op)
		} else {
			r.ctx.ReportError(fmt.Sprintf(`Variable "$%v" is not defined.`, name), usage.Node, op)
		}
	}
}
