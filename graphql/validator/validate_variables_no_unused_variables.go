package validator

import (
	"fmt"

	"github.com/ccbrown/gql-check/graphql/ast"
)

type noUnusedVariables struct {
	ctx          *Context
	variableDefs []*ast.VariableDefinition
}

// NoUnusedVariables reports variables that are defined by an operation but never referenced by it
// or by any fragment it spreads.
func NoUnusedVariables(ctx *Context) ast.Visitor {
	return &noUnusedVariables{
		ctx: ctx,
	}
}

func (r *noUnusedVariables) Enter(node ast.Node) ast.VisitAction {
	switch node := node.(type) {
	case *ast.OperationDefinition:
		r.variableDefs = nil
	case *ast.VariableDefinition:
		r.variableDefs = append(r.variableDefs, node)
	}
	return ast.Continue
}

func (r *noUnusedVariables) Leave(node ast.Node) {
	op, ok := node.(*ast.OperationDefinition)
	if !ok {
		return
	}

	used := map[string]struct{}{}
	for _, usage := range r.ctx.RecursiveVariableUsages(op) {
		used[usage.Node.Name.Name] = struct{}{}
	}

	for _, def := range r.variableDefs {
		name := def.Variable.Name.Name
		if _, ok := used[name]; ok {
			continue
		}
		if op.Name != nil {
			r.ctx.ReportError(fmt.Sprintf(`Variable "$%v" is never used in operation "%v".`, name, op.Name.Name), def)
		} else {
			r.ctx.ReportError(fmt.Sprintf(`Variable "$%v" is never used.`, name), def)
		}
	}
}
