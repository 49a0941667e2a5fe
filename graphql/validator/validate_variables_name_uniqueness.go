package validator

import (
	"fmt"

	"github.com/ccbrown/gql-check/graphql/ast"
)

// UniqueVariableNames reports operations that define the same variable more than once.
func UniqueVariableNames(ctx *Context) ast.Visitor {
	return ast.VisitorFuncs{
		EnterFunc: func(node ast.Node) ast.VisitAction {
			if _, ok := node.(*ast.Document); ok {
				return ast.Continue
			}
			op, ok := node.(*ast.OperationDefinition)
			if !ok {
				return ast.SkipChildren
			}
			variables := map[string]*ast.VariableDefinition{}
			for _, def := range op.VariableDefinitions {
				name := def.Variable.Name.Name
				if first, ok := variables[name]; ok {
					ctx.ReportError(fmt.Sprintf(`There can be only one variable named "$%v".`, name), first.Variable.Name, def.Variable.Name)
				} else {
					variables[name] = def
				}
			}
			return ast.SkipChildren
		},
	}
}
