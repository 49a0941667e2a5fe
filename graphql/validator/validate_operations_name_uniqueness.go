package validator

import (
	"fmt"

	"github.com/ccbrown/gql-check/graphql/ast"
)

// UniqueOperationNames reports operations that share a name.
func UniqueOperationNames(ctx *Context) ast.Visitor {
	operationNames := map[string]*ast.Name{}
	return ast.VisitorFuncs{
		EnterFunc: func(node ast.Node) ast.VisitAction {
			switch node := node.(type) {
			case *ast.Document:
				return ast.Continue
			case *ast.OperationDefinition:
				if node.Name != nil {
					if first, ok := operationNames[node.Name.Name]; ok {
						ctx.ReportError(fmt.Sprintf(`There can be only one operation named "%v".`, node.Name.Name), first, node.Name)
					} else {
						operationNames[node.Name.Name] = node.Name
					}
				}
			}
			return ast.SkipChildren
		},
	}
}
