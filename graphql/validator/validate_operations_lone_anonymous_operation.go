package validator

import "github.com/ccbrown/gql-check/graphql/ast"

// LoneAnonymousOperation reports anonymous operations in documents that define other operations.
func LoneAnonymousOperation(ctx *Context) ast.Visitor {
	operationCount := 0
	return ast.VisitorFuncs{
		EnterFunc: func(node ast.Node) ast.VisitAction {
			switch node := node.(type) {
			case *ast.Document:
				for _, def := range node.Definitions {
					if _, ok := def.(*ast.OperationDefinition); ok {
						operationCount++
					}
				}
				return ast.Continue
			case *ast.OperationDefinition:
				if node.Name == nil && operationCount > 1 {
					ctx.ReportError("This anonymous operation must be the only defined operation.", node)
				}
			}
			return ast.SkipChildren
		},
	}
}
