package validator

import "github.com/ccbrown/gql-check/graphql/ast"

// parallelVisitor dispatches each event to several visitors in order. A visitor that skips a
// node's children receives no events until that node is left.
type parallelVisitor struct {
	visitors []ast.Visitor
	skipping []ast.Node
}

func newParallelVisitor(visitors []ast.Visitor) *parallelVisitor {
	return &parallelVisitor{
		visitors: visitors,
		skipping: make([]ast.Node, len(visitors)),
	}
}

func (v *parallelVisitor) Enter(node ast.Node) ast.VisitAction {
	descend := false
	for i, visitor := range v.visitors {
		if v.skipping[i] != nil {
			continue
		}
		if visitor.Enter(node) == ast.SkipChildren {
			v.skipping[i] = node
		} else {
			descend = true
		}
	}
	if !descend {
		return ast.SkipChildren
	}
	return ast.Continue
}

func (v *parallelVisitor) Leave(node ast.Node) {
	for i, visitor := range v.visitors {
		if v.skipping[i] == nil {
			visitor.Leave(node)
		} else if v.skipping[i] == node {
			visitor.Leave(node)
			v.skipping[i] = nil
		}
	}
}

// typeInfoVisitor keeps a TypeInfo in sync with a walk so that the wrapped visitor can query it.
type typeInfoVisitor struct {
	typeInfo *TypeInfo
	visitor  ast.Visitor
}

func withTypeInfo(typeInfo *TypeInfo, visitor ast.Visitor) ast.Visitor {
	return &typeInfoVisitor{
		typeInfo: typeInfo,
		visitor:  visitor,
	}
}

func (v *typeInfoVisitor) Enter(node ast.Node) ast.VisitAction {
	v.typeInfo.Enter(node)
	return v.visitor.Enter(node)
}

func (v *typeInfoVisitor) Leave(node ast.Node) {
	v.visitor.Leave(node)
	v.typeInfo.Leave(node)
}
