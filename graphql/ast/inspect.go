package ast

import (
	"fmt"
	"reflect"
)

// VisitAction is returned by a Visitor when a node is entered.
type VisitAction int

const (
	// Continue descends into the node's children.
	Continue VisitAction = iota

	// SkipChildren prevents the walk from descending into the node's children. The node is still
	// left.
	SkipChildren
)

// Visitor observes a walk of the tree. Enter is invoked before a node's children are walked, and
// Leave is invoked after, regardless of the action returned by Enter.
type Visitor interface {
	Enter(node Node) VisitAction
	Leave(node Node)
}

// VisitorFuncs adapts a pair of functions to the Visitor interface. Either may be nil.
type VisitorFuncs struct {
	EnterFunc func(Node) VisitAction
	LeaveFunc func(Node)
}

func (v VisitorFuncs) Enter(node Node) VisitAction {
	if v.EnterFunc == nil {
		return Continue
	}
	return v.EnterFunc(node)
}

func (v VisitorFuncs) Leave(node Node) {
	if v.LeaveFunc != nil {
		v.LeaveFunc(node)
	}
}

// Inspect traverses the tree in depth-first order. If f returns true, Inspect invokes f
// recursively for each of the non-nil children of node, followed by a call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	var entered []bool
	Walk(node, VisitorFuncs{
		EnterFunc: func(node Node) VisitAction {
			ok := f(node)
			entered = append(entered, ok)
			if ok {
				return Continue
			}
			return SkipChildren
		},
		LeaveFunc: func(node Node) {
			ok := entered[len(entered)-1]
			entered = entered[:len(entered)-1]
			if ok {
				f(nil)
			}
		},
	})
}

func isNil(node Node) bool {
	if node == nil {
		return true
	}
	v := reflect.ValueOf(node)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Walk traverses the tree in depth-first, document order, invoking v for each non-nil node.
func Walk(node Node, v Visitor) {
	if isNil(node) {
		return
	}

	if v.Enter(node) == SkipChildren {
		v.Leave(node)
		return
	}

	switch n := node.(type) {
	case *Document:
		for _, node := range n.Definitions {
			Walk(node, v)
		}
	case *OperationDefinition:
		Walk(n.OperationType, v)
		Walk(n.Name, v)
		for _, node := range n.VariableDefinitions {
			Walk(node, v)
		}
		for _, node := range n.Directives {
			Walk(node, v)
		}
		Walk(n.SelectionSet, v)
	case *FragmentDefinition:
		Walk(n.Name, v)
		Walk(n.TypeCondition, v)
		for _, node := range n.Directives {
			Walk(node, v)
		}
		Walk(n.SelectionSet, v)
	case *DirectiveDefinition:
		Walk(n.Description, v)
		Walk(n.Name, v)
		for _, node := range n.Arguments {
			Walk(node, v)
		}
		for _, node := range n.Locations {
			Walk(node, v)
		}
	case *InputValueDefinition:
		Walk(n.Description, v)
		Walk(n.Name, v)
		Walk(n.Type, v)
		Walk(n.DefaultValue, v)
		for _, node := range n.Directives {
			Walk(node, v)
		}
	case *VariableDefinition:
		Walk(n.Variable, v)
		Walk(n.Type, v)
		Walk(n.DefaultValue, v)
		for _, node := range n.Directives {
			Walk(node, v)
		}
	case *ListType:
		Walk(n.Type, v)
	case *NonNullType:
		Walk(n.Type, v)
	case *Directive:
		Walk(n.Name, v)
		for _, node := range n.Arguments {
			Walk(node, v)
		}
	case *SelectionSet:
		for _, node := range n.Selections {
			Walk(node, v)
		}
	case *Field:
		Walk(n.Alias, v)
		Walk(n.Name, v)
		for _, node := range n.Arguments {
			Walk(node, v)
		}
		for _, node := range n.Directives {
			Walk(node, v)
		}
		Walk(n.SelectionSet, v)
	case *FragmentSpread:
		Walk(n.FragmentName, v)
		for _, node := range n.Directives {
			Walk(node, v)
		}
	case *InlineFragment:
		Walk(n.TypeCondition, v)
		for _, node := range n.Directives {
			Walk(node, v)
		}
		Walk(n.SelectionSet, v)
	case *Argument:
		Walk(n.Name, v)
		Walk(n.Value, v)
	case *NamedType:
		Walk(n.Name, v)
	case *Variable:
		Walk(n.Name, v)
	case *OperationType, *Name, *BooleanValue, *IntValue, *FloatValue, *StringValue, *EnumValue, *NullValue:
	case *ListValue:
		for _, node := range n.Values {
			Walk(node, v)
		}
	case *ObjectValue:
		for _, node := range n.Fields {
			Walk(node, v)
		}
	case *ObjectField:
		Walk(n.Name, v)
		Walk(n.Value, v)
	default:
		panic(fmt.Errorf("unknown node type: %T", n))
	}

	v.Leave(node)
}
