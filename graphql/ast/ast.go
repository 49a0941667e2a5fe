package ast

import "github.com/ccbrown/gql-check/graphql/token"

// Node is implemented by every element of the syntax tree. The dynamic type of a node is its kind.
type Node interface {
	Position() token.Position
}

type Document struct {
	Definitions []Definition
}

func (*Document) Position() token.Position { return token.Position{Line: 1, Column: 1} }

// OperationDefinition, FragmentDefinition, or DirectiveDefinition
type Definition interface {
	Node
}

type OperationType struct {
	Value         string
	ValuePosition token.Position
}

func (n *OperationType) Position() token.Position { return n.ValuePosition }

const (
	OperationTypeQuery        = "query"
	OperationTypeMutation     = "mutation"
	OperationTypeSubscription = "subscription"
)

func IsOperationType(s string) bool {
	switch s {
	case OperationTypeQuery, OperationTypeMutation, OperationTypeSubscription:
		return true
	default:
		return false
	}
}

type OperationDefinition struct {
	OperationType       *OperationType
	Name                *Name
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        *SelectionSet
}

func (n *OperationDefinition) Position() token.Position {
	if n.OperationType != nil {
		return n.OperationType.Position()
	}
	return n.SelectionSet.Position()
}

// IsQuery is true for query operations, including the shorthand form.
func (n *OperationDefinition) IsQuery() bool {
	return n.OperationType == nil || n.OperationType.Value == OperationTypeQuery
}

type FragmentDefinition struct {
	Fragment      token.Position
	Name          *Name
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

func (n *FragmentDefinition) Position() token.Position { return n.Fragment }

// DirectiveDefinition is a type system definition that may appear alongside executable
// definitions, e.g. `directive @cached(ttl: Int) on FIELD`.
type DirectiveDefinition struct {
	Description *StringValue
	Directive   token.Position
	Name        *Name
	Arguments   []*InputValueDefinition
	Repeatable  bool
	Locations   []*Name
}

func (n *DirectiveDefinition) Position() token.Position {
	if n.Description != nil {
		return n.Description.Position()
	}
	return n.Directive
}

type InputValueDefinition struct {
	Description  *StringValue
	Name         *Name
	Type         Type
	DefaultValue Value
	Directives   []*Directive
}

func (n *InputValueDefinition) Position() token.Position {
	if n.Description != nil {
		return n.Description.Position()
	}
	return n.Name.Position()
}

type VariableDefinition struct {
	Variable     *Variable
	Type         Type
	DefaultValue Value
	Directives   []*Directive
}

func (n *VariableDefinition) Position() token.Position { return n.Variable.Position() }

// NamedType, ListType, or NonNullType
type Type interface {
	Node
}

type ListType struct {
	Opening token.Position
	Type    Type
	Closing token.Position
}

func (n *ListType) Position() token.Position { return n.Opening }

type NonNullType struct {
	Type Type
	Bang token.Position
}

func (n *NonNullType) Position() token.Position { return n.Type.Position() }

type NamedType struct {
	Name *Name
}

func (n *NamedType) Position() token.Position { return n.Name.Position() }

type Directive struct {
	At        token.Position
	Name      *Name
	Arguments []*Argument
}

func (n *Directive) Position() token.Position { return n.At }

type SelectionSet struct {
	Opening    token.Position
	Selections []Selection
	Closing    token.Position
}

func (n *SelectionSet) Position() token.Position { return n.Opening }

// Field, FragmentSpread, or InlineFragment
type Selection interface {
	Node
}

type Field struct {
	Alias        *Name
	Name         *Name
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet
}

func (n *Field) Position() token.Position {
	if n.Alias != nil {
		return n.Alias.Position()
	}
	return n.Name.Position()
}

type FragmentSpread struct {
	Ellipsis     token.Position
	FragmentName *Name
	Directives   []*Directive
}

func (n *FragmentSpread) Position() token.Position { return n.Ellipsis }

type InlineFragment struct {
	Ellipsis      token.Position
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

func (n *InlineFragment) Position() token.Position { return n.Ellipsis }

type Argument struct {
	Name  *Name
	Value Value
}

func (n *Argument) Position() token.Position { return n.Name.Position() }

type Name struct {
	Name         string
	NamePosition token.Position
}

func (n *Name) Position() token.Position { return n.NamePosition }

// Variable, IntValue, FloatValue, StringValue, BooleanValue, NullValue, EnumValue, ListValue, or
// ObjectValue
type Value interface {
	Node
}

type Variable struct {
	Dollar token.Position
	Name   *Name
}

func (n *Variable) Position() token.Position { return n.Dollar }

type BooleanValue struct {
	Value   bool
	Literal token.Position
}

func (n *BooleanValue) Position() token.Position { return n.Literal }

type FloatValue struct {
	Value   string
	Literal token.Position
}

func (n *FloatValue) Position() token.Position { return n.Literal }

type IntValue struct {
	Value   string
	Literal token.Position
}

func (n *IntValue) Position() token.Position { return n.Literal }

type StringValue struct {
	// Value is the actual, unquoted value.
	Value string

	Literal token.Position
}

func (n *StringValue) Position() token.Position { return n.Literal }

type EnumValue struct {
	Value   string
	Literal token.Position
}

func (n *EnumValue) Position() token.Position { return n.Literal }

type NullValue struct {
	Literal token.Position
}

func (n *NullValue) Position() token.Position { return n.Literal }

func IsNullValue(v Value) bool {
	_, ok := v.(*NullValue)
	return ok
}

type ListValue struct {
	Opening token.Position
	Values  []Value
	Closing token.Position
}

func (n *ListValue) Position() token.Position { return n.Opening }

type ObjectValue struct {
	Opening token.Position
	Fields  []*ObjectField
	Closing token.Position
}

func (n *ObjectValue) Position() token.Position { return n.Opening }

type ObjectField struct {
	Name  *Name
	Value Value
}

func (n *ObjectField) Position() token.Position { return n.Name.Position() }
