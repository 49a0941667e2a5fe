package schema

import (
	"fmt"
	"reflect"
	"sort"
)

// Inspect traverses the schema definition in depth-first order. If f returns true, Inspect invokes
// f recursively for each of the non-nil children of node, followed by a call of f(nil). Map
// entries are visited in key order.
func Inspect(node interface{}, f func(interface{}) bool) {
	if node == nil || reflect.ValueOf(node).IsNil() || !f(node) {
		return
	}

	switch n := node.(type) {
	case *SchemaDefinition:
		for _, name := range sortedKeys(n.Directives) {
			Inspect(n.Directives[name], f)
		}
		Inspect(n.Query, f)
		Inspect(n.Mutation, f)
		Inspect(n.Subscription, f)
		for _, node := range n.AdditionalTypes {
			Inspect(node, f)
		}
	case *UnionType:
		for _, node := range n.MemberTypes {
			Inspect(node, f)
		}
	case *InterfaceType:
		for _, name := range sortedKeys(n.Fields) {
			Inspect(n.Fields[name], f)
		}
	case *InputObjectType:
		for _, name := range sortedKeys(n.Fields) {
			Inspect(n.Fields[name], f)
		}
	case *ObjectType:
		for _, name := range sortedKeys(n.Fields) {
			Inspect(n.Fields[name], f)
		}
		for _, node := range n.ImplementedInterfaces {
			Inspect(node, f)
		}
	case *FieldDefinition:
		Inspect(n.Type, f)
		for _, name := range sortedKeys(n.Arguments) {
			Inspect(n.Arguments[name], f)
		}
	case *InputValueDefinition:
		Inspect(n.Type, f)
	case *DirectiveDefinition:
		for _, name := range sortedKeys(n.Arguments) {
			Inspect(n.Arguments[name], f)
		}
	case *ListType:
		Inspect(n.Type, f)
	case *NonNullType:
		Inspect(n.Type, f)
	case *EnumType, *ScalarType:
	default:
		panic(fmt.Errorf("unknown node type: %T", n))
	}

	f(nil)
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
