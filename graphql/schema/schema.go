package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// Schema is a read-only view of a validated schema definition.
type Schema struct {
	directives map[string]*DirectiveDefinition
	namedTypes map[string]NamedType

	query        *ObjectType
	mutation     *ObjectType
	subscription *ObjectType
}

func (s *Schema) QueryType() *ObjectType {
	return s.query
}

func (s *Schema) MutationType() *ObjectType {
	return s.mutation
}

func (s *Schema) SubscriptionType() *ObjectType {
	return s.subscription
}

func (s *Schema) NamedType(name string) NamedType {
	return s.namedTypes[name]
}

func (s *Schema) NamedTypes() map[string]NamedType {
	return s.namedTypes
}

// Directives returns every directive available to documents, including the specified directives
// unless the schema definition replaces them.
func (s *Schema) Directives() map[string]*DirectiveDefinition {
	return s.directives
}

func (s *Schema) DirectiveDefinition(name string) *DirectiveDefinition {
	return s.directives[name]
}

var nameRegex = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

func isName(s string) bool {
	return nameRegex.MatchString(s)
}

func New(def *SchemaDefinition) (*Schema, error) {
	var err error
	schema := &Schema{
		directives:   map[string]*DirectiveDefinition{},
		namedTypes:   map[string]NamedType{},
		query:        def.Query,
		mutation:     def.Mutation,
		subscription: def.Subscription,
	}

	if schema.query == nil {
		return nil, fmt.Errorf("schemas must define the query operation")
	}

	for name, d := range def.Directives {
		if !isName(name) || strings.HasPrefix(name, "__") {
			return nil, fmt.Errorf("illegal directive name: %v", name)
		}
		schema.directives[name] = d
	}
	for name, d := range SpecifiedDirectives {
		if _, ok := schema.directives[name]; !ok {
			schema.directives[name] = d
		}
	}

	Inspect(def, func(node interface{}) bool {
		if err != nil {
			return false
		}

		if namedType, ok := node.(NamedType); ok {
			name := namedType.TypeName()
			existing, visited := schema.namedTypes[name]
			if !isName(name) || strings.HasPrefix(name, "__") {
				err = fmt.Errorf("illegal type name: %v", name)
			} else if visited && existing != namedType {
				err = fmt.Errorf("multiple definitions for named type: %v", name)
			} else if builtin, ok := BuiltInTypes[name]; ok && namedType != builtin {
				err = fmt.Errorf("%v builtin may not be overridden", name)
			} else if visited {
				return false
			} else {
				schema.namedTypes[name] = namedType
			}
		}

		if err == nil {
			if n, ok := node.(interface {
				shallowValidate() error
			}); ok {
				err = n.shallowValidate()
			}
		}

		return err == nil
	})

	if err != nil {
		return nil, err
	}

	for name, t := range BuiltInTypes {
		if _, ok := schema.namedTypes[name]; !ok {
			schema.namedTypes[name] = t
		}
	}

	return schema, nil
}

type SchemaDefinition struct {
	Directives map[string]*DirectiveDefinition

	Query        *ObjectType
	Mutation     *ObjectType
	Subscription *ObjectType

	// Types that aren't reachable from the operation types, such as interface implementations.
	AdditionalTypes []NamedType
}

type Type interface {
	String() string
	IsInputType() bool
	IsOutputType() bool
	IsSameType(Type) bool
}

type NamedType interface {
	Type
	TypeName() string
}

type WrappedType interface {
	Type
	Unwrap() Type
}

// UnwrappedType strips any list and non-null wrappers from t.
func UnwrappedType(t Type) NamedType {
	for {
		if wrapped, ok := t.(WrappedType); ok {
			t = wrapped.Unwrap()
		} else {
			break
		}
	}
	if named, ok := t.(NamedType); ok {
		return named
	}
	return nil
}

// NullableType strips a non-null wrapper from t, if it has one.
func NullableType(t Type) Type {
	if nn, ok := t.(*NonNullType); ok {
		return nn.Type
	}
	return t
}

// IsCompositeType returns true for types that may have selection sets.
func IsCompositeType(t Type) bool {
	switch t.(type) {
	case *ObjectType, *InterfaceType, *UnionType:
		return true
	}
	return false
}
