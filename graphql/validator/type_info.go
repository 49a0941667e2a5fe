package validator

import (
	"github.com/ccbrown/gql-check/graphql/ast"
	"github.com/ccbrown/gql-check/graphql/schema"
)

// TypeInfo tracks the schema types that correspond to the current position of a walk. Every
// lookup returns nil when the position can't be resolved, including when there is no schema.
type TypeInfo struct {
	schema *schema.Schema

	typeStack         []schema.Type
	parentTypeStack   []schema.NamedType
	inputTypeStack    []schema.Type
	fieldDefStack     []*schema.FieldDefinition
	defaultValueStack []interface{}

	inDirective bool
	directive   *schema.DirectiveDefinition
	argument    *schema.InputValueDefinition
}

func NewTypeInfo(s *schema.Schema) *TypeInfo {
	return &TypeInfo{
		schema: s,
	}
}

func top[T any](stack []T) T {
	var zero T
	if len(stack) == 0 {
		return zero
	}
	return stack[len(stack)-1]
}

func pop[T any](stack []T) []T {
	if len(stack) == 0 {
		return stack
	}
	return stack[:len(stack)-1]
}

// Type is the output type of the current field, fragment, or operation.
func (t *TypeInfo) Type() schema.Type {
	return top(t.typeStack)
}

// ParentType is the composite type that encloses the current selection.
func (t *TypeInfo) ParentType() schema.NamedType {
	return top(t.parentTypeStack)
}

// InputType is the expected type of the current argument, variable definition, or input value.
func (t *TypeInfo) InputType() schema.Type {
	return top(t.inputTypeStack)
}

// ParentInputType is the input type that encloses the current input value.
func (t *TypeInfo) ParentInputType() schema.Type {
	if len(t.inputTypeStack) < 2 {
		return nil
	}
	return t.inputTypeStack[len(t.inputTypeStack)-2]
}

func (t *TypeInfo) FieldDefinition() *schema.FieldDefinition {
	return top(t.fieldDefStack)
}

// DefaultValue is the default of the current argument or input field, if it has one.
func (t *TypeInfo) DefaultValue() interface{} {
	return top(t.defaultValueStack)
}

func (t *TypeInfo) Directive() *schema.DirectiveDefinition {
	return t.directive
}

func (t *TypeInfo) Argument() *schema.InputValueDefinition {
	return t.argument
}

func (t *TypeInfo) namedType(name string) schema.NamedType {
	if t.schema == nil {
		return nil
	}
	return t.schema.NamedType(name)
}

func (t *TypeInfo) typeFromAST(node ast.Type) schema.Type {
	switch node := node.(type) {
	case *ast.ListType:
		if inner := t.typeFromAST(node.Type); inner != nil {
			return schema.NewListType(inner)
		}
	case *ast.NonNullType:
		if inner := t.typeFromAST(node.Type); inner != nil {
			return schema.NewNonNullType(inner)
		}
	case *ast.NamedType:
		if named := t.namedType(node.Name.Name); named != nil {
			return named
		}
	}
	return nil
}

func (t *TypeInfo) fieldDefinition(parentType schema.NamedType, name string) *schema.FieldDefinition {
	if parentType == nil {
		return nil
	}
	switch name {
	case "__typename":
		if schema.IsCompositeType(parentType) {
			return schema.TypenameFieldDefinition
		}
	case "__schema", "__type":
		if t.schema != nil && parentType == schema.NamedType(t.schema.QueryType()) {
			if name == "__schema" {
				return schema.SchemaFieldDefinition
			}
			return schema.TypeFieldDefinition
		}
	}
	switch parentType := parentType.(type) {
	case *schema.ObjectType:
		return parentType.Fields[name]
	case *schema.InterfaceType:
		return parentType.Fields[name]
	}
	return nil
}

func outputType(t schema.Type) schema.Type {
	if t != nil && t.IsOutputType() {
		return t
	}
	return nil
}

func inputType(t schema.Type) schema.Type {
	if t != nil && t.IsInputType() {
		return t
	}
	return nil
}

func (t *TypeInfo) Enter(node ast.Node) {
	switch node := node.(type) {
	case *ast.SelectionSet:
		var parentType schema.NamedType
		if named := schema.UnwrappedType(t.Type()); named != nil && schema.IsCompositeType(named) {
			parentType = named
		}
		t.parentTypeStack = append(t.parentTypeStack, parentType)
	case *ast.Field:
		fieldDef := t.fieldDefinition(t.ParentType(), node.Name.Name)
		var fieldType schema.Type
		if fieldDef != nil {
			fieldType = fieldDef.Type
		}
		t.fieldDefStack = append(t.fieldDefStack, fieldDef)
		t.typeStack = append(t.typeStack, outputType(fieldType))
	case *ast.Directive:
		t.inDirective = true
		if t.schema != nil {
			t.directive = t.schema.DirectiveDefinition(node.Name.Name)
		} else {
			t.directive = schema.SpecifiedDirectives[node.Name.Name]
		}
	case *ast.OperationDefinition:
		var opType schema.Type
		if t.schema != nil {
			switch {
			case node.IsQuery():
				opType = t.schema.QueryType()
			case node.OperationType.Value == ast.OperationTypeMutation:
				if mutation := t.schema.MutationType(); mutation != nil {
					opType = mutation
				}
			case node.OperationType.Value == ast.OperationTypeSubscription:
				if subscription := t.schema.SubscriptionType(); subscription != nil {
					opType = subscription
				}
			}
		}
		t.typeStack = append(t.typeStack, opType)
	case *ast.InlineFragment, *ast.FragmentDefinition:
		var typeCondition *ast.NamedType
		if inline, ok := node.(*ast.InlineFragment); ok {
			typeCondition = inline.TypeCondition
		} else {
			typeCondition = node.(*ast.FragmentDefinition).TypeCondition
		}
		var fragmentType schema.Type
		if typeCondition != nil {
			if named := t.namedType(typeCondition.Name.Name); named != nil {
				fragmentType = named
			}
		} else {
			fragmentType = schema.UnwrappedType(t.Type())
		}
		t.typeStack = append(t.typeStack, outputType(fragmentType))
	case *ast.VariableDefinition:
		t.inputTypeStack = append(t.inputTypeStack, inputType(t.typeFromAST(node.Type)))
	case *ast.Argument:
		var argDef *schema.InputValueDefinition
		var argType schema.Type
		var arguments map[string]*schema.InputValueDefinition
		if t.inDirective {
			if t.directive != nil {
				arguments = t.directive.Arguments
			}
		} else if fieldDef := t.FieldDefinition(); fieldDef != nil {
			arguments = fieldDef.Arguments
		}
		if def, ok := arguments[node.Name.Name]; ok {
			argDef = def
			argType = def.Type
		}
		t.argument = argDef
		var defaultValue interface{}
		if argDef != nil {
			defaultValue = argDef.DefaultValue
		}
		t.defaultValueStack = append(t.defaultValueStack, defaultValue)
		t.inputTypeStack = append(t.inputTypeStack, inputType(argType))
	case *ast.ListValue:
		listType := schema.NullableType(t.InputType())
		itemType := listType
		if list, ok := listType.(*schema.ListType); ok {
			itemType = list.Type
		}
		t.defaultValueStack = append(t.defaultValueStack, nil)
		t.inputTypeStack = append(t.inputTypeStack, inputType(itemType))
	case *ast.ObjectField:
		var fieldType schema.Type
		var defaultValue interface{}
		if objectType, ok := schema.UnwrappedType(t.InputType()).(*schema.InputObjectType); ok {
			if inputField := objectType.Fields[node.Name.Name]; inputField != nil {
				fieldType = inputField.Type
				defaultValue = inputField.DefaultValue
			}
		}
		t.defaultValueStack = append(t.defaultValueStack, defaultValue)
		t.inputTypeStack = append(t.inputTypeStack, inputType(fieldType))
	}
}

func (t *TypeInfo) Leave(node ast.Node) {
	switch node.(type) {
	case *ast.SelectionSet:
		t.parentTypeStack = pop(t.parentTypeStack)
	case *ast.Field:
		t.fieldDefStack = pop(t.fieldDefStack)
		t.typeStack = pop(t.typeStack)
	case *ast.Directive:
		t.inDirective = false
		t.directive = nil
	case *ast.OperationDefinition, *ast.InlineFragment, *ast.FragmentDefinition:
		t.typeStack = pop(t.typeStack)
	case *ast.VariableDefinition:
		t.inputTypeStack = pop(t.inputTypeStack)
	case *ast.Argument:
		t.argument = nil
		t.defaultValueStack = pop(t.defaultValueStack)
		t.inputTypeStack = pop(t.inputTypeStack)
	case *ast.ListValue, *ast.ObjectField:
		t.defaultValueStack = pop(t.defaultValueStack)
		t.inputTypeStack = pop(t.inputTypeStack)
	}
}
