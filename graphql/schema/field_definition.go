package schema

import (
	"fmt"
	"strings"
)

// FieldDefinition defines an object's field.
type FieldDefinition struct {
	Description       string
	Arguments         map[string]*InputValueDefinition
	Type              Type
	DeprecationReason string
}

// ArgumentNames returns the names of the field's arguments in lexical order.
func (d *FieldDefinition) ArgumentNames() []string {
	return sortedArgumentNames(d.Arguments)
}

func (d *FieldDefinition) shallowValidate() error {
	if d.Type == nil {
		return fmt.Errorf("field is missing type")
	} else if !d.Type.IsOutputType() {
		return fmt.Errorf("%v cannot be used as a field type", d.Type)
	} else {
		for name := range d.Arguments {
			if !isName(name) || strings.HasPrefix(name, "__") {
				return fmt.Errorf("illegal field argument name: %v", name)
			}
		}
	}
	return nil
}

// TypenameFieldDefinition is the __typename meta-field available on every composite type.
var TypenameFieldDefinition = &FieldDefinition{
	Description: "The name of the current Object type at runtime.",
	Type:        NewNonNullType(StringType),
}
