package schema

import "fmt"

type EnumType struct {
	Name        string
	Description string
	Values      map[string]*EnumValueDefinition
}

type EnumValueDefinition struct {
	Description       string
	DeprecationReason string
}

func (t *EnumType) String() string {
	return t.Name
}

func (t *EnumType) IsInputType() bool {
	return true
}

func (t *EnumType) IsOutputType() bool {
	return true
}

func (t *EnumType) IsSameType(other Type) bool {
	return t == other
}

func (t *EnumType) TypeName() string {
	return t.Name
}

func (d *EnumType) shallowValidate() error {
	if len(d.Values) == 0 {
		return fmt.Errorf("%v must have at least one value", d.Name)
	}
	for name := range d.Values {
		if !isName(name) || name == "true" || name == "false" || name == "null" {
			return fmt.Errorf("illegal enum value: %v", name)
		}
	}
	return nil
}
