package schema

type NonNullType struct {
	Type Type
}

func NewNonNullType(t Type) *NonNullType {
	return &NonNullType{
		Type: t,
	}
}

func (d *NonNullType) String() string {
	return d.Type.String() + "!"
}

func (d *NonNullType) IsInputType() bool {
	return d.Type.IsInputType()
}

func (d *NonNullType) IsOutputType() bool {
	return d.Type.IsOutputType()
}

func (d *NonNullType) IsSameType(other Type) bool {
	if nn, ok := other.(*NonNullType); ok {
		return d.Type.IsSameType(nn.Type)
	}
	return false
}

func (d *NonNullType) Unwrap() Type {
	return d.Type
}

func IsNonNullType(t Type) bool {
	_, ok := t.(*NonNullType)
	return ok
}

// IsSubTypeOf reports whether a value of type t may be used where other is expected.
func IsSubTypeOf(t, other Type) bool {
	if t.IsSameType(other) {
		return true
	}
	switch t := t.(type) {
	case *NonNullType:
		if nn, ok := other.(*NonNullType); ok {
			return IsSubTypeOf(t.Type, nn.Type)
		}
		return IsSubTypeOf(t.Type, other)
	case *ListType:
		if list, ok := other.(*ListType); ok {
			return IsSubTypeOf(t.Type, list.Type)
		}
	case *ObjectType:
		return t.IsSubTypeOf(other)
	}
	return false
}
