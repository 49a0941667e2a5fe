package schema

func optionalIncludeDeprecated() map[string]*InputValueDefinition {
	return map[string]*InputValueDefinition{
		"includeDeprecated": {
			Type:         BooleanType,
			DefaultValue: false,
		},
	}
}

func enumValues[T ~string](names ...T) map[string]*EnumValueDefinition {
	ret := make(map[string]*EnumValueDefinition, len(names))
	for _, name := range names {
		ret[string(name)] = &EnumValueDefinition{}
	}
	return ret
}

var typeKindType = &EnumType{
	Name:   "__TypeKind",
	Values: enumValues("SCALAR", "OBJECT", "INTERFACE", "UNION", "ENUM", "INPUT_OBJECT", "LIST", "NON_NULL"),
}

var directiveLocationType = &EnumType{
	Name: "__DirectiveLocation",
	Values: enumValues(
		DirectiveLocationQuery, DirectiveLocationMutation, DirectiveLocationSubscription, DirectiveLocationField,
		DirectiveLocationFragmentDefinition, DirectiveLocationFragmentSpread, DirectiveLocationInlineFragment,
		DirectiveLocationVariableDefinition, DirectiveLocationSchema, DirectiveLocationScalar,
		DirectiveLocationObject, DirectiveLocationFieldDefinition, DirectiveLocationArgumentDefinition,
		DirectiveLocationInterface, DirectiveLocationUnion, DirectiveLocationEnum, DirectiveLocationEnumValue,
		DirectiveLocationInputObject, DirectiveLocationInputFieldDefinition,
	),
}

var (
	schemaMetaType      = &ObjectType{Name: "__Schema"}
	typeMetaType        = &ObjectType{Name: "__Type"}
	fieldMetaType       = &ObjectType{Name: "__Field"}
	inputValueMetaType  = &ObjectType{Name: "__InputValue"}
	enumValueMetaType   = &ObjectType{Name: "__EnumValue"}
	directiveMetaType   = &ObjectType{Name: "__Directive"}
	nonNullStringType   = NewNonNullType(StringType)
	nonNullBooleanType  = NewNonNullType(BooleanType)
	nonNullTypeMetaType = NewNonNullType(typeMetaType)
)

func init() {
	typeList := NewListType(nonNullTypeMetaType)
	inputValueList := NewListType(NewNonNullType(inputValueMetaType))

	schemaMetaType.Fields = map[string]*FieldDefinition{
		"description":      {Type: StringType},
		"types":            {Type: NewNonNullType(typeList)},
		"queryType":        {Type: nonNullTypeMetaType},
		"mutationType":     {Type: typeMetaType},
		"subscriptionType": {Type: typeMetaType},
		"directives":       {Type: NewNonNullType(NewListType(NewNonNullType(directiveMetaType)))},
	}
	typeMetaType.Fields = map[string]*FieldDefinition{
		"kind":           {Type: NewNonNullType(typeKindType)},
		"name":           {Type: StringType},
		"description":    {Type: StringType},
		"specifiedByURL": {Type: StringType},
		"fields": {
			Type:      NewListType(NewNonNullType(fieldMetaType)),
			Arguments: optionalIncludeDeprecated(),
		},
		"interfaces":    {Type: typeList},
		"possibleTypes": {Type: typeList},
		"enumValues": {
			Type:      NewListType(NewNonNullType(enumValueMetaType)),
			Arguments: optionalIncludeDeprecated(),
		},
		"inputFields": {
			Type:      inputValueList,
			Arguments: optionalIncludeDeprecated(),
		},
		"ofType":  {Type: typeMetaType},
		"isOneOf": {Type: BooleanType},
	}
	fieldMetaType.Fields = map[string]*FieldDefinition{
		"name":        {Type: nonNullStringType},
		"description": {Type: StringType},
		"args": {
			Type:      NewNonNullType(inputValueList),
			Arguments: optionalIncludeDeprecated(),
		},
		"type":              {Type: nonNullTypeMetaType},
		"isDeprecated":      {Type: nonNullBooleanType},
		"deprecationReason": {Type: StringType},
	}
	inputValueMetaType.Fields = map[string]*FieldDefinition{
		"name":              {Type: nonNullStringType},
		"description":       {Type: StringType},
		"type":              {Type: nonNullTypeMetaType},
		"defaultValue":      {Type: StringType},
		"isDeprecated":      {Type: nonNullBooleanType},
		"deprecationReason": {Type: StringType},
	}
	enumValueMetaType.Fields = map[string]*FieldDefinition{
		"name":              {Type: nonNullStringType},
		"description":       {Type: StringType},
		"isDeprecated":      {Type: nonNullBooleanType},
		"deprecationReason": {Type: StringType},
	}
	directiveMetaType.Fields = map[string]*FieldDefinition{
		"name":         {Type: nonNullStringType},
		"description":  {Type: StringType},
		"isRepeatable": {Type: nonNullBooleanType},
		"locations":    {Type: NewNonNullType(NewListType(NewNonNullType(directiveLocationType)))},
		"args": {
			Type:      NewNonNullType(inputValueList),
			Arguments: optionalIncludeDeprecated(),
		},
	}
}

// SchemaFieldDefinition is the __schema meta-field available on the query root type.
var SchemaFieldDefinition = &FieldDefinition{
	Description: "Access the current type schema of this server.",
	Type:        NewNonNullType(schemaMetaType),
}

// TypeFieldDefinition is the __type meta-field available on the query root type.
var TypeFieldDefinition = &FieldDefinition{
	Description: "Request the type information of a single type.",
	Type:        typeMetaType,
	Arguments: map[string]*InputValueDefinition{
		"name": {Type: nonNullStringType},
	},
}
