package schema

var IntType = &ScalarType{
	Name:        "Int",
	Description: "The `Int` scalar type represents non-fractional signed whole numeric values.",
}

var FloatType = &ScalarType{
	Name:        "Float",
	Description: "The `Float` scalar type represents signed double-precision fractional values.",
}

var StringType = &ScalarType{
	Name:        "String",
	Description: "The `String` scalar type represents textual data as UTF-8 character sequences.",
}

var BooleanType = &ScalarType{
	Name:        "Boolean",
	Description: "The `Boolean` scalar type represents `true` or `false`.",
}

var IDType = &ScalarType{
	Name:        "ID",
	Description: "The `ID` scalar type represents a unique identifier.",
}

// BuiltInTypes are available in every schema.
var BuiltInTypes = map[string]NamedType{
	"Int":     IntType,
	"Float":   FloatType,
	"String":  StringType,
	"Boolean": BooleanType,
	"ID":      IDType,
}

var IncludeDirective = &DirectiveDefinition{
	Description: "Directs the executor to include this field or fragment only when the `if` argument is true.",
	Arguments: map[string]*InputValueDefinition{
		"if": {
			Description: "Included when true.",
			Type:        NewNonNullType(BooleanType),
		},
	},
	Locations: []DirectiveLocation{DirectiveLocationField, DirectiveLocationFragmentSpread, DirectiveLocationInlineFragment},
}

var SkipDirective = &DirectiveDefinition{
	Description: "Directs the executor to skip this field or fragment when the `if` argument is true.",
	Arguments: map[string]*InputValueDefinition{
		"if": {
			Description: "Skipped when true.",
			Type:        NewNonNullType(BooleanType),
		},
	},
	Locations: []DirectiveLocation{DirectiveLocationField, DirectiveLocationFragmentSpread, DirectiveLocationInlineFragment},
}

var DeprecatedDirective = &DirectiveDefinition{
	Description: "Marks an element of a GraphQL schema as no longer supported.",
	Arguments: map[string]*InputValueDefinition{
		"reason": {
			Description:  "Explains why this element was deprecated.",
			Type:         StringType,
			DefaultValue: "No longer supported",
		},
	},
	Locations: []DirectiveLocation{
		DirectiveLocationFieldDefinition,
		DirectiveLocationArgumentDefinition,
		DirectiveLocationInputFieldDefinition,
		DirectiveLocationEnumValue,
	},
}

// SpecifiedDirectives are available in every schema unless the schema defines a directive with
// the same name.
var SpecifiedDirectives = map[string]*DirectiveDefinition{
	"include":    IncludeDirective,
	"skip":       SkipDirective,
	"deprecated": DeprecatedDirective,
}
