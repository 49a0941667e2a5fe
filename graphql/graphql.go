package graphql

import (
	"github.com/ccbrown/gql-check/graphql/ast"
	"github.com/ccbrown/gql-check/graphql/parser"
	"github.com/ccbrown/gql-check/graphql/schema"
	"github.com/ccbrown/gql-check/graphql/schema/introspection"
	"github.com/ccbrown/gql-check/graphql/token"
	"github.com/ccbrown/gql-check/graphql/validator"
)

type Type = schema.Type
type NamedType = schema.NamedType
type ObjectType = schema.ObjectType
type InterfaceType = schema.InterfaceType
type EnumType = schema.EnumType
type EnumValueDefinition = schema.EnumValueDefinition
type ScalarType = schema.ScalarType
type UnionType = schema.UnionType
type InputObjectType = schema.InputObjectType
type NonNullType = schema.NonNullType
type ListType = schema.ListType

type InputValueDefinition = schema.InputValueDefinition
type FieldDefinition = schema.FieldDefinition
type DirectiveDefinition = schema.DirectiveDefinition
type DirectiveLocation = schema.DirectiveLocation

var (
	IntType     = schema.IntType
	FloatType   = schema.FloatType
	StringType  = schema.StringType
	BooleanType = schema.BooleanType
	IDType      = schema.IDType
)

func NewNonNullType(t Type) *NonNullType {
	return schema.NewNonNullType(t)
}

func NewListType(t Type) *ListType {
	return schema.NewListType(t)
}

type Schema = schema.Schema
type SchemaDefinition = schema.SchemaDefinition

func NewSchema(def *SchemaDefinition) (*Schema, error) {
	return schema.New(def)
}

// LoadIntrospectionSchema builds a schema from the JSON result of an introspection query.
func LoadIntrospectionSchema(b []byte) (*Schema, error) {
	return introspection.Load(b)
}

type Rule = validator.Rule

// SpecifiedRules are the rules used when no others are given.
var SpecifiedRules = validator.SpecifiedRules

type Location struct {
	Line   int `json:"line" msgpack:"line"`
	Column int `json:"column" msgpack:"column"`
}

func newLocation(p token.Position) Location {
	return Location{
		Line:   p.Line,
		Column: p.Column,
	}
}

type Error struct {
	Message   string     `json:"message" msgpack:"message"`
	Locations []Location `json:"locations,omitempty" msgpack:"locations,omitempty"`
}

func (err *Error) Error() string {
	return err.Message
}

func newErrorFromParserError(err *parser.Error) *Error {
	ret := &Error{
		Message: err.Message,
	}
	if err.Location.IsValid() {
		ret.Locations = []Location{newLocation(err.Location)}
	}
	return ret
}

func newErrorFromValidatorError(err *validator.Error) *Error {
	ret := &Error{
		Message: err.Message,
	}
	for _, loc := range err.Locations {
		ret.Locations = append(ret.Locations, newLocation(loc))
	}
	return ret
}

// Parse parses a document. If any errors are returned, the document is nil.
func Parse(query string) (*ast.Document, []*Error) {
	doc, parseErrs := parser.ParseDocument([]byte(query))
	if len(parseErrs) > 0 {
		ret := make([]*Error, len(parseErrs))
		for i, err := range parseErrs {
			ret[i] = newErrorFromParserError(err)
		}
		return nil, ret
	}
	return doc, nil
}

// Validate validates a parsed document using the given rules, or the specified rules if none are
// given. The schema may be nil. The returned error is non-nil only if a rule fails internally.
func Validate(doc *ast.Document, s *Schema, rules ...Rule) ([]*Error, error) {
	validationErrs, err := validator.Validate(doc, s, rules...)
	if err != nil {
		return nil, err
	}
	var ret []*Error
	for _, err := range validationErrs {
		ret = append(ret, newErrorFromValidatorError(err))
	}
	return ret, nil
}

// ParseAndValidate parses and validates a query using the specified rules. If any errors are
// returned, the document is nil.
func ParseAndValidate(query string, s *Schema) (*ast.Document, []*Error) {
	doc, errs := Parse(query)
	if len(errs) > 0 {
		return nil, errs
	}
	if validationErrs := validator.ValidateDocument(doc, s); len(validationErrs) > 0 {
		ret := make([]*Error, len(validationErrs))
		for i, err := range validationErrs {
			ret[i] = newErrorFromValidatorError(err)
		}
		return nil, ret
	}
	return doc, nil
}
