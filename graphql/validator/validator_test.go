package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbrown/gql-check/graphql/ast"
	"github.com/ccbrown/gql-check/graphql/parser"
	"github.com/ccbrown/gql-check/graphql/schema"
	"github.com/ccbrown/gql-check/graphql/token"
)

func pos(line, column int) token.Position {
	return token.Position{Line: line, Column: column}
}

func testSchema(t *testing.T) *schema.Schema {
	node := &schema.InterfaceType{
		Name: "Node",
		Fields: map[string]*schema.FieldDefinition{
			"id": {
				Type: schema.NewNonNullType(schema.IDType),
			},
		},
	}
	dog := &schema.ObjectType{
		Name: "Dog",
		Fields: map[string]*schema.FieldDefinition{
			"id": {
				Type: schema.NewNonNullType(schema.IDType),
			},
			"name": {
				Type: schema.StringType,
				Arguments: map[string]*schema.InputValueDefinition{
					"surname": {Type: schema.BooleanType},
				},
			},
			"isHouseTrained": {
				Type: schema.BooleanType,
				Arguments: map[string]*schema.InputValueDefinition{
					"atOtherHomes": {
						Type:         schema.BooleanType,
						DefaultValue: true,
					},
				},
			},
		},
		ImplementedInterfaces: []*schema.InterfaceType{node},
	}
	dog.Fields["friends"] = &schema.FieldDefinition{
		Type: schema.NewListType(dog),
		Arguments: map[string]*schema.InputValueDefinition{
			"first":   {Type: schema.IntType},
			"after":   {Type: schema.StringType},
			"last":    {Type: schema.IntType},
			"before":  {Type: schema.StringType},
			"orderBy": {Type: schema.StringType},
			"filter":  {Type: schema.StringType},
		},
	}
	cat := &schema.ObjectType{
		Name: "Cat",
		Fields: map[string]*schema.FieldDefinition{
			"meows": {Type: schema.BooleanType},
		},
	}
	complexInput := &schema.InputObjectType{
		Name: "ComplexInput",
		Fields: map[string]*schema.InputValueDefinition{
			"name": {Type: schema.StringType},
			"count": {
				Type:         schema.IntType,
				DefaultValue: 3,
			},
		},
	}

	s, err := schema.New(&schema.SchemaDefinition{
		Directives: map[string]*schema.DirectiveDefinition{
			"cached": {
				Arguments: map[string]*schema.InputValueDefinition{
					"ttl":   {Type: schema.IntType},
					"scope": {Type: schema.StringType},
				},
				Locations: []schema.DirectiveLocation{schema.DirectiveLocationField},
			},
		},
		Query: &schema.ObjectType{
			Name: "Query",
			Fields: map[string]*schema.FieldDefinition{
				"node": {
					Type: node,
					Arguments: map[string]*schema.InputValueDefinition{
						"id": {Type: schema.NewNonNullType(schema.IDType)},
					},
				},
				"field": {
					Type: schema.StringType,
					Arguments: map[string]*schema.InputValueDefinition{
						"a": {Type: schema.IntType},
						"b": {Type: schema.IntType},
					},
				},
				"complex": {
					Type: schema.StringType,
					Arguments: map[string]*schema.InputValueDefinition{
						"input": {Type: complexInput},
						"ids":   {Type: schema.NewListType(schema.NewNonNullType(schema.IDType))},
					},
				},
				"dog": {
					Type: dog,
				},
				"pet": {
					Type: &schema.UnionType{
						Name:        "Pet",
						MemberTypes: []*schema.ObjectType{dog, cat},
					},
				},
				"scalar": {
					Type: schema.StringType,
				},
			},
		},
	})
	require.NoError(t, err)
	return s
}

func parse(t *testing.T, src string) *ast.Document {
	doc, errs := parser.ParseDocument([]byte(src))
	require.Empty(t, errs)
	require.NotNil(t, doc)
	return doc
}

func validateSource(t *testing.T, src string) []*Error {
	return ValidateDocument(parse(t, src), testSchema(t))
}

func messages(errs []*Error) []string {
	var ret []string
	for _, err := range errs {
		ret = append(ret, err.Message)
	}
	return ret
}

// expectErrors runs a single rule against the test schema and asserts the reported messages.
func expectErrors(t *testing.T, rule Rule, src string, expected ...string) []*Error {
	t.Helper()
	errs, err := Validate(parse(t, src), testSchema(t), rule)
	require.NoError(t, err)
	assert.Equal(t, expected, messages(errs), src)
	return errs
}

func TestValidateDocument(t *testing.T) {
	assert.Empty(t, validateSource(t, `
		query Dog($first: Int, $skip: Boolean!) {
			dog @skip(if: $skip) {
				...dogFields
			}
		}

		fragment dogFields on Dog {
			name(surname: true)
			friends(first: $first) @cached(ttl: 10) {
				id
				__typename
			}
		}
	`))

	errs := validateSource(t, `query Foo($unused: Int) { field(c: 1) dog { name(x: $undefined) } }`)
	assert.Equal(t, []string{
		`Unknown argument "c" on field "field" of type "Query". Did you mean "a" or "b"?`,
		`Unknown argument "x" on field "name" of type "Dog".`,
		`Variable "$unused" is never used in operation "Foo".`,
		`Variable "$undefined" is not defined by operation "Foo".`,
	}, messages(errs))
	assert.Equal(t, []token.Position{pos(1, 33)}, errs[0].Locations)
	assert.Equal(t, []token.Position{pos(1, 11)}, errs[2].Locations)
	assert.Equal(t, []token.Position{pos(1, 53), pos(1, 1)}, errs[3].Locations)
	assert.Len(t, errs[3].Nodes, 2)
}

func TestValidateDocument_NoSchema(t *testing.T) {
	errs := ValidateDocument(parse(t, `query Foo($x: Int) { a(b: $x) @skip(if: true, unless: false) { c(d: 1) } }`), nil)
	assert.Equal(t, []string{`Unknown argument "unless" on directive "@skip".`}, messages(errs))
}

func TestValidate_InternalError(t *testing.T) {
	panicky := func(ctx *Context) ast.Visitor {
		return ast.VisitorFuncs{
			EnterFunc: func(node ast.Node) ast.VisitAction {
				if _, ok := node.(*ast.Field); ok {
					panic(errors.New("boom"))
				}
				return ast.Continue
			},
		}
	}
	doc := parse(t, `query Foo($x: Int) { field }`)

	errs, err := Validate(doc, testSchema(t), NoUnusedVariables, panicky)
	assert.Nil(t, errs)
	var internal *InternalError
	require.True(t, errors.As(err, &internal))
	assert.Contains(t, err.Error(), "boom")

	_, err = Validate(doc, nil, func(ctx *Context) ast.Visitor {
		return ast.VisitorFuncs{
			EnterFunc: func(node ast.Node) ast.VisitAction {
				panic("not an error")
			},
		}
	})
	assert.True(t, errors.As(err, &internal))
	assert.Contains(t, err.Error(), "not an error")

	assert.Panics(t, func() {
		validate(doc, nil, []Rule{panicky})
	})
}

func TestValidate_DefaultRules(t *testing.T) {
	errs, err := Validate(parse(t, `query ($x: Int) { field }`), testSchema(t))
	require.NoError(t, err)
	assert.Equal(t, []string{`Variable "$x" is never used.`}, messages(errs))
}

func TestValidate_RegistrationOrderInterleaving(t *testing.T) {
	src := `query Foo($a: Int) { field(a: $b) }`
	errs, err := Validate(parse(t, src), testSchema(t), NoUnusedVariables, NoUndefinedVariables)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`Variable "$a" is never used in operation "Foo".`,
		`Variable "$b" is not defined by operation "Foo".`,
	}, messages(errs))

	errs, err = Validate(parse(t, src), testSchema(t), NoUndefinedVariables, NoUnusedVariables)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`Variable "$b" is not defined by operation "Foo".`,
		`Variable "$a" is never used in operation "Foo".`,
	}, messages(errs))
}
