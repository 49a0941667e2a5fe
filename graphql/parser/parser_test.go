package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbrown/gql-check/graphql/ast"
	"github.com/ccbrown/gql-check/graphql/token"
)

func pos(line, column int) token.Position {
	return token.Position{Line: line, Column: column}
}

func TestParser_ParseValue(t *testing.T) {
	for src, expected := range map[string]ast.Value{
		`null`: &ast.NullValue{Literal: pos(1, 1)},
		`[123 "abc"]`: &ast.ListValue{
			Opening: pos(1, 1),
			Values: []ast.Value{
				&ast.IntValue{
					Value:   "123",
					Literal: pos(1, 2),
				},
				&ast.StringValue{
					Value:   "abc",
					Literal: pos(1, 6),
				},
			},
			Closing: pos(1, 11),
		},
		`["""long""" "short"]`: &ast.ListValue{
			Opening: pos(1, 1),
			Values: []ast.Value{
				&ast.StringValue{
					Value:   "long",
					Literal: pos(1, 2),
				},
				&ast.StringValue{
					Value:   "short",
					Literal: pos(1, 13),
				},
			},
			Closing: pos(1, 20),
		},
		`{foo: "foo"}`: &ast.ObjectValue{
			Opening: pos(1, 1),
			Fields: []*ast.ObjectField{
				{
					Name: &ast.Name{
						Name:         "foo",
						NamePosition: pos(1, 2),
					},
					Value: &ast.StringValue{
						Value:   "foo",
						Literal: pos(1, 7),
					},
				},
			},
			Closing: pos(1, 12),
		},
	} {
		actual, errs := ParseValue([]byte(src))
		assert.Empty(t, errs)
		assert.Equal(t, expected, actual)
	}
}

func TestParser_ParseDocument(t *testing.T) {
	doc, errs := ParseDocument([]byte(`query Foo($id: ID! = "x" @dir) @op {
  alias: node(id: $id) { ...frag ... on Node @skip(if: true) { id } }
}
fragment frag on Node { id }`))
	require.Empty(t, errs)
	require.Len(t, doc.Definitions, 2)

	op := doc.Definitions[0].(*ast.OperationDefinition)
	assert.Equal(t, "query", op.OperationType.Value)
	assert.Equal(t, "Foo", op.Name.Name)
	assert.Equal(t, pos(1, 1), op.Position())
	require.Len(t, op.VariableDefinitions, 1)
	assert.Equal(t, pos(1, 11), op.VariableDefinitions[0].Position())
	assert.IsType(t, &ast.NonNullType{}, op.VariableDefinitions[0].Type)
	assert.Equal(t, "dir", op.VariableDefinitions[0].Directives[0].Name.Name)
	assert.Equal(t, "op", op.Directives[0].Name.Name)

	field := op.SelectionSet.Selections[0].(*ast.Field)
	assert.Equal(t, "alias", field.Alias.Name)
	assert.Equal(t, "node", field.Name.Name)
	assert.Equal(t, pos(2, 3), field.Position())
	assert.Equal(t, pos(2, 15), field.Arguments[0].Position())
	assert.Equal(t, pos(2, 19), field.Arguments[0].Value.Position())

	spread := field.SelectionSet.Selections[0].(*ast.FragmentSpread)
	assert.Equal(t, "frag", spread.FragmentName.Name)
	inline := field.SelectionSet.Selections[1].(*ast.InlineFragment)
	assert.Equal(t, "Node", inline.TypeCondition.Name.Name)
	assert.Equal(t, "skip", inline.Directives[0].Name.Name)

	frag := doc.Definitions[1].(*ast.FragmentDefinition)
	assert.Equal(t, "frag", frag.Name.Name)
	assert.Equal(t, pos(4, 1), frag.Position())
}

func TestParser_ShorthandQuery(t *testing.T) {
	doc, errs := ParseDocument([]byte(`  { a }`))
	require.Empty(t, errs)
	op := doc.Definitions[0].(*ast.OperationDefinition)
	assert.Nil(t, op.OperationType)
	assert.True(t, op.IsQuery())
	assert.Equal(t, pos(1, 3), op.Position())
}

func TestParser_DirectiveDefinition(t *testing.T) {
	doc, errs := ParseDocument([]byte(`"caches things"
directive @cached(ttl: Int = 60, "scope" scope: [String!]) repeatable on | FIELD | QUERY
{ a @cached(ttl: 1) }`))
	require.Empty(t, errs)
	require.Len(t, doc.Definitions, 2)

	def := doc.Definitions[0].(*ast.DirectiveDefinition)
	assert.Equal(t, "caches things", def.Description.Value)
	assert.Equal(t, "cached", def.Name.Name)
	assert.True(t, def.Repeatable)
	require.Len(t, def.Arguments, 2)
	assert.Equal(t, "ttl", def.Arguments[0].Name.Name)
	assert.Equal(t, &ast.IntValue{Value: "60", Literal: pos(2, 30)}, def.Arguments[0].DefaultValue)
	assert.Equal(t, "scope", def.Arguments[1].Description.Value)
	assert.IsType(t, &ast.ListType{}, def.Arguments[1].Type)
	require.Len(t, def.Locations, 2)
	assert.Equal(t, "FIELD", def.Locations[0].Name)
	assert.Equal(t, "QUERY", def.Locations[1].Name)
	assert.Equal(t, pos(1, 1), def.Position())
	assert.Equal(t, pos(2, 1), def.Directive)
}

func TestParser_Errors(t *testing.T) {
	for src, location := range map[string]token.Position{
		``:                       {},
		`{`:                      pos(1, 1),
		`query {}`:               pos(1, 8),
		"{\n  a(b: )\n}":         pos(2, 8),
		`fragment on on T { a }`: pos(1, 10),
		`directive @d on`:        pos(1, 14),
		`query ($a Int) { a }`:   pos(1, 11),
		`{ a(b: [1 }`:            pos(1, 11),
		`{ a } ?`:                pos(1, 7),
	} {
		doc, errs := ParseDocument([]byte(src))
		assert.Nil(t, doc, src)
		if assert.NotEmpty(t, errs, src) && location.IsValid() {
			assert.Equal(t, location, errs[0].Location, src)
		}
	}
}

func TestParser_MaxRecursion(t *testing.T) {
	src := ""
	for i := 0; i < 2000; i++ {
		src += "["
	}
	_, errs := ParseValue([]byte(src))
	assert.NotEmpty(t, errs)
}

func TestParser_ErrorMessages(t *testing.T) {
	for src, message := range map[string]string{
		``:                           `Syntax Error: Unexpected <EOF>.`,
		`{`:                          `Syntax Error: Expected "}", found <EOF>.`,
		`query {}`:                   `Syntax Error: Expected Name, found "}".`,
		`{ a(b: ) }`:                 `Syntax Error: Unexpected ")".`,
		`{ a(b: $) }`:                `Syntax Error: Expected Name, found ")".`,
		`fragment on on T { a }`:     `Syntax Error: Unexpected Name "on".`,
		`query ($a Int) { a }`:       `Syntax Error: Expected ":", found Name "Int".`,
		`"desc" query { a }`:         `Syntax Error: Expected "directive", found Name "query".`,
		`subscriptions { a }`:        `Syntax Error: Unexpected Name "subscriptions".`,
		`query ($a: Int = $b) { a }`: `Syntax Error: Unexpected "$".`,
		`{ a } ?`:                    `Syntax Error: illegal character U+003F '?'`,
	} {
		_, errs := ParseDocument([]byte(src))
		if assert.NotEmpty(t, errs, src) {
			assert.Equal(t, message, errs[0].Message, src)
		}
	}
}

func TestParser_ParseValue_TrailingTokens(t *testing.T) {
	value, errs := ParseValue([]byte(`1 2`))
	assert.Nil(t, value)
	require.Len(t, errs, 1)
	assert.Equal(t, `Syntax Error: Unexpected Int "2".`, errs[0].Message)
	assert.Equal(t, pos(1, 3), errs[0].Location)
}
