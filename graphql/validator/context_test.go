package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbrown/gql-check/graphql/ast"
	"github.com/ccbrown/gql-check/graphql/schema"
)

func newTestContext(t *testing.T, s *schema.Schema, src string) (*Context, *ast.Document) {
	doc := parse(t, src)
	return NewContext(s, doc, NewTypeInfo(s)), doc
}

func usageNames(usages []VariableUsage) []string {
	var ret []string
	for _, usage := range usages {
		ret = append(ret, usage.Node.Name.Name)
	}
	return ret
}

func TestContext_RecursiveVariableUsages(t *testing.T) {
	ctx, doc := newTestContext(t, testSchema(t), `
		query Q($a: Int, $b: Int) { ...A field(a: $b) }
		fragment A on Query { field(a: $a) ...B }
		fragment B on Query { field(b: $b) ...A ...A ...Missing }
	`)
	op := doc.Definitions[0].(*ast.OperationDefinition)

	fragments := ctx.RecursivelyReferencedFragments(op)
	require.Len(t, fragments, 2)
	assert.Equal(t, "A", fragments[0].Name.Name)
	assert.Equal(t, "B", fragments[1].Name.Name)

	usages := ctx.RecursiveVariableUsages(op)
	assert.Equal(t, []string{"b", "a", "b"}, usageNames(usages))
	for _, usage := range usages {
		assert.Equal(t, schema.IntType, usage.Type)
		assert.Nil(t, usage.DefaultValue)
	}

	// memoized
	assert.Equal(t, usages, ctx.RecursiveVariableUsages(op))
}

func TestContext_VariableUsages(t *testing.T) {
	ctx, doc := newTestContext(t, testSchema(t), `
		query ($x: Boolean, $y: ID!, $z: Int) {
			dog { isHouseTrained(atOtherHomes: $x) }
			complex(ids: [$y], input: {count: $z, name: $y})
			field(a: $z, b: $z)
			unknown(u: $x)
		}
	`)
	op := doc.Definitions[0].(*ast.OperationDefinition)

	usages := ctx.VariableUsages(op)
	require.Equal(t, []string{"x", "y", "z", "y", "z", "z", "x"}, usageNames(usages))

	assert.Equal(t, schema.BooleanType, usages[0].Type)
	assert.Equal(t, true, usages[0].DefaultValue)

	assert.Equal(t, "ID!", usages[1].Type.String())
	assert.Nil(t, usages[1].DefaultValue)

	assert.Equal(t, schema.IntType, usages[2].Type)
	assert.Equal(t, 3, usages[2].DefaultValue)

	assert.Equal(t, schema.StringType, usages[3].Type)

	assert.Nil(t, usages[6].Type)
}

func TestContext_FragmentSpreads(t *testing.T) {
	ctx, doc := newTestContext(t, nil, `{ ...A dog { ...B ... on Dog { ...C } } }`)
	op := doc.Definitions[0].(*ast.OperationDefinition)

	var names []string
	for _, spread := range ctx.FragmentSpreads(op.SelectionSet) {
		names = append(names, spread.FragmentName.Name)
	}
	assert.ElementsMatch(t, []string{"A", "B", "C"}, names)
	assert.Nil(t, ctx.Fragment("A"))
	assert.Empty(t, ctx.RecursivelyReferencedFragments(op))
}

func TestContext_DirectiveArgumentNames(t *testing.T) {
	t.Run("Schema", func(t *testing.T) {
		ctx, _ := newTestContext(t, testSchema(t), `{ field }`)
		names := ctx.DirectiveArgumentNames()
		assert.Equal(t, []string{"scope", "ttl"}, names["cached"])
		assert.Equal(t, []string{"if"}, names["skip"])
		assert.Equal(t, []string{"if"}, names["include"])
		assert.Equal(t, []string{"reason"}, names["deprecated"])
	})

	t.Run("NoSchema", func(t *testing.T) {
		ctx, _ := newTestContext(t, nil, `{ field }`)
		names := ctx.DirectiveArgumentNames()
		assert.Len(t, names, 3)
		assert.Equal(t, []string{"if"}, names["skip"])
	})

	t.Run("DocumentDefinitions", func(t *testing.T) {
		ctx, _ := newTestContext(t, testSchema(t), `
			directive @cached(maxAge: Int) on FIELD
			directive @local(b: Int, a: Int) on FIELD
			{ field }
		`)
		names := ctx.DirectiveArgumentNames()
		assert.Equal(t, []string{"maxAge"}, names["cached"])
		assert.Equal(t, []string{"b", "a"}, names["local"])
		assert.Equal(t, []string{"if"}, names["skip"])
	})
}

func TestContext_ReportError(t *testing.T) {
	ctx, doc := newTestContext(t, nil, `{ field }`)
	assert.Empty(t, ctx.Errors())
	ctx.ReportError("first", doc.Definitions[0])
	ctx.ReportError("second")
	require.Len(t, ctx.Errors(), 2)
	assert.Equal(t, "first", ctx.Errors()[0].Message)
	assert.Equal(t, pos(1, 1), ctx.Errors()[0].Locations[0])
	assert.Empty(t, ctx.Errors()[1].Locations)
}
