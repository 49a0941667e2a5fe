package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ccbrown/gql-check/graphql/token"
)

func TestUniqueOperationNames(t *testing.T) {
	expectErrors(t, UniqueOperationNames, `query foo {scalar}`)
	expectErrors(t, UniqueOperationNames, `query foo {scalar} mutation bar {scalar} {scalar}`)

	errs := expectErrors(t, UniqueOperationNames, `query foo {scalar} query foo {scalar}`,
		`There can be only one operation named "foo".`,
	)
	assert.Equal(t, []token.Position{pos(1, 7), pos(1, 26)}, errs[0].Locations)

	expectErrors(t, UniqueOperationNames, `query foo {scalar} mutation foo {scalar}`,
		`There can be only one operation named "foo".`,
	)
}
