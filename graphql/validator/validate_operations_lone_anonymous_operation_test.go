package validator

import (
	"testing"
)

func TestLoneAnonymousOperation(t *testing.T) {
	expectErrors(t, LoneAnonymousOperation, `{scalar}`)
	expectErrors(t, LoneAnonymousOperation, `{scalar} fragment F on Query {scalar}`)
	expectErrors(t, LoneAnonymousOperation, `query A {scalar} query B {scalar}`)

	expectErrors(t, LoneAnonymousOperation, `{scalar} {scalar}`,
		`This anonymous operation must be the only defined operation.`,
		`This anonymous operation must be the only defined operation.`,
	)
	expectErrors(t, LoneAnonymousOperation, `{scalar} query A {scalar}`,
		`This anonymous operation must be the only defined operation.`,
	)
}
