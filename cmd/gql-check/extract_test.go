package main

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbrown/gql-check/graphql"
)

func TestExtractGoQueries(t *testing.T) {
	queries, err := extractGoQueries("test.go", []byte("package test\n\nvar a = q(`{ a }`)\nvar b = q(\"{ b }\", 1)\nvar c = gql(`{ c }`)\n"), "q")
	require.NoError(t, err)
	require.Len(t, queries, 2)

	assert.Equal(t, "{ a }", queries[0].Query)
	assert.Equal(t, 3, queries[0].Position.Line)
	assert.Equal(t, 11, queries[0].Position.Column)
	assert.Nil(t, queries[0].Error)

	require.NotNil(t, queries[1].Error)
	assert.Equal(t, "expected 1 argument to q", queries[1].Error.Message)
	assert.Equal(t, []graphql.Location{{Line: 4, Column: 10}}, queries[1].Error.Locations)

	_, err = extractGoQueries("test.go", []byte("package"), "q")
	assert.Error(t, err)
}

func TestEmbeddedQuery_Translate(t *testing.T) {
	q := &embeddedQuery{
		Position: token.Position{Line: 3, Column: 21},
	}
	assert.Equal(t, graphql.Location{Line: 3, Column: 22}, q.translate(graphql.Location{Line: 1, Column: 1}))
	assert.Equal(t, graphql.Location{Line: 5, Column: 20}, q.translate(graphql.Location{Line: 3, Column: 20}))
}
