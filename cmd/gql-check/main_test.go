package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gqlcheck "github.com/ccbrown/gql-check"
)

func TestRun(t *testing.T) {
	assert.Empty(t, Run(io.Discard, "-i", "testdata/valid.graphql", "--schema", "testdata/schema.json"))
	assert.Empty(t, Run(io.Discard, "--schema", "testdata/schema.json", "testdata/valid.graphql"))
	assert.Empty(t, Run(io.Discard, "--config", "testdata/gql-check.yaml"))
	assert.NotEmpty(t, Run(io.Discard, "-i", "testdata/valid.graphql"))
	assert.NotEmpty(t, Run(io.Discard, "--schema", "testdata/schema.json"))
	assert.NotEmpty(t, Run(io.Discard, "-i", "testdata/valid.graphql", "--schema", "testdata/not-a-schema.json"))
	assert.NotEmpty(t, Run(io.Discard, "-i", "testdata/valid.graphql", "--schema", "testdata/valid.graphql"))
	assert.NotEmpty(t, Run(io.Discard, "-i", "testdata/nothing-*.graphql", "--schema", "testdata/schema.json"))
	assert.NotEmpty(t, Run(io.Discard, "-i", "testdata/valid.graphql", "--schema", "testdata/schema.json", "--format", "xml"))
	assert.NotEmpty(t, Run(io.Discard, "--config", "testdata/missing.yaml"))
	assert.NotEmpty(t, Run(io.Discard, "--bogus"))
}

func TestRun_Text(t *testing.T) {
	var buf bytes.Buffer
	errs := Run(&buf, "--no-color", "--schema", "testdata/schema.json", "-i", "testdata/valid.graphql", "-i", "testdata/invalid.graphql", "-i", "testdata/queries.go")
	assert.Len(t, errs, 2)
	assert.Equal(t, `testdata/invalid.graphql:2:17: Unknown argument "sit" on field "user" of type "Query". Did you mean "site"?
testdata/invalid.graphql:1:22: Variable "$unused" is never used in operation "User".
testdata/invalid.graphql:1:7: There can be only one operation named "User".
testdata/invalid.graphql:8:9: Unknown argument "frist" on field "users" of type "Query". Did you mean "first"?
testdata/queries.go:5:20: Unknown argument "formt" on field "profilePicture" of type "User". Did you mean "format"?
testdata/queries.go:11:19: argument to gql must be a string literal
`, buf.String())
}

func TestRun_JSON(t *testing.T) {
	var buf bytes.Buffer
	errs := Run(&buf, "--config", "testdata/gql-check.yaml", "-i", "testdata/valid.graphql", "-i", "testdata/invalid.graphql", "--jobs", "1")
	assert.Len(t, errs, 1)
	assert.JSONEq(t, `[
		{
			"file": "testdata/valid.graphql",
			"errors": []
		},
		{
			"file": "testdata/invalid.graphql",
			"errors": [
				{
					"message": "Unknown argument \"sit\" on field \"user\" of type \"Query\". Did you mean \"site\"?",
					"locations": [{"line": 2, "column": 17}]
				},
				{
					"message": "Variable \"$unused\" is never used in operation \"User\".",
					"locations": [{"line": 1, "column": 22}]
				},
				{
					"message": "There can be only one operation named \"User\".",
					"locations": [{"line": 1, "column": 7}, {"line": 7, "column": 7}]
				},
				{
					"message": "Unknown argument \"frist\" on field \"users\" of type \"Query\". Did you mean \"first\"?",
					"locations": [{"line": 8, "column": 9}]
				}
			]
		}
	]`, buf.String())
}

func TestNewServeMux(t *testing.T) {
	schema, err := LoadSchema("testdata/schema.json")
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	checker, err := gqlcheck.NewChecker(&gqlcheck.Config{
		Schema:            schema,
		MetricsRegisterer: registry,
	})
	require.NoError(t, err)

	mux := newServeMux(checker, registry)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/graphql?query="+url.QueryEscape(`{ user(id: "1") { id } }`), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid":true}`, w.Body.String())

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `gqlcheck_checks_total{result="valid"} 1`)
}
