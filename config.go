package gqlcheck

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/ccbrown/gql-check/graphql"
)

// Config defines the schema and other parameters for a Checker.
type Config struct {
	Logger logrus.FieldLogger

	// The schema to validate against. If nil, only rules that don't need type information will
	// report anything.
	Schema *graphql.Schema

	// The rules to run. If empty, graphql.SpecifiedRules is used.
	Rules []graphql.Rule

	// If given, check results are cached here, keyed by the SHA-256 hash of the query.
	ResultStorage ResultStorage

	// If given, Apollo persisted queries are supported by ServeHTTP:
	// https://www.apollographql.com/docs/react/api/link/persisted-queries/
	PersistedQueryStorage PersistedQueryStorage

	// If given, metrics are registered here. Registering two checkers with the same registerer
	// panics.
	MetricsRegisterer prometheus.Registerer
}
