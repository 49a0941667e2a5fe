package main

import (
	"fmt"
	goast "go/ast"
	"go/parser"
	"go/token"
	"strconv"

	"github.com/pkg/errors"

	"github.com/ccbrown/gql-check/graphql"
)

// embeddedQuery is a GraphQL document passed as a string literal to the wrapper function in a Go
// source file.
type embeddedQuery struct {
	Query string

	// The position of the literal's opening quote.
	Position token.Position

	// If non-nil, the call couldn't be checked.
	Error *graphql.Error
}

// translate maps a location within the query to a location within the Go file. Locations are exact
// for raw string literals. Escape sequences in interpreted literals shift the columns.
func (q *embeddedQuery) translate(loc graphql.Location) graphql.Location {
	if loc.Line == 1 {
		return graphql.Location{
			Line:   q.Position.Line,
			Column: q.Position.Column + loc.Column,
		}
	}
	return graphql.Location{
		Line:   q.Position.Line + loc.Line - 1,
		Column: loc.Column,
	}
}

func positionError(pos token.Position, format string, args ...interface{}) *graphql.Error {
	return &graphql.Error{
		Message: fmt.Sprintf(format, args...),
		Locations: []graphql.Location{
			{
				Line:   pos.Line,
				Column: pos.Column,
			},
		},
	}
}

// extractGoQueries finds the calls to wrapper in a Go source file.
func extractGoQueries(path string, source []byte, wrapper string) ([]*embeddedQuery, error) {
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, path, source, 0)
	if err != nil {
		return nil, errors.Wrap(err, "parse error")
	}

	var ret []*embeddedQuery

	goast.Inspect(f, func(node goast.Node) bool {
		call, ok := node.(*goast.CallExpr)
		if !ok {
			return true
		}
		if ident, ok := call.Fun.(*goast.Ident); !ok || ident.Name != wrapper {
			return true
		}
		if len(call.Args) != 1 {
			ret = append(ret, &embeddedQuery{
				Error: positionError(fset.Position(call.Lparen), "expected 1 argument to %v", wrapper),
			})
		} else if lit, ok := call.Args[0].(*goast.BasicLit); !ok || lit.Kind != token.STRING {
			ret = append(ret, &embeddedQuery{
				Error: positionError(fset.Position(call.Args[0].Pos()), "argument to %v must be a string literal", wrapper),
			})
		} else if q, err := strconv.Unquote(lit.Value); err != nil {
			ret = append(ret, &embeddedQuery{
				Error: positionError(fset.Position(lit.Pos()), "error parsing argument: %v", err),
			})
		} else {
			ret = append(ret, &embeddedQuery{
				Query:    q,
				Position: fset.Position(lit.Pos()),
			})
		}
		return true
	})

	return ret, nil
}
