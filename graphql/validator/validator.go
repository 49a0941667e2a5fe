package validator

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ccbrown/gql-check/graphql/ast"
	"github.com/ccbrown/gql-check/graphql/schema"
	"github.com/ccbrown/gql-check/graphql/token"
)

// Error is a violation found in a document. Errors never abort validation.
type Error struct {
	Message   string
	Nodes     []ast.Node
	Locations []token.Position
}

func (err *Error) Error() string {
	return err.Message
}

func newError(message string, nodes ...ast.Node) *Error {
	ret := &Error{
		Message: message,
		Nodes:   nodes,
	}
	for _, node := range nodes {
		ret.Locations = append(ret.Locations, node.Position())
	}
	return ret
}

// InternalError indicates that a rule failed. It is never reported as a document violation.
type InternalError struct {
	cause error
}

func (err *InternalError) Error() string {
	return "internal validation error: " + err.cause.Error()
}

func (err *InternalError) Cause() error {
	return err.cause
}

func (err *InternalError) Unwrap() error {
	return err.cause
}

// Rule creates a visitor for one validation pass. The visitor may keep private state for the
// duration of the pass and reports violations via the context.
type Rule func(*Context) ast.Visitor

// SpecifiedRules are run by ValidateDocument, in order.
var SpecifiedRules = []Rule{
	KnownArgumentNames,
	NoUnusedVariables,
	LoneAnonymousOperation,
	UniqueOperationNames,
	UniqueVariableNames,
	NoUndefinedVariables,
}

// ValidateDocument runs the specified rules against the document. The schema may be nil, in which
// case rules that depend on type information abstain. Panics within rules are not recovered.
func ValidateDocument(doc *ast.Document, s *schema.Schema) []*Error {
	return validate(doc, s, SpecifiedRules)
}

// Validate runs the given rules, or the specified rules if none are given. If a rule panics, the
// panic is returned as an *InternalError.
func Validate(doc *ast.Document, s *schema.Schema, rules ...Rule) (ret []*Error, err error) {
	if len(rules) == 0 {
		rules = SpecifiedRules
	}
	defer func() {
		if r := recover(); r != nil {
			ret = nil
			if cause, ok := r.(error); ok {
				err = &InternalError{cause: errors.WithStack(cause)}
			} else {
				err = &InternalError{cause: errors.WithStack(fmt.Errorf("%v", r))}
			}
		}
	}()
	return validate(doc, s, rules), nil
}

func validate(doc *ast.Document, s *schema.Schema, rules []Rule) []*Error {
	typeInfo := NewTypeInfo(s)
	ctx := NewContext(s, doc, typeInfo)
	visitors := make([]ast.Visitor, len(rules))
	for i, rule := range rules {
		visitors[i] = rule(ctx)
	}
	ast.Walk(doc, withTypeInfo(typeInfo, newParallelVisitor(visitors)))
	return ctx.Errors()
}
