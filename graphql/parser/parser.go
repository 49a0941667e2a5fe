package parser

import (
	"fmt"
	"strconv"

	"github.com/ccbrown/gql-check/graphql/ast"
	"github.com/ccbrown/gql-check/graphql/scanner"
	"github.com/ccbrown/gql-check/graphql/token"
)

type Error struct {
	Message  string
	Location token.Position
}

func (err *Error) Error() string {
	return fmt.Sprintf("%v: %v", err.Location, err.Message)
}

// ParseDocument parses an executable document. Directive definitions are also accepted so that
// documents can declare the directives they use. If any errors are returned, the document is nil.
func ParseDocument(src []byte) (*ast.Document, []*Error) {
	p := newParser(src)
	doc := parse(p, p.parseDocument)
	if len(p.errors) > 0 {
		return nil, p.errors
	}
	return doc, nil
}

// ParseValue parses a single value, such as a default value from an introspection result.
func ParseValue(src []byte) (ast.Value, []*Error) {
	p := newParser(src)
	value := parse(p, func() ast.Value {
		ret := p.parseValue(false)
		if !p.atEOF() {
			p.unexpected()
		}
		return ret
	})
	if len(p.errors) > 0 {
		return nil, p.errors
	}
	return value, nil
}

// parse invokes f, recovering from the first syntax error.
func parse[T any](p *parser, f func() T) (ret T) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*Error); !ok {
				panic(r)
			}
		}
	}()
	return f()
}

type parserToken struct {
	Kind     token.Token
	Value    string
	Literal  string
	Position token.Position
}

var eof = &parserToken{}

// describe formats a token for error messages.
func (t *parserToken) describe() string {
	switch t.Kind {
	case token.INVALID:
		return "<EOF>"
	case token.PUNCTUATOR:
		return strconv.Quote(t.Value)
	case token.NAME:
		return "Name " + strconv.Quote(t.Value)
	case token.INT_VALUE:
		return "Int " + strconv.Quote(t.Value)
	case token.FLOAT_VALUE:
		return "Float " + strconv.Quote(t.Value)
	case token.STRING_VALUE:
		return "String " + strconv.Quote(t.Value)
	}
	return strconv.Quote(t.Literal)
}

type parser struct {
	errors []*Error
	tokens []*parserToken
	next   int
	depth  int
	end    token.Position
}

func newParser(src []byte) *parser {
	p := &parser{}
	s := scanner.New(src, 0)
	for s.Scan() {
		p.tokens = append(p.tokens, &parserToken{
			Kind:     s.Token(),
			Value:    s.StringValue(),
			Literal:  s.Literal(),
			Position: s.Position(),
		})
	}
	if n := len(p.tokens); n > 0 {
		p.end = p.tokens[n-1].Position
	}
	for _, err := range s.Errors() {
		p.errors = append(p.errors, &Error{
			Message:  "Syntax Error: " + err.Message,
			Location: err.Location,
		})
	}
	return p
}

const maxDepth = 1000

// nest guards against stack exhaustion. Use it as "defer p.nest()()".
func (p *parser) nest() func() {
	p.depth++
	if p.depth > maxDepth {
		p.fail("Syntax Error: Maximum nesting depth exceeded.")
	}
	return func() {
		p.depth--
	}
}

func (p *parser) fail(format string, args ...interface{}) {
	location := p.end
	if t := p.peek(); t != eof {
		location = t.Position
	}
	err := &Error{
		Message:  fmt.Sprintf(format, args...),
		Location: location,
	}
	p.errors = append(p.errors, err)
	panic(err)
}

func (p *parser) unexpected() {
	p.fail("Syntax Error: Unexpected %v.", p.peek().describe())
}

func (p *parser) expected(what string) {
	p.fail("Syntax Error: Expected %v, found %v.", what, p.peek().describe())
}

func (p *parser) atEOF() bool {
	return p.next >= len(p.tokens)
}

func (p *parser) peek() *parserToken {
	if p.atEOF() {
		return eof
	}
	return p.tokens[p.next]
}

func (p *parser) advance() *parserToken {
	t := p.peek()
	if !p.atEOF() {
		p.next++
	}
	return t
}

func (p *parser) peekPunctuator(value string) bool {
	t := p.peek()
	return t.Kind == token.PUNCTUATOR && t.Value == value
}

func (p *parser) peekKeyword(value string) bool {
	t := p.peek()
	return t.Kind == token.NAME && t.Value == value
}

// skipPunctuator consumes the punctuator if it's next.
func (p *parser) skipPunctuator(value string) bool {
	if p.peekPunctuator(value) {
		p.advance()
		return true
	}
	return false
}

// expectPunctuator consumes the given punctuator and returns its position.
func (p *parser) expectPunctuator(value string) token.Position {
	if !p.peekPunctuator(value) {
		p.expected(strconv.Quote(value))
	}
	return p.advance().Position
}

func (p *parser) expectKeyword(value string) token.Position {
	if !p.peekKeyword(value) {
		p.expected(strconv.Quote(value))
	}
	return p.advance().Position
}

// many parses one or more items between the opening and closing punctuators.
func many[T any](p *parser, opening, closing string, item func() T) []T {
	p.expectPunctuator(opening)
	ret := []T{item()}
	for !p.skipPunctuator(closing) {
		ret = append(ret, item())
	}
	return ret
}

// optionalMany is like many, but returns nil if the opening punctuator isn't next.
func optionalMany[T any](p *parser, opening, closing string, item func() T) []T {
	if !p.peekPunctuator(opening) {
		return nil
	}
	return many(p, opening, closing, item)
}

func (p *parser) parseDocument() *ast.Document {
	defer p.nest()()

	ret := &ast.Document{}
	if p.atEOF() {
		p.unexpected()
	}
	for !p.atEOF() {
		ret.Definitions = append(ret.Definitions, p.parseDefinition())
	}
	return ret
}

func (p *parser) parseDefinition() ast.Definition {
	defer p.nest()()

	switch t := p.peek(); {
	case t.Kind == token.PUNCTUATOR && t.Value == "{":
		return p.parseOperationDefinition()
	case t.Kind == token.STRING_VALUE:
		// only directive definitions have descriptions
		return p.parseDirectiveDefinition()
	case t.Kind != token.NAME:
	case t.Value == "fragment":
		return p.parseFragmentDefinition()
	case t.Value == "directive":
		return p.parseDirectiveDefinition()
	case ast.IsOperationType(t.Value):
		return p.parseOperationDefinition()
	}
	p.unexpected()
	return nil
}

func (p *parser) parseOperationDefinition() *ast.OperationDefinition {
	defer p.nest()()

	if p.peekPunctuator("{") {
		return &ast.OperationDefinition{
			SelectionSet: p.parseSelectionSet(),
		}
	}

	t := p.advance()
	ret := &ast.OperationDefinition{
		OperationType: &ast.OperationType{
			Value:         t.Value,
			ValuePosition: t.Position,
		},
	}
	if p.peek().Kind == token.NAME {
		ret.Name = p.parseName()
	}
	ret.VariableDefinitions = optionalMany(p, "(", ")", p.parseVariableDefinition)
	ret.Directives = p.parseDirectives()
	ret.SelectionSet = p.parseSelectionSet()
	return ret
}

func (p *parser) parseFragmentDefinition() *ast.FragmentDefinition {
	defer p.nest()()

	ret := &ast.FragmentDefinition{
		Fragment: p.expectKeyword("fragment"),
	}
	if p.peekKeyword("on") {
		p.unexpected()
	}
	ret.Name = p.parseName()
	ret.TypeCondition = p.parseTypeCondition()
	ret.Directives = p.parseDirectives()
	ret.SelectionSet = p.parseSelectionSet()
	return ret
}

func (p *parser) parseDirectiveDefinition() *ast.DirectiveDefinition {
	defer p.nest()()

	ret := &ast.DirectiveDefinition{
		Description: p.parseDescription(),
		Directive:   p.expectKeyword("directive"),
	}
	p.expectPunctuator("@")
	ret.Name = p.parseName()
	ret.Arguments = optionalMany(p, "(", ")", p.parseInputValueDefinition)
	if p.peekKeyword("repeatable") {
		p.advance()
		ret.Repeatable = true
	}
	p.expectKeyword("on")
	p.skipPunctuator("|")
	ret.Locations = []*ast.Name{p.parseName()}
	for p.skipPunctuator("|") {
		ret.Locations = append(ret.Locations, p.parseName())
	}
	return ret
}

func (p *parser) parseDescription() *ast.StringValue {
	if t := p.peek(); t.Kind == token.STRING_VALUE {
		p.advance()
		return &ast.StringValue{
			Value:   t.Value,
			Literal: t.Position,
		}
	}
	return nil
}

func (p *parser) parseInputValueDefinition() *ast.InputValueDefinition {
	defer p.nest()()

	ret := &ast.InputValueDefinition{
		Description: p.parseDescription(),
		Name:        p.parseName(),
	}
	p.expectPunctuator(":")
	ret.Type = p.parseType()
	if p.skipPunctuator("=") {
		ret.DefaultValue = p.parseValue(true)
	}
	ret.Directives = p.parseDirectives()
	return ret
}

func (p *parser) parseVariableDefinition() *ast.VariableDefinition {
	defer p.nest()()

	ret := &ast.VariableDefinition{
		Variable: p.parseVariable(),
	}
	p.expectPunctuator(":")
	ret.Type = p.parseType()
	if p.skipPunctuator("=") {
		ret.DefaultValue = p.parseValue(true)
	}
	ret.Directives = p.parseDirectives()
	return ret
}

func (p *parser) parseSelectionSet() *ast.SelectionSet {
	defer p.nest()()

	ret := &ast.SelectionSet{
		Opening: p.expectPunctuator("{"),
	}
	if p.peekPunctuator("}") {
		p.expected("Name")
	}
	for !p.peekPunctuator("}") {
		if p.atEOF() {
			p.expected(`"}"`)
		}
		ret.Selections = append(ret.Selections, p.parseSelection())
	}
	ret.Closing = p.advance().Position
	return ret
}

func (p *parser) parseSelection() ast.Selection {
	defer p.nest()()

	if !p.peekPunctuator("...") {
		return p.parseField()
	}
	ellipsis := p.advance().Position

	if t := p.peek(); t.Kind == token.NAME && t.Value != "on" {
		return &ast.FragmentSpread{
			Ellipsis:     ellipsis,
			FragmentName: p.parseName(),
			Directives:   p.parseDirectives(),
		}
	}

	ret := &ast.InlineFragment{
		Ellipsis: ellipsis,
	}
	if p.peekKeyword("on") {
		ret.TypeCondition = p.parseTypeCondition()
	}
	ret.Directives = p.parseDirectives()
	ret.SelectionSet = p.parseSelectionSet()
	return ret
}

func (p *parser) parseField() *ast.Field {
	defer p.nest()()

	ret := &ast.Field{
		Name: p.parseName(),
	}
	if p.skipPunctuator(":") {
		ret.Alias = ret.Name
		ret.Name = p.parseName()
	}
	ret.Arguments = p.parseArguments()
	ret.Directives = p.parseDirectives()
	if p.peekPunctuator("{") {
		ret.SelectionSet = p.parseSelectionSet()
	}
	return ret
}

func (p *parser) parseArguments() []*ast.Argument {
	return optionalMany(p, "(", ")", func() *ast.Argument {
		defer p.nest()()

		ret := &ast.Argument{
			Name: p.parseName(),
		}
		p.expectPunctuator(":")
		ret.Value = p.parseValue(false)
		return ret
	})
}

func (p *parser) parseDirectives() []*ast.Directive {
	var ret []*ast.Directive
	for p.peekPunctuator("@") {
		directive := &ast.Directive{
			At: p.advance().Position,
		}
		directive.Name = p.parseName()
		directive.Arguments = p.parseArguments()
		ret = append(ret, directive)
	}
	return ret
}

func (p *parser) parseTypeCondition() *ast.NamedType {
	p.expectKeyword("on")
	return p.parseNamedType()
}

func (p *parser) parseType() ast.Type {
	defer p.nest()()

	var ret ast.Type
	if p.peekPunctuator("[") {
		list := &ast.ListType{
			Opening: p.advance().Position,
		}
		list.Type = p.parseType()
		list.Closing = p.expectPunctuator("]")
		ret = list
	} else {
		ret = p.parseNamedType()
	}
	if p.peekPunctuator("!") {
		ret = &ast.NonNullType{
			Type: ret,
			Bang: p.advance().Position,
		}
	}
	return ret
}

func (p *parser) parseNamedType() *ast.NamedType {
	return &ast.NamedType{
		Name: p.parseName(),
	}
}

func (p *parser) parseName() *ast.Name {
	t := p.peek()
	if t.Kind != token.NAME {
		p.expected("Name")
	}
	p.advance()
	return &ast.Name{
		Name:         t.Value,
		NamePosition: t.Position,
	}
}

func (p *parser) parseVariable() *ast.Variable {
	ret := &ast.Variable{
		Dollar: p.expectPunctuator("$"),
	}
	ret.Name = p.parseName()
	return ret
}

// parseValue parses a value literal. If constant is true, variables are not allowed.
func (p *parser) parseValue(constant bool) ast.Value {
	defer p.nest()()

	t := p.peek()
	switch t.Kind {
	case token.INT_VALUE:
		p.advance()
		return &ast.IntValue{
			Value:   t.Value,
			Literal: t.Position,
		}
	case token.FLOAT_VALUE:
		p.advance()
		return &ast.FloatValue{
			Value:   t.Value,
			Literal: t.Position,
		}
	case token.STRING_VALUE:
		p.advance()
		return &ast.StringValue{
			Value:   t.Value,
			Literal: t.Position,
		}
	case token.NAME:
		p.advance()
		switch t.Value {
		case "true", "false":
			return &ast.BooleanValue{
				Value:   t.Value == "true",
				Literal: t.Position,
			}
		case "null":
			return &ast.NullValue{
				Literal: t.Position,
			}
		}
		return &ast.EnumValue{
			Value:   t.Value,
			Literal: t.Position,
		}
	case token.PUNCTUATOR:
		switch t.Value {
		case "$":
			if !constant {
				return p.parseVariable()
			}
		case "[":
			return p.parseListValue(constant)
		case "{":
			return p.parseObjectValue(constant)
		}
	}
	p.unexpected()
	return nil
}

func (p *parser) parseListValue(constant bool) *ast.ListValue {
	ret := &ast.ListValue{
		Opening: p.advance().Position,
	}
	for !p.peekPunctuator("]") {
		if p.atEOF() {
			p.expected(`"]"`)
		}
		ret.Values = append(ret.Values, p.parseValue(constant))
	}
	ret.Closing = p.advance().Position
	return ret
}

func (p *parser) parseObjectValue(constant bool) *ast.ObjectValue {
	ret := &ast.ObjectValue{
		Opening: p.advance().Position,
	}
	for !p.peekPunctuator("}") {
		field := &ast.ObjectField{
			Name: p.parseName(),
		}
		p.expectPunctuator(":")
		field.Value = p.parseValue(constant)
		ret.Fields = append(ret.Fields, field)
	}
	ret.Closing = p.advance().Position
	return ret
}
