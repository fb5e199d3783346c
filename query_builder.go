package solrq

import (
	"strings"
)

const (
	space        = ' '
	openBracket  = '('
	closeBracket = ')'
	wildcardMark = '*'
	boostMark    = '^'
)

// QueryBuilder accumulates a Solr/Lucene style query string, one clause at a time.
// Successive clauses are joined by the builder's Operator, and when wrap is set each value
// is enclosed in brackets, e.g. field:(value).
//
// The text only ever grows, and String can be called at any point to read what has been built so far.
// A QueryBuilder is not safe for concurrent use; callers confining it to one goroutine is part of the contract.
type QueryBuilder struct {
	sb   strings.Builder
	op   Operator
	wrap bool
}

// New will construct a QueryBuilder joining clauses with OR, without wrapping values.
func New() *QueryBuilder {
	return &QueryBuilder{op: OperatorOr}
}

// NewQueryBuilder will construct a QueryBuilder with an explicit operator.
// An undefined operator results in ErrInvalidOperator.
func NewQueryBuilder(op Operator, wrap bool) (*QueryBuilder, error) {
	if !op.valid() {
		return nil, ErrInvalidOperator{op}
	}
	return &QueryBuilder{op: op, wrap: wrap}, nil
}

// Build will construct a default QueryBuilder holding a single field:value clause.
func Build(field, value string) *QueryBuilder {
	return New().Append(field, value)
}

// Operator is the operator joining clauses of this builder.
func (b *QueryBuilder) Operator() Operator {
	return b.op
}

// Wrap reports whether clause values are enclosed in brackets.
func (b *QueryBuilder) Wrap() bool {
	return b.wrap
}

// Append adds a field:value clause. See AppendWildcard for how possessive terms are handled.
func (b *QueryBuilder) Append(field, value string) *QueryBuilder {
	return b.AppendWildcard(field, value, false)
}

// AppendWildcard adds a field:value clause, with a trailing wildcard when wildcard is true.
//
// A value ending in "s", or holding an "s" at the end of any word, might be indexed in its possessive form.
// Both forms are searched for in that case, as an OR sub-query:
//
//	( field:dog's OR field:dogs )
//
// Every word ending in "s" is rewritten, so "glass" becomes "glas's" too.
func (b *QueryBuilder) AppendWildcard(field, value string, wildcard bool) *QueryBuilder {
	if !isPossessiveCandidate(value) {
		b.appendClause(field, value, wildcard)
		return b
	}

	// Search for both mangled and original terms.
	sub := &QueryBuilder{op: OperatorOr, wrap: b.wrap}
	sub.appendClause(field, possessive(value), wildcard)
	sub.appendClause(field, value, wildcard)

	return b.AppendQuery(sub)
}

// AppendBoosted adds a field:value clause followed by ^boost, when boost is greater than one.
// Fields with "exact" in their name have the value quoted as a phrase.
//
// The boost always keeps a fractional part, so a boost of 42 is written as field:value^42.0.
func (b *QueryBuilder) AppendBoosted(field, value string, boost float64) *QueryBuilder {
	if strings.Contains(field, "exact") {
		value = `"` + value + `"`
	}

	b.Append(field, value)

	if boost > 1 {
		b.sb.WriteRune(boostMark)
		b.sb.WriteString(formatBoost(boost))
	}

	return b
}

// AppendQuery adds another builder as a bracketed sub-query, rendered with its own operator and wrapping.
// The sub-query is rendered at the time of the call, later changes to it are not reflected.
func (b *QueryBuilder) AppendQuery(sub *QueryBuilder) *QueryBuilder {
	b.separate()

	b.sb.WriteRune(openBracket)
	b.sb.WriteRune(space)
	b.sb.WriteString(sub.String())
	b.sb.WriteRune(space)
	b.sb.WriteRune(closeBracket)

	return b
}

// AppendRaw adds s as is. No operator is written before it.
func (b *QueryBuilder) AppendRaw(s string) *QueryBuilder {
	b.sb.WriteString(s)
	return b
}

// String returns the query built so far.
func (b *QueryBuilder) String() string {
	if b == nil {
		return ""
	}
	return b.sb.String()
}

// separate starts a new clause, writing the operator if there is already something before it.
func (b *QueryBuilder) separate() {
	if b.sb.Len() == 0 {
		return
	}

	b.sb.WriteRune(space)
	b.sb.WriteString(b.op.String())
	b.sb.WriteRune(space)
}

func (b *QueryBuilder) appendClause(field, value string, wildcard bool) {
	b.separate()

	b.sb.WriteString(field)
	b.sb.WriteRune(':')

	if b.wrap {
		b.sb.WriteRune(openBracket)
	}
	b.sb.WriteString(value)
	if wildcard {
		b.sb.WriteRune(wildcardMark)
	}
	if b.wrap {
		b.sb.WriteRune(closeBracket)
	}
}
