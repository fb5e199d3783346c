package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aliics/solrq"
)

// clause is one command line argument, in one of the forms:
//
//	field:value
//	field:value*
//	field:value^boost
//
// Anything without a ":" is appended raw.
type clause struct {
	field string
	value string

	wildcard bool
	boosted  bool
	boost    float64

	raw bool
}

func parseClause(s string) (clause, error) {
	field, value, ok := strings.Cut(s, ":")
	if !ok {
		return clause{value: s, raw: true}, nil
	}

	c := clause{field: field, value: value}

	if i := strings.LastIndexByte(value, '^'); i >= 0 {
		boost, err := strconv.ParseFloat(value[i+1:], 64)
		if err != nil {
			return clause{}, fmt.Errorf("invalid boost in %q: %w", s, err)
		}
		c.value = value[:i]
		c.boosted = true
		c.boost = boost
		return c, nil
	}

	if strings.HasSuffix(value, "*") {
		c.value = strings.TrimSuffix(value, "*")
		c.wildcard = true
	}

	return c, nil
}

func (c clause) appendTo(b *solrq.QueryBuilder) {
	switch {
	case c.raw:
		b.AppendRaw(c.value)
	case c.boosted:
		b.AppendBoosted(c.field, c.value, c.boost)
	default:
		b.AppendWildcard(c.field, c.value, c.wildcard)
	}
}
