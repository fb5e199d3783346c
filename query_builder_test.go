package solrq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWrapped(t *testing.T, op Operator) *QueryBuilder {
	b, err := NewQueryBuilder(op, true)
	require.NoError(t, err)
	return b
}

func TestAppend(t *testing.T) {
	query := newWrapped(t, OperatorOr).
		Append("one", "a").
		Append("two", "b").
		String()

	assert.Equal(t, "one:(a) OR two:(b)", query)
}

func TestAppendAndOperator(t *testing.T) {
	b, err := NewQueryBuilder(OperatorAnd, false)
	require.NoError(t, err)

	b.Append("one", "a")
	b.Append("two", "b")

	assert.Equal(t, "one:a AND two:b", b.String())
}

func TestAppendOrOperatorUnwrapped(t *testing.T) {
	b, err := NewQueryBuilder(OperatorOr, false)
	require.NoError(t, err)

	assert.Equal(t, "one:a OR two:b", b.Append("one", "a").Append("two", "b").String())
}

func TestAppendBoosted(t *testing.T) {
	b := newWrapped(t, OperatorOr).AppendBoosted("field", "term", 42)
	assert.Equal(t, "field:(term)^42.0", b.String())
}

func TestAppendBoostedNoBoost(t *testing.T) {
	for _, boost := range []float64{1, 0.5, 0, -3, math.NaN()} {
		b := newWrapped(t, OperatorOr).AppendBoosted("field", "term", boost)
		assert.Equal(t, "field:(term)", b.String())
	}
}

func TestAppendBoostedFraction(t *testing.T) {
	b := New().AppendBoosted("field", "term", 1.5)
	assert.Equal(t, "field:term^1.5", b.String())
}

func TestAppendBoostedExactField(t *testing.T) {
	b := newWrapped(t, OperatorOr).AppendBoosted("title_exact", "the hobbit", 2)
	assert.Equal(t, `title_exact:("the hobbit")^2.0`, b.String())
}

func TestAppendBoostedExactFieldStillWidens(t *testing.T) {
	// The quoted value contains "s " so it is widened, quotes and all.
	b := New().AppendBoosted("exact_title", "dogs life", 3)
	assert.Equal(t, `( exact_title:"dog's life" OR exact_title:"dogs life" )^3.0`, b.String())
}

func TestAppendBoostedAfterClause(t *testing.T) {
	b, err := NewQueryBuilder(OperatorAnd, false)
	require.NoError(t, err)

	b.Append("one", "a").AppendBoosted("two", "b", 10)

	assert.Equal(t, "one:a AND two:b^10.0", b.String())
}

func TestAppendSubQuery(t *testing.T) {
	// Create another AND query clause.
	other := newWrapped(t, OperatorAnd).
		Append("two", "b").
		Append("three", "c")

	// Check it is added as sub-query.
	b := newWrapped(t, OperatorOr).
		Append("one", "a").
		AppendQuery(other)

	assert.Equal(t, "one:(a) OR ( two:(b) AND three:(c) )", b.String())
}

func TestAppendSubQueryFirst(t *testing.T) {
	b := New().AppendQuery(Build("a", "b"))
	assert.Equal(t, "( a:b )", b.String())
}

func TestAppendSubQueryEmpty(t *testing.T) {
	assert.Equal(t, "(  )", New().AppendQuery(New()).String())
	assert.Equal(t, "(  )", New().AppendQuery(nil).String())
}

func TestAppendSubQuerySnapshot(t *testing.T) {
	other := Build("a", "b")
	b := New().AppendQuery(other)

	other.Append("c", "d")

	assert.Equal(t, "( a:b )", b.String())
	assert.Equal(t, "a:b OR c:d", other.String())
}

func TestBuildSimpleQuery(t *testing.T) {
	assert.Equal(t, "field:value", Build("field", "value").String())
}

func TestBuildDefaults(t *testing.T) {
	b := Build("field", "value")
	assert.Equal(t, OperatorOr, b.Operator())
	assert.False(t, b.Wrap())
}

func TestAppendWildcard(t *testing.T) {
	b := newWrapped(t, OperatorOr).AppendWildcard("field", "term", true)
	assert.Equal(t, "field:(term*)", b.String())
}

func TestAppendWildcardUnwrapped(t *testing.T) {
	b := New().AppendWildcard("field", "term", true)
	assert.Equal(t, "field:term*", b.String())
}

func TestAppendPossessive(t *testing.T) {
	b := newWrapped(t, OperatorAnd).Append("title", "dogs")
	assert.Equal(t, "( title:(dog's) OR title:(dogs) )", b.String())
}

func TestAppendPossessiveAfterClause(t *testing.T) {
	b := newWrapped(t, OperatorAnd).
		Append("author", "tolkien").
		Append("title", "dogs")

	assert.Equal(t, "author:(tolkien) AND ( title:(dog's) OR title:(dogs) )", b.String())
}

func TestAppendPossessiveWildcard(t *testing.T) {
	b := New().AppendWildcard("title", "cats", true)
	assert.Equal(t, "( title:cat's* OR title:cats* )", b.String())
}

func TestAppendPossessiveInnerWord(t *testing.T) {
	b := New().Append("title", "James's books")
	assert.Equal(t, "( title:James''s book's OR title:James's books )", b.String())
}

func TestAppendPossessiveWordBoundaryOnly(t *testing.T) {
	// Ends with "s " but not "s", so only the words ending in "s" change.
	b := New().Append("title", "dogs life")
	assert.Equal(t, "( title:dog's life OR title:dogs life )", b.String())
}

func TestAppendPossessiveDoubleS(t *testing.T) {
	b := New().Append("title", "glass")
	assert.Equal(t, "( title:glas's OR title:glass )", b.String())
}

func TestAppendNotPossessive(t *testing.T) {
	for _, value := range []string{"dog", "sun dog", "", "S", "dogS"} {
		b := New().Append("title", value)
		assert.Equal(t, "title:"+value, b.String())
	}
}

func TestAppendRaw(t *testing.T) {
	b := Build("one", "a").
		AppendRaw(" NOT two:b").
		Append("three", "c")

	assert.Equal(t, "one:a NOT two:b OR three:c", b.String())
}

func TestAppendRawFirst(t *testing.T) {
	b := New().AppendRaw("*:*")
	assert.Equal(t, "*:*", b.String())
}

func TestAppendPassesThroughSpecialCharacters(t *testing.T) {
	b := New().Append("", "a:b(c)")
	assert.Equal(t, ":a:b(c)", b.String())
}

func TestStringIdempotent(t *testing.T) {
	b := newWrapped(t, OperatorOr).Append("one", "a")

	first := b.String()
	assert.Equal(t, first, b.String())

	b.Append("two", "b")
	assert.Equal(t, "one:(a) OR two:(b)", b.String())
}

func TestNewQueryBuilderUndefinedOperator(t *testing.T) {
	for _, op := range []Operator{0, 3, 255} {
		b, err := NewQueryBuilder(op, true)

		assert.Nil(t, b)
		assert.ErrorIs(t, err, ErrUndefinedOperator)
		assert.Equal(t, ErrInvalidOperator{op}, err)
	}
}

func TestNewDefaults(t *testing.T) {
	b := New()
	assert.Equal(t, OperatorOr, b.Operator())
	assert.False(t, b.Wrap())
	assert.Empty(t, b.String())
}
