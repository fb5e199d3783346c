package solrq

import (
	"fmt"
	"strings"
)

// tableName is an FTS table, optionally qualified by the schema (attached database) it lives in.
type tableName struct {
	schema    string
	tableName string
}

func newTableNameFromString(s string) (*tableName, error) {
	parts := strings.Split(s, ".")
	if s == "" || len(parts) > 2 {
		return nil, ErrInvalidTableName{s}
	}
	for _, part := range parts {
		if part == "" {
			return nil, ErrInvalidTableName{s}
		}
	}

	var t tableName
	if len(parts) > 1 {
		// Schema was provided, it comes before the actual table name.
		t.schema = parts[0]
	}

	// Whether a schema is provided or not, the table name is always the last part.
	t.tableName = parts[len(parts)-1]

	return &t, nil
}

// String is the qualified name, used in the FROM clause.
func (t tableName) String() string {
	if t.schema != "" {
		return fmt.Sprintf(`%s.%s`, quoteIdentifier(t.schema), quoteIdentifier(t.tableName))
	}
	return quoteIdentifier(t.tableName)
}

// column is the unqualified name, used on the left of MATCH.
func (t tableName) column() string {
	return quoteIdentifier(t.tableName)
}

func quoteIdentifier(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
