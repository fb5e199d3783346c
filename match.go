package solrq

import (
	"context"
	"database/sql"
	"fmt"
)

// Match wraps MatchContext using context.Background.
func Match(db *sql.DB, table string, q fmt.Stringer) ([]int64, error) {
	return MatchContext(context.Background(), db, table, q)
}

// MatchContext runs the rendered query against an SQLite FTS3/FTS4 table and returns the matching rowids in order.
// FTS understands field:value, AND, OR, prefix "*" and brackets, so builders without wrap can be run as is.
//
// The table may be qualified by its schema, and the resulting statement looks like:
//
//	SELECT rowid FROM "schema"."table" WHERE "table" MATCH ? ORDER BY rowid;
func MatchContext(ctx context.Context, db *sql.DB, table string, q fmt.Stringer) ([]int64, error) {
	name, err := newTableNameFromString(table)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT rowid FROM %s WHERE %s MATCH ? ORDER BY rowid;", name, name.column())

	rows, err := db.QueryContext(ctx, query, q.String())
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", name, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("match %s: %w", name, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("match %s: %w", name, err)
	}

	return ids, nil
}
