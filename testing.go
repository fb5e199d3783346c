package solrq

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// SetupTestDatabase opens a throwaway sqlite3 database and runs setupQueries against it.
// The database is closed once the test finishes.
func SetupTestDatabase(t *testing.T, setupQueries ...string) *sql.DB {
	t.Helper()

	// Use the test's temp dir so that the sqlite file is not populating random directories.
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "solrq-test.db"))
	require.NoError(t, err, "could not connect to sqlite3")
	t.Cleanup(func() { _ = db.Close() })

	// Run the provided queries as a setup step.
	for _, query := range setupQueries {
		_, err = db.Exec(query)
		require.NoError(t, err, "failed to run setup queries")
	}

	return db
}

// SetupTestIndex creates an FTS4 table "books" with "title" and "author" columns, holding the given rows.
// Each row is a title and an author, the rowid is its position starting from 1.
func SetupTestIndex(t *testing.T, rows ...[2]string) *sql.DB {
	t.Helper()

	db := SetupTestDatabase(t, `CREATE VIRTUAL TABLE "books" USING fts4(title, author);`)
	for i, row := range rows {
		_, err := db.Exec(`INSERT INTO "books"(rowid, title, author) VALUES(?, ?, ?);`, i+1, row[0], row[1])
		require.NoError(t, err, "failed to insert test row")
	}

	return db
}
