package migration

import (
	"path/filepath"
	"strings"
	"testing"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaMigrationsParse(t *testing.T) {
	source := &migrate.FileMigrationSource{Dir: filepath.Join("..", "..", "schema")}

	migrations, err := source.FindMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	first := migrations[0]
	assert.Equal(t, "0001_init.sql", first.Id)
	assert.NotEmpty(t, first.Up, "up statements")
	assert.NotEmpty(t, first.Down, "down statements")

	for _, m := range migrations {
		assert.Len(t, m.Down, len(tablesIn(m.Up)), "every created table in %s should be dropped on down", m.Id)
	}
}

// tablesIn returns the CREATE TABLE statements among stmts.
func tablesIn(stmts []string) []string {
	var tables []string
	for _, stmt := range stmts {
		if strings.HasPrefix(strings.TrimSpace(stmt), "CREATE TABLE") {
			tables = append(tables, stmt)
		}
	}
	return tables
}
