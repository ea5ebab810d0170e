package migration

import (
	"database/sql"

	migrate "github.com/rubenv/sql-migrate"
)

// Run applies every pending "-- +migrate Up" block found in dir and returns
// how many migrations ran.
func Run(db *sql.DB, dir string) (int, error) {
	migrations := &migrate.FileMigrationSource{
		Dir: dir,
	}

	return migrate.Exec(db, "postgres", migrations, migrate.Up)
}

// Pending lists the migrations in dir that have not been applied yet.
func Pending(db *sql.DB, dir string) ([]string, error) {
	migrations := &migrate.FileMigrationSource{
		Dir: dir,
	}

	planned, _, err := migrate.PlanMigration(db, "postgres", migrations, migrate.Up, 0)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(planned))
	for i, m := range planned {
		ids[i] = m.Id
	}
	return ids, nil
}
