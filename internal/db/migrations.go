package db

type migration struct {
	Version int
	Name    string
	Up      string
}

const (
	createMigrationsTableQuery = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

	selectAppliedVersionsQuery = `SELECT version FROM schema_migrations ORDER BY version`

	insertMigrationQuery = `INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`
)

// migrations упорядочены по версии; уже примененные не изменяются
var migrations = []migration{
	{
		Version: 1,
		Name:    "create_customers",
		Up: `CREATE TABLE IF NOT EXISTS customers (
	id BIGSERIAL PRIMARY KEY,
	full_name VARCHAR(50) NOT NULL,
	email VARCHAR(100) NOT NULL,
	phone VARCHAR(14) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NULL,
	deleted BOOLEAN NOT NULL DEFAULT FALSE
)`,
	},
	{
		Version: 2,
		Name:    "customers_active_email_unique",
		Up:      `CREATE UNIQUE INDEX IF NOT EXISTS customers_active_email_idx ON customers (email) WHERE NOT deleted`,
	},
}
