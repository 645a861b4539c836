// Package migrations holds goose migrations written in Go so their DDL can
// vary by SQL dialect.
package migrations

var dialect string

// SetDialect selects the dialect used by the migrations in this package.
// Call it before goose.Up. Valid values: "sqlite3", "postgres", "mysql".
func SetDialect(d string) {
	dialect = d
}
