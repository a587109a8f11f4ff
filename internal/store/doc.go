// Package store exports collected setdexes into a SQLite database so sets can
// be queried outside the calculator.
//
// Each export replaces every row of one generation inside a transaction. Rows
// keep the subject's set order in the position column. When the table layout
// changes, update schema.sql and bump schemaVersion; older databases must be
// deleted and re-exported.
package store
