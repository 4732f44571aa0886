// Package appdata materializes a session's declared data model into real
// tables so generated pages have live data to query. On PostgreSQL each
// session gets its own schema; on SQLite schemas become table-name
// prefixes.
package appdata

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"regexp"
	"strings"

	"entgo.io/ent/dialect"

	"github.com/TheSmartAz/instant-coffee-sub001/pkg/database"
)

var identPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// ColumnSpec declares one column of a data-model table. Type is the
// abstract kind: text, integer, real, boolean, timestamp, json.
type ColumnSpec struct {
	Name string
	Type string
}

// TableSpec declares one table of the data model. Every table gets an
// implicit id primary key.
type TableSpec struct {
	Name    string
	Columns []ColumnSpec
}

// Migration summarizes applied schema work.
type Migration struct {
	SchemaName    string
	TablesCreated []string
	RowsInserted  int
}

// Store creates and queries per-session application data.
type Store interface {
	CreateSchema(ctx context.Context, session string) (string, error)
	CreateTables(ctx context.Context, session string, tables []TableSpec) (*Migration, error)
	Insert(ctx context.Context, session, table string, rows []map[string]interface{}) (int, error)
	Query(ctx context.Context, session, table string, limit int) ([]map[string]interface{}, error)
	DropSchema(ctx context.Context, session string) error
}

// SQLStore implements Store over the core database connection.
type SQLStore struct {
	db      *stdsql.DB
	dialect string
}

// NewSQLStore creates a store sharing the core database.
func NewSQLStore(client *database.Client) *SQLStore {
	return &SQLStore{db: client.DB(), dialect: client.Dialect()}
}

// schemaName derives the per-session namespace. Session ids are uuids;
// dashes are squashed to keep identifiers legal.
func schemaName(session string) (string, error) {
	name := "app_" + strings.ReplaceAll(strings.ToLower(session), "-", "")
	if !identPattern.MatchString(name) {
		return "", fmt.Errorf("invalid session id for schema name: %q", session)
	}
	return name, nil
}

func checkIdent(kind, name string) error {
	if !identPattern.MatchString(name) {
		return fmt.Errorf("invalid %s name %q: must match [a-z_][a-z0-9_]*", kind, name)
	}
	return nil
}

func (s *SQLStore) qualify(schema, table string) string {
	if s.dialect == dialect.Postgres {
		return fmt.Sprintf("%s.%s", schema, table)
	}
	return fmt.Sprintf("%s_%s", schema, table)
}

// CreateSchema ensures the session namespace exists and returns its name.
func (s *SQLStore) CreateSchema(ctx context.Context, session string) (string, error) {
	schema, err := schemaName(session)
	if err != nil {
		return "", err
	}
	if s.dialect == dialect.Postgres {
		if _, err := s.db.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schema)); err != nil {
			return "", fmt.Errorf("failed to create schema: %w", err)
		}
	}
	// SQLite has no schemas; the prefix is applied per table.
	return schema, nil
}

func sqlType(kind string) string {
	switch kind {
	case "integer":
		return "INTEGER"
	case "real":
		return "REAL"
	case "boolean":
		return "BOOLEAN"
	case "timestamp":
		return "TIMESTAMP"
	case "json":
		return "TEXT"
	default:
		return "TEXT"
	}
}

// CreateTables creates the declared tables inside the session namespace.
func (s *SQLStore) CreateTables(ctx context.Context, session string, tables []TableSpec) (*Migration, error) {
	schema, err := s.CreateSchema(ctx, session)
	if err != nil {
		return nil, err
	}

	migration := &Migration{SchemaName: schema}
	for _, table := range tables {
		if err := checkIdent("table", table.Name); err != nil {
			return nil, err
		}

		cols := []string{"id INTEGER PRIMARY KEY"}
		if s.dialect == dialect.Postgres {
			cols = []string{"id SERIAL PRIMARY KEY"}
		}
		for _, col := range table.Columns {
			if err := checkIdent("column", col.Name); err != nil {
				return nil, err
			}
			cols = append(cols, fmt.Sprintf("%s %s", col.Name, sqlType(col.Type)))
		}

		stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", s.qualify(schema, table.Name), strings.Join(cols, ", "))
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("failed to create table %s: %w", table.Name, err)
		}
		migration.TablesCreated = append(migration.TablesCreated, table.Name)
	}
	return migration, nil
}

// Insert adds rows to a data-model table. Unknown columns fail rather
// than being dropped silently.
func (s *SQLStore) Insert(ctx context.Context, session, table string, rows []map[string]interface{}) (int, error) {
	schema, err := schemaName(session)
	if err != nil {
		return 0, err
	}
	if err := checkIdent("table", table); err != nil {
		return 0, err
	}

	inserted := 0
	for _, row := range rows {
		cols := make([]string, 0, len(row))
		placeholders := make([]string, 0, len(row))
		values := make([]interface{}, 0, len(row))
		i := 1
		for col, val := range row {
			if err := checkIdent("column", col); err != nil {
				return inserted, err
			}
			cols = append(cols, col)
			if s.dialect == dialect.Postgres {
				placeholders = append(placeholders, fmt.Sprintf("$%d", i))
			} else {
				placeholders = append(placeholders, "?")
			}
			values = append(values, val)
			i++
		}

		stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			s.qualify(schema, table), strings.Join(cols, ", "), strings.Join(placeholders, ", "))
		if _, err := s.db.ExecContext(ctx, stmt, values...); err != nil {
			return inserted, fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		inserted++
	}
	return inserted, nil
}

// Query reads rows back as generic maps.
func (s *SQLStore) Query(ctx context.Context, session, table string, limit int) ([]map[string]interface{}, error) {
	schema, err := schemaName(session)
	if err != nil {
		return nil, err
	}
	if err := checkIdent("table", table); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT %d", s.qualify(schema, table), limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var out []map[string]interface{}
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		record := make(map[string]interface{}, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				record[col] = string(b)
			} else {
				record[col] = values[i]
			}
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

// DropSchema removes the session's data. On SQLite, prefixed tables are
// discovered and dropped individually.
func (s *SQLStore) DropSchema(ctx context.Context, session string) error {
	schema, err := schemaName(session)
	if err != nil {
		return err
	}

	if s.dialect == dialect.Postgres {
		if _, err := s.db.ExecContext(ctx, fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schema)); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
		return nil
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name LIKE ?", schema+"_%")
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, table := range tables {
		if _, err := s.db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}
