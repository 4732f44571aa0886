// Package database provides test constructors for the core database
// client backed by a per-test PostgreSQL schema.
package database

import (
	"testing"

	"entgo.io/ent/dialect"

	"github.com/TheSmartAz/instant-coffee-sub001/pkg/database"
	"github.com/TheSmartAz/instant-coffee-sub001/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
// The schema and connections are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db, dialect.Postgres)
}
