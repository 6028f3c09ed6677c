package postgresql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kingstonbooks/payroll-backend-go/internal/pkg/database"
)

var testDB *database.DB

func init() {
	setup, err := NewTestDatabase(context.Background())
	if err != nil {
		panic("Failed to connect to test database: " + err.Error())
	}
	testDB = setup.DB
}

func resetTestData(t *testing.T, ctx context.Context) {
	setup := &TestDatabaseSetup{DB: testDB}
	require.NoError(t, setup.TruncateAllTables(ctx))
}

func createTestCompany(t *testing.T, ctx context.Context) string {
	var companyID string
	err := testDB.QueryRow(ctx, `
		INSERT INTO companies (id, name)
		VALUES (gen_random_uuid(), 'Test Company')
		RETURNING id
	`).Scan(&companyID)
	require.NoError(t, err)
	return companyID
}
