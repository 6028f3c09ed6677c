package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingstonbooks/payroll-backend-go/internal/domain/statutory"
	"github.com/kingstonbooks/payroll-backend-go/internal/fixtures"
	"github.com/kingstonbooks/payroll-backend-go/internal/repository/postgresql"
)

func seedDefaultRuleSets(t *testing.T, ctx context.Context) []statutory.RuleSet {
	repo := postgresql.NewRuleSetRepository(testDB)
	var created []statutory.RuleSet
	for _, rs := range fixtures.GetDefaultRuleSets() {
		saved, err := repo.Create(ctx, rs)
		require.NoError(t, err)
		created = append(created, saved)
	}
	return created
}

// ===== RULE SET REPOSITORY TESTS =====

func TestRuleSetRepository_GetForDate_PicksCoveringVersion(t *testing.T) {
	ctx := context.Background()
	resetTestData(t, ctx)
	seedDefaultRuleSets(t, ctx)
	repo := postgresql.NewRuleSetRepository(testDB)

	rs, err := repo.GetForDate(ctx, time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, "FY2023-2024", rs.Name)
	assert.Equal(t, "3000000.00", rs.NISAnnualCeiling.StringFixed(2))
}

func TestRuleSetRepository_GetForDate_EffectiveToIsExclusive(t *testing.T) {
	ctx := context.Background()
	resetTestData(t, ctx)
	seedDefaultRuleSets(t, ctx)
	repo := postgresql.NewRuleSetRepository(testDB)

	// The old version runs through 31 March; 1 April belongs to the new one.
	lastDay, err := repo.GetForDate(ctx, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "FY2023-2024", lastDay.Name)

	firstDay, err := repo.GetForDate(ctx, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "FY2024-2025", firstDay.Name)
	assert.Equal(t, "5000000.00", firstDay.NISAnnualCeiling.StringFixed(2))
}

func TestRuleSetRepository_GetForDate_NoVersionCovers(t *testing.T) {
	ctx := context.Background()
	resetTestData(t, ctx)
	seedDefaultRuleSets(t, ctx)
	repo := postgresql.NewRuleSetRepository(testDB)

	_, err := repo.GetForDate(ctx, time.Date(2022, time.December, 25, 0, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, err, statutory.ErrNoRuleSetForDate)
}

func TestRuleSetRepository_Create_DuplicateEffectiveFrom(t *testing.T) {
	ctx := context.Background()
	resetTestData(t, ctx)
	seedDefaultRuleSets(t, ctx)
	repo := postgresql.NewRuleSetRepository(testDB)

	duplicate := fixtures.GetCurrentRuleSet()
	duplicate.Name = "FY2024-2025 rerun"

	_, err := repo.Create(ctx, duplicate)

	assert.ErrorIs(t, err, statutory.ErrEffectiveFromTaken)
}

func TestRuleSetRepository_List_NewestFirst(t *testing.T) {
	ctx := context.Background()
	resetTestData(t, ctx)
	seedDefaultRuleSets(t, ctx)
	repo := postgresql.NewRuleSetRepository(testDB)

	ruleSets, err := repo.List(ctx)

	require.NoError(t, err)
	require.Len(t, ruleSets, 2)
	assert.Equal(t, "FY2024-2025", ruleSets[0].Name)
	assert.Equal(t, "FY2023-2024", ruleSets[1].Name)
}
