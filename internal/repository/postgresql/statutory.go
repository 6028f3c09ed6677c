package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kingstonbooks/payroll-backend-go/internal/domain/statutory"
	"github.com/kingstonbooks/payroll-backend-go/internal/pkg/database"
)

type ruleSetRepository struct {
	db *database.DB
}

func NewRuleSetRepository(db *database.DB) statutory.RuleSetRepository {
	return &ruleSetRepository{db: db}
}

func (r *ruleSetRepository) GetByID(ctx context.Context, id string) (statutory.RuleSet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, effective_from, effective_to,
			   nis_employee_rate, nis_employer_rate, nis_annual_ceiling,
			   nht_employee_rate, nht_employer_rate,
			   education_tax_employee_rate, education_tax_employer_rate,
			   heart_levy_rate,
			   paye_annual_threshold, paye_band1_rate, paye_band1_width, paye_band2_rate,
			   created_at
		FROM statutory_rule_sets
		WHERE id = $1
	`

	var rs statutory.RuleSet
	err := q.QueryRow(ctx, query, id).Scan(
		&rs.ID, &rs.Name, &rs.EffectiveFrom, &rs.EffectiveTo,
		&rs.NISEmployeeRate, &rs.NISEmployerRate, &rs.NISAnnualCeiling,
		&rs.NHTEmployeeRate, &rs.NHTEmployerRate,
		&rs.EducationTaxEmployeeRate, &rs.EducationTaxEmployerRate,
		&rs.HEARTLevyRate,
		&rs.PAYEAnnualThreshold, &rs.PAYEBand1Rate, &rs.PAYEBand1Width, &rs.PAYEBand2Rate,
		&rs.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return statutory.RuleSet{}, statutory.ErrRuleSetNotFound
		}
		return statutory.RuleSet{}, fmt.Errorf("failed to get rule set: %w", err)
	}

	return rs, nil
}

func (r *ruleSetRepository) GetForDate(ctx context.Context, date time.Time) (statutory.RuleSet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, effective_from, effective_to,
			   nis_employee_rate, nis_employer_rate, nis_annual_ceiling,
			   nht_employee_rate, nht_employer_rate,
			   education_tax_employee_rate, education_tax_employer_rate,
			   heart_levy_rate,
			   paye_annual_threshold, paye_band1_rate, paye_band1_width, paye_band2_rate,
			   created_at
		FROM statutory_rule_sets
		WHERE effective_from <= $1
		  AND (effective_to IS NULL OR effective_to > $1)
		ORDER BY effective_from DESC
		LIMIT 1
	`

	var rs statutory.RuleSet
	err := q.QueryRow(ctx, query, date).Scan(
		&rs.ID, &rs.Name, &rs.EffectiveFrom, &rs.EffectiveTo,
		&rs.NISEmployeeRate, &rs.NISEmployerRate, &rs.NISAnnualCeiling,
		&rs.NHTEmployeeRate, &rs.NHTEmployerRate,
		&rs.EducationTaxEmployeeRate, &rs.EducationTaxEmployerRate,
		&rs.HEARTLevyRate,
		&rs.PAYEAnnualThreshold, &rs.PAYEBand1Rate, &rs.PAYEBand1Width, &rs.PAYEBand2Rate,
		&rs.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return statutory.RuleSet{}, statutory.ErrNoRuleSetForDate
		}
		return statutory.RuleSet{}, fmt.Errorf("failed to get rule set for date: %w", err)
	}

	return rs, nil
}

func (r *ruleSetRepository) List(ctx context.Context) ([]statutory.RuleSet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, effective_from, effective_to,
			   nis_employee_rate, nis_employer_rate, nis_annual_ceiling,
			   nht_employee_rate, nht_employer_rate,
			   education_tax_employee_rate, education_tax_employer_rate,
			   heart_levy_rate,
			   paye_annual_threshold, paye_band1_rate, paye_band1_width, paye_band2_rate,
			   created_at
		FROM statutory_rule_sets
		ORDER BY effective_from DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rule sets: %w", err)
	}
	defer rows.Close()

	var ruleSets []statutory.RuleSet
	for rows.Next() {
		var rs statutory.RuleSet
		err := rows.Scan(
			&rs.ID, &rs.Name, &rs.EffectiveFrom, &rs.EffectiveTo,
			&rs.NISEmployeeRate, &rs.NISEmployerRate, &rs.NISAnnualCeiling,
			&rs.NHTEmployeeRate, &rs.NHTEmployerRate,
			&rs.EducationTaxEmployeeRate, &rs.EducationTaxEmployerRate,
			&rs.HEARTLevyRate,
			&rs.PAYEAnnualThreshold, &rs.PAYEBand1Rate, &rs.PAYEBand1Width, &rs.PAYEBand2Rate,
			&rs.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rule set: %w", err)
		}
		ruleSets = append(ruleSets, rs)
	}

	return ruleSets, rows.Err()
}

func (r *ruleSetRepository) Create(ctx context.Context, rs statutory.RuleSet) (statutory.RuleSet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO statutory_rule_sets (
			name, effective_from, effective_to,
			nis_employee_rate, nis_employer_rate, nis_annual_ceiling,
			nht_employee_rate, nht_employer_rate,
			education_tax_employee_rate, education_tax_employer_rate,
			heart_levy_rate,
			paye_annual_threshold, paye_band1_rate, paye_band1_width, paye_band2_rate
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		rs.Name, rs.EffectiveFrom, rs.EffectiveTo,
		rs.NISEmployeeRate, rs.NISEmployerRate, rs.NISAnnualCeiling,
		rs.NHTEmployeeRate, rs.NHTEmployerRate,
		rs.EducationTaxEmployeeRate, rs.EducationTaxEmployerRate,
		rs.HEARTLevyRate,
		rs.PAYEAnnualThreshold, rs.PAYEBand1Rate, rs.PAYEBand1Width, rs.PAYEBand2Rate,
	).Scan(&rs.ID, &rs.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_rule_set_effective_from") {
			return statutory.RuleSet{}, statutory.ErrEffectiveFromTaken
		}
		return statutory.RuleSet{}, fmt.Errorf("failed to create rule set: %w", err)
	}

	return rs, nil
}
