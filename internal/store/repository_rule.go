package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ileskov/personahub/internal/logger"
	"github.com/ileskov/personahub/models"
	"github.com/jackc/pgerrcode"
)

// ruleRepository is the SQL-backed implementation of [RuleRepository],
// persisting the global field-path privacy rules administrators manage.
type ruleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRuleRepository constructs a [RuleRepository] backed by the provided
// database connection and logger.
func NewRuleRepository(db *DB, logger *logger.Logger) RuleRepository {
	logger.Debug().Msg("creating rule repository")
	return &ruleRepository{
		db:     db,
		logger: logger,
	}
}

// ListActiveRules returns the rules with is_active=true, ordered by field
// path. This is the snapshot handed to the privacy engine on every read.
func (r *ruleRepository) ListActiveRules(ctx context.Context) ([]models.DataPrivacyRule, error) {
	return r.listRules(ctx, listActiveRules)
}

// ListRules returns every rule regardless of active state, for the admin view.
func (r *ruleRepository) ListRules(ctx context.Context) ([]models.DataPrivacyRule, error) {
	return r.listRules(ctx, listAllRules)
}

func (r *ruleRepository) listRules(ctx context.Context, query string) ([]models.DataPrivacyRule, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*ruleRepository.listRules").Msg("error querying privacy rules")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var rules []models.DataPrivacyRule
	for rows.Next() {
		var rule models.DataPrivacyRule
		if scanErr := rows.Scan(&rule.RuleID, &rule.FieldPath, &rule.MinLevel,
			&rule.IsActive, &rule.CreatedAt, &rule.UpdatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*ruleRepository.listRules").Msg("error scanning rule row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		rules = append(rules, rule)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*ruleRepository.listRules").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return rules, nil
}

// CreateRule inserts a new global rule and returns it with server-assigned
// fields populated. Returns [ErrRuleAlreadyExists] when a rule for the same
// field path already exists.
func (r *ruleRepository) CreateRule(ctx context.Context, rule models.DataPrivacyRule) (models.DataPrivacyRule, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createRule, rule.FieldPath, rule.MinLevel, rule.IsActive)

	created, err := scanRule(row)
	if err != nil {
		log.Err(err).Str("func", "*ruleRepository.CreateRule").Msg("error creating privacy rule")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.DataPrivacyRule{}, ErrRuleAlreadyExists
		default:
			return models.DataPrivacyRule{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// UpdateRule changes the level or active state of an existing rule.
// Returns [ErrRuleNotFound] when no rule has the given identifier.
func (r *ruleRepository) UpdateRule(ctx context.Context, rule models.DataPrivacyRule) (models.DataPrivacyRule, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateRule, rule.RuleID, rule.MinLevel, rule.IsActive)

	updated, err := scanRule(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DataPrivacyRule{}, ErrRuleNotFound
		}

		log.Err(err).Str("func", "*ruleRepository.UpdateRule").Msg("error updating privacy rule")
		return models.DataPrivacyRule{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

func scanRule(row *sql.Row) (models.DataPrivacyRule, error) {
	var rule models.DataPrivacyRule
	if err := row.Scan(&rule.RuleID, &rule.FieldPath, &rule.MinLevel,
		&rule.IsActive, &rule.CreatedAt, &rule.UpdatedAt); err != nil {
		return models.DataPrivacyRule{}, err
	}

	return rule, nil
}
