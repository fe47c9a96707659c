package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/ileskov/personahub/models"
)

const (
	createUser = `INSERT INTO users (username, name, password_hash, is_admin)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, username, name, password_hash, is_admin, created_at;`

	findUserByUsername = `SELECT user_id, username, name, password_hash, is_admin, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, username, name, password_hash, is_admin, created_at
    FROM users
    WHERE user_id = $1;`

	countUsers = `SELECT COUNT(*) FROM users;`

	soleUser = `SELECT user_id, username, name, password_hash, is_admin, created_at
    FROM users
    ORDER BY user_id
    LIMIT 2;`

	saveEntry = `INSERT INTO entries (owner_id, title, content, visibility, fields)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, owner_id, title, content, visibility, fields, created_at, updated_at;`

	getEntry = `SELECT id, owner_id, title, content, visibility, fields, created_at, updated_at
    FROM entries
    WHERE id = $1;`

	deleteEntry = `DELETE FROM entries
    WHERE owner_id = $1 AND id = $2;`

	getSettings = `SELECT user_id, show_contact_info, show_location, show_current_company, show_salary_range,
        business_card_mode, ai_assistant_access, custom_privacy_rules, updated_at
    FROM user_privacy_settings
    WHERE user_id = $1;`

	saveSettings = `INSERT INTO user_privacy_settings (
        user_id,
        show_contact_info,
        show_location,
        show_current_company,
        show_salary_range,
        business_card_mode,
        ai_assistant_access,
        custom_privacy_rules,
        updated_at
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP)
    ON CONFLICT (user_id) DO UPDATE SET
        show_contact_info = excluded.show_contact_info,
        show_location = excluded.show_location,
        show_current_company = excluded.show_current_company,
        show_salary_range = excluded.show_salary_range,
        business_card_mode = excluded.business_card_mode,
        ai_assistant_access = excluded.ai_assistant_access,
        custom_privacy_rules = excluded.custom_privacy_rules,
        updated_at = CURRENT_TIMESTAMP
    RETURNING user_id, show_contact_info, show_location, show_current_company, show_salary_range,
        business_card_mode, ai_assistant_access, custom_privacy_rules, updated_at;`

	listRulesBase = `SELECT rule_id, field_path, min_level, is_active, created_at, updated_at
    FROM data_privacy_rules`

	listActiveRules = listRulesBase + `
    WHERE is_active = TRUE
    ORDER BY field_path;`

	listAllRules = listRulesBase + `
    ORDER BY field_path;`

	createRule = `INSERT INTO data_privacy_rules (field_path, min_level, is_active)
    VALUES ($1, $2, $3)
    RETURNING rule_id, field_path, min_level, is_active, created_at, updated_at;`

	updateRule = `UPDATE data_privacy_rules
    SET min_level = $2, is_active = $3, updated_at = CURRENT_TIMESTAMP
    WHERE rule_id = $1
    RETURNING rule_id, field_path, min_level, is_active, created_at, updated_at;`
)

var entryColumns = []string{"id", "owner_id", "title", "content", "visibility", "fields", "created_at", "updated_at"}

// buildListEntriesQuery builds the dynamic entry-listing SELECT. Filters are
// appended only when present in the request, so the same builder serves the
// aggregate feed, owner-scoped reads, and the management view.
func buildListEntriesQuery(req models.EntryListRequest) (string, []any, error) {
	qb := sq.Select(entryColumns...).
		From("entries").
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(sq.Dollar)

	if req.OwnerID != 0 {
		qb = qb.Where(sq.Eq{"owner_id": req.OwnerID})
	}

	if len(req.Visibilities) > 0 {
		qb = qb.Where(sq.Eq{"visibility": req.Visibilities})
	}

	if req.Limit > 0 {
		qb = qb.Limit(req.Limit)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateEntryQuery builds a partial UPDATE touching only the non-nil
// fields of the update request.
func buildUpdateEntryQuery(update models.EntryUpdate) (string, []any, error) {
	qb := sq.Update("entries").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": update.ID, "owner_id": update.OwnerID}).
		Suffix("RETURNING " + strings.Join(entryColumns, ", ")).
		PlaceholderFormat(sq.Dollar)

	if update.Title != nil {
		qb = qb.Set("title", *update.Title)
	}
	if update.Content != nil {
		qb = qb.Set("content", *update.Content)
	}
	if update.Visibility != nil {
		qb = qb.Set("visibility", *update.Visibility)
	}
	if update.Fields != nil {
		qb = qb.Set("fields", *update.Fields)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
