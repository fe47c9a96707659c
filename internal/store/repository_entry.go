package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ileskov/personahub/internal/logger"
	"github.com/ileskov/personahub/models"
)

// entryRepository is the SQL-backed implementation of [EntryRepository].
// It owns all reads and writes against the "entries" table; the privacy
// engine never touches stored rows directly.
type entryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEntryRepository constructs an [EntryRepository] backed by the provided
// database connection and logger.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		db:     db,
		logger: logger,
	}
}

// SaveEntry inserts a new profile entry and returns it with server-assigned
// fields (ID, CreatedAt, UpdatedAt) populated.
func (r *entryRepository) SaveEntry(ctx context.Context, entry models.DataEntry) (models.DataEntry, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, saveEntry,
		entry.OwnerID, entry.Title, entry.Content, entry.Visibility, entry.Fields)

	saved, err := scanEntry(row)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.SaveEntry").Msg("error saving entry")
		return models.DataEntry{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// GetEntry retrieves a single entry by identifier regardless of owner or
// visibility; callers apply the gate afterwards. Returns [ErrEntryNotFound]
// when no row matches.
func (r *entryRepository) GetEntry(ctx context.Context, entryID int64) (models.DataEntry, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getEntry, entryID)

	found, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DataEntry{}, ErrEntryNotFound
		}

		log.Err(err).Str("func", "*entryRepository.GetEntry").Msg("error getting entry")
		return models.DataEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// ListEntries returns entries matching the request filters, newest first.
// An empty request lists every entry in the system.
func (r *entryRepository) ListEntries(ctx context.Context, req models.EntryListRequest) ([]models.DataEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(req)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("error building list query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.DataEntry
	for rows.Next() {
		var entry models.DataEntry
		if scanErr := rows.Scan(&entry.ID, &entry.OwnerID, &entry.Title, &entry.Content,
			&entry.Visibility, &entry.Fields, &entry.CreatedAt, &entry.UpdatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*entryRepository.ListEntries").Msg("error scanning entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*entryRepository.ListEntries").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// UpdateEntry applies a partial update to an entry owned by update.OwnerID
// and returns the updated row. Returns [ErrEntryNotFound] when the entry
// does not exist or belongs to another owner.
func (r *entryRepository) UpdateEntry(ctx context.Context, update models.EntryUpdate) (models.DataEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEntryQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.UpdateEntry").Msg("error building update query")
		return models.DataEntry{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	updated, scanErr := scanEntry(row)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.DataEntry{}, ErrEntryNotFound
		}

		log.Err(scanErr).Str("func", "*entryRepository.UpdateEntry").Msg("error updating entry")
		return models.DataEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return updated, nil
}

// DeleteEntry removes an entry owned by ownerID. Returns [ErrEntryNotFound]
// when nothing was deleted.
func (r *entryRepository) DeleteEntry(ctx context.Context, ownerID, entryID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteEntry, ownerID, entryID)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.DeleteEntry").Msg("error deleting entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.DeleteEntry").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func scanEntry(row *sql.Row) (models.DataEntry, error) {
	var entry models.DataEntry
	if err := row.Scan(&entry.ID, &entry.OwnerID, &entry.Title, &entry.Content,
		&entry.Visibility, &entry.Fields, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
		return models.DataEntry{}, err
	}

	return entry, nil
}
