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

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and the identity lookups the mode resolver
// depends on, against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Name, user.PasswordHash, user.IsAdmin)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&user.UserID, &user.Username, &user.Name, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		}
		return models.User{}, err
	}

	user.Password = ""

	return user, nil
}

// FindUserByUsername retrieves the user record with the given username.
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, findUserByUsername, username)
}

// FindUserByID retrieves the user record with the given internal identifier.
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&found.UserID, &found.Username, &found.Name, &found.PasswordHash, &found.IsAdmin, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// CountUsers returns the total number of user accounts. The mode resolver
// calls it on every read request; the count is never cached here.
func (r *userRepository) CountUsers(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := r.db.QueryRowContext(ctx, countUsers).Scan(&count); err != nil {
		log.Err(err).Str("func", "*userRepository.CountUsers").Msg("error counting users")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// SoleUser returns the only user in the system. The query fetches up to two
// rows so the ambiguity can be detected without a second round trip.
//
// Error handling:
//   - no rows → [ErrNoUserWasFound].
//   - two rows → [ErrAmbiguousSoleUser].
func (r *userRepository) SoleUser(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, soleUser)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SoleUser").Msg("error querying sole user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var found []models.User
	for rows.Next() {
		var user models.User
		if scanErr := rows.Scan(&user.UserID, &user.Username, &user.Name, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.SoleUser").Msg("error scanning user row")
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		found = append(found, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*userRepository.SoleUser").Msg("error occurred during rows iteration")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	switch len(found) {
	case 0:
		return models.User{}, ErrNoUserWasFound
	case 1:
		return found[0], nil
	default:
		return models.User{}, ErrAmbiguousSoleUser
	}
}
