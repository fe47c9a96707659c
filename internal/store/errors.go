package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because the username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrAmbiguousSoleUser is returned when the sole-user lookup runs while
	// the system holds more than one user — a mode-resolution bug upstream.
	ErrAmbiguousSoleUser = errors.New("more than one user in single-user lookup")

	// ErrEntryNotFound is returned when a query or update targets an entry
	// that does not exist (or belongs to a different owner).
	ErrEntryNotFound = errors.New("entry was not found")

	// ErrSettingsNotFound is returned when a user has no privacy settings
	// row. Callers must fall back to the conservative defaults, never to
	// permissive ones.
	ErrSettingsNotFound = errors.New("privacy settings were not found")

	// ErrRuleNotFound is returned when an update targets a privacy rule that
	// does not exist.
	ErrRuleNotFound = errors.New("privacy rule was not found")

	// ErrRuleAlreadyExists is returned when inserting a global rule for a
	// field path that already has one.
	ErrRuleAlreadyExists = errors.New("privacy rule for field path already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read-only query against
	// the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
