package privacy

// Mode distinguishes single-user deployments (one implicit owner, no
// username segment in URLs) from multi-user ones (explicit owner segments).
// It changes which data set is even visible and therefore which owner
// context the filter receives.
type Mode int

const (
	// SingleUser is active while the system has at most one user. Requests
	// carry no explicit owner; the sole user is the implicit target and any
	// explicit-username form resolves to not-found.
	SingleUser Mode = iota

	// MultiUser requires an explicit username segment for owner-scoped
	// reads. A request with no username and no authentication yields the
	// aggregate public view across all users.
	MultiUser
)

// String returns a log-friendly mode label.
func (m Mode) String() string {
	if m == SingleUser {
		return "single-user"
	}
	return "multi-user"
}

// ResolveMode derives the mode from the current user count. Callers must
// invoke it on every request — mode changes as users are added and must
// never be cached beyond request scope.
func ResolveMode(userCount int) Mode {
	if userCount <= 1 {
		return SingleUser
	}
	return MultiUser
}
