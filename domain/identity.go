package domain

// Identity carries the authenticated caller of a request.
// It is resolved once by the auth middleware and passed explicitly
// into every privileged operation instead of being read from
// request-global state.
type Identity struct {
	UserID  int64
	IsAdmin bool
}
