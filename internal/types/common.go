package types

// HTTP Header Constants
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
)

// Authentication Constants
const (
	BearerPrefix = "Bearer "
	// UserCtxName is the fiber locals key holding the authenticated UserContext.
	UserCtxName = "user"
	// ClaimKey is the JWT claim holding the user payload.
	ClaimKey = "claim"
)

// UserContext identifies the caller of an authenticated request.
type UserContext struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// CanActFor reports whether the caller may read or modify username's data.
func (u UserContext) CanActFor(username string) bool {
	return u.IsAdmin || u.Username == username
}
