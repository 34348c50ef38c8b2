package middleware

// Keys under which the auth middleware stores the caller's identity in the
// gin context.
const (
	ClientIDCtx    = "client_id"
	ClientRolesCtx = "client_roles"
)
