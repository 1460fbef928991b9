package usercontext

// Shared Locals/session keys used across controllers and middlewares
const (
	AuthKey        = "authenticated"
	KeyUserID      = "user_id"
	KeyUsername    = "username"
	KeyDisplayName = "display_name"
	KeyUserContext = "USER_CONTEXT"
)
