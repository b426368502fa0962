package domain

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is the session identity. It is never persisted to the remote store or
// the local mirror; it only lives in the running snapshot.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}
