package requests

// UpsertUser carries the user profile fields; the email path parameter is the
// natural key and wins over any email in the body.
type UpsertUser struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}
