package models

// AdminUser is the cached identity record of the signed-in administrator.
type AdminUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
