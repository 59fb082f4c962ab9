package models

// User is an admin dashboard account.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Session is one login; the token travels in an HttpOnly cookie and the row
// is deleted on logout.
type Session struct {
	ID        int64  `json:"id"`
	Token     string `json:"-"`
	UserID    int64  `json:"userId"`
	ExpiresAt string `json:"expiresAt"`
	CreatedAt string `json:"createdAt"`
}
