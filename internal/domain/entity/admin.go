package entity

// Admin is an administrator account for the bookkeeping dashboard.
// Password is stored verbatim and never serialized into responses.
type Admin struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"` // Unique across admins.
	Phone     string  `json:"phone"`
	AvatarURL *string `json:"avatarUrl"`
	Password  string  `json:"-"`
}
