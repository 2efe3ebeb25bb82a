package entity

import "time"

// Note is an admin's free-form scratch note. One note per admin by
// convention; UpdatedAt is refreshed on every write.
type Note struct {
	ID        string    `json:"id"`
	AdminID   string    `json:"adminId"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}
