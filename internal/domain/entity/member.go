// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Member is a participant in the savings group whose deposits, withdrawals,
// and loans are tracked by the ledger.
type Member struct {
	ID          string  `json:"id"`          // Unique identifier for the member.
	Name        string  `json:"name"`        // The member's display name.
	Phone       string  `json:"phone"`       // Contact phone number.
	Email       string  `json:"email"`       // Contact email; unique across members.
	AvatarURL   *string `json:"avatarUrl"`   // Optional avatar image URL.
	JoinedAt    string  `json:"joinedAt"`    // Date the member joined the group.
	Reason      string  `json:"reason"`      // The member's stated savings goal.
	TotalSaved  float64 `json:"totalSaved"`  // Running sum of deposits minus withdrawals.
	Outstanding float64 `json:"outstanding"` // Sum of unpaid loan balances owed by the member.
}
