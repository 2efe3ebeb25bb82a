package entity

import "time"

// LoanStatus is the lifecycle state of a loan.
type LoanStatus string

const (
	LoanActive LoanStatus = "active"
	LoanPaid   LoanStatus = "paid"
	// LoanOverdue exists in the taxonomy but no mutator produces it; it can
	// only be set through an explicit status patch.
	LoanOverdue LoanStatus = "overdue"
)

// Loan is a simple-interest loan issued to a member. Outstanding starts at
// principal plus the full interest amount and is driven down by repayments.
type Loan struct {
	ID           string     `json:"id"`
	MemberID     string     `json:"memberId"`
	Principal    float64    `json:"principal"`    // Strictly positive.
	InterestRate float64    `json:"interestRate"` // Percent, non-negative.
	Outstanding  float64    `json:"outstanding"`  // Remaining amount owed on this loan.
	Status       LoanStatus `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
}
