package entity

import "time"

// ActivityType classifies an audit-log entry.
type ActivityType string

const (
	ActivityDeposit       ActivityType = "deposit"
	ActivityWithdraw      ActivityType = "withdraw"
	ActivityLoanApproved  ActivityType = "loan_approved"
	ActivityLoanRepayment ActivityType = "loan_repayment"
	ActivityMemberAdded   ActivityType = "member_added"
	ActivityMemberDeleted ActivityType = "member_deleted"
)

// Activity is a human-readable audit-log entry appended as a side effect of
// ledger mutations. The feed is append-only and capacity-bounded.
type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
	ActorID     string       `json:"actorId"`
}
