package entity

// TransactionType classifies a ledger transaction.
type TransactionType string

const (
	TransactionDeposit          TransactionType = "deposit"
	TransactionWithdraw         TransactionType = "withdraw"
	TransactionLoanDisbursement TransactionType = "loan_disbursement"
	TransactionLoanRepayment    TransactionType = "loan_repayment"
)

// Transaction is a single immutable ledger entry. Only deposit and withdraw
// entries move the owning member's TotalSaved; loan entries are recorded for
// the audit trail without touching savings totals.
type Transaction struct {
	ID        string          `json:"id"`
	MemberID  string          `json:"memberId"`
	Type      TransactionType `json:"type"`
	Amount    float64         `json:"amount"` // Strictly positive.
	Date      string          `json:"date"`   // Client-supplied date, kept verbatim.
	Note      string          `json:"note"`
	CreatedBy string          `json:"createdBy"`
}
