package usecase

import "context"

// TransactionReport is a rendered CSV export of the transaction ledger.
type TransactionReport struct {
	Filename string
	Content  []byte
}

// ReportUsecase defines the report export use case.
type ReportUsecase interface {
	// ExportTransactionsCSV renders every transaction as a CSV row with the
	// member name resolved by lookup.
	ExportTransactionsCSV(ctx context.Context) (*TransactionReport, error)
}
