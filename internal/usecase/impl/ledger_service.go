package impl

import (
	"context"
	"fmt"
	"time"

	"chamabook/config"
	"chamabook/internal/domain/entity"
	domainerrors "chamabook/internal/domain/errors"
	"chamabook/internal/domain/repository"
	"chamabook/internal/usecase"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultActorID attributes system-generated feed entries to the seeded
// admin account.
const defaultActorID = "admin_01"

type ledgerService struct {
	transactionRepo repository.TransactionRepository
	loanRepo        repository.LoanRepository
	memberRepo      repository.MemberRepository
	activityRepo    repository.ActivityRepository
	cfg             *config.Config
}

// LedgerServiceParams holds dependencies for LedgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	TransactionRepo repository.TransactionRepository
	LoanRepo        repository.LoanRepository
	MemberRepo      repository.MemberRepository
	ActivityRepo    repository.ActivityRepository
	Config          *config.Config
}

// NewLedgerService creates the ledger mutator service.
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		transactionRepo: params.TransactionRepo,
		loanRepo:        params.LoanRepo,
		memberRepo:      params.MemberRepo,
		activityRepo:    params.ActivityRepo,
		cfg:             params.Config,
	}
}

// ListTransactions retrieves all transactions, or only the member's when
// memberID is non-empty.
func (s *ledgerService) ListTransactions(ctx context.Context, memberID string) ([]entity.Transaction, error) {
	if memberID != "" {
		transactions, err := s.transactionRepo.ListByMember(ctx, memberID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list transactions by member")
		}

		return transactions, nil
	}

	transactions, err := s.transactionRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return transactions, nil
}

// CreateTransaction appends an immutable ledger entry and adjusts the owning
// member's savings total for deposits and withdrawals. An unknown memberID is
// accepted: the transaction is stored and the aggregate update is skipped.
func (s *ledgerService) CreateTransaction(ctx context.Context, input usecase.CreateTransactionInput) (*entity.Transaction, error) {
	transaction := &entity.Transaction{
		ID:        uuid.New().String(),
		MemberID:  input.MemberID,
		Type:      input.Type,
		Amount:    input.Amount,
		Date:      input.Date,
		Note:      input.Note,
		CreatedBy: input.CreatedBy,
	}
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, errors.Wrap(err, "failed to create transaction")
	}

	memberName := "Member"
	member, err := s.memberRepo.FindByID(ctx, input.MemberID)
	if err != nil && !errors.Is(err, repository.ErrMemberNotFound) {
		return nil, errors.Wrap(err, "failed to find member")
	}
	if member != nil {
		memberName = member.Name
		switch input.Type {
		case entity.TransactionDeposit:
			member.TotalSaved += input.Amount
		case entity.TransactionWithdraw:
			// No floor: the balance may go negative.
			member.TotalSaved -= input.Amount
		}
		if input.Type == entity.TransactionDeposit || input.Type == entity.TransactionWithdraw {
			if err := s.memberRepo.Update(ctx, member); err != nil {
				return nil, errors.Wrap(err, "failed to update member savings")
			}
		}
	}

	activityType := entity.ActivityWithdraw
	if input.Type == entity.TransactionDeposit {
		activityType = entity.ActivityDeposit
	}
	description := fmt.Sprintf("%s %s %s", memberName, transactionVerb(input.Type), s.formatAmount(input.Amount))
	if err := s.appendActivity(ctx, activityType, description, input.CreatedBy); err != nil {
		return nil, err
	}

	return transaction, nil
}

// ListLoans retrieves all loans, or only the member's when memberID is
// non-empty.
func (s *ledgerService) ListLoans(ctx context.Context, memberID string) ([]entity.Loan, error) {
	if memberID != "" {
		loans, err := s.loanRepo.ListByMember(ctx, memberID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list loans by member")
		}

		return loans, nil
	}

	loans, err := s.loanRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list loans")
	}

	return loans, nil
}

// GetLoan retrieves a single loan by ID.
func (s *ledgerService) GetLoan(ctx context.Context, id string) (*entity.Loan, error) {
	loan, err := s.loanRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLoanNotFound) {
			return nil, domainerrors.ErrLoanNotFound
		}

		return nil, errors.Wrap(err, "failed to find loan")
	}

	return loan, nil
}

// CreateLoan approves a loan with simple interest, emits the disbursement
// transaction, raises the member's outstanding, and records the approval.
func (s *ledgerService) CreateLoan(ctx context.Context, input usecase.CreateLoanInput) (*entity.Loan, error) {
	interest := input.Principal * input.InterestRate / 100
	loan := &entity.Loan{
		ID:           uuid.New().String(),
		MemberID:     input.MemberID,
		Principal:    input.Principal,
		InterestRate: input.InterestRate,
		Outstanding:  input.Principal + interest,
		Status:       entity.LoanActive,
		CreatedAt:    time.Now(),
	}
	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, errors.Wrap(err, "failed to create loan")
	}

	// The disbursement entry documents the payout in the ledger. Its type
	// matches neither deposit nor withdraw, so TotalSaved stays untouched.
	if _, err := s.CreateTransaction(ctx, usecase.CreateTransactionInput{
		MemberID:  loan.MemberID,
		Type:      entity.TransactionLoanDisbursement,
		Amount:    loan.Principal,
		Date:      time.Now().Format(time.RFC3339),
		Note:      "Loan disbursement",
		CreatedBy: defaultActorID,
	}); err != nil {
		return nil, err
	}

	memberName := "Member"
	member, err := s.memberRepo.FindByID(ctx, loan.MemberID)
	if err != nil && !errors.Is(err, repository.ErrMemberNotFound) {
		return nil, errors.Wrap(err, "failed to find member")
	}
	if member != nil {
		memberName = member.Name
		member.Outstanding += loan.Outstanding
		if err := s.memberRepo.Update(ctx, member); err != nil {
			return nil, errors.Wrap(err, "failed to update member outstanding")
		}
	}

	description := fmt.Sprintf("Loan approved for %s - %s", memberName, s.formatAmount(loan.Principal))
	if err := s.appendActivity(ctx, entity.ActivityLoanApproved, description, defaultActorID); err != nil {
		return nil, err
	}

	return loan, nil
}

// UpdateLoan applies a partial update. A patched outstanding mirrors its
// delta onto the owning member and records repayments in the feed.
func (s *ledgerService) UpdateLoan(ctx context.Context, id string, input usecase.UpdateLoanInput) (*entity.Loan, error) {
	loan, err := s.loanRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLoanNotFound) {
			return nil, domainerrors.ErrLoanNotFound
		}

		return nil, errors.Wrap(err, "failed to find loan")
	}

	previousOutstanding := loan.Outstanding
	if input.MemberID != nil {
		loan.MemberID = *input.MemberID
	}
	if input.Principal != nil {
		loan.Principal = *input.Principal
	}
	if input.InterestRate != nil {
		loan.InterestRate = *input.InterestRate
	}
	if input.Status != nil {
		loan.Status = *input.Status
	}

	if input.Outstanding != nil {
		loan.Outstanding = *input.Outstanding
		if loan.Outstanding == 0 {
			loan.Status = entity.LoanPaid
		}

		member, err := s.memberRepo.FindByID(ctx, loan.MemberID)
		if err != nil && !errors.Is(err, repository.ErrMemberNotFound) {
			return nil, errors.Wrap(err, "failed to find member")
		}
		if member != nil {
			member.Outstanding = member.Outstanding - previousOutstanding + loan.Outstanding
			if err := s.memberRepo.Update(ctx, member); err != nil {
				return nil, errors.Wrap(err, "failed to update member outstanding")
			}

			if loan.Outstanding < previousOutstanding {
				repaid := previousOutstanding - loan.Outstanding
				description := fmt.Sprintf("%s repaid %s towards loan", member.Name, s.formatAmount(repaid))
				if err := s.appendActivity(ctx, entity.ActivityLoanRepayment, description, defaultActorID); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, errors.Wrap(err, "failed to update loan")
	}

	return loan, nil
}

func (s *ledgerService) appendActivity(ctx context.Context, activityType entity.ActivityType, description, actorID string) error {
	activity := &entity.Activity{
		ID:          uuid.New().String(),
		Type:        activityType,
		Description: description,
		Timestamp:   time.Now(),
		ActorID:     actorID,
	}
	if err := s.activityRepo.Append(ctx, activity); err != nil {
		return errors.Wrap(err, "failed to append activity")
	}

	return nil
}

// formatAmount renders an amount with the configured currency label and
// thousands separators, e.g. "KES 12,300".
func (s *ledgerService) formatAmount(amount float64) string {
	return s.cfg.Ledger.Currency + " " + humanize.Commaf(amount)
}

func transactionVerb(transactionType entity.TransactionType) string {
	switch transactionType {
	case entity.TransactionDeposit:
		return "deposited"
	case entity.TransactionWithdraw:
		return "withdrew"
	case entity.TransactionLoanDisbursement:
		return "received a loan disbursement of"
	case entity.TransactionLoanRepayment:
		return "repaid"
	default:
		return "recorded"
	}
}
