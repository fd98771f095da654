package accountservice

import (
	"context"

	"github.com/javer-bank/javer/internal/apperr"
	"github.com/javer-bank/javer/internal/domain"
	"github.com/javer-bank/javer/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Account, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Account, error)
	FindByKey(ctx context.Context, agency, accountNumber string) (*domain.Account, error)
	FindByKeyForUpdate(ctx context.Context, agency, accountNumber string) (*domain.Account, error)
	FindByTaxpayerID(ctx context.Context, taxpayerID string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Delete(ctx context.Context, id int) error
}

var (
	ErrAccountNotFound          = apperr.New(404, "ACCOUNT_NOT_FOUND", "account not found")
	ErrNegativeInitialBalance   = apperr.New(422, "NEGATIVE_INITIAL_BALANCE", "cannot create account with negative balance")
	ErrNonHolderBalance         = apperr.New(422, "INVALID_BALANCE_FOR_NON_HOLDER", "non-holder account must keep a zero balance")
	ErrInvalidOverdraftLimit    = apperr.New(422, "INVALID_OVERDRAFT_LIMIT", "overdraft limit must be >= 0 when enabling overdraft")
	ErrDuplicateAccount         = apperr.New(409, "DUPLICATE_ACCOUNT", "account already exists for this agency and number")
	ErrTaxpayerIDRegistered     = apperr.New(409, "TAXPAYER_ID_ALREADY_REGISTERED", "an account is already registered for this taxpayer id")
	ErrUniqueConflict           = apperr.New(409, "UNIQUE_CONSTRAINT_CONFLICT", "agency/number or taxpayer id already registered")
	ErrBalanceNotZero           = apperr.New(409, "BALANCE_NOT_ZERO", "account can only be deactivated with a zero balance")
	ErrInsufficientBalance      = apperr.New(409, "INSUFFICIENT_BALANCE", "insufficient balance")
	ErrOverdraftExceeded        = apperr.New(409, "OVERDRAFT_LIMIT_EXCEEDED", "overdraft limit exceeded")
	ErrOverdraftNegativeBalance = apperr.New(409, "OVERDRAFT_DISABLE_WITH_NEGATIVE_BALANCE", "cannot disable overdraft with a negative balance")
	ErrInvalidLimit             = apperr.New(422, "INVALID_LIMIT", "limit must be >= 0")
)

type Service struct {
	repo      Repo
	txManager pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// CreateInput keeps the optional amounts as pointers: a nil balance
// defaults to zero, while a nil overdraft limit with overdraft enabled is
// a rejected creation.
type CreateInput struct {
	Agency           string
	AccountNumber    string
	HolderName       string
	TaxpayerID       string
	Phone            string
	Email            string
	IsAccountHolder  bool
	Balance          *decimal.Decimal
	OverdraftEnabled bool
	OverdraftLimit   *decimal.Decimal
}

// Patch carries a partial update; nil means the field was not provided.
type Patch struct {
	Agency           *string
	AccountNumber    *string
	HolderName       *string
	TaxpayerID       *string
	Phone            *string
	Email            *string
	IsAccountHolder  *bool
	Balance          *decimal.Decimal
	OverdraftEnabled *bool
	OverdraftLimit   *decimal.Decimal
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Account, error) {
	balance := decimal.Zero
	if in.Balance != nil {
		balance = *in.Balance
	}

	if balance.IsNegative() {
		return nil, ErrNegativeInitialBalance
	}
	if !in.IsAccountHolder && !balance.IsZero() {
		return nil, ErrNonHolderBalance
	}
	if in.OverdraftEnabled && (in.OverdraftLimit == nil || in.OverdraftLimit.IsNegative()) {
		return nil, ErrInvalidOverdraftLimit
	}

	existing, err := s.repo.FindByKey(ctx, in.Agency, in.AccountNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateAccount
	}

	existing, err = s.repo.FindByTaxpayerID(ctx, in.TaxpayerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTaxpayerIDRegistered
	}

	limit := decimal.Zero
	if in.OverdraftLimit != nil {
		limit = *in.OverdraftLimit
	}
	account := &domain.Account{
		Agency:           in.Agency,
		AccountNumber:    in.AccountNumber,
		HolderName:       in.HolderName,
		TaxpayerID:       in.TaxpayerID,
		Phone:            in.Phone,
		Email:            in.Email,
		IsAccountHolder:  in.IsAccountHolder,
		Balance:          balance,
		OverdraftEnabled: in.OverdraftEnabled,
		OverdraftLimit:   limit,
	}

	account, err = s.repo.Create(ctx, account)
	if err != nil {
		// pre-checks cannot catch a concurrent insert; the constraint does
		if pg.IsUniqueViolation(err) {
			return nil, ErrUniqueConflict
		}
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

func (s *Service) GetByKey(ctx context.Context, agency, accountNumber string) (*domain.Account, error) {
	account, err := s.repo.FindByKey(ctx, agency, accountNumber)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) Update(ctx context.Context, agency, accountNumber string, patch Patch) (*domain.Account, error) {
	var updated *domain.Account
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.repo.FindByKeyForUpdate(ctx, agency, accountNumber)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		resultingHolder := account.IsAccountHolder
		if patch.IsAccountHolder != nil {
			resultingHolder = *patch.IsAccountHolder
		}
		if !resultingHolder && !account.Balance.IsZero() {
			return ErrNonHolderBalance
		}

		applyPatch(account, patch)

		if _, err := s.repo.Update(ctx, account); err != nil {
			if pg.IsUniqueViolation(err) {
				return ErrUniqueConflict
			}
			zap.L().Error("failed to update account", zap.Error(err))
			return err
		}
		updated = account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func applyPatch(account *domain.Account, patch Patch) {
	if patch.Agency != nil {
		account.Agency = *patch.Agency
	}
	if patch.AccountNumber != nil {
		account.AccountNumber = *patch.AccountNumber
	}
	if patch.HolderName != nil {
		account.HolderName = *patch.HolderName
	}
	if patch.TaxpayerID != nil {
		account.TaxpayerID = *patch.TaxpayerID
	}
	if patch.Phone != nil {
		account.Phone = *patch.Phone
	}
	if patch.Email != nil {
		account.Email = *patch.Email
	}
	if patch.IsAccountHolder != nil {
		account.IsAccountHolder = *patch.IsAccountHolder
	}
	if patch.Balance != nil {
		account.Balance = *patch.Balance
	}
	if patch.OverdraftEnabled != nil {
		account.OverdraftEnabled = *patch.OverdraftEnabled
	}
	if patch.OverdraftLimit != nil {
		account.OverdraftLimit = *patch.OverdraftLimit
	}
}

func (s *Service) Deactivate(ctx context.Context, agency, accountNumber string) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.repo.FindByKeyForUpdate(ctx, agency, accountNumber)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}
		if !account.Balance.IsZero() {
			return ErrBalanceNotZero
		}
		return s.repo.Delete(ctx, account.ID)
	})
}

func (s *Service) Deposit(ctx context.Context, agency, accountNumber string, amount decimal.Decimal) (*domain.Account, error) {
	var updated *domain.Account
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.repo.FindByKeyForUpdate(ctx, agency, accountNumber)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		account.Balance = account.Balance.Add(amount)
		if _, err := s.repo.Update(ctx, account); err != nil {
			zap.L().Error("failed to apply deposit", zap.Error(err))
			return err
		}
		updated = account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) Withdraw(ctx context.Context, agency, accountNumber string, amount decimal.Decimal) (*domain.Account, error) {
	var updated *domain.Account
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.repo.FindByKeyForUpdate(ctx, agency, accountNumber)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		newBalance := account.Balance.Sub(amount)
		if newBalance.IsNegative() {
			if !account.OverdraftEnabled {
				return ErrInsufficientBalance
			}
			if newBalance.LessThan(account.OverdraftLimit.Neg()) {
				return ErrOverdraftExceeded
			}
		}

		account.Balance = newBalance
		if _, err := s.repo.Update(ctx, account); err != nil {
			zap.L().Error("failed to apply withdrawal", zap.Error(err))
			return err
		}
		updated = account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) RegisterOverdraft(ctx context.Context, id int, enabled bool, limit decimal.Decimal) (*domain.Account, error) {
	var updated *domain.Account
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		if !enabled && account.Balance.IsNegative() {
			return ErrOverdraftNegativeBalance
		}
		if enabled && limit.IsNegative() {
			return ErrInvalidLimit
		}

		account.OverdraftEnabled = enabled
		account.OverdraftLimit = limit
		if _, err := s.repo.Update(ctx, account); err != nil {
			zap.L().Error("failed to register overdraft", zap.Error(err))
			return err
		}
		updated = account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
