package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/javer-bank/javer/internal/domain"
	"github.com/javer-bank/javer/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const accountColumns = `id, agency, account_number, holder_name, taxpayer_id, phone, email, is_account_holder, balance, overdraft_enabled, overdraft_limit`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID, &a.Agency, &a.AccountNumber, &a.HolderName, &a.TaxpayerID,
		&a.Phone, &a.Email, &a.IsAccountHolder, &a.Balance,
		&a.OverdraftEnabled, &a.OverdraftLimit,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE id = $1
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find account by id", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE id = $1
        FOR UPDATE
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock account by id", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) FindByKey(ctx context.Context, agency, accountNumber string) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE agency = $1 AND account_number = $2
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, agency, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find account by key", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) FindByKeyForUpdate(ctx context.Context, agency, accountNumber string) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE agency = $1 AND account_number = $2
        FOR UPDATE
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, agency, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock account by key", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) FindByTaxpayerID(ctx context.Context, taxpayerID string) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE taxpayer_id = $1
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, taxpayerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find account by taxpayer id", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			zap.L().Error("can't scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	return accounts, nil
}

func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (agency, account_number, holder_name, taxpayer_id, phone, email, is_account_holder, balance, overdraft_enabled, overdraft_limit)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		account.Agency, account.AccountNumber, account.HolderName, account.TaxpayerID,
		account.Phone, account.Email, account.IsAccountHolder, account.Balance,
		account.OverdraftEnabled, account.OverdraftLimit,
	).Scan(&account.ID)
	if err != nil {
		zap.L().Error("can't save account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) Update(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
        UPDATE accounts
        SET agency = $1, account_number = $2, holder_name = $3, taxpayer_id = $4, phone = $5, email = $6, is_account_holder = $7, balance = $8, overdraft_enabled = $9, overdraft_limit = $10
        WHERE id = $11
    `
	_, err := r.db.Exec(ctx, query,
		account.Agency, account.AccountNumber, account.HolderName, account.TaxpayerID,
		account.Phone, account.Email, account.IsAccountHolder, account.Balance,
		account.OverdraftEnabled, account.OverdraftLimit, account.ID,
	)
	if err != nil {
		zap.L().Error("can't update account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM accounts
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete account", zap.Error(err))
		return err
	}
	return nil
}
