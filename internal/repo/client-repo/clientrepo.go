package clientrepo

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

const clientColumns = `id, name, phone, is_account_holder, balance`

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.IsAccountHolder, &c.Balance)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Client, error) {
	query := `
        SELECT ` + clientColumns + `
        FROM clients
        WHERE id = $1
    `
	client, err := scanClient(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find client", zap.Error(err))
		return nil, err
	}
	return client, nil
}

func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Client, error) {
	query := `
        SELECT ` + clientColumns + `
        FROM clients
        WHERE id = $1
        FOR UPDATE
    `
	client, err := scanClient(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock client", zap.Error(err))
		return nil, err
	}
	return client, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Client, error) {
	query := `
        SELECT ` + clientColumns + `
        FROM clients
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list clients", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			zap.L().Error("can't scan client row", zap.Error(err))
			return nil, err
		}
		clients = append(clients, *client)
	}
	return clients, nil
}

func (r *Repository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	query := `
        INSERT INTO clients (name, phone, is_account_holder, balance)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, client.Name, client.Phone, client.IsAccountHolder, client.Balance).Scan(&client.ID)
	if err != nil {
		zap.L().Error("can't save client", zap.Error(err))
		return nil, err
	}
	return client, nil
}

func (r *Repository) Update(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	query := `
        UPDATE clients
        SET name = $1, phone = $2, is_account_holder = $3, balance = $4
        WHERE id = $5
    `
	_, err := r.db.Exec(ctx, query, client.Name, client.Phone, client.IsAccountHolder, client.Balance, client.ID)
	if err != nil {
		zap.L().Error("can't update client", zap.Error(err))
		return nil, err
	}
	return client, nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM clients
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete client", zap.Error(err))
		return err
	}
	return nil
}
