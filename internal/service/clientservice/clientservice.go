package clientservice

import (
	"context"

	"github.com/javer-bank/javer/internal/apperr"
	"github.com/javer-bank/javer/internal/domain"
	"github.com/javer-bank/javer/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Client, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id int) error
}

var (
	ErrClientNotFound  = apperr.New(404, "CLIENT_NOT_FOUND", "client not found")
	ErrNegativeBalance = apperr.New(422, "NEGATIVE_INITIAL_BALANCE", "client cannot be created with a negative balance")
	ErrInvalidBalance  = apperr.New(400, "INVALID_BALANCE", "balance cannot be negative")
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

// Patch carries a partial update; nil means the field was not provided.
type Patch struct {
	Name            *string
	Phone           *string
	IsAccountHolder *bool
	Balance         *decimal.Decimal
}

func (s *Service) Create(ctx context.Context, name, phone string, isAccountHolder bool, balance *decimal.Decimal) (*domain.Client, error) {
	initial := decimal.Zero
	if balance != nil {
		initial = *balance
	}
	if initial.IsNegative() {
		return nil, ErrNegativeBalance
	}

	client := &domain.Client{
		Name:            name,
		Phone:           phone,
		IsAccountHolder: isAccountHolder,
		Balance:         initial,
	}
	client, err := s.repo.Create(ctx, client)
	if err != nil {
		zap.L().Error("failed to create client", zap.Error(err))
		return nil, err
	}
	return client, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get client", zap.Error(err))
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	return client, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list clients", zap.Error(err))
		return nil, err
	}
	return clients, nil
}

func (s *Service) Update(ctx context.Context, id int, patch Patch) (*domain.Client, error) {
	var updated *domain.Client
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		client, err := s.repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if client == nil {
			return ErrClientNotFound
		}

		if patch.Balance != nil && patch.Balance.IsNegative() {
			return ErrInvalidBalance
		}

		if patch.Name != nil {
			client.Name = *patch.Name
		}
		if patch.Phone != nil {
			client.Phone = *patch.Phone
		}
		if patch.IsAccountHolder != nil {
			client.IsAccountHolder = *patch.IsAccountHolder
		}
		if patch.Balance != nil {
			client.Balance = *patch.Balance
		}

		if _, err := s.repo.Update(ctx, client); err != nil {
			zap.L().Error("failed to update client", zap.Error(err))
			return err
		}
		updated = client
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to load client for delete", zap.Error(err))
		return err
	}
	if client == nil {
		return ErrClientNotFound
	}
	return s.repo.Delete(ctx, id)
}
