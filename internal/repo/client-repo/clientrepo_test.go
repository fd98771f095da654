package clientrepo

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/javer-bank/javer/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func clientRow() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "phone", "is_account_holder", "balance"}).
		AddRow(1, "Ana Lima", "11988887777", true, decimal.NewFromInt(200))
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Existing id returns client",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(`FROM clients\s+WHERE id = \$1`).
					WithArgs(1).
					WillReturnRows(clientRow())
			},
			found: true,
		},
		{
			name: "Non-existing id returns nil",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(`FROM clients\s+WHERE id = \$1`).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(`FROM clients\s+WHERE id = \$1`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			client, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, "Ana Lima", client.Name)
				assert.True(t, client.Balance.Equal(decimal.NewFromInt(200)))
			} else {
				assert.Nil(t, client)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(`WHERE id = \$1\s+FOR UPDATE`).
		WithArgs(1).
		WillReturnRows(clientRow())

	client, err := repo.FindByIDForUpdate(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, client.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name        string
		mockSetup   func()
		expectErr   bool
		expectedLen int
	}{
		{
			name: "Returns all clients",
			mockSetup: func() {
				rows := clientRow().
					AddRow(2, "Joao Silva", "11888887777", false, decimal.NewFromInt(0))
				mock.ExpectQuery(`FROM clients\s+ORDER BY id`).
					WillReturnRows(rows)
			},
			expectedLen: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`FROM clients\s+ORDER BY id`).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			clients, err := repo.List(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, clients, tt.expectedLen)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	client := &domain.Client{
		Name:            "Ana Lima",
		Phone:           "11988887777",
		IsAccountHolder: true,
		Balance:         decimal.NewFromInt(200),
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successful insert returns id",
			mockSetup: func() {
				mock.ExpectQuery(`INSERT INTO clients`).
					WithArgs("Ana Lima", "11988887777", true, decimal.NewFromInt(200)).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`INSERT INTO clients`).
					WithArgs("Ana Lima", "11988887777", true, decimal.NewFromInt(200)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			created, err := repo.Create(context.Background(), client)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, created.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	client := &domain.Client{
		ID:              1,
		Name:            "Ana L. Lima",
		Phone:           "11988887777",
		IsAccountHolder: true,
		Balance:         decimal.NewFromInt(300),
	}

	mock.ExpectExec(`UPDATE clients`).
		WithArgs("Ana L. Lima", "11988887777", true, decimal.NewFromInt(300), 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	updated, err := repo.Update(context.Background(), client)
	assert.NoError(t, err)
	assert.Equal(t, "Ana L. Lima", updated.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successful delete",
			mockSetup: func() {
				mock.ExpectExec(`DELETE FROM clients`).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(`DELETE FROM clients`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.Delete(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
