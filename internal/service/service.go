package service

import (
	"github.com/javer-bank/javer/internal/handlers/accounts"
	"github.com/javer-bank/javer/internal/handlers/clients"

	"github.com/javer-bank/javer/internal/pg"
	"github.com/javer-bank/javer/internal/repo"
	accountservice "github.com/javer-bank/javer/internal/service/accountservice"
	clientservice "github.com/javer-bank/javer/internal/service/clientservice"
)

type Services struct {
	AccountService accounts.Service
	ClientService  clients.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	accountService := accountservice.New(repo.AccountRepo, txManager)
	clientService := clientservice.New(repo.ClientRepo, txManager)

	return &Services{
		AccountService: accountService,
		ClientService:  clientService,
	}
}
