package repo

import (
	"github.com/javer-bank/javer/internal/pg"
	accountrepo "github.com/javer-bank/javer/internal/repo/account-repo"
	clientrepo "github.com/javer-bank/javer/internal/repo/client-repo"
	"github.com/javer-bank/javer/internal/service/accountservice"
	"github.com/javer-bank/javer/internal/service/clientservice"
)

type Repositories struct {
	AccountRepo accountservice.Repo
	ClientRepo  clientservice.Repo
}

func New(conn pg.Database) *Repositories {
	accountRepo := accountrepo.New(conn)
	clientRepo := clientrepo.New(conn)

	return &Repositories{
		AccountRepo: accountRepo,
		ClientRepo:  clientRepo,
	}
}
