package service

import (
	"context"

	"finance_tracker/internal/models"
	"finance_tracker/internal/repository"
)

type Authorization interface {
	Register(p RegisterParams) (int64, error)
	Login(email, password string) (LoginResult, error)
	Profile(id int64) (*models.User, error)
	ParseToken(accessToken string) (int64, error)
}

// Transactions exposes owner-scoped create/list/delete and period summaries.
type Transactions interface {
	List(ctx context.Context, userID int64) ([]models.Transaction, error)
	Add(ctx context.Context, userID int64, p AddTransactionParams) (int64, error)
	Delete(ctx context.Context, userID, id int64) error
	Summary(ctx context.Context, userID int64, period string) ([]models.SummaryRow, error)
}

// Share relays a caller-supplied PDF report to a recipient by email.
type Share interface {
	Send(recipientEmail, pdfBase64 string) error
}

// Mailer is the outbound mail provider boundary.
type Mailer interface {
	Send(to, subject, body string, attachment []byte, filename string) error
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Transactions
	Share
}

// Deps carries non-repository dependencies injected at construction.
type Deps struct {
	SigningKey string
	Mailer     Mailer
}

// NewService wires the repository layer and external dependencies into concrete services.
func NewService(repos *repository.Repository, deps Deps) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, deps.SigningKey),
		Transactions:  NewTransactionService(repos.Transactions),
		Share:         NewShareService(deps.Mailer),
	}
}
