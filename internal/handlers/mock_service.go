package handlers

import (
	"context"

	"finance_tracker/internal/models"
	"finance_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID  int64
	registerErr error
	loginRes    service.LoginResult
	loginErr    error
	profileUser *models.User
	profileErr  error
	parseID     int64
	parseErr    error

	lastRegister      service.RegisterParams
	lastLoginEmail    string
	lastLoginPassword string
	lastProfileID     int64
	lastParseToken    string
}

func (m *mockAuth) Register(p service.RegisterParams) (int64, error) {
	m.lastRegister = p
	return m.registerID, m.registerErr
}
func (m *mockAuth) Login(email, password string) (service.LoginResult, error) {
	m.lastLoginEmail = email
	m.lastLoginPassword = password
	return m.loginRes, m.loginErr
}
func (m *mockAuth) Profile(id int64) (*models.User, error) {
	m.lastProfileID = id
	return m.profileUser, m.profileErr
}
func (m *mockAuth) ParseToken(token string) (int64, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockTransactions struct {
	listTxs     []models.Transaction
	listErr     error
	addID       int64
	addErr      error
	deleteErr   error
	summaryRows []models.SummaryRow
	summaryErr  error

	lastListUser      int64
	lastAddUser       int64
	lastAdd           service.AddTransactionParams
	lastDeleteUser    int64
	lastDeleteID      int64
	lastSummaryUser   int64
	lastSummaryPeriod string
	deleteCalls       int
}

func (m *mockTransactions) List(ctx context.Context, userID int64) ([]models.Transaction, error) {
	m.lastListUser = userID
	return m.listTxs, m.listErr
}
func (m *mockTransactions) Add(ctx context.Context, userID int64, p service.AddTransactionParams) (int64, error) {
	m.lastAddUser = userID
	m.lastAdd = p
	return m.addID, m.addErr
}
func (m *mockTransactions) Delete(ctx context.Context, userID, id int64) error {
	m.deleteCalls++
	m.lastDeleteUser = userID
	m.lastDeleteID = id
	return m.deleteErr
}
func (m *mockTransactions) Summary(ctx context.Context, userID int64, period string) ([]models.SummaryRow, error) {
	m.lastSummaryUser = userID
	m.lastSummaryPeriod = period
	return m.summaryRows, m.summaryErr
}

type mockShare struct {
	sendErr error

	sendCalls int
	lastEmail string
	lastPDF   string
}

func (m *mockShare) Send(recipientEmail, pdfBase64 string) error {
	m.sendCalls++
	m.lastEmail = recipientEmail
	m.lastPDF = pdfBase64
	return m.sendErr
}

// newTestRouter builds the full route tree around the given service aggregate.
func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, "uploads")
	return h.InitRoutes()
}
