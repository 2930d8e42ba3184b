package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dom/debt-ledger/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	email    string
	password string
	active   bool
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
		active:   true,
	}
}

func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

func (b *UserBuilder) Inactive() *UserBuilder {
	b.active = false
	return b
}

// Build creates the user and its default setting in the database and returns
// the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     b.username,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		IsActive:     b.active,
		Setting:      domain.NewDefaultSetting(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndAuthenticate signs the user up and logs in via the API, returning the
// stored user and an access token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	resp := DoJSON(t, http.MethodPost, ts.URL("/auth/signup"), map[string]string{
		"username": b.username,
		"email":    b.email,
		"password": b.password,
	}, "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected signup status code: %d", resp.StatusCode)
	}

	resp = DoJSON(t, http.MethodPost, ts.URL("/auth/login"), map[string]string{
		"username_or_email": b.username,
		"password":          b.password,
	}, "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status code: %d", resp.StatusCode)
	}

	var tokens TokenData
	DecodeEnvelope(t, resp, &tokens)

	user, err := ts.Repos.User.GetByUsername(context.Background(), b.username)
	if err != nil {
		t.Fatalf("failed to load user: %v", err)
	}

	return user, tokens.Access
}

// TokenData matches the data of a login or refresh response
type TokenData struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// DebtBuilder creates debts directly in the database, bypassing the service
type DebtBuilder struct {
	user       *domain.User
	name       string
	direction  domain.Direction
	amount     decimal.Decimal
	currency   domain.Currency
	returnTime *time.Time
}

func NewDebtBuilder(user *domain.User) *DebtBuilder {
	return &DebtBuilder{
		user:      user,
		name:      "Bob",
		direction: domain.OwedTo,
		amount:    decimal.NewFromInt(100),
		currency:  domain.CurrencyUZS,
	}
}

func (b *DebtBuilder) WithName(name string) *DebtBuilder {
	b.name = name
	return b
}

func (b *DebtBuilder) WithDirection(direction domain.Direction) *DebtBuilder {
	b.direction = direction
	return b
}

func (b *DebtBuilder) WithAmount(amount string) *DebtBuilder {
	b.amount = decimal.RequireFromString(amount)
	return b
}

func (b *DebtBuilder) WithCurrency(currency domain.Currency) *DebtBuilder {
	b.currency = currency
	return b
}

func (b *DebtBuilder) WithReturnTime(t time.Time) *DebtBuilder {
	b.returnTime = &t
	return b
}

// Build stores the debt, reusing the user's debt name if it already exists
func (b *DebtBuilder) Build(t *testing.T, db *gorm.DB) *domain.Debt {
	t.Helper()

	name := domain.DebtName{UserID: b.user.ID, Name: b.name}
	if err := db.Where(&name).FirstOrCreate(&name).Error; err != nil {
		t.Fatalf("failed to create debt name: %v", err)
	}

	debt := &domain.Debt{
		UserID:     b.user.ID,
		NameID:     name.ID,
		Direction:  b.direction,
		Amount:     b.amount,
		Currency:   b.currency,
		ReceivedAt: time.Now().UTC(),
		ReturnTime: b.returnTime,
	}
	if err := db.Omit("Name").Create(debt).Error; err != nil {
		t.Fatalf("failed to create debt: %v", err)
	}
	debt.Name = &name

	return debt
}

// DoJSON sends body as JSON with an optional bearer token
func DoJSON(t *testing.T, method, url string, body interface{}, token string) *http.Response {
	t.Helper()

	req := CreateAuthenticatedRequest(t, method, url, body, token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, url, err)
	}
	return resp
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}
