package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// APIClient talks to the ledger API over HTTP
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type Debt struct {
	ID       uint            `json:"id"`
	DebtType string          `json:"debt_type"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type debtDetail struct {
	Debt Debt `json:"debt"`
}

type CounterpartyTotals struct {
	DebtNameID  uint            `json:"debt_name_id"`
	Name        string          `json:"name"`
	OwedToMoney decimal.Decimal `json:"owed_to_money"`
	OwedByMoney decimal.Decimal `json:"owed_by_money"`
	Total       decimal.Decimal `json:"total"`
}

type Monitoring struct {
	DebtMonitoring struct {
		OwedToTotal decimal.Decimal `json:"owed_to_total"`
		OwedByTotal decimal.Decimal `json:"owed_by_total"`
		Total       decimal.Decimal `json:"total"`
	} `json:"debt_monitoring"`
}

// Signup creates the account; an existing username is not an error.
func (c *APIClient) Signup(username, email, password string) error {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}

	resp, err := c.do(http.MethodPost, "/auth/signup", body, "")
	if err != nil {
		return fmt.Errorf("signup request failed: %w", err)
	}
	if resp.Code == http.StatusBadRequest {
		return nil
	}
	if !resp.Success {
		return fmt.Errorf("signup failed (code %d): %s", resp.Code, resp.Message)
	}
	return nil
}

func (c *APIClient) Login(usernameOrEmail, password string) (*Tokens, error) {
	body := map[string]string{
		"username_or_email": usernameOrEmail,
		"password":          password,
	}

	resp, err := c.do(http.MethodPost, "/auth/login", body, "")
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("login failed (code %d): %s", resp.Code, resp.Message)
	}

	var tokens Tokens
	if err := json.Unmarshal(resp.Data, &tokens); err != nil {
		return nil, fmt.Errorf("failed to decode tokens: %w", err)
	}
	return &tokens, nil
}

func (c *APIClient) CreateDebt(token string, body map[string]interface{}) (*Debt, error) {
	resp, err := c.do(http.MethodPost, "/api/debts/create", body, token)
	if err != nil {
		return nil, fmt.Errorf("create debt request failed: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("create debt failed (code %d): %s", resp.Code, resp.Message)
	}

	var detail debtDetail
	if err := json.Unmarshal(resp.Data, &detail); err != nil {
		return nil, fmt.Errorf("failed to decode debt: %w", err)
	}
	return &detail.Debt, nil
}

func (c *APIClient) Individual(token string) ([]CounterpartyTotals, error) {
	resp, err := c.do(http.MethodGet, "/api/debts?debt_type=individual", nil, token)
	if err != nil {
		return nil, fmt.Errorf("individual request failed: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("individual failed (code %d): %s", resp.Code, resp.Message)
	}

	var totals []CounterpartyTotals
	if err := json.Unmarshal(resp.Data, &totals); err != nil {
		return nil, fmt.Errorf("failed to decode totals: %w", err)
	}
	return totals, nil
}

func (c *APIClient) Monitoring(token string) (*Monitoring, error) {
	resp, err := c.do(http.MethodGet, "/api/monitoring", nil, token)
	if err != nil {
		return nil, fmt.Errorf("monitoring request failed: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("monitoring failed (code %d): %s", resp.Code, resp.Message)
	}

	var m Monitoring
	if err := json.Unmarshal(resp.Data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode monitoring: %w", err)
	}
	return &m, nil
}

func (c *APIClient) do(method, path string, body interface{}, token string) (*envelope, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	return &env, nil
}
