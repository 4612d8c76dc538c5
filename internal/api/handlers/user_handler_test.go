package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"remat-backend/domain"
	"remat-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type stubUserService struct {
	loginResp domain.LoginResponse
	loginErr  error
}

func (s *stubUserService) Register(_ context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	return domain.RegisterResponse{Name: req.Name, Email: req.Email, Role: domain.RoleUser}, nil
}

func (s *stubUserService) Login(_ context.Context, _ domain.LoginRequest) (domain.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubUserService) Me(_ context.Context, _ string) (domain.MeResponse, error) {
	return domain.MeResponse{}, nil
}

func (s *stubUserService) GetLeaderboard(_ context.Context) ([]domain.LeaderboardEntry, error) {
	return nil, nil
}

func (s *stubUserService) GetTransactions(_ context.Context, _ string) ([]domain.TransactionResponse, error) {
	return nil, nil
}

func newUserTestApp(svc *stubUserService) *fiber.App {
	utils.InitValidator()
	app := fiber.New()
	h := NewUserHandler(svc, utils.Validate)
	app.Post("/api/v1/users/register", h.Register)
	app.Post("/api/v1/users/login", h.Login)
	return app
}

func TestRegisterValidatesBody(t *testing.T) {
	app := newUserTestApp(&stubUserService{})

	req := httptest.NewRequest("POST", "/api/v1/users/register",
		strings.NewReader(`{"name": "B", "email": "not-an-email", "password": "short"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestLoginReturnsToken(t *testing.T) {
	app := newUserTestApp(&stubUserService{
		loginResp: domain.LoginResponse{Token: "token-123", Role: domain.RoleUser, Name: "Budi"},
	})

	req := httptest.NewRequest("POST", "/api/v1/users/login",
		strings.NewReader(`{"email": "budi@example.com", "password": "supersecret"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !body.Success || body.Data.Token != "token-123" {
		t.Errorf("body = %+v", body)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newUserTestApp(&stubUserService{loginErr: domain.ErrCredentialsInvalid})

	req := httptest.NewRequest("POST", "/api/v1/users/login",
		strings.NewReader(`{"email": "budi@example.com", "password": "wrong"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}
