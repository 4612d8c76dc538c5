package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister        = "user registered successfully"
	MessageSuccessLogin           = "login successful"
	MessageSuccessGetMe           = "profile retrieved successfully"
	MessageSuccessGetLeaderboard  = "leaderboard retrieved successfully"
	MessageSuccessGetTransactions = "transactions retrieved successfully"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedGetMe           = "failed to retrieve profile"
	MessageFailedGetLeaderboard  = "failed to retrieve leaderboard"
	MessageFailedGetTransactions = "failed to retrieve transactions"

	ErrEmailAlreadyExists = errors.New("user already exists, please login")
	ErrUserNotFound       = errors.New("user not found, please sign up")
	ErrCredentialsInvalid = errors.New("invalid email or password")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required,min=2"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"uid"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
		Name  string `json:"name"`
	}

	MeResponse struct {
		ID     string `json:"uid"`
		Name   string `json:"name"`
		Email  string `json:"email"`
		Role   string `json:"role"`
		Points int    `json:"points"`
	}

	LeaderboardEntry struct {
		ID     string `json:"uid"`
		Name   string `json:"name"`
		Points int    `json:"points"`
	}

	TransactionResponse struct {
		ID            string    `json:"id"`
		BinID         string    `json:"bin_id"`
		WasteType     string    `json:"waste_type"`
		Confidence    *float64  `json:"confidence,omitempty"`
		PointsAwarded int       `json:"points_awarded"`
		CreatedAt     time.Time `json:"created_at"`
	}
)
