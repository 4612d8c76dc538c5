package user

import (
	"context"
	"errors"
	"strings"

	"remat-backend/domain"
	"remat-backend/entities"
	"remat-backend/internal/utils"
	"remat-backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const LeaderboardSize = 50

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.MeResponse, error)
		GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
		GetTransactions(ctx context.Context, userID string) ([]domain.TransactionResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

// adminEmails reads the comma separated admin list from config. Emails on
// the list get the admin role at registration; everyone else is a user.
func adminEmails() map[string]bool {
	emails := map[string]bool{}
	for _, e := range strings.Split(utils.GetConfig("ADMIN_EMAILS"), ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			emails[e] = true
		}
	}
	return emails
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.userRepository.GetUserByEmail(ctx, email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	role := domain.RoleUser
	if adminEmails()[email] {
		role = domain.RoleAdmin
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
		Points:   0,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrUserNotFound
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return domain.LoginResponse{
		Token: token,
		Role:  user.Role,
		Name:  user.Name,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.MeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}

	return domain.MeResponse{
		ID:     user.ID.String(),
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Points: user.Points,
	}, nil
}

func (s *userService) GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	users, err := s.userRepository.GetLeaderboard(ctx, LeaderboardSize)
	if err != nil {
		return nil, err
	}

	result := make([]domain.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		result = append(result, domain.LeaderboardEntry{
			ID:     u.ID.String(),
			Name:   u.Name,
			Points: u.Points,
		})
	}

	return result, nil
}

func (s *userService) GetTransactions(ctx context.Context, userID string) ([]domain.TransactionResponse, error) {
	transactions, err := s.userRepository.GetUserTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		result = append(result, domain.TransactionResponse{
			ID:            tx.ID.String(),
			BinID:         tx.BinID.String(),
			WasteType:     tx.WasteType,
			Confidence:    tx.Confidence,
			PointsAwarded: tx.PointsAwarded,
			CreatedAt:     tx.CreatedAt,
		})
	}

	return result, nil
}
