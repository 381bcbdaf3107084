package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/stafftrack/attendance-backend-go/internal/domain/auth"
	"github.com/stafftrack/attendance-backend-go/internal/domain/staff"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/barcode"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/stafftrack/attendance-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	staffRepo staff.ProfileRepository
	jwt.Service
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, staffRepository staff.ProfileRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		staffRepo:      staffRepository,
		Service:        jwtService,
	}
}

// Register implements auth.AuthService. The user account and its staff
// profile are created in one transaction so no account can exist without a
// barcode.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}

	if _, err := a.UserRepository.GetByUsername(ctx, req.Username); err == nil {
		return auth.RegisterResponse{}, user.ErrUsernameExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.RegisterResponse{}, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := a.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return auth.RegisterResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.RegisterResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created user.User
	var profile staff.Profile

	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = a.UserRepository.Create(txCtx, user.User{
			Username:     req.Username,
			Email:        req.Email,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			PasswordHash: string(hash),
			IsAdmin:      false,
			IsActive:     true,
		})
		if err != nil {
			return err
		}

		profile, err = a.staffRepo.Create(txCtx, staff.Profile{
			UserID:       created.ID,
			DepartmentID: req.DepartmentID,
			Phone:        req.Phone,
			Position:     req.Position,
			Bio:          req.Bio,
			HireDate:     created.CreatedAt,
			IsActive:     true,
			Barcode:      barcode.Generate(),
		})
		return err
	})
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	tokens, err := a.issueTokens(created)
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	return auth.RegisterResponse{
		UserID:        created.ID,
		Username:      created.Username,
		Barcode:       profile.Barcode,
		TokenResponse: tokens,
	}, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !userData.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	return a.issueTokens(userData)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if a.Service.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrRefreshRevoked
	}

	userID, err := a.Service.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if !userData.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	// Rotate: the old refresh token is dead once a new pair is issued
	a.Service.RevokeToken(refreshToken)

	return a.issueTokens(userData)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return auth.ErrInvalidToken
	}
	a.Service.RevokeToken(refreshToken)
	return nil
}

func (a *AuthServiceImpl) issueTokens(u user.User) (auth.TokenResponse, error) {
	var tokens auth.TokenResponse
	var err error

	tokens.AccessToken, tokens.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(u.ID, u.Username, u.IsAdmin)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokens.RefreshToken, tokens.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return tokens, nil
}
