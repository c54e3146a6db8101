package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/tomymaritano/viny-sub011/internal/config"
	"github.com/tomymaritano/viny-sub011/internal/dto"
	"github.com/tomymaritano/viny-sub011/internal/entity"
	"github.com/tomymaritano/viny-sub011/internal/pkg/serverutils"
	"github.com/tomymaritano/viny-sub011/internal/repository/specification"
	"github.com/tomymaritano/viny-sub011/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)
	Logout(ctx context.Context, userId uuid.UUID) error
	ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error
	Profile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	authCfg    config.AuthConfig
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, authCfg config.AuthConfig) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		authCfg:    authCfg,
	}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *authService) signToken(userId uuid.UUID, tokenType, secret string, ttl time.Duration) (string, error) {
	// jti keeps two tokens minted within the same second distinct, so
	// rotation always invalidates the previous refresh token.
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"type":    tokenType,
		"jti":     uuid.NewString(),
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// issueTokens mints an access/refresh pair and persists the refresh token
// hash, invalidating any previously issued refresh token for the user.
func (s *authService) issueTokens(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User) (*dto.AuthResponse, error) {
	accessToken, err := s.signToken(user.Id, "access", s.authCfg.JwtSecret, s.authCfg.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.signToken(user.Id, "refresh", s.authCfg.JwtRefreshSecret, s.authCfg.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	hash := hashToken(refreshToken)
	if err := uow.UserRepository().UpdateRefreshTokenHash(ctx, user.Id, &hash); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         toUserResponse(user),
	}, nil
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:        user.Id,
		Email:     user.Email,
		Name:      user.Name,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewConflictError("Email is already registered")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.authCfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()
	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Name != "" {
		name := req.Name
		user.Name = &name
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	// Every account starts with the default notebook.
	if _, err := findOrCreateNotebook(ctx, uow, user.Id, entity.DefaultNotebookName); err != nil {
		return nil, err
	}

	resp, err := s.issueTokens(ctx, uow, user)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewUnauthorizedError("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewUnauthorizedError("Invalid email or password")
	}

	now := time.Now()
	if err := uow.UserRepository().UpdateLastLogin(ctx, user.Id, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now

	return s.issueTokens(ctx, uow, user)
}

// Refresh rotates the session: the presented token must match the stored
// hash, and a new pair replaces it.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	userId, err := s.parseRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil || user.RefreshTokenHash == nil || *user.RefreshTokenHash != hashToken(refreshToken) {
		return nil, serverutils.NewUnauthorizedError("Invalid refresh token")
	}

	return s.issueTokens(ctx, uow, user)
}

func (s *authService) parseRefreshToken(refreshToken string) (uuid.UUID, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, serverutils.NewUnauthorizedError("Invalid refresh token")
		}
		return []byte(s.authCfg.JwtRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, serverutils.NewUnauthorizedError("Invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["type"] != "refresh" {
		return uuid.Nil, serverutils.NewUnauthorizedError("Invalid refresh token")
	}

	rawId, _ := claims["user_id"].(string)
	userId, err := uuid.Parse(rawId)
	if err != nil {
		return uuid.Nil, serverutils.NewUnauthorizedError("Invalid refresh token")
	}
	return userId, nil
}

func (s *authService) Logout(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().UpdateRefreshTokenHash(ctx, userId, nil)
}

func (s *authService) ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return serverutils.NewNotFoundError("User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return serverutils.NewUnauthorizedError("Current password is incorrect")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.authCfg.BcryptCost)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().UpdatePassword(ctx, userId, string(newHash)); err != nil {
		return err
	}
	// Changing the password ends the current session.
	if err := uow.UserRepository().UpdateRefreshTokenHash(ctx, userId, nil); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *authService) Profile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("User not found")
	}

	resp := toUserResponse(user)
	return &resp, nil
}
