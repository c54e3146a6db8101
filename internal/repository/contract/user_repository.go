package contract

import (
	"context"
	"time"

	"github.com/tomymaritano/viny-sub011/internal/entity"
	"github.com/tomymaritano/viny-sub011/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Session bookkeeping. A nil hash clears the stored refresh token,
	// forcing the next refresh attempt to fail.
	UpdateRefreshTokenHash(ctx context.Context, userId uuid.UUID, hash *string) error
	UpdatePassword(ctx context.Context, userId uuid.UUID, passwordHash string) error
	UpdateLastLogin(ctx context.Context, userId uuid.UUID, at time.Time) error
}
