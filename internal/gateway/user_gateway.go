package gateway

import (
	"context"

	"storefront/internal/domain/model"
)

// /user/* と /authentication/* への1対1マッピング
type UserGateway interface {
	FetchInfo(ctx context.Context) (model.User, error)
	CheckLogin(ctx context.Context) (model.User, error)
	Login(ctx context.Context, email, password string, role model.Role) (model.User, error)
	Logout(ctx context.Context) error
}
