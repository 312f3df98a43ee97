package rest

import (
	"context"

	"storefront/internal/api"
	"storefront/internal/domain/model"
	"storefront/internal/gateway"
)

type userRest struct {
	client *api.Client
}

// DI
func NewUserGateway(client *api.Client) gateway.UserGateway {
	return &userRest{client: client}
}

type userEnvelope struct {
	User model.User `json:"user"`
}

func (g *userRest) FetchInfo(ctx context.Context) (model.User, error) {
	var env userEnvelope
	if err := g.client.Get(ctx, "/user/getUserInfo", &env); err != nil {
		return model.User{}, err
	}
	return env.User, nil
}

func (g *userRest) CheckLogin(ctx context.Context) (model.User, error) {
	var env userEnvelope
	if err := g.client.Get(ctx, "/user/userInfo", &env); err != nil {
		return model.User{}, err
	}
	return env.User, nil
}

// Loginが成功するとバックエンドがセッションcookieをセットする。
// cookie jarが後続の呼び出しへ自動で載せる。
func (g *userRest) Login(ctx context.Context, email, password string, role model.Role) (model.User, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
		"role":     role,
	}

	var env userEnvelope
	if err := g.client.Post(ctx, "/authentication/Login", body, &env); err != nil {
		return model.User{}, err
	}
	return env.User, nil
}

func (g *userRest) Logout(ctx context.Context) error {
	return g.client.Post(ctx, "/authentication/logout", map[string]any{}, nil)
}
