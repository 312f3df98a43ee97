package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/gateway"
	"storefront/internal/store"

	"github.com/sirupsen/logrus"
)

// UserUsecaseはセッションまわりのthunk。
// ログインで確立、ロード時のinfo-fetchで更新、ログアウトで破棄。
type UserUsecase struct {
	store *store.Store
	gw    gateway.UserGateway
	log   *logrus.Logger
}

// DI
func NewUserUsecase(st *store.Store, gw gateway.UserGateway, log *logrus.Logger) *UserUsecase {
	return &UserUsecase{store: st, gw: gw, log: log}
}

// FetchUserInfoはロード時のセッション復元。
// 401は「未ログイン」であってエラー表示の対象ではない。
func (u *UserUsecase) FetchUserInfo(ctx context.Context) error {
	u.store.Dispatch(store.UserPending{})

	user, err := u.gw.FetchInfo(ctx)
	if err != nil {
		reason := reasonOf(err)
		if errors.Is(err, gateway.ErrUnauthorized) {
			reason = "Not logged in"
		}
		u.store.Dispatch(store.UserFetchRejected{Reason: reason})
		return NewHTTPError(statusOf(err), reason)
	}

	u.store.Dispatch(store.UserFetched{User: user})
	return nil
}

// Loginはセッション確立。credentialはcookieでトランスポートへ載る。
func (u *UserUsecase) Login(ctx context.Context, email, password string, role model.Role) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	u.store.Dispatch(store.UserPending{})

	user, err := u.gw.Login(ctx, email, password, role)
	if err != nil {
		reason := reasonOf(err)
		var se *gateway.ServerError
		if !errors.As(err, &se) {
			reason = "Invalid credentials"
		}
		u.store.Dispatch(store.UserLoginRejected{Reason: reason})
		return NewHTTPError(statusOf(err), reason)
	}

	u.log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("login succeeded")
	u.store.Dispatch(store.UserLoggedIn{User: user})
	return nil
}

// Logoutはセッション破棄。カートのローカル状態も消す。
func (u *UserUsecase) Logout(ctx context.Context) error {
	u.store.Dispatch(store.UserPending{})

	if err := u.gw.Logout(ctx); err != nil {
		u.store.Dispatch(store.UserLogoutRejected{Reason: "Logout failed"})
		return NewHTTPError(statusOf(err), "Logout failed")
	}

	u.store.Dispatch(store.UserLoggedOut{})
	u.store.Dispatch(store.CartCleared{})
	return nil
}

// CheckLoginはセッションが生きているかの確認
func (u *UserUsecase) CheckLogin(ctx context.Context) error {
	u.store.Dispatch(store.UserPending{})

	user, err := u.gw.CheckLogin(ctx)
	if err != nil {
		reason := reasonOf(err)
		if errors.Is(err, gateway.ErrUnauthorized) {
			reason = "Not logged in"
		}
		u.store.Dispatch(store.UserFetchRejected{Reason: reason})
		return NewHTTPError(statusOf(err), reason)
	}

	u.store.Dispatch(store.UserLoggedIn{User: user})
	return nil
}

func (u *UserUsecase) ResetError() {
	u.store.Dispatch(store.UserErrorReset{})
}
