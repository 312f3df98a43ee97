package usecase

import (
	"context"
	"errors"
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/gateway"
	"storefront/internal/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CheckoutUsecaseは決済ハンドオフのthunk。
// 成功するとホスト型チェックアウトへのフルページリダイレクトで終わる。
// リダイレクト境界を越えて持ち越すクライアント状態は無い。
type CheckoutUsecase struct {
	gw  gateway.PaymentGateway
	log *logrus.Logger
}

// DI
func NewCheckoutUsecase(gw gateway.PaymentGateway, log *logrus.Logger) *CheckoutUsecase {
	return &CheckoutUsecase{gw: gw, log: log}
}

// InitiateCheckoutは配送先をクライアント側で検証してから
// 決済セッションを要求し、リダイレクト先URLを返す。
// 検証に失敗した場合、ネットワークには一切出ない。
func (u *CheckoutUsecase) InitiateCheckout(ctx context.Context, shipping model.ShippingAddress) (string, error) {
	if err := validator.ValidateShipping(shipping); err != nil {
		return "", NewHTTPError(http.StatusBadRequest, "Please fill in all shipping details.")
	}

	// 二重送信対策のidempotencyキー
	key := uuid.NewString()

	url, err := u.gw.CreateCheckoutSession(ctx, shipping, key)
	if err != nil {
		reason := "Checkout failed, please try again."
		var se *gateway.ServerError
		if errors.As(err, &se) {
			reason = se.Message
		}
		u.log.Warnf("checkout session failed: %v", err)
		return "", NewHTTPError(statusOf(err), reason)
	}

	if url == "" {
		return "", NewHTTPError(http.StatusBadGateway, "No checkout URL received from backend.")
	}

	// URLは無加工で返す。リダイレクトは呼び出し側の仕事。
	u.log.WithField("idempotency_key", key).Info("checkout session created")
	return url, nil
}
