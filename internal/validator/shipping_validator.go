package validator

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/domain/model"
)

var (
	// 必須項目が空
	ErrIncompleteShipping = errors.New("incomplete shipping address")
)

// 配送先の入力を検証。AddressLine2以外は必須。
// ここで弾けばラウンドトリップを1回節約できる。
func ValidateShipping(a model.ShippingAddress) error {
	required := []struct {
		name  string
		value string
	}{
		{"name", a.Name},
		{"phone", a.Phone},
		{"addressLine1", a.AddressLine1},
		{"city", a.City},
		{"state", a.State},
		{"postalCode", a.PostalCode},
		{"country", a.Country},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrIncompleteShipping, f.name)
		}
	}

	return nil
}
