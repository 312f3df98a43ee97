package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Configはアプリ全体の設定
type Config struct {
	// サーバーポート
	Port string `envconfig:"PORT" default:"3000"`

	// バックエンドAPIのベースアドレス
	APIBaseURL string `envconfig:"API_BASE_URL" required:"true"`

	// セッションJWTの検証シークレット（発行はバックエンド側）
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// ブラウザへ返すcookieのSecure属性
	CookieSecure bool `envconfig:"COOKIE_SECURE" default:"true"`

	// トランスポートのタイムアウト。アプリ層のリトライは無い。
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
}

// Loadは環境変数から設定を読む。必須項目が無ければここで落とす。
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
