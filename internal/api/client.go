package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"storefront/internal/gateway"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Clientはベースアドレス固定のリクエストトランスポート。
// cookie jarがセッションcredentialを全呼び出しへ自動で載せる。
// リトライ・キャッシュ・アプリ層タイムアウトは持たない。
type Client struct {
	base *url.URL
	http *http.Client
	log  *logrus.Logger
}

// DI
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, err
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		base: base,
		http: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		log: logger,
	}, nil
}

// SeedSessionCookieは空のjarへ検証済みセッションcookieを移し替える。
// プロセス再起動後、ブラウザがまだ有効なトークンを持っている場合に使う。
func (c *Client) SeedSessionCookie(name, value string) {
	c.http.Jar.SetCookies(c.base, []*http.Cookie{{Name: name, Value: value}})
}

// ログイン後にバックエンドが置いたセッションcookieを読む。
// ブラウザへ同じcookieを渡すためにハンドラが使う。
func (c *Client) SessionCookie(name string) (*http.Cookie, bool) {
	for _, ck := range c.http.Jar.Cookies(c.base) {
		if ck.Name == name {
			return ck, true
		}
	}
	return nil, false
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body any, out any) error {
	return c.sendJSON(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodDelete, path, nil, "", out)
}

// multipart/form-data送信（商品フォーム用）
func (c *Client) SendMultipart(ctx context.Context, method, path string, build func(*multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := build(w); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.send(ctx, method, path, &buf, w.FormDataContentType(), out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}
	return c.send(ctx, method, path, reader, "application/json", out)
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	entry := c.log.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})
	entry.Debug("api request")

	resp, err := c.http.Do(req)
	if err != nil {
		entry.Warnf("transport failure: %v", err)
		return &gateway.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &gateway.NetworkError{Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		mapped := mapError(resp.StatusCode, raw)
		entry.WithField("status", resp.StatusCode).Warnf("api error: %v", mapped)
		return mapped
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		// 型付きモデルに合わないボディはここで落とす
		return &gateway.ServerError{Status: resp.StatusCode, Message: "malformed response body"}
	}
	return nil
}

// 失敗レスポンスのJSONエンベロープ（{error} または {message}）
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// 非2xxをエラー分類へ寄せる
func mapError(status int, raw []byte) error {
	var env errorEnvelope
	_ = json.Unmarshal(raw, &env)

	msg := env.Error
	if msg == "" {
		msg = env.Message
	}

	switch status {
	case http.StatusUnauthorized:
		return gateway.ErrUnauthorized
	case http.StatusForbidden:
		return gateway.ErrForbidden
	case http.StatusNotFound:
		return gateway.ErrNotFound
	}

	if status == http.StatusBadRequest && strings.Contains(strings.ToLower(msg), "stock") {
		return gateway.ErrOutOfStock
	}

	if msg == "" {
		msg = http.StatusText(status)
	}
	return &gateway.ServerError{Status: status, Message: msg}
}
