package model

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

// バックエンドが返すログインユーザー
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// 検証済みJWTから復元したセッション。
// Route Guardが作り、ハンドラが参照する。
type Session struct {
	UserID string
	Role   Role
}
