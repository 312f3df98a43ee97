package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/domain/model"
)

func testUser() model.User {
	return model.User{
		ID:    "u-1",
		Name:  "Hanako",
		Email: "hanako@example.com",
		Role:  model.RoleSeller,
	}
}

func TestReduceUser_Fetched_SetsIdentityAndRole(t *testing.T) {
	got := reduceUser(UserState{Status: StatusLoading}, UserFetched{User: testUser()})

	assert.Equal(t, StatusSucceeded, got.Status)
	assert.Equal(t, "u-1", got.User.ID)
	assert.Equal(t, model.RoleSeller, got.Role)
	assert.True(t, got.IsAuthenticated)
	// 明示的なログイン操作ではないのでLoginは立てない
	assert.False(t, got.Login)
}

func TestReduceUser_LoggedIn_SetsLoginFlag(t *testing.T) {
	got := reduceUser(UserState{Status: StatusLoading}, UserLoggedIn{User: testUser()})

	assert.True(t, got.Login)
	assert.True(t, got.IsAuthenticated)
	assert.Equal(t, model.RoleSeller, got.Role)
}

func TestReduceUser_FetchRejected_ClearsIdentity(t *testing.T) {
	s := UserState{
		User:            testUser(),
		Role:            model.RoleSeller,
		Login:           true,
		IsAuthenticated: true,
		Status:          StatusLoading,
	}

	got := reduceUser(s, UserFetchRejected{Reason: "Not logged in"})

	assert.Equal(t, StatusFailed, got.Status)
	assert.Equal(t, "Not logged in", got.Error)
	// 認証エラーで古いユーザーを出し続けない
	assert.Empty(t, got.User.ID)
	assert.Empty(t, got.Role)
	assert.False(t, got.Login)
	assert.False(t, got.IsAuthenticated)
}

func TestReduceUser_LoginRejected_KeepsIdentity(t *testing.T) {
	s := UserState{User: testUser(), IsAuthenticated: true, Status: StatusLoading}

	got := reduceUser(s, UserLoginRejected{Reason: "Invalid credentials"})

	assert.Equal(t, StatusFailed, got.Status)
	assert.Equal(t, "Invalid credentials", got.Error)
	assert.Equal(t, "u-1", got.User.ID)
	assert.True(t, got.IsAuthenticated)
	assert.False(t, got.Login)
}

func TestReduceUser_LogoutRejected_StaysLoggedIn(t *testing.T) {
	s := UserState{User: testUser(), Login: true, IsAuthenticated: true, Status: StatusLoading}

	got := reduceUser(s, UserLogoutRejected{Reason: "Logout failed"})

	assert.Equal(t, StatusFailed, got.Status)
	assert.True(t, got.Login)
	assert.Equal(t, "u-1", got.User.ID)
}

func TestReduceUser_LoggedOut_ResetsToAnonymous(t *testing.T) {
	s := UserState{User: testUser(), Login: true, IsAuthenticated: true, Status: StatusSucceeded}

	got := reduceUser(s, UserLoggedOut{})

	assert.Equal(t, StatusSucceeded, got.Status)
	assert.Empty(t, got.User.ID)
	assert.False(t, got.Login)
	assert.False(t, got.IsAuthenticated)
}
