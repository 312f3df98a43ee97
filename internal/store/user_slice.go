package store

import "storefront/internal/domain/model"

// user sliceの純粋reducer。
// 他のsliceと違い、info-fetchの失敗では識別情報を消す。
// 認証エラーの「古いユーザーを表示し続ける」方が害が大きいため。
func reduceUser(s UserState, a Action) UserState {
	switch act := a.(type) {
	case UserPending:
		s.Status = StatusLoading

	case UserFetched:
		s.Status = StatusSucceeded
		s.User = act.User
		s.Role = act.User.Role
		s.IsAuthenticated = true
		s.Error = ""

	case UserLoggedIn:
		s.Status = StatusSucceeded
		s.User = act.User
		s.Role = act.User.Role
		s.Login = true
		s.IsAuthenticated = true
		s.Error = ""

	case UserLoggedOut:
		s = UserState{Status: StatusSucceeded}

	case UserFetchRejected:
		s.Status = StatusFailed
		s.User = model.User{}
		s.Role = ""
		s.Login = false
		s.IsAuthenticated = false
		s.Error = act.Reason

	case UserLoginRejected:
		s.Status = StatusFailed
		s.Login = false
		s.Error = act.Reason

	case UserLogoutRejected:
		s.Status = StatusFailed
		s.Login = true
		s.Error = act.Reason

	case UserErrorReset:
		s.Error = ""
	}
	return s
}
