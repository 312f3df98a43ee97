package store

// cart sliceの純粋reducer。
// pendingはデータを残したままloadingへ（リフレッシュ中も表示を消さない）。
// fulfilledはデータ丸ごと置き換え。rejectedは直前の正常値を保持する。
func reduceCart(s CartState, a Action) CartState {
	switch act := a.(type) {
	case CartPending:
		s.Status = StatusLoading

	case CartFulfilled:
		s.Status = StatusSucceeded
		s.Cart = act.Cart
		s.Error = ""

	case CartRejected:
		s.Status = StatusFailed
		s.Error = act.Reason

	case CartCleared:
		s = CartState{Status: StatusIdle}
	}
	return s
}
