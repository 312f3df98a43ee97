package store

// order sliceの純粋reducer。注文履歴は読み取り専用。
func reduceOrder(s OrderState, a Action) OrderState {
	switch act := a.(type) {
	case OrdersPending:
		s.Status = StatusLoading

	case OrdersFulfilled:
		s.Status = StatusSucceeded
		s.Orders = act.Orders
		s.Error = ""

	case OrdersRejected:
		s.Status = StatusFailed
		s.Error = act.Reason
	}
	return s
}
