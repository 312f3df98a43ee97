package store

import "sync"

// Storeは1セッション分のAppStateを持つ。
// 変更はDispatch経由のみ。reducerは純粋関数で、I/Oはしない。
//
// 同じsliceに対して複数のリクエストが同時進行した場合、
// 後に決着した方が先に決着した方を上書きする（last settlement wins）。
// 世代カウンタでの抑止はあえて入れていない。弱整合はこの層の設計。
type Store struct {
	mu    sync.RWMutex
	state AppState
}

func New() *Store {
	return &Store{state: initialState()}
}

func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduce(s.state, a)
}

// Stateは現在状態のコピーを返す
func (s *Store) State() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// root reducer。各sliceのreducerへそのまま流す。
// sliceは自分のaction以外を無視するので分配は安全。
func reduce(s AppState, a Action) AppState {
	s.Cart = reduceCart(s.Cart, a)
	s.Product = reduceProduct(s.Product, a)
	s.Order = reduceOrder(s.Order, a)
	s.User = reduceUser(s.User, a)
	return s
}
