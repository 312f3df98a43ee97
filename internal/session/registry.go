package session

import (
	"sync"

	"storefront/internal/api"
	"storefront/internal/middleware"
	"storefront/internal/store"
	"storefront/internal/usecase"

	"github.com/sirupsen/logrus"
)

// Coreは1セッション分のクライアント一式。
// cookie jar付きのClientとStoreを共有するusecase群をまとめる。
type Core struct {
	Client *api.Client
	Store  *store.Store

	Cart     *usecase.CartUsecase
	Product  *usecase.ProductUsecase
	Order    *usecase.OrderUsecase
	User     *usecase.UserUsecase
	Checkout *usecase.CheckoutUsecase
}

// Factoryは素のCoreを作る。配線はcmd側が決める。
type Factory func() (*Core, error)

// Registryはセッショントークン -> Core の対応表。
// ログインでAdopt、ログアウトでRemove。
type Registry struct {
	mu      sync.RWMutex
	cores   map[string]*Core
	guest   *Core
	factory Factory
	log     *logrus.Logger
}

// DI
func NewRegistry(factory Factory, log *logrus.Logger) *Registry {
	return &Registry{
		cores:   make(map[string]*Core),
		factory: factory,
		log:     log,
	}
}

// NewCoreはまだトークンに紐付かないCoreを作る（ログイン用）
func (r *Registry) NewCore() (*Core, error) {
	return r.factory()
}

// Getはトークンに対応するCoreを返す。無ければ作る。
// プロセス再起動後の有効なセッションもここで復元される。
// 復元時は検証済みトークンを新しいClientのjarへ移し替え、
// バックエンド呼び出しが認証付きで出ていくようにする。
func (r *Registry) Get(token string) (*Core, error) {
	r.mu.RLock()
	core, ok := r.cores[token]
	r.mu.RUnlock()
	if ok {
		return core, nil
	}

	core, err := r.factory()
	if err != nil {
		return nil, err
	}
	if core.Client != nil {
		core.Client.SeedSessionCookie(middleware.SessionCookieName, token)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.cores[token]; ok {
		return existing, nil
	}
	r.cores[token] = core
	return core, nil
}

// Adoptはログイン直後のCoreをトークンへ紐付ける
func (r *Registry) Adopt(token string, core *Core) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cores[token] = core
}

// Removeはログアウト時の破棄
func (r *Registry) Remove(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cores, token)
}

// Guestは未ログイン閲覧用の共有Core（公開カタログだけが入る）
func (r *Registry) Guest() (*Core, error) {
	r.mu.RLock()
	g := r.guest
	r.mu.RUnlock()
	if g != nil {
		return g, nil
	}

	core, err := r.factory()
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.guest == nil {
		r.guest = core
	}
	return r.guest, nil
}
