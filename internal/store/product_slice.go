package store

import "storefront/internal/domain/model"

// product sliceの純粋reducer。
// 一覧フェッチは対象のリストだけを丸ごと置き換える（フィールド単位のマージはしない）。
func reduceProduct(s ProductState, a Action) ProductState {
	switch act := a.(type) {
	case ProductsPending:
		s.Status = StatusLoading

	case ProductsFulfilled:
		s.Status = StatusSucceeded
		s.Products = act.Products
		s.Error = ""

	case SellerProductsFulfilled:
		s.Status = StatusSucceeded
		s.SellerProducts = act.Products
		s.Error = ""

	case ProductFetched:
		s.Status = StatusSucceeded
		s.Current = act.Product
		s.Error = ""

	case ProductSaved:
		s.Status = StatusSucceeded
		s.Current = act.Product
		s.Message = act.Message
		s.Error = ""

	case ProductDeleted:
		s.Status = StatusSucceeded
		s.SellerProducts = removeProduct(s.SellerProducts, act.ProductID)
		s.Products = removeProduct(s.Products, act.ProductID)
		s.Message = act.Message
		s.Error = ""

	case ProductsRejected:
		s.Status = StatusFailed
		s.Error = act.Reason

	case ProductErrorReset:
		s.Error = ""

	case ProductMessageReset:
		s.Message = ""
	}
	return s
}

func removeProduct(list []model.Product, id string) []model.Product {
	out := make([]model.Product, 0, len(list))
	for _, p := range list {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
