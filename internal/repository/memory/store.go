package memory

import (
	"sync"
	"time"

	"go-gin-checkout/internal/model"
)

// Store 以單一把鎖保護所有資料，跨商品與購物車的檢查和寫入在同一段臨界區完成
type Store struct {
	mu       sync.RWMutex
	products map[int]*model.Product
	carts    map[int]*model.Cart
	tickets  map[int]*model.Ticket
	users    map[int]*model.User

	productSeq int
	cartSeq    int
	ticketSeq  int
	userSeq    int

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		products: make(map[int]*model.Product),
		carts:    make(map[int]*model.Cart),
		tickets:  make(map[int]*model.Ticket),
		users:    make(map[int]*model.User),
		now:      time.Now,
	}
}

// cartView 回傳帶有目前商品狀態的購物車副本，呼叫端需持有鎖
func (s *Store) cartView(cart *model.Cart) *model.Cart {
	view := cart.Clone()
	for i := range view.Items {
		view.Items[i].Product = s.products[view.Items[i].ProductID].Clone()
	}
	return view
}
