package ledger

import (
	"sync"

	"github.com/Youhab1/cloud-finalproject/cart-service/internal/domain"
)

// Ledger is the process-wide cart. It lives only as long as the process and
// is safe for concurrent use.
type Ledger struct {
	mu    sync.Mutex
	items []domain.CartItem
}

func New() *Ledger {
	return &Ledger{items: make([]domain.CartItem, 0)}
}

// Add appends item. Items for the same product are kept as separate lines.
func (l *Ledger) Add(item domain.CartItem) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = append(l.items, item)
}

// Remove deletes the first line for productID and reports whether one existed.
func (l *Ledger) Remove(productID domain.ProductID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, item := range l.items {
		if item.ProductID == productID {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot copies the current lines and their total under one lock.
func (l *Ledger) Snapshot() domain.CartSummary {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]domain.CartItem, len(l.items))
	copy(items, l.items)
	return domain.CartSummary{
		Items: items,
		Total: domain.TotalPrice(items),
	}
}
