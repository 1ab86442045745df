package services

import (
	"context"
	"sync"
	"time"

	"github.com/srikanth99-bot/looom-shop/app/models"
)

// debounceWindow collapses bursts of change notifications into a single
// refetch.
const debounceWindow = 250 * time.Millisecond

// productFeed fans a full catalog refetch out to subscribers whenever a
// change is signalled. Deltas are not applied incrementally: every
// notification refetches the whole collection, debounced so a burst of
// writes costs one query.
type productFeed struct {
	svc *ProductService

	mu     sync.Mutex
	nextID int
	subs   map[int]func([]models.Product)
	timer  *time.Timer
}

func newProductFeed(svc *ProductService) *productFeed {
	return &productFeed{
		svc:  svc,
		subs: make(map[int]func([]models.Product)),
	}
}

func (f *productFeed) subscribe(cb func([]models.Product)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	f.subs[id] = cb

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subs, id)
	}
}

func (f *productFeed) notify() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.subs) == 0 {
		return
	}
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(debounceWindow, f.refetch)
}

func (f *productFeed) refetch() {
	result := f.svc.GetProducts(context.Background())

	f.mu.Lock()
	callbacks := make([]func([]models.Product), 0, len(f.subs))
	for _, cb := range f.subs {
		callbacks = append(callbacks, cb)
	}
	f.mu.Unlock()

	for _, cb := range callbacks {
		cb(result.Products)
	}
}
