// Package memory contains the concrete implementation of the persistence
// layer as an in-memory entity store. State lives for the lifetime of the
// process and resets on restart; there is no durability and no I/O inside
// any store operation.
package memory

import (
	"log/slog"
	"sync"

	"chamabook/config"
	"chamabook/internal/domain/entity"

	"go.uber.org/fx"
)

// collection is an id-keyed map that additionally remembers insertion order,
// so listings are deterministic.
type collection[T any] struct {
	byID  map[string]T
	order []string
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{byID: make(map[string]T)}
}

func (c *collection[T]) list() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}

	return out
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.byID[id]

	return v, ok
}

func (c *collection[T]) put(id string, v T) {
	if _, ok := c.byID[id]; !ok {
		c.order = append(c.order, id)
	}
	c.byID[id] = v
}

func (c *collection[T]) remove(id string) bool {
	if _, ok := c.byID[id]; !ok {
		return false
	}
	delete(c.byID, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)

			break
		}
	}

	return true
}

// Store owns every entity collection. It is constructed explicitly and
// injected into the repositories; there is no process-wide singleton.
//
// A single RWMutex guards each individual operation. There are no
// cross-operation transaction boundaries: a mutator's read-modify-write of a
// member spans several store calls and may interleave with another request.
// The tool targets a single admin at low concurrency, so this is accepted.
type Store struct {
	mu sync.RWMutex

	members      *collection[entity.Member]
	transactions *collection[entity.Transaction]
	loans        *collection[entity.Loan]
	plans        *collection[entity.PersonalPlan]
	admins       *collection[entity.Admin]
	settings     *entity.Settings
	faqs         *collection[entity.FAQ]
	notes        *collection[entity.Note]

	activities  []entity.Activity
	activityCap int
}

// Params holds dependencies for the Store, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates the in-memory store and seeds it with the fixed sample data.
func New(params Params) *Store {
	store := &Store{
		members:      newCollection[entity.Member](),
		transactions: newCollection[entity.Transaction](),
		loans:        newCollection[entity.Loan](),
		plans:        newCollection[entity.PersonalPlan](),
		admins:       newCollection[entity.Admin](),
		faqs:         newCollection[entity.FAQ](),
		notes:        newCollection[entity.Note](),
		activityCap:  params.Config.ActivityFeed.Capacity,
	}
	store.seed()

	params.Logger.Info("seeded in-memory store",
		slog.Int("members", len(store.members.order)),
		slog.Int("faqs", len(store.faqs.order)),
		slog.Int("activityCapacity", store.activityCap),
	)

	return store
}
