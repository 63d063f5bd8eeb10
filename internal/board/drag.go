package board

import (
	"context"
	"log/slog"
	"sync"

	"gifttrack/internal/gift"

	"golang.org/x/sync/errgroup"
)

// API is what the controller needs from the server. ReassignGift must
// persist only the personId field of the gift.
type API interface {
	ListPeople(ctx context.Context) ([]gift.PersonView, error)
	ListGifts(ctx context.Context) ([]gift.Gift, error)
	ReassignGift(ctx context.Context, giftID, personID string) error
}

// DragState is the reassignment gesture state. Exactly one gesture is
// active at a time.
type DragState int

const (
	StateIdle DragState = iota
	StateDragging
	StateReassigning
)

// Controller drives drag-and-drop reassignment over a local snapshot of
// people and gifts: optimistic update, a single server call, then a
// re-fetch to reconcile (or to revert, on failure).
type Controller struct {
	api API

	mu       sync.Mutex
	state    DragState
	activeID string

	people []gift.PersonView
	gifts  []gift.Gift

	// Re-fetches for the two collections can resolve in either order.
	// Responses are stamped when issued and stale ones are dropped, so the
	// displayed state always reflects the newest fetch, not the latest
	// arrival.
	seq       uint64
	peopleSeq uint64
	giftsSeq  uint64
}

func NewController(api API) *Controller {
	return &Controller{api: api}
}

func (c *Controller) State() DragState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ActiveGift returns the gift under drag, for the ghost overlay.
func (c *Controller) ActiveGift() (gift.Gift, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateIdle {
		return gift.Gift{}, false
	}
	g := c.findGift(c.activeID)
	if g == nil {
		return gift.Gift{}, false
	}
	return *g, true
}

func (c *Controller) People() []gift.PersonView {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]gift.PersonView, len(c.people))
	copy(out, c.people)
	return out
}

func (c *Controller) Gifts() []gift.Gift {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]gift.Gift, len(c.gifts))
	copy(out, c.gifts)
	return out
}

// Refresh loads people and gifts concurrently and applies whichever
// responses are still the newest.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	stamp := c.seq
	c.mu.Unlock()

	var (
		people []gift.PersonView
		gifts  []gift.Gift
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		people, err = c.api.ListPeople(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		gifts, err = c.api.ListGifts(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyPeople(people, stamp)
	c.applyGifts(gifts, stamp)
	return nil
}

// DragStart begins a gesture. It is refused while another gesture or its
// reassignment call is still in flight, or when the gift is unknown.
func (c *Controller) DragStart(giftID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateIdle || c.findGift(giftID) == nil {
		return false
	}
	c.state = StateDragging
	c.activeID = giftID
	return true
}

// CancelDrag ends a gesture that never reached a valid drop target.
func (c *Controller) CancelDrag() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateDragging {
		c.state = StateIdle
		c.activeID = ""
	}
}

// Drop resolves the drop target and, when the owner actually changes,
// applies the optimistic update and persists it. Dropping on the current
// owner or on an invalid target is a no-op with no server call.
func (c *Controller) Drop(ctx context.Context, overID string) error {
	c.mu.Lock()
	if c.state != StateDragging {
		c.mu.Unlock()
		return nil
	}

	giftID := c.activeID
	g := c.findGift(giftID)
	target, ok := c.resolveTarget(overID)
	if g == nil || !ok {
		c.state = StateIdle
		c.activeID = ""
		c.mu.Unlock()
		return nil
	}
	if g.PersonID != nil && *g.PersonID == target {
		c.state = StateIdle
		c.activeID = ""
		c.mu.Unlock()
		return nil
	}

	// Optimistic local update; server truth is restored by the re-fetch.
	t := target
	g.PersonID = &t
	g.Person = nil
	c.state = StateReassigning
	c.mu.Unlock()

	err := c.api.ReassignGift(ctx, giftID, target)

	c.mu.Lock()
	c.state = StateIdle
	c.activeID = ""
	c.mu.Unlock()

	if err != nil {
		slog.Warn("reassign failed, reverting", "gift_id", giftID, "error", err)
		c.refreshGifts(ctx)
		return err
	}
	return c.Refresh(ctx)
}

// resolveTarget maps a drop target id to a person id: either a person
// container, or another gift owned by someone. An unassigned gift is not a
// valid target. Caller holds the lock.
func (c *Controller) resolveTarget(overID string) (string, bool) {
	for i := range c.people {
		if c.people[i].ID == overID {
			return overID, true
		}
	}
	if over := c.findGift(overID); over != nil && over.PersonID != nil {
		return *over.PersonID, true
	}
	return "", false
}

func (c *Controller) findGift(id string) *gift.Gift {
	for i := range c.gifts {
		if c.gifts[i].ID == id {
			return &c.gifts[i]
		}
	}
	return nil
}

func (c *Controller) refreshGifts(ctx context.Context) {
	c.mu.Lock()
	c.seq++
	stamp := c.seq
	c.mu.Unlock()

	gifts, err := c.api.ListGifts(ctx)
	if err != nil {
		slog.Warn("gift refresh failed", "error", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyGifts(gifts, stamp)
}

func (c *Controller) applyPeople(people []gift.PersonView, stamp uint64) {
	if stamp < c.peopleSeq {
		return
	}
	c.peopleSeq = stamp
	c.people = people
}

func (c *Controller) applyGifts(gifts []gift.Gift, stamp uint64) {
	if stamp < c.giftsSeq {
		return
	}
	c.giftsSeq = stamp
	c.gifts = gifts
}
