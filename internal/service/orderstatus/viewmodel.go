package orderstatus

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"fastlaundry/internal/domain"
	"fastlaundry/internal/realtime"
)

// flashWindow is how long the pending badge flashes after a shipper push
// notification. Presentation affordance only; counts are unaffected.
const flashWindow = 3 * time.Second

type subscriber interface {
	Subscribe(ctx context.Context, shipperID string, fn realtime.Handler) (io.Closer, error)
}

// Snapshot is one observable state of the view model.
type Snapshot struct {
	Counts  domain.StatusCounts `json:"counts"`
	Flash   bool                `json:"flash"`
	Message string              `json:"message,omitempty"`
}

// ViewModel keeps live order-status counts for one viewer. Counts are
// recomputed on start, on role change and on every push notification.
// For the shipper role it holds the one realtime subscription for the
// session, released unconditionally on Stop or role change.
type ViewModel struct {
	svc    *Service
	subs   subscriber
	logger *log.Logger
	now    func() time.Time

	mu          sync.Mutex
	ctx         context.Context
	role        domain.Role
	viewerID    string
	counts      domain.StatusCounts
	flashUntil  time.Time
	lastMessage string
	sub         io.Closer

	updates chan Snapshot
}

func NewViewModel(svc *Service, subs subscriber, logger *log.Logger) *ViewModel {
	return &ViewModel{
		svc:     svc,
		subs:    subs,
		logger:  logger,
		now:     time.Now,
		counts:  domain.NewStatusCounts(),
		updates: make(chan Snapshot, 1),
	}
}

// Start computes the initial counts and, for a shipper, opens the
// notification channel. ctx bounds the whole view lifetime.
func (vm *ViewModel) Start(ctx context.Context, role domain.Role, viewerID string) error {
	vm.mu.Lock()
	vm.ctx = ctx
	vm.mu.Unlock()
	return vm.SetRole(ctx, role, viewerID)
}

// SetRole switches the viewer. The previous subscription, if any, is
// released before anything else happens so no stale callback can land on
// the new role's state.
func (vm *ViewModel) SetRole(ctx context.Context, role domain.Role, viewerID string) error {
	vm.closeSubscription()

	vm.mu.Lock()
	vm.role = role
	vm.viewerID = viewerID
	vm.flashUntil = time.Time{}
	vm.lastMessage = ""
	vm.mu.Unlock()

	if err := vm.Refresh(ctx); err != nil {
		return err
	}

	if role == domain.RoleShipper && viewerID != "" && vm.subs != nil {
		sub, err := vm.subs.Subscribe(ctx, viewerID, vm.onNotification)
		if err != nil {
			// counts still work via explicit refresh; push is best-effort
			vm.logger.Printf("open shipper channel for %s: %v", viewerID, err)
		} else {
			vm.mu.Lock()
			vm.sub = sub
			vm.mu.Unlock()
		}
	}
	return nil
}

// Refresh re-fetches and recomputes the counts for the current role.
func (vm *ViewModel) Refresh(ctx context.Context) error {
	vm.mu.Lock()
	role, viewerID := vm.role, vm.viewerID
	vm.mu.Unlock()

	counts, err := vm.svc.Counts(ctx, role, viewerID)
	if err != nil {
		return err
	}

	vm.mu.Lock()
	vm.counts = counts
	vm.mu.Unlock()
	vm.publish()
	return nil
}

// Snapshot returns the current counts plus the transient flash state.
func (vm *ViewModel) Snapshot() Snapshot {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	counts := make(domain.StatusCounts, len(vm.counts))
	for status, n := range vm.counts {
		counts[status] = n
	}
	return Snapshot{
		Counts:  counts,
		Flash:   vm.role == domain.RoleShipper && vm.now().Before(vm.flashUntil),
		Message: vm.lastMessage,
	}
}

// Updates delivers coalesced snapshots; slow consumers only ever see the
// latest state.
func (vm *ViewModel) Updates() <-chan Snapshot {
	return vm.updates
}

// Stop releases the realtime subscription. Safe to call repeatedly and
// regardless of how far Start got.
func (vm *ViewModel) Stop() {
	vm.closeSubscription()
}

func (vm *ViewModel) onNotification(note realtime.Notification) {
	vm.mu.Lock()
	vm.flashUntil = vm.now().Add(flashWindow)
	message := note.Message
	if message == "" {
		message = "new order received"
	}
	vm.lastMessage = message
	ctx := vm.ctx
	vm.mu.Unlock()

	if ctx == nil {
		ctx = context.Background()
	}
	if err := vm.Refresh(ctx); err != nil {
		vm.logger.Printf("refresh counts after notification: %v", err)
		vm.publish()
	}
}

func (vm *ViewModel) publish() {
	snap := vm.Snapshot()
	select {
	case <-vm.updates:
	default:
	}
	select {
	case vm.updates <- snap:
	default:
	}
}

func (vm *ViewModel) closeSubscription() {
	vm.mu.Lock()
	sub := vm.sub
	vm.sub = nil
	vm.mu.Unlock()
	if sub != nil {
		_ = sub.Close()
	}
}
