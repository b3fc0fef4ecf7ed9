package orderstatus

import (
	"context"
	"io"
	"testing"
	"time"

	"fastlaundry/internal/domain"
	"fastlaundry/internal/realtime"
)

type stubSubscription struct {
	closed int
}

func (s *stubSubscription) Close() error {
	s.closed++
	return nil
}

type stubSubscriber struct {
	sub         *stubSubscription
	handler     realtime.Handler
	calls       int
	lastShipper string
}

func (s *stubSubscriber) Subscribe(_ context.Context, shipperID string, fn realtime.Handler) (io.Closer, error) {
	s.calls++
	s.lastShipper = shipperID
	s.handler = fn
	s.sub = &stubSubscription{}
	return s.sub, nil
}

func newShipperVM(fetcher *stubFetcher, subs *stubSubscriber) *ViewModel {
	return NewViewModel(NewService(fetcher, discard()), subs, discard())
}

func TestViewModelStartComputesInitialCounts(t *testing.T) {
	fetcher := &stubFetcher{byShipper: []domain.Order{{Status: domain.StatusPending}}}
	subs := &stubSubscriber{}
	vm := newShipperVM(fetcher, subs)

	if err := vm.Start(context.Background(), domain.RoleShipper, "sh-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer vm.Stop()

	snap := vm.Snapshot()
	if snap.Counts[domain.StatusPending] != 1 {
		t.Fatalf("unexpected counts: %v", snap.Counts)
	}
	if snap.Flash {
		t.Fatalf("flash set without a notification")
	}
	if subs.calls != 1 || subs.lastShipper != "sh-1" {
		t.Fatalf("expected one subscription for sh-1, got %d for %q", subs.calls, subs.lastShipper)
	}
}

func TestViewModelStaffDoesNotSubscribe(t *testing.T) {
	fetcher := &stubFetcher{}
	subs := &stubSubscriber{}
	vm := newShipperVM(fetcher, subs)

	if err := vm.Start(context.Background(), domain.RoleStaff, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer vm.Stop()

	if subs.calls != 0 {
		t.Fatalf("staff view opened a shipper channel")
	}
}

func TestViewModelNotificationRefreshesAndFlashes(t *testing.T) {
	fetcher := &stubFetcher{byShipper: []domain.Order{{Status: domain.StatusPending}}}
	subs := &stubSubscriber{}
	vm := newShipperVM(fetcher, subs)

	current := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	vm.now = func() time.Time { return current }

	if err := vm.Start(context.Background(), domain.RoleShipper, "sh-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer vm.Stop()

	fetcher.byShipper = append(fetcher.byShipper, domain.Order{Status: domain.StatusPending})
	subs.handler(realtime.Notification{Message: "order assigned"})

	snap := vm.Snapshot()
	if snap.Counts[domain.StatusPending] != 2 {
		t.Fatalf("counts not recomputed after push: %v", snap.Counts)
	}
	if !snap.Flash {
		t.Fatalf("expected flash inside the window")
	}
	if snap.Message != "order assigned" {
		t.Fatalf("unexpected message: %q", snap.Message)
	}

	// the flash expires after three seconds
	current = current.Add(3*time.Second + time.Millisecond)
	if vm.Snapshot().Flash {
		t.Fatalf("flash persisted past the window")
	}
}

func TestViewModelRoleChangeReleasesSubscription(t *testing.T) {
	fetcher := &stubFetcher{}
	subs := &stubSubscriber{}
	vm := newShipperVM(fetcher, subs)

	ctx := context.Background()
	if err := vm.Start(ctx, domain.RoleShipper, "sh-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := subs.sub

	if err := vm.SetRole(ctx, domain.RoleStaff, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer vm.Stop()

	if first.closed == 0 {
		t.Fatalf("shipper subscription not released on role change")
	}
	if fetcher.allCalls != 1 {
		t.Fatalf("counts not recomputed for new role")
	}
}

func TestViewModelStopReleasesUnconditionally(t *testing.T) {
	fetcher := &stubFetcher{}
	subs := &stubSubscriber{}
	vm := newShipperVM(fetcher, subs)

	if err := vm.Start(context.Background(), domain.RoleShipper, "sh-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vm.Stop()
	if subs.sub.closed == 0 {
		t.Fatalf("subscription survived Stop")
	}
	// repeated Stop is a no-op
	vm.Stop()
}

func TestViewModelUpdatesCoalesce(t *testing.T) {
	fetcher := &stubFetcher{byShipper: []domain.Order{{Status: domain.StatusPending}}}
	subs := &stubSubscriber{}
	vm := newShipperVM(fetcher, subs)

	if err := vm.Start(context.Background(), domain.RoleShipper, "sh-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer vm.Stop()

	subs.handler(realtime.Notification{})
	subs.handler(realtime.Notification{})

	select {
	case snap := <-vm.Updates():
		if snap.Counts[domain.StatusPending] != 1 {
			t.Fatalf("unexpected coalesced snapshot: %v", snap.Counts)
		}
	default:
		t.Fatalf("expected a pending snapshot")
	}
}
