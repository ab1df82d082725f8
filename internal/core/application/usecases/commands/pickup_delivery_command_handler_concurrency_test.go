package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/courier"
	"parcel/internal/core/domain/model/delivery"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/ports"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pickupStore is an in-memory store that mimics the locking behavior of the
// postgres adapter under read committed isolation: GetForUpdate acquires the
// row's lock and holds it until the transaction commits or rolls back, and
// every read observes the last committed state.
type pickupStore struct {
	mu         sync.Mutex
	deliveries map[string]*delivery.Delivery
	courier    *courier.Courier

	deliveryLocks map[string]*sync.Mutex
	courierLock   sync.Mutex
}

func newPickupStore(c *courier.Courier, deliveries ...*delivery.Delivery) *pickupStore {
	s := &pickupStore{
		deliveries:    make(map[string]*delivery.Delivery),
		deliveryLocks: make(map[string]*sync.Mutex),
		courier:       c,
	}
	for _, d := range deliveries {
		s.deliveries[d.ID().String()] = d
		s.deliveryLocks[d.ID().String()] = &sync.Mutex{}
	}
	return s
}

func (s *pickupStore) committedPickups() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, d := range s.deliveries {
		if d.StartDate() != nil {
			count++
		}
	}
	return count
}

func cloneDelivery(d *delivery.Delivery) (*delivery.Delivery, error) {
	return delivery.RestoreDelivery(
		d.ID(), d.RecipientID(), d.CourierID(), d.Product(),
		d.SignatureID(), d.StartDate(), d.EndDate(), d.CanceledAt(), d.CreatedAt(),
	)
}

type pickupStoreUoW struct {
	store *pickupStore
	held  []*sync.Mutex
	stash []*delivery.Delivery
	open  bool
}

func (u *pickupStoreUoW) Begin(_ context.Context) error {
	u.open = true
	return nil
}

func (u *pickupStoreUoW) Commit(_ context.Context) error {
	u.store.mu.Lock()
	for _, d := range u.stash {
		u.store.deliveries[d.ID().String()] = d
	}
	u.store.mu.Unlock()
	u.release()
	return nil
}

func (u *pickupStoreUoW) Rollback(_ context.Context) error {
	u.release()
	return nil
}

func (u *pickupStoreUoW) release() {
	if !u.open {
		return
	}
	u.open = false
	u.stash = nil
	for _, lock := range u.held {
		lock.Unlock()
	}
	u.held = nil
}

func (u *pickupStoreUoW) DeliveryRepository() ports.DeliveryRepository {
	return storeDeliveryRepo{uow: u}
}

func (u *pickupStoreUoW) CourierRepository() ports.CourierRepository {
	return storeCourierRepo{uow: u}
}

type storeDeliveryRepo struct {
	uow *pickupStoreUoW
}

func (r storeDeliveryRepo) Add(_ context.Context, aggregate *delivery.Delivery) error {
	r.uow.stash = append(r.uow.stash, aggregate)
	return nil
}

func (r storeDeliveryRepo) Update(_ context.Context, aggregate *delivery.Delivery) error {
	r.uow.stash = append(r.uow.stash, aggregate)
	return nil
}

func (r storeDeliveryRepo) Get(_ context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	store := r.uow.store
	store.mu.Lock()
	defer store.mu.Unlock()
	d, ok := store.deliveries[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("deliveryID", id)
	}
	return cloneDelivery(d)
}

func (r storeDeliveryRepo) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	store := r.uow.store
	store.mu.Lock()
	lock, ok := store.deliveryLocks[id.String()]
	store.mu.Unlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("deliveryID", id)
	}
	lock.Lock()
	r.uow.held = append(r.uow.held, lock)
	return r.Get(ctx, id)
}

func (r storeDeliveryRepo) CountPickupsBetween(
	_ context.Context, courierID kernel.UUID, from, to time.Time,
) (int64, error) {
	store := r.uow.store
	store.mu.Lock()
	defer store.mu.Unlock()
	var count int64
	for _, d := range store.deliveries {
		if d.CourierID() != courierID || d.StartDate() == nil {
			continue
		}
		start := *d.StartDate()
		if !start.Before(from) && !start.After(to) {
			count++
		}
	}
	return count, nil
}

type storeCourierRepo struct {
	uow *pickupStoreUoW
}

func (r storeCourierRepo) Add(_ context.Context, _ *courier.Courier) error {
	return nil
}

func (r storeCourierRepo) Get(_ context.Context, _ kernel.UUID) (*courier.Courier, error) {
	return r.uow.store.courier, nil
}

func (r storeCourierRepo) GetForUpdate(_ context.Context, _ kernel.UUID) (*courier.Courier, error) {
	r.uow.store.courierLock.Lock()
	r.uow.held = append(r.uow.held, &r.uow.store.courierLock)
	return r.uow.store.courier, nil
}

type pickupStoreUoWFactory struct {
	store *pickupStore
}

func (f pickupStoreUoWFactory) Create() commands.PickupUoW {
	return &pickupStoreUoW{store: f.store}
}

func TestPickupDeliveryCommandHandler_Handle_ConcurrentPickupsOfSameDelivery(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	aggregate := newRegisteredDelivery(kernel.NewUUID(), courierID)
	store := newPickupStore(newTestCourier(), aggregate)
	h := commands.NewPickupDeliveryCommandHandler(pickupStoreUoWFactory{store: store})

	startDate := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	cmd, err := commands.NewPickupDeliveryCommand(aggregate.ID(), startDate)
	require.NoError(t, err)

	const attempts = 4
	results := make(chan error, attempts)
	ready := make(chan struct{})
	for i := 0; i < attempts; i++ {
		go func() {
			<-ready
			_, handleErr := h.Handle(ctx, cmd)
			results <- handleErr
		}()
	}
	close(ready)

	successes, violations := 0, 0
	for i := 0; i < attempts; i++ {
		err := <-results
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		violations++
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, violations)
	assert.Equal(t, 1, store.committedPickups())

	committed, err := storeDeliveryRepo{uow: &pickupStoreUoW{store: store}}.Get(ctx, aggregate.ID())
	require.NoError(t, err)
	require.NotNil(t, committed.StartDate())
	assert.True(t, committed.StartDate().Equal(startDate))
	assert.Equal(t, delivery.PickedUp, committed.Status())
}

func TestPickupDeliveryCommandHandler_Handle_ConcurrentPickupsRespectDailyQuota(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()

	const attempts = delivery.MaxDailyPickups + 2
	deliveries := make([]*delivery.Delivery, attempts)
	for i := range deliveries {
		deliveries[i] = newRegisteredDelivery(kernel.NewUUID(), courierID)
	}
	store := newPickupStore(newTestCourier(), deliveries...)
	h := commands.NewPickupDeliveryCommandHandler(pickupStoreUoWFactory{store: store})

	startDate := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	cmds := make([]commands.PickupDeliveryCommand, attempts)
	for i, d := range deliveries {
		cmd, err := commands.NewPickupDeliveryCommand(d.ID(), startDate)
		require.NoError(t, err)
		cmds[i] = cmd
	}

	results := make(chan error, attempts)
	ready := make(chan struct{})
	for i := 0; i < attempts; i++ {
		go func(cmd commands.PickupDeliveryCommand) {
			<-ready
			_, handleErr := h.Handle(ctx, cmd)
			results <- handleErr
		}(cmds[i])
	}
	close(ready)

	successes, violations := 0, 0
	for i := 0; i < attempts; i++ {
		err := <-results
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		violations++
	}

	assert.Equal(t, delivery.MaxDailyPickups, successes)
	assert.Equal(t, attempts-delivery.MaxDailyPickups, violations)
	assert.Equal(t, delivery.MaxDailyPickups, store.committedPickups())
}
