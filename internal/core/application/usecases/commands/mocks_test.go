package commands_test

import (
	"context"
	"errors"
	"time"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/courier"
	"parcel/internal/core/domain/model/delivery"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/problem"
	"parcel/internal/core/domain/model/recipient"
	"parcel/internal/core/ports"
	"parcel/internal/notifications"

	"github.com/stretchr/testify/mock"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) CountPickupsBetween(
	ctx context.Context,
	courierID kernel.UUID,
	from, to time.Time,
) (int64, error) {
	args := m.Called(ctx, courierID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

type MockProblemRepository struct{ mock.Mock }

func (m *MockProblemRepository) Add(ctx context.Context, p *problem.Problem) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProblemRepository) Get(ctx context.Context, id kernel.UUID) (*problem.Problem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*problem.Problem), args.Error(1)
}

func (m *MockProblemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(_ context.Context, _ *courier.Courier) error {
	return errors.New("not implemented in mock")
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

type MockRecipientRepository struct{ mock.Mock }

func (m *MockRecipientRepository) Add(_ context.Context, _ *recipient.Recipient) error {
	return errors.New("not implemented in mock")
}

func (m *MockRecipientRepository) Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipient.Recipient), args.Error(1)
}

// MockUoW satisfies every unit of work interface in the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) ProblemRepository() ports.ProblemRepository {
	args := m.Called()
	return args.Get(0).(ports.ProblemRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) RecipientRepository() ports.RecipientRepository {
	args := m.Called()
	return args.Get(0).(ports.RecipientRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockPickupUoWFactory struct{ mock.Mock }

func (m *MockPickupUoWFactory) Create() commands.PickupUoW {
	args := m.Called()
	return args.Get(0).(commands.PickupUoW)
}

type MockProblemUoWFactory struct{ mock.Mock }

func (m *MockProblemUoWFactory) Create() commands.ProblemUoW {
	args := m.Called()
	return args.Get(0).(commands.ProblemUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// recordingEnqueuer captures jobs handed to the notification pipeline.
type recordingEnqueuer struct {
	jobs []notifications.Job
}

func (r *recordingEnqueuer) Enqueue(job notifications.Job) {
	r.jobs = append(r.jobs, job)
}

func newTestCourier() *courier.Courier {
	c, err := courier.NewCourier(kernel.NewUUID(), "John Carrier", "john@parcel.dev")
	if err != nil {
		panic(err)
	}
	return c
}

func newTestRecipient() *recipient.Recipient {
	r, err := recipient.NewRecipient(kernel.NewUUID(), "Diego Fernandes", "+5511999999999", recipient.Address{
		Street:     "Avenida Paulista",
		Number:     "1000",
		Complement: "Apt 42",
		City:       "Sao Paulo",
		State:      "SP",
		Zipcode:    "01310-100",
	})
	if err != nil {
		panic(err)
	}
	return r
}

func newRegisteredDelivery(recipientID, courierID kernel.UUID) *delivery.Delivery {
	d, err := delivery.NewDelivery(kernel.NewUUID(), recipientID, courierID, "Mechanical keyboard")
	if err != nil {
		panic(err)
	}
	return d
}

func newPickedUpDelivery(recipientID, courierID kernel.UUID, startDate time.Time) *delivery.Delivery {
	d, err := delivery.RestoreDelivery(
		kernel.NewUUID(), recipientID, courierID,
		"Mechanical keyboard",
		nil,
		&startDate, nil, nil,
		startDate.Add(-time.Hour),
	)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestProblem(deliveryID kernel.UUID) *problem.Problem {
	p, err := problem.NewProblem(kernel.NewUUID(), deliveryID, "recipient not at home")
	if err != nil {
		panic(err)
	}
	return p
}
