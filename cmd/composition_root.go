package cmd

import (
	"log/slog"

	"parcel/internal/adapters/in/http"
	"parcel/internal/adapters/out/mail"
	"parcel/internal/adapters/out/postgres"
	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/jobs"
	"parcel/internal/notifications"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All handlers share
// one unit of work factory and one notification queue.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	queue      *notifications.Queue
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from the loaded configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	transport := mail.NewClient(
		config.SMTPHost,
		config.SMTPPort,
		config.SMTPUser,
		config.SMTPPassword,
		config.SMTPFrom,
	)

	queue := notifications.NewQueue(transport, logger, notifications.QueueConfig{
		Workers:     config.QueueWorkers,
		Capacity:    config.QueueCapacity,
		MaxAttempts: config.QueueMaxAttempts,
	})

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		queue:      queue,
		logger:     logger,
	}
}

// NotificationQueue exposes the queue so main can start and drain it.
func (c *CompositionRoot) NotificationQueue() *notifications.Queue {
	return c.queue
}

// CreateJobManager wires the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.queue, c.config.RedeliverySchedule, c.logger)
}

// CreateHTTPServer wires every use case into the HTTP surface.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateDeliveryCommandHandler(),
		c.CreatePickupDeliveryCommandHandler(),
		c.CreateCompleteDeliveryCommandHandler(),
		c.CreateReportProblemCommandHandler(),
		c.CreateCancelDeliveryCommandHandler(),
		c.CreateGetDeliveriesQueryHandler(),
		c.CreateGetDeliveryProblemsQueryHandler(),
		c.CreateGetOpenDeliveryProblemsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f, c.queue)
}

func (c *CompositionRoot) CreatePickupDeliveryCommandHandler() commands.PickupDeliveryCommandHandler {
	var f commands.PickupUoWFactory = FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPickupDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateReportProblemCommandHandler() commands.ReportProblemCommandHandler {
	var f commands.ProblemUoWFactory = FuncProblemUoWFactory(func() commands.ProblemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportProblemCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelDeliveryCommandHandler(f, c.queue)
}

func (c *CompositionRoot) CreateGetDeliveriesQueryHandler() queries.GetDeliveriesQueryHandler {
	return queries.NewGetDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryProblemsQueryHandler() queries.GetDeliveryProblemsQueryHandler {
	return queries.NewGetDeliveryProblemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenDeliveryProblemsQueryHandler() queries.GetOpenDeliveryProblemsQueryHandler {
	return queries.NewGetOpenDeliveryProblemsQueryHandler(c.gormDB)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncPickupUoWFactory func() commands.PickupUoW

func (f FuncPickupUoWFactory) Create() commands.PickupUoW {
	return f()
}

type FuncProblemUoWFactory func() commands.ProblemUoW

func (f FuncProblemUoWFactory) Create() commands.ProblemUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
