package cmd

import (
	"log/slog"
	"os"

	nethttp "neushop/internal/adapters/in/http"
	"neushop/internal/adapters/out/commerce"
	"neushop/internal/adapters/out/memory"
	"neushop/internal/adapters/out/postgres"
	"neushop/internal/core/application/usecases/commands"
	"neushop/internal/core/application/usecases/queries"
	"neushop/internal/core/ports"
	"neushop/internal/jobs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	sessions   ports.SessionStore
	orderStore *postgres.OrderStore
	client     *commerce.Client
	oracle     ports.PricingOracle
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	client := commerce.NewClient(config.CommerceBaseURL)
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	// A non-empty TAX_RATE switches pricing to the local fixed-rate oracle,
	// used in environments without the commerce backend.
	var oracle ports.PricingOracle = client
	if config.TaxRate != "" {
		oracle = commerce.NewFixedRateOracle(decimal.RequireFromString(config.TaxRate))
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: uowFactory,
		sessions:   memory.NewSessionStore(),
		orderStore: postgres.NewOrderStore(uowFactory),
		client:     client,
		oracle:     oracle,
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) CreateHTTPServer() *nethttp.Server {
	changeStatusHandler := c.createChangeOrderStatusCommandHandler()

	return nethttp.NewServer(
		commands.NewAddCartItemCommandHandler(c.sessions),
		commands.NewChangeItemQuantityCommandHandler(c.sessions),
		commands.NewRemoveCartItemCommandHandler(c.sessions),
		commands.NewBeginCheckoutCommandHandler(c.sessions),
		commands.NewAdvanceCheckoutCommandHandler(c.sessions),
		commands.NewRetreatCheckoutCommandHandler(c.sessions),
		commands.NewSubmitOrderCommandHandler(c.sessions, c.oracle, c.orderStore),
		changeStatusHandler,
		commands.NewBulkChangeOrderStatusCommandHandler(changeStatusHandler),
		queries.NewGetCartQueryHandler(c.sessions),
		queries.NewGetOrderQueryHandler(c.gormDB),
		queries.NewGetActiveOrdersQueryHandler(c.gormDB),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.sessions, c.client, c.logger)
}

func (c *CompositionRoot) createChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.client)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
