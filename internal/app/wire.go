//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"storefront/internal/handlers/rest/auth_signin_post"
	"storefront/internal/handlers/rest/auth_signout_post"
	"storefront/internal/handlers/rest/cart_get"
	"storefront/internal/handlers/rest/cart_post"
	"storefront/internal/handlers/rest/order_cancel_post"
	"storefront/internal/handlers/rest/order_get"
	"storefront/internal/handlers/rest/order_post"
	"storefront/internal/handlers/rest/orders_get"
	"storefront/internal/handlers/rest/product_get"
	"storefront/internal/handlers/rest/products_get"
	"storefront/internal/handlers/rest/review_delete"
	"storefront/internal/handlers/rest/review_post"
	"storefront/internal/handlers/rest/review_put"
	"storefront/internal/handlers/rest/reviews_get"
	"storefront/internal/handlers/tasks/cart_cleanup"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/factory/order_handle"
	"storefront/internal/pkg/factory/order_pricing"
	"storefront/internal/pkg/session"

	buyerRepo "storefront/internal/repository/buyer"
	cartRepo "storefront/internal/repository/cart"
	orderRepo "storefront/internal/repository/order"
	productRepo "storefront/internal/repository/product"
	reviewRepo "storefront/internal/repository/review"
	authService "storefront/internal/service/auth"
	cartService "storefront/internal/service/cart"
	orderService "storefront/internal/service/order"
	productService "storefront/internal/service/product"
	reviewService "storefront/internal/service/review"

	"storefront/pkg/background"
	"storefront/pkg/logger"
	"storefront/pkg/querier"
	"storefront/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

type (
	CleanupInterval time.Duration
	CartMaxAge      time.Duration
)

type Application struct {
	ServiceProduct    ServiceProduct
	ServiceCart       ServiceCart
	ServiceOrder      ServiceOrder
	ServiceReview     ServiceReview
	ServiceAuth       ServiceAuth
	Sessions          *session.Resolver
	BackgroundWorkers *background.Worker
}

type ServiceProduct interface {
	products_get.Service
	product_get.Service
}

type ServiceCart interface {
	cart_get.Service
	cart_post.Service
}

type ServiceOrder interface {
	order_post.Service
	orders_get.Service
	order_get.Service
	order_cancel_post.Service
}

type ServiceReview interface {
	reviews_get.Service
	review_post.Service
	review_put.Service
	review_delete.Service
}

type ServiceAuth interface {
	auth_signin_post.Service
	auth_signout_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,
		provideCartMaxAge,

		provideProductRepository,
		provideCartRepository,
		provideOrderRepository,
		provideReviewRepository,
		provideBuyerRepository,

		provideSessionStore,
		provideSessionResolver,

		order_pricing.NewPricingFactory,

		provideServiceProduct,
		provideServiceCart,
		provideServiceOrder,
		provideServiceReview,
		provideServiceAuth,

		provideCartCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceProduct), new(*productService.Product)),
		wire.Bind(new(ServiceCart), new(*cartService.Cart)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceReview), new(*reviewService.Review)),
		wire.Bind(new(ServiceAuth), new(*authService.Auth)),

		wire.Bind(new(productService.Repository), new(*productRepo.Repository)),
		wire.Bind(new(cartService.Repository), new(*cartRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.ProductRepository), new(*productRepo.Repository)),
		wire.Bind(new(orderService.CartRepository), new(*cartRepo.Repository)),
		wire.Bind(new(orderService.PricingFactory), new(*order_pricing.PricingFactory)),
		wire.Bind(new(reviewService.Repository), new(*reviewRepo.Repository)),
		wire.Bind(new(authService.Repository), new(*buyerRepo.Repository)),
		wire.Bind(new(authService.SessionStore), new(*session.Store)),
		wire.Bind(new(session.TokenStore), new(*session.Store)),

		wire.Bind(new(cartService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(cart_cleanup.Service), new(*cartService.Cart)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Order
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideProductRepository,
		provideCartRepository,
		provideOrderRepository,

		order_pricing.NewPricingFactory,

		provideServiceOrder,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.ProductRepository), new(*productRepo.Repository)),
		wire.Bind(new(orderService.CartRepository), new(*cartRepo.Repository)),
		wire.Bind(new(orderService.PricingFactory), new(*order_pricing.PricingFactory)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideProductRepository(querier *querier.Querier) *productRepo.Repository {
	return productRepo.New(querier)
}

func provideCartRepository(querier *querier.Querier) *cartRepo.Repository {
	return cartRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideReviewRepository(querier *querier.Querier) *reviewRepo.Repository {
	return reviewRepo.New(querier)
}

func provideBuyerRepository(querier *querier.Querier) *buyerRepo.Repository {
	return buyerRepo.New(querier)
}

func provideSessionStore(redisClient *goredis.Client, cfg *config.Config) *session.Store {
	return session.NewStore(redisClient, cfg.Redis.SessionTTL)
}

func provideSessionResolver(store session.TokenStore) *session.Resolver {
	return session.NewResolver(store)
}

func provideServiceProduct(repository productService.Repository) *productService.Product {
	return productService.New(repository)
}

func provideServiceCart(
	repository cartService.Repository,
	txManager cartService.TxManager,
) *cartService.Cart {
	return cartService.New(repository, txManager)
}

// provideServiceOrder связывает сервис заказов с фабрикой статусов:
// фабрика диспетчеризует события обратно в переходы этого же сервиса.
func provideServiceOrder(
	repository orderService.Repository,
	products orderService.ProductRepository,
	cart orderService.CartRepository,
	pricing orderService.PricingFactory,
	txManager orderService.TxManager,
) *orderService.Order {
	svc := orderService.New(repository, products, cart, pricing, txManager)
	svc.SetStatusHandlerFactory(order_handle.NewStatusHandlerFactory(svc))
	return svc
}

func provideServiceReview(repository reviewService.Repository) *reviewService.Review {
	return reviewService.New(repository)
}

func provideServiceAuth(
	repository authService.Repository,
	sessions authService.SessionStore,
) *authService.Auth {
	return authService.New(repository, sessions)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.CartCleanupInterval)
}

func provideCartMaxAge(cfg *config.Config) CartMaxAge {
	return CartMaxAge(cfg.Tasks.CartMaxAge)
}

func provideCartCleanupTask(
	log logger.Logger,
	cartService cart_cleanup.Service,
	interval CleanupInterval,
	maxAge CartMaxAge,
) *cart_cleanup.CartCleanup {
	return cart_cleanup.NewCartCleanup(log, cartService, time.Duration(interval), time.Duration(maxAge))
}

func provideTaskList(
	cartCleanupTask *cart_cleanup.CartCleanup,
) []background.Task {
	return []background.Task{
		cartCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
