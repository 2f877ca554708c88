package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/cornerstore-backend/api/controllers"
	"github.com/angelmondragon/cornerstore-backend/api/middleware"
	"github.com/angelmondragon/cornerstore-backend/api/responses"
	"github.com/angelmondragon/cornerstore-backend/internal/cashiers"
	"github.com/angelmondragon/cornerstore-backend/internal/orders"
	"github.com/angelmondragon/cornerstore-backend/internal/products"
	"github.com/angelmondragon/cornerstore-backend/pkg/config"
	"github.com/angelmondragon/cornerstore-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/cornerstore-backend/pkg/errors"
	"github.com/angelmondragon/cornerstore-backend/pkg/logger"
	"github.com/angelmondragon/cornerstore-backend/pkg/metrics"
	"github.com/angelmondragon/cornerstore-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	cashierService cashiers.Service,
	productService products.Service,
	orderService orders.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	readiness := map[string]controllers.Pinger{}
	if dbP != nil {
		readiness["database"] = dbP
	}
	var idempotencyStore redis.IdempotencyStore
	if redisClient != nil {
		readiness["redis"] = redisClient
		idempotencyStore = redisClient
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "route not found"))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, readiness, logg))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	// Idempotency wraps the create endpoints only, after chi has resolved their pattern.
	idempotent := middleware.Idempotency(idempotencyStore, cfg.Redis.IdempotencyTTL, logg)

	r.Route("/cashiers", func(r chi.Router) {
		r.With(idempotent).Post("/", controllers.CreateCashier(cashierService, logg))
		r.Get("/{id}", controllers.GetCashier(cashierService, logg))
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(productService, logg))
		r.With(idempotent).Post("/", controllers.CreateProduct(productService, logg))
		r.Get("/popular", controllers.PopularProducts(productService, logg))
		r.Put("/{id}", controllers.UpdateProduct(productService, logg))
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", controllers.ListOrders(orderService, logg))
		r.With(idempotent).Post("/", controllers.CreateOrder(orderService, logg))
		r.Get("/{id}", controllers.GetOrder(orderService, logg))
		r.Delete("/{id}", controllers.DeleteOrder(orderService, logg))
	})

	return r
}
