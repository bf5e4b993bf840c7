// Package httpapi exposes the small operational HTTP surface that sits
// alongside the gRPC service: health and Prometheus metrics. Grounded on
// httpapi.BuildRouter's gin setup (Recovery, otelgin, cors, /metrics); the
// reel JSON CRUD routes have no counterpart here since every domain
// operation already has a gRPC method and there is no public REST API in
// scope.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/connectify-dev/groupuser-service/internal/cache"
	"github.com/connectify-dev/groupuser-service/internal/resilience"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type Dependencies struct {
	Mongo         *mongo.Client
	Cache         *cache.Client
	UserServiceCB *resilience.CircuitBreaker
	CORSOrigins   []string
}

func BuildRouter(deps Dependencies) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("groupuser-service"))

	origins := deps.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		status := http.StatusOK
		body := gin.H{"status": "ok"}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if deps.Mongo != nil {
			if err := deps.Mongo.Ping(ctx, nil); err != nil {
				status = http.StatusServiceUnavailable
				body["mongo"] = "unavailable"
			} else {
				body["mongo"] = "ok"
			}
		}

		if deps.Cache != nil {
			if deps.Cache.IsAvailable(ctx) {
				body["redis"] = "ok"
			} else {
				status = http.StatusServiceUnavailable
				body["redis"] = "unavailable"
			}
		}

		if deps.UserServiceCB != nil {
			state := deps.UserServiceCB.State()
			body["user_service_breaker"] = state.String()
			if state == gobreaker.StateOpen {
				status = http.StatusServiceUnavailable
			}
		}

		body["status"] = map[bool]string{true: "ok", false: "degraded"}[status == http.StatusOK]
		c.JSON(status, body)
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
