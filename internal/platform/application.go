// Package platform wires every component into one running process.
// Grounded line for line on platform.Application: connect Mongo, connect
// Redis (poll until available), dial the companion User service, build the
// domain stack, then serve gRPC and HTTP concurrently until shutdown.
package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/connectify-dev/groupuser-service/api/groupuserpb"
	"github.com/connectify-dev/groupuser-service/api/userpb"
	"github.com/connectify-dev/groupuser-service/config"
	"github.com/connectify-dev/groupuser-service/internal/cache"
	"github.com/connectify-dev/groupuser-service/internal/events"
	"github.com/connectify-dev/groupuser-service/internal/grouplock"
	"github.com/connectify-dev/groupuser-service/internal/httpapi"
	"github.com/connectify-dev/groupuser-service/internal/metrics"
	"github.com/connectify-dev/groupuser-service/internal/observability"
	"github.com/connectify-dev/groupuser-service/internal/policy"
	"github.com/connectify-dev/groupuser-service/internal/repository"
	"github.com/connectify-dev/groupuser-service/internal/resilience"
	"github.com/connectify-dev/groupuser-service/internal/resolver"
	_ "github.com/connectify-dev/groupuser-service/internal/rpcjson"
	"github.com/connectify-dev/groupuser-service/internal/rpcserver"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type Application struct {
	cfg         *config.Config
	mongoClient *mongo.Client
	grpcServer  *grpc.Server
	producer    *events.KafkaProducer
	consumer    *events.RosterConsumer
	httpServer  *http.Server
	cacheClient *cache.Client
	userConn    *grpc.ClientConn
	userClient  userpb.UserServiceClient
	tracer      *observability.TracerProvider

	repo         *repository.Repository
	policyEngine *policy.Engine
	rpcHandler   *rpcserver.Server
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

func (a *Application) Bootstrap() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tp, err := observability.InitTracer(context.Background(), observability.TracerConfig{
		ServiceName:    "groupuser-service",
		ServiceVersion: "1.0.0",
		Environment:    "development",
		OTLPEndpoint:   a.cfg.JaegerOTLPEndpoint,
	})
	if err != nil {
		slog.Error("failed to initialize tracer", "error", err)
	}
	a.tracer = tp

	clientOptions := options.Client().ApplyURI(a.cfg.MongoURI)
	mongoClient, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	a.mongoClient = mongoClient
	slog.Info("connected to MongoDB")

	db := mongoClient.Database(a.cfg.DBName)
	a.repo = repository.New(db)

	if err := a.initCache(); err != nil {
		return fmt.Errorf("failed to initialize redis: %w", err)
	}

	if err := a.initUserClient(); err != nil {
		return fmt.Errorf("failed to connect to user service: %w", err)
	}

	businessMetrics := metrics.NewBusinessMetrics()

	circuitBreaker := resilience.NewCircuitBreaker(
		resilience.DefaultConfig("user-service"),
		slog.Default(),
	)

	userResolver := resolver.New(a.userClient, circuitBreaker, a.cacheClient, slog.Default())

	a.producer = events.NewKafkaProducer(a.cfg.KafkaBrokers, a.cfg.KafkaTopic)
	slog.Info("kafka producer initialized")

	a.consumer = events.NewRosterConsumer(
		events.DefaultRosterConsumerConfig(a.cfg.KafkaBrokers, a.cfg.KafkaTopic),
		a.cacheClient,
		slog.Default(),
	)
	a.consumer.Start(context.Background())

	a.policyEngine = policy.New(a.repo, userResolver, grouplock.New(), a.producer, businessMetrics, slog.Default())

	a.rpcHandler = rpcserver.NewServer(a.policyEngine)

	a.grpcServer = grpc.NewServer(observability.GetGRPCServerOption())
	groupuserpb.RegisterGroupUserServiceServer(a.grpcServer, a.rpcHandler)

	router := httpapi.BuildRouter(httpapi.Dependencies{
		Mongo:         a.mongoClient,
		Cache:         a.cacheClient,
		UserServiceCB: circuitBreaker,
		CORSOrigins:   a.cfg.CORSAllowedOrigins,
	})
	a.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%s", a.cfg.HTTPPort),
		Handler: router,
	}

	slog.Info("application bootstrapped successfully")
	return nil
}

func (a *Application) Run() error {
	errCh := make(chan error, 2)

	go func() {
		slog.Info("groupuser-service HTTP server listening", "port", a.cfg.HTTPPort)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	go func() {
		errCh <- a.startGRPC()
	}()

	return <-errCh
}

func (a *Application) startGRPC() error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", a.cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", a.cfg.GRPCPort, err)
	}

	slog.Info("groupuser-service gRPC server listening", "port", a.cfg.GRPCPort)

	if err := a.grpcServer.Serve(lis); err != nil {
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("gRPC server error: %w", err)
	}
	return nil
}

func (a *Application) Shutdown() {
	slog.Info("shutting down groupuser-service...")

	if a.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.httpServer.Shutdown(ctx); err != nil {
			slog.Error("error shutting down HTTP server", "error", err)
		} else {
			slog.Info("HTTP server stopped")
		}
	}

	if a.grpcServer != nil {
		a.grpcServer.GracefulStop()
		slog.Info("gRPC server stopped")
	}

	if a.consumer != nil {
		if err := a.consumer.Stop(); err != nil {
			slog.Error("error stopping roster consumer", "error", err)
		} else {
			slog.Info("roster consumer stopped")
		}
	}

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			slog.Error("error closing Kafka producer", "error", err)
		} else {
			slog.Info("Kafka producer closed")
		}
	}

	if a.mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.mongoClient.Disconnect(ctx); err != nil {
			slog.Error("error disconnecting from MongoDB", "error", err)
		} else {
			slog.Info("MongoDB disconnected")
		}
	}

	if a.cacheClient != nil {
		if err := a.cacheClient.Close(); err != nil {
			slog.Error("error closing Redis connection", "error", err)
		} else {
			slog.Info("Redis client closed")
		}
	}

	if a.userConn != nil {
		if err := a.userConn.Close(); err != nil {
			slog.Error("error closing user-service client connection", "error", err)
		} else {
			slog.Info("user-service client connection closed")
		}
	}

	if a.tracer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.tracer.Shutdown(ctx); err != nil {
			slog.Error("error shutting down tracer", "error", err)
		}
	}

	slog.Info("groupuser-service shutdown complete")
}

func (a *Application) initCache() error {
	client := cache.New(cache.Config{
		Addr:     a.cfg.RedisURLs[0],
		Password: a.cfg.RedisPass,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("failed to connect to Redis within timeout")
		case <-ticker.C:
			if client.IsAvailable(context.Background()) {
				a.cacheClient = client
				slog.Info("connected to Redis")
				return nil
			}
			slog.Warn("waiting for Redis...")
		}
	}
}

func (a *Application) initUserClient() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(ctx,
		net.JoinHostPort(a.cfg.UserServiceHost, a.cfg.UserServicePort),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype("json")),
		observability.GetGRPCDialOption(),
	)
	if err != nil {
		return err
	}

	a.userConn = conn
	a.userClient = userpb.NewUserServiceClient(conn)
	slog.Info("connected to user service", "host", a.cfg.UserServiceHost, "port", a.cfg.UserServicePort)
	return nil
}
