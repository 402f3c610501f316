package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"liyu1981.xyz/factory-monitor/pkg/aiclient"
	"liyu1981.xyz/factory-monitor/pkg/common"
	"liyu1981.xyz/factory-monitor/pkg/db"
	"liyu1981.xyz/factory-monitor/pkg/fleet"
	fmGrpc "liyu1981.xyz/factory-monitor/pkg/grpc"
	fmHttp "liyu1981.xyz/factory-monitor/pkg/http"
	"liyu1981.xyz/factory-monitor/pkg/publish"
	"liyu1981.xyz/factory-monitor/pkg/stream"
	"liyu1981.xyz/factory-monitor/pkg/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, copy .env.example to .env in development. Using process environment.")
	}

	cfg, err := common.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	dialector, ok := db.UseDialector(cfg.DBType)
	if !ok {
		log.Fatal("Unknown FM_DB_TYPE: " + cfg.DBType)
	}
	dbInstance := db.GetInstance(dialector)

	logger := common.GetLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := fleet.NewSimulator(telemetry.NewTimeSeededSource(), telemetry.GeneratorOpts{CriticalCount: &cfg.CriticalCount})
	ai := aiclient.New(cfg.AIBaseURL, aiclient.DefaultTimeouts)
	fleetCore := fleet.New(*dbInstance, sim, ai)

	hub := stream.NewHub()
	go hub.Run(ctx)
	fleetCore.WithPublishers(hub)

	if cfg.RedisAddr != "" {
		redisPublisher := publish.NewRedisPublisher(publish.NewRedisClient(cfg.RedisAddr), cfg.RedisPrefix)
		if err := redisPublisher.Ping(ctx); err != nil {
			logger.Warn("Redis not reachable, snapshots will not be mirrored",
				zap.String("addr", cfg.RedisAddr), zap.Error(err))
		} else {
			fleetCore.WithPublishers(redisPublisher)
			logger.Info("Mirroring snapshots to redis", zap.String("addr", cfg.RedisAddr), zap.String("prefix", cfg.RedisPrefix))
		}
	}

	scheduler := fleet.NewScheduler(fleetCore, cfg.TickInterval)
	if err := scheduler.Start(); err != nil {
		log.Fatal(err)
	}

	defaultLimiter := zap.String("default_limiter",
		fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", cfg.DefaultRate, cfg.DefaultBurst))

	if cfg.GrpcHostPort != "" {
		s := fmGrpc.NewServer(&fmGrpc.DashboardServer{
			Fleet:            fleetCore,
			RateLimiterStore: fleet.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst),
		})
		logger.Info("gRPC server created with:", defaultLimiter)

		listener, err := net.Listen("tcp", cfg.GrpcHostPort)
		if err != nil {
			log.Fatalf("failed to listen: %v", err)
		}

		go func() {
			logger.Info("start gRPC server on " + cfg.GrpcHostPort)
			if err := s.Serve(listener); err != nil {
				log.Fatalf("grpc server failed to serve: %v", err)
			}
		}()
		defer s.GracefulStop()
	}

	rs := &fmHttp.RestfulServer{
		Server:           gin.Default(),
		Fleet:            fleetCore,
		RateLimiterStore: fleet.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst),
		Hub:              hub,
	}
	rs.Setup()
	logger.Info("http server created with:", defaultLimiter)

	srv := &http.Server{Addr: cfg.HttpHostPort, Handler: rs.Server}
	go func() {
		logger.Info("Starting HTTP server on: " + cfg.HttpHostPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server failed to serve: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	scheduler.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", zap.Error(err))
	}
}
