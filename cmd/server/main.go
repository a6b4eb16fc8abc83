package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Dhoini/Tims-microservice/config"
	"github.com/Dhoini/Tims-microservice/internal/api/rest"
	"github.com/Dhoini/Tims-microservice/internal/kafka"
	"github.com/Dhoini/Tims-microservice/internal/kafka/producer"
	"github.com/Dhoini/Tims-microservice/internal/metrics"
	"github.com/Dhoini/Tims-microservice/internal/repository"
	"github.com/Dhoini/Tims-microservice/internal/service"
	"github.com/Dhoini/Tims-microservice/internal/validation"
	"github.com/Dhoini/Tims-microservice/pkg/logger"
)

var log *logger.Logger

func init() {
	// A missing .env file is fine; real deployments set the
	// environment directly
	_ = godotenv.Load()

	log = logger.New(logger.ParseLevel(os.Getenv("LOG_LEVEL")))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Prometheus registry and collectors
	promRegistry := prometheus.NewRegistry()
	recordMetrics := metrics.NewRecordMetrics(promRegistry, log)
	systemMetrics := metrics.NewSystemMetrics(promRegistry, log)

	systemMetrics.StartRecording(15 * time.Second)
	defer systemMetrics.Stop()

	// Event producer; runs as a no-op without configured brokers
	events := producer.NewNoopRecordProducer()
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaConfig := kafka.NewConfig(cfg.Kafka.Brokers)
		saramaProducer, err := sarama.NewSyncProducer(kafkaConfig.Brokers, kafka.NewSaramaConfig(kafkaConfig))
		if err != nil {
			log.Fatal("Failed to create Kafka producer: %v", err)
		}
		events = producer.NewKafkaRecordProducer(saramaProducer, log)
		log.Info("Kafka event producer connected to %v", cfg.Kafka.Brokers)
	} else {
		log.Info("No Kafka brokers configured, entity events disabled")
	}
	defer events.Close()

	// Storage and domain services
	customerRepo := repository.NewInMemoryCustomerRepository(log)
	orderRepo := repository.NewInMemoryOrderRepository(log)
	validate := validation.New()

	customerService := service.NewCustomerService(customerRepo, orderRepo, validate, events, recordMetrics, log)
	orderService := service.NewOrderService(orderRepo, customerRepo, validate, events, recordMetrics, log)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := rest.SetupRouter(cfg, customerService, orderService, promRegistry, log)
	server := rest.NewServer(router, cfg, log)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	ctxShutdown, cancelShutdown := context.WithTimeout(ctx, shutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
