package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-webhook-pipeline/config"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/alerting"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/archive"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/database"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/eventbus"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/handlers"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/metrics"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/publisher"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/queue"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/router"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/service"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/signature"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Dependencies are the external clients the pipeline is built around.
type Dependencies struct {
	DB        *gorm.DB
	Publisher *publisher.KafkaPublisher
	Alerts    service.AlertChannel
	Validator signature.Validator
}

type App struct {
	config *config.Config
	Router *gin.Engine

	Receiver    *service.ReceiverService
	Processor   *service.ProcessorService
	Notifier    *service.NotifierService
	EventRouter *router.Router
	Rules       *router.Loader

	deps   Dependencies
	memory map[string]*queue.MemoryQueue
}

// Initialize connects to the database and Kafka as configured and wires every role.
func (a *App) Initialize(cfg *config.Config) error {
	db, err := cfg.DB.GormConnect()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	kafkaPublisher := publisher.NewKafkaPublisher(cfg.Kafka.BrokerList(), []string{
		cfg.Kafka.ProcessingTopic,
		cfg.Kafka.NotificationTopic,
		cfg.Kafka.EventsTopic,
		cfg.Kafka.AlertsTopic,
		cfg.Kafka.DLQTopic,
	}, cfg.GetRetryConfig())

	var alerts service.AlertChannel = alerting.LogChannel{}
	if cfg.Alerts.Channel == config.AlertChannelKafka {
		alerts = alerting.NewTopicChannel(kafkaPublisher, cfg.Kafka.AlertsTopic)
	}

	var validator signature.Validator = signature.NewAllowAll()
	if cfg.Signature.Mode == config.SignatureModeHMAC {
		validator = signature.NewHMACValidator(cfg.Signature.Secret, cfg.Signature.Secrets(), cfg.Signature.Tolerance)
	}

	return a.InitializeWith(cfg, Dependencies{
		DB:        db,
		Publisher: kafkaPublisher,
		Alerts:    alerts,
		Validator: validator,
	})
}

// InitializeWith wires the pipeline around already built clients. Publisher may be
// nil when QUEUE_BACKEND is memory.
func (a *App) InitializeWith(cfg *config.Config, deps Dependencies) error {
	if cfg.Queue.Backend == config.QueueBackendKafka && deps.Publisher == nil {
		return errors.New("kafka queue backend requires a publisher")
	}
	a.config = cfg
	a.deps = deps
	a.memory = make(map[string]*queue.MemoryQueue)

	rules, err := router.NewLoader(cfg.Rules.Path)
	if err != nil {
		return fmt.Errorf("failed to load routing rules: %w", err)
	}
	a.Rules = rules

	repo := posgrest.NewPaymentEventRepository(deps.DB)
	bus := eventbus.NewQueueBus(a.queueFor(cfg.Kafka.EventsTopic, ""))

	a.Receiver = service.NewReceiverService(repo, archive.NewStore(deps.DB), a.queueFor(cfg.Kafka.ProcessingTopic, ""))
	a.Processor = service.NewProcessorService(repo, bus, a.queueFor(cfg.Kafka.NotificationTopic, ""))
	a.Notifier = service.NewNotifierService(repo, deps.Alerts)
	a.EventRouter = router.NewRouter(rules, deps.Alerts)

	metrics.RegisterMetrics()

	a.Router = gin.New()
	a.Router.Use(gin.Logger(), gin.Recovery())
	a.RegisterRoutes(handlers.NewWebhookHandler(a.Receiver, deps.Validator, cfg.APP.InvocationTimeout))
	return nil
}

// queueFor returns the queue backing topic. With Kafka, an empty groupID gives a
// send-only queue; readers join their consumer group as soon as they are built.
func (a *App) queueFor(topic, groupID string) queue.Queue {
	visibility := a.config.Queue.GetVisibilityTimeout(a.config.APP.InvocationTimeout)

	if a.config.Queue.Backend == config.QueueBackendMemory {
		if q, ok := a.memory[topic]; ok {
			return q
		}
		q := queue.NewMemoryQueue(topic, visibility, a.config.Queue.MaxReceives, a.config.Queue.WaitTime)
		a.memory[topic] = q
		return q
	}

	var reader queue.MessageReader
	if groupID != "" {
		reader = queue.NewKafkaReader(a.config.Kafka.BrokerList(), topic, groupID)
	}
	return queue.NewKafkaQueue(topic, a.config.Kafka.DLQTopic, reader, a.deps.Publisher, visibility, a.config.Queue.MaxReceives, a.config.Queue.WaitTime)
}

// MemoryQueue exposes an in-process queue by topic, nil when the backend is Kafka.
func (a *App) MemoryQueue(topic string) *queue.MemoryQueue {
	return a.memory[topic]
}

func (a *App) newConsumer(name, topic, groupID string, handler queue.BatchHandler) *queue.Consumer {
	return queue.NewConsumer(
		name,
		a.queueFor(topic, groupID),
		handler,
		a.config.Queue.BatchSize,
		a.config.APP.InvocationTimeout,
		a.config.GetRetryConfig(),
	)
}

func (a *App) ProcessorConsumer() *queue.Consumer {
	return a.newConsumer("processor", a.config.Kafka.ProcessingTopic, a.config.Kafka.ProcessorConsumerGroup,
		handlers.NewProcessorHandler(a.Processor).HandleBatch)
}

func (a *App) NotifierConsumer() *queue.Consumer {
	return a.newConsumer("notifier", a.config.Kafka.NotificationTopic, a.config.Kafka.NotifierConsumerGroup,
		handlers.NewNotifierHandler(a.Notifier).HandleBatch)
}

func (a *App) RouterConsumer() *queue.Consumer {
	return a.newConsumer("router", a.config.Kafka.EventsTopic, a.config.Kafka.RouterConsumerGroup,
		handlers.NewRouterHandler(a.EventRouter).HandleBatch)
}

// RunReceiver serves HTTP until ctx is cancelled, then drains in-flight requests.
func (a *App) RunReceiver(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("receiver listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.APP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("receiver shutdown: %w", err)
	}
	logrus.Info("receiver stopped")
	return nil
}

func (a *App) RunProcessor(ctx context.Context) error {
	return runConsumer(ctx, a.ProcessorConsumer())
}

func (a *App) RunNotifier(ctx context.Context) error {
	return runConsumer(ctx, a.NotifierConsumer())
}

// RunRouter consumes bus events and, when enabled, hot reloads the rules file.
func (a *App) RunRouter(ctx context.Context) error {
	if a.config.Rules.Watch {
		stop, err := a.Rules.Watch()
		if err != nil {
			return err
		}
		defer stop()
	}
	return runConsumer(ctx, a.RouterConsumer())
}

// RunAll runs every role in one process. The first failing role stops the others.
func (a *App) RunAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.RunReceiver(ctx) })
	g.Go(func() error { return a.RunProcessor(ctx) })
	g.Go(func() error { return a.RunNotifier(ctx) })
	g.Go(func() error { return a.RunRouter(ctx) })
	return g.Wait()
}

// Close releases the Kafka writers and the database pool.
func (a *App) Close() error {
	var errs []error
	for _, q := range a.memory {
		errs = append(errs, q.Close())
	}
	if a.deps.Publisher != nil {
		errs = append(errs, a.deps.Publisher.Close())
	}
	if a.deps.DB != nil {
		if sqlDB, err := a.deps.DB.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}

func runConsumer(ctx context.Context, c *queue.Consumer) error {
	defer func() {
		if err := c.Queue.Close(); err != nil {
			logrus.Errorf("closing %s queue: %s", c.Name, err.Error())
		}
	}()
	return c.Run(ctx)
}
