package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"postboard/config"
	"postboard/internal/adapter/in/rest"
	"postboard/internal/adapter/out/moderation"
	"postboard/internal/adapter/out/pubsub"
	"postboard/internal/adapter/out/pubsub/inmemory"
	"postboard/internal/adapter/out/pubsub/kafka"
	memstore "postboard/internal/adapter/out/storage/inmemory"
	"postboard/internal/adapter/out/storage/orm"
	pgstore "postboard/internal/adapter/out/storage/postgres"
	"postboard/internal/service"
	"postboard/pkg/logger"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/go-chi/httplog/v2"
)

type App struct {
	cfg     config.Config
	srv     *http.Server
	closers []func() error
}

type storages struct {
	users    service.UserStorage
	posts    service.PostStorage
	comments service.CommentStorage
}

// NewApp builds every dependency named by cfg. On error whatever was already
// opened is closed again.
func NewApp(ctx context.Context, cfg config.Config, httpLogger *httplog.Logger) (_ *App, err error) {
	log := logger.FromContext(ctx)
	a := &App{cfg: cfg}
	defer func() {
		if err != nil {
			a.close(ctx)
		}
	}()

	var ready []rest.ReadinessCheck

	st, check, err := a.openStorage(ctx)
	if err != nil {
		return nil, err
	}
	if check != nil {
		ready = append(ready, check)
	}

	classifier, check, err := a.newClassifier(ctx)
	if err != nil {
		return nil, err
	}
	if check != nil {
		ready = append(ready, check)
	}

	policy, err := service.ParseFailurePolicy(cfg.Moderation.FailurePolicy)
	if err != nil {
		return nil, err
	}
	gate := service.NewModerationGate(classifier, policy, cfg.Moderation.Timeout)

	bus := inmemory.New(cfg.Events.BusBuffer)
	publishers := pubsub.Fanout{bus}
	if len(cfg.Kafka.Brokers) > 0 {
		kp, err := kafka.NewCommentPublisher(cfg.Kafka.Brokers, cfg.Kafka.CommentsTopic)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, kp.Close)
		publishers = append(publishers, kp)
		log.Info("publishing comment events to kafka", "topic", cfg.Kafka.CommentsTopic)
	}

	userSvc := service.NewUserService(st.users)
	postSvc := service.NewPostService(st.posts)
	commentSvc := service.NewCommentService(st.comments, gate, publishers,
		service.WithUpdateModeration(cfg.Moderation.OnUpdate),
		service.WithSubscriber(bus),
	)

	// Shutdown does not cancel request contexts; open streams are ended explicitly.
	streamsCtx, stopStreams := context.WithCancel(context.Background())
	a.closers = append(a.closers, func() error { stopStreams(); return nil })

	h := rest.NewHandler(userSvc, postSvc, commentSvc,
		rest.WithStreamKeepAlive(cfg.Events.StreamKeepAlive),
		rest.WithStreamsDone(streamsCtx.Done()),
	)
	router := rest.NewRouter(h, rest.RouterOptions{
		Logger: httpLogger,
		Ready:  ready,
	})

	addr := ":" + cfg.HTTP.Port
	a.srv = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	a.srv.RegisterOnShutdown(stopStreams)

	log.Info("app initialized",
		"addr", addr,
		"storage", cfg.StorageType,
		"moderation", cfg.Moderation.Provider,
		"failure_policy", string(policy),
	)
	return a, nil
}

func (a *App) openStorage(ctx context.Context) (storages, rest.ReadinessCheck, error) {
	switch a.cfg.StorageType {
	case config.StoragePostgres:
		pool, err := pgstore.Connect(ctx, a.cfg.Postgres.GetDSN(), a.cfg.Postgres.MaxConns)
		if err != nil {
			return storages{}, nil, err
		}
		a.closers = append(a.closers, func() error { pool.Close(); return nil })
		if err := pgstore.Migrate(ctx, pool); err != nil {
			return storages{}, nil, err
		}
		return storages{
			users:    pgstore.NewUserStorage(pool, trmpgx.DefaultCtxGetter),
			posts:    pgstore.NewPostStorage(pool, trmpgx.DefaultCtxGetter),
			comments: pgstore.NewCommentStorage(pool, trmpgx.DefaultCtxGetter),
		}, pool.Ping, nil

	case config.StorageGorm:
		db, err := orm.Connect(ctx, a.cfg.Postgres.GetDSN(), a.cfg.Postgres.MaxConns)
		if err != nil {
			return storages{}, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return storages{}, nil, fmt.Errorf("gorm sql db: %w", err)
		}
		a.closers = append(a.closers, sqlDB.Close)
		if err := orm.RunMigrations(ctx, db); err != nil {
			return storages{}, nil, err
		}
		return storages{
			users:    orm.NewUserStorage(db),
			posts:    orm.NewPostStorage(db),
			comments: orm.NewCommentStorage(db),
		}, sqlDB.PingContext, nil

	default:
		return storages{
			users:    memstore.NewUserStorage(),
			posts:    memstore.NewPostStorage(),
			comments: memstore.NewCommentStorage(),
		}, nil, nil
	}
}

func (a *App) newClassifier(ctx context.Context) (service.Classifier, rest.ReadinessCheck, error) {
	mc := a.cfg.Moderation

	var classifier service.Classifier
	switch mc.Provider {
	case config.ProviderHTTP:
		classifier = moderation.NewHTTPClassifier(mc.URL, mc.Token, &http.Client{Timeout: mc.Timeout})
	default:
		if len(mc.Blocklist) == 0 {
			logger.FromContext(ctx).Warn("moderation blocklist is empty, every comment will pass")
		}
		classifier = moderation.NewWordlistClassifier(mc.Blocklist)
	}

	if a.cfg.Redis.URL == "" {
		return classifier, nil, nil
	}

	client, err := moderation.Connect(ctx, a.cfg.Redis.URL)
	if err != nil {
		return nil, nil, err
	}
	a.closers = append(a.closers, client.Close)

	check := func(ctx context.Context) error { return client.Ping(ctx).Err() }
	return moderation.NewCachedClassifier(classifier, moderation.NewRedisCache(client), mc.CacheTTL), check, nil
}

func (a *App) Handler() http.Handler {
	return a.srv.Handler
}

func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", a.srv.Addr)
		errCh <- a.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
		shCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := a.srv.Shutdown(shCtx); err != nil {
			log.Error("http shutdown", "error", err)
		}
		a.close(ctx)
		return nil

	case err := <-errCh:
		a.close(ctx)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// close releases resources in reverse order of acquisition.
func (a *App) close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logger.FromContext(ctx).Error("close dependency", "error", err)
		}
	}
	a.closers = nil
}
