package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "loanflow/internal/adapter/http"
	"loanflow/internal/adapter/middleware"
	"loanflow/internal/adapter/repository/kvstore"
	"loanflow/internal/config"
	"loanflow/internal/infrastructure/cache"
	"loanflow/internal/infrastructure/db"
	authuc "loanflow/internal/usecase/auth"
	loanuc "loanflow/internal/usecase/loan"
	messageuc "loanflow/internal/usecase/message"
	settingsuc "loanflow/internal/usecase/settings"
	useruc "loanflow/internal/usecase/user"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("config invalid")
	}

	gdb, err := db.Open(cfg.DBDriver, cfg.SQLitePath, cfg.MySQLDSN(), log)
	if err != nil {
		log.WithError(err).Fatal("db open failed")
	}

	store, err := kvstore.Open(gdb)
	if err != nil {
		log.WithError(err).Fatal("store open failed")
	}
	if err := store.Seed(context.Background()); err != nil {
		log.WithError(err).Fatal("seed failed")
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Fatal("redis open failed")
	}

	// repositories
	users := kvstore.NewUserRepository(store)
	loans := kvstore.NewLoanRepository(store)
	settings := kvstore.NewSettingsRepository(store)
	sessions := kvstore.NewSessionRepository(store)
	contracts := kvstore.NewContractTextRepository(store)
	loanMsgs := kvstore.NewLoanMessageRepository(store)
	directMsgs := kvstore.NewDirectMessageRepository(store)

	// usecases
	authUC := authuc.NewUsecase(users, sessions, contracts)
	loanUC := loanuc.NewUsecase(loans, settings)
	userUC := useruc.NewUsecase(users, contracts)
	settingsUC := settingsuc.NewUsecase(settings)
	messageUC := messageuc.NewUsecase(loanMsgs, directMsgs)

	// change log: replaces the old periodic refresh, throttled to its
	// cadence
	for _, key := range []string{kvstore.KeyLoans, kvstore.KeyUsers} {
		store.Subscribe(key, 2*time.Second, func(k string) {
			log.WithField("key", k).Debug("collection updated")
		})
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idem := middleware.Idempotency(rdb, log, time.Duration(cfg.IdempTTLSecs)*time.Second)
	httpadp.RegisterRoutes(e,
		idem,
		httpadp.NewAuthHandler(authUC),
		httpadp.NewLoanHandler(loanUC),
		httpadp.NewUserHandler(userUC),
		httpadp.NewSettingsHandler(settingsUC),
		httpadp.NewMessageHandler(messageUC),
	)

	addr := ":" + cfg.AppPort
	log.WithField("addr", addr).Info("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
