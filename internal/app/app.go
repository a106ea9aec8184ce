package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/remindersvc/internal/config"
	httpx "github.com/you/remindersvc/internal/http"
	"github.com/you/remindersvc/internal/http/handlers"
	"github.com/you/remindersvc/internal/http/middleware"
	"github.com/you/remindersvc/internal/http/respond"
	"github.com/you/remindersvc/internal/infrastructure/auth"
	"github.com/you/remindersvc/internal/infrastructure/database"
	"github.com/you/remindersvc/internal/infrastructure/messaging"
	"github.com/you/remindersvc/internal/infrastructure/repositories"
	"github.com/you/remindersvc/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	respond.Development = cfg.Development

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}
	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL)
	keySvc := auth.NewAPIKeyService()
	gateway := messaging.NewTwilioGateway(cfg.MessagingSID, cfg.MessagingToken, cfg.MessagingFrom, cfg.CountryCode)

	userRepo := repositories.NewUserRepository(gdb)
	sessionRepo := repositories.NewSessionRepository(rdb, cfg.SessionTTL)
	reminderRepo := repositories.NewReminderRepository(gdb)
	tagRepo := repositories.NewTagRepository(gdb)
	notificationRepo := repositories.NewNotificationRepository(gdb)

	accountSvc := services.NewAccountService(userRepo, sessionRepo, passwordSvc, tokenSvc, keySvc, cfg.SessionTTL, cfg.AccessTTL)
	reminderSvc := services.NewReminderService(reminderRepo)
	tagSvc := services.NewTagService(tagRepo)
	notificationSvc := services.NewNotificationService(notificationRepo)
	messageSvc := services.NewMessageService(gateway)

	userH := handlers.NewUserHandlers(accountSvc)
	reminderH := handlers.NewReminderHandlers(reminderSvc)
	tagH := handlers.NewTagHandlers(tagSvc)
	notificationH := handlers.NewNotificationHandlers(notificationSvc)
	messageH := handlers.NewMessageHandlers(messageSvc)

	authMW := middleware.NewAuthMW(tokenSvc, sessionRepo, userRepo)

	r := httpx.BuildRouter(userH, reminderH, tagH, notificationH, messageH, authMW)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	log.Printf("listening on %s", srv.Addr)
	return srv.ListenAndServe()
}
