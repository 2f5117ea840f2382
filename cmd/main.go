package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"notely/api/handler"
	apiMiddleware "notely/api/middleware"
	"notely/api/routes"
	"notely/config"
	"notely/internal/entity"
	"notely/internal/repository"
	"notely/internal/service"
	"notely/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		logger.WithError(err).Fatal("database connection failed")
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Note{}, &entity.SecurityLog{}); err != nil {
		logger.WithError(err).Fatal("database migration failed")
	}

	redisClient, err := config.ConnectRedis(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.WithError(err).Fatal("redis connection failed")
	}

	tokenManager := utils.TokenManager{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		TokenTTL: cfg.TokenTTL,
	}

	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	securityRepo := repository.NewSecurityLogRepository(db)
	ledger := repository.NewRedisRevocationLedger(redisClient)

	authService := service.NewAuthService(
		userRepo,
		securityRepo,
		ledger,
		service.NewResendMailer(cfg.ResendAPIKey, cfg.MailFrom),
		service.BcryptPasswordHasher{Cost: cfg.BcryptCost},
		tokenManager,
		service.RealClock{},
		service.AuthConfig{
			TokenTTL: cfg.TokenTTL,
			OTPTTL:   cfg.OTPTTL,
		},
	)
	noteService := service.NewNoteService(noteRepo)

	validate := validator.New()
	authHandler := handler.NewAuthHandler(authService, validate)
	noteHandler := handler.NewNoteHandler(noteService, validate)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: &tokenManager, Ledger: ledger}
	router := routes.NewRouter(app, authHandler, noteHandler, authMiddleware)
	router.RegisterRoutes()

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", cfg.HTTPAddr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
