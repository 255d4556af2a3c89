package main

import (
	"github.com/joho/godotenv"

	"github.com/GiannisClipper/payments/internal/auth"
	"github.com/GiannisClipper/payments/internal/config"
	"github.com/GiannisClipper/payments/internal/database"
	httpserver "github.com/GiannisClipper/payments/internal/http"
	"github.com/GiannisClipper/payments/internal/logging"
	"github.com/GiannisClipper/payments/internal/repository"
	"github.com/GiannisClipper/payments/internal/service"
	"github.com/GiannisClipper/payments/internal/token"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.Load()
	log := logging.New(cfg.GinMode)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	users := repository.NewUserRepository(db)
	funds := repository.NewFundRepository(db)
	genres := repository.NewGenreRepository(db)
	payments := repository.NewPaymentRepository(db)

	userService := service.NewUserService(users, &auth.BcryptHasher{})
	fundService := service.NewFundService(funds, users)
	genreService := service.NewGenreService(genres, funds, users)
	paymentService := service.NewPaymentService(payments, genres, funds, users)

	codec := token.NewCodec(cfg.TokenSecret, cfg.TokenPrefix, cfg.TokenDuration, nil)
	gate := auth.NewGate(codec, users)

	r := httpserver.NewServer(cfg, log, codec, gate, userService, fundService, genreService, paymentService)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
