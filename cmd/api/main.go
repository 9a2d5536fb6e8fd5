package main

import (
	"net/http"
	"os"
	"strconv"
	"time"

	sessredis "vet-clinic-records/internal/adapters/sessions/redis"
	"vet-clinic-records/internal/platform/logger"
	"vet-clinic-records/internal/ports/sessions"
	"vet-clinic-records/internal/router"

	_ "vet-clinic-records/docs"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// @title Prontuário Veterinário API
// @version 1.0
// @description Cadastro de tutores, animais e atendimentos de uma clínica veterinária.
// @BasePath /
func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	provider, err := router.NewAuthProviderFromEnv()
	if err != nil {
		log.Fatal("configuração do provedor de auth inválida", zap.Error(err))
	}
	if provider == nil {
		log.Warn("GOTRUE_URL ausente; subindo sem contas de administrador")
	}

	var store sessions.Store
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		store = sessredis.NewStore(client, sessionTTL())
		log.Info("sessões limitadas no redis", zap.String("addr", redisAddr))
	} else {
		log.Warn("REDIS_ADDR ausente; sessões limitadas em memória")
	}

	r := router.NewRouter(router.Options{
		AuthProvider: provider,
		Sessions:     store,
		Logger:       log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server error", zap.Error(err))
	}
}

// sessionTTL lê SESSION_TTL_HOURS; default 12h.
func sessionTTL() time.Duration {
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h > 0 {
			return time.Duration(h) * time.Hour
		}
	}
	return 12 * time.Hour
}
