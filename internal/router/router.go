package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	authgotrue "vet-clinic-records/internal/adapters/auth/gotrue"
	"vet-clinic-records/internal/adapters/export/excel"
	sessmem "vet-clinic-records/internal/adapters/sessions/memory"
	mem "vet-clinic-records/internal/adapters/storage/memory"
	pg "vet-clinic-records/internal/adapters/storage/postgres"
	"vet-clinic-records/internal/domain/animals"
	"vet-clinic-records/internal/domain/roster"
	"vet-clinic-records/internal/domain/session"
	"vet-clinic-records/internal/domain/tutors"
	"vet-clinic-records/internal/domain/users"
	"vet-clinic-records/internal/domain/visits"
	"vet-clinic-records/internal/middleware"
	"vet-clinic-records/internal/ports/auth"
	"vet-clinic-records/internal/ports/sessions"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Options struct {
	// AuthProvider pode ser nil (modo dev: só contas limitadas).
	AuthProvider auth.Provider

	// Sessions é o store das sessões limitadas; nil usa in-memory.
	Sessions sessions.Store

	// DB opcional; sem ela tenta DB_DSN e por fim cai em in-memory.
	DB *sql.DB

	Logger *zap.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	store := opts.Sessions
	if store == nil {
		store = sessmem.NewStore()
	}

	resolver := session.NewResolver(store, opts.AuthProvider)
	r.Use(middleware.SessionContext(resolver, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		tutorRepo  tutors.Repository
		animalRepo animals.Repository
		visitRepo  visits.Repository
		userRepo   users.Repository
	)

	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err != nil {
				log.Error("postgres indisponível, caindo para in-memory", zap.Error(err))
			} else {
				db = opened
			}
		}
	}

	if db != nil {
		tutorRepo = pg.NewTutorsRepo(db)
		animalRepo = pg.NewAnimalsRepo(db)
		visitRepo = pg.NewVisitsRepo(db)
		userRepo = pg.NewUsersRepo(db)
	} else {
		tutorRepo = mem.NewTutorsRepo()
		animalRepo = mem.NewAnimalsRepo()
		visitRepo = mem.NewVisitsRepo()
		userRepo = mem.NewUsersRepo()
	}

	cache := roster.NewCache()
	loadCache(cache, tutorRepo, animalRepo, visitRepo, log)

	// Ordem de construção sem ciclo: o bloqueio de exclusão de tutor lê
	// direto do repositório de animais, e o cascade usa o repositório de
	// atendimentos.
	usersSvc := users.NewService(userRepo)
	sessionSvc := session.NewService(usersSvc, store, opts.AuthProvider)
	tutorsSvc := tutors.NewService(tutorRepo, animalRepo, cache)
	animalsSvc := animals.NewService(animalRepo, visitRepo, tutorsSvc, cache)
	visitsSvc := visits.NewService(visitRepo, animalsSvc, cache)

	session.RegisterRoutes(r, sessionSvc)
	users.RegisterRoutes(r, usersSvc)
	tutors.RegisterRoutes(r, tutorsSvc)
	animals.RegisterRoutes(r, animalsSvc)
	visits.RegisterRoutes(r, visitsSvc)
	roster.RegisterRoutes(r, cache, excel.NewRenderer())

	return r
}

// NewAuthProviderFromEnv monta o provedor GoTrue quando GOTRUE_URL está
// configurada; sem ela devolve nil e o serviço sobe sem admins.
func NewAuthProviderFromEnv() (auth.Provider, error) {
	baseURL := os.Getenv("GOTRUE_URL")
	if baseURL == "" {
		return nil, nil
	}
	client, err := authgotrue.NewClient(authgotrue.Config{
		BaseURL: baseURL,
		APIKey:  os.Getenv("GOTRUE_API_KEY"),
	})
	if err != nil {
		return nil, err
	}
	return authgotrue.NewProvider(client), nil
}

// loadCache faz a carga inicial da projeção. Falha aqui não derruba a
// subida; a projeção se completa conforme as mutações chegam.
func loadCache(
	cache *roster.Cache,
	tutorRepo tutors.Repository,
	animalRepo animals.Repository,
	visitRepo visits.Repository,
	log *zap.Logger,
) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ts, err := tutorRepo.List(ctx)
	if err != nil {
		log.Error("carga inicial de tutores falhou", zap.Error(err))
	}
	as, err := animalRepo.List(ctx)
	if err != nil {
		log.Error("carga inicial de animais falhou", zap.Error(err))
	}
	vs, err := visitRepo.List(ctx)
	if err != nil {
		log.Error("carga inicial de atendimentos falhou", zap.Error(err))
	}
	cache.Load(ts, as, vs)
}
