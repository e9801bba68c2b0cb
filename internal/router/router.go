package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "vet-clinic-records/internal/adapters/storage/memory"
	pg "vet-clinic-records/internal/adapters/storage/postgres"

	"vet-clinic-records/internal/adapters/publisher"
	"vet-clinic-records/internal/domain/clinics"
	"vet-clinic-records/internal/domain/owners"
	"vet-clinic-records/internal/domain/pets"
	"vet-clinic-records/internal/domain/records"
	"vet-clinic-records/internal/middleware"
	"vet-clinic-records/internal/platform/logger"
	"vet-clinic-records/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Log logger.Logger

	// Opcional: métricas del módulo de registros (registrar una sola vez).
	Metrics *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	var (
		clinicsRepo clinics.Repository
		ownersRepo  owners.Repository
		petsRepo    pets.Repository
		recordsRepo records.Repository
	)

	// Si no pasan DB explícita, intenta por env (para dev/handoff).
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		clinicsRepo = pg.NewClinicsRepo(db)
		ownersRepo = pg.NewOwnersRepo(db)
		petsRepo = pg.NewPetsRepo(db)
		recordsRepo = pg.NewRecordsRepo(db)
	} else {
		clinicsRepo = mem.NewClinicsRepo()
		ownersRepo = mem.NewOwnersRepo()
		petsRepo = mem.NewPetsRepo()
		recordsRepo = mem.NewRecordsRepo()
	}

	pub := publisher.NewLogPublisher(log)

	// Services por módulo
	clinicsSvc := clinics.NewService(clinicsRepo)
	ownersSvc := owners.NewService(ownersRepo)
	petsSvc := pets.NewService(petsRepo)
	recordsSvc := records.NewService(recordsRepo, pub, opts.Metrics)

	// Rutas por módulo
	clinics.RegisterRoutes(r, clinicsSvc)
	owners.RegisterRoutes(r, ownersSvc)
	pets.RegisterRoutes(r, petsSvc, ownersSvc)
	records.RegisterRoutes(r, recordsSvc, petsSvc)

	return r
}
