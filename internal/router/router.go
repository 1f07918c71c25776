package router

import (
	"fmt"
	"net/http"
	"time"

	_ "pet-friendly-stays/docs"
	"pet-friendly-stays/internal/adapters/maps/mapbox"
	mem "pet-friendly-stays/internal/adapters/storage/memory"
	"pet-friendly-stays/internal/domain/catalog"
	"pet-friendly-stays/internal/domain/guide"
	"pet-friendly-stays/internal/domain/pets"
	"pet-friendly-stays/internal/domain/plans"
	"pet-friendly-stays/internal/domain/reports"
	"pet-friendly-stays/internal/domain/reviews"
	"pet-friendly-stays/internal/domain/vets"
	"pet-friendly-stays/internal/domain/wizard"
	"pet-friendly-stays/internal/middleware"
	"pet-friendly-stays/internal/platform/logger"
	"pet-friendly-stays/internal/ports/maps"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil = Nop

	// Opcionales: si vienen nil se usan los adapters in-memory.
	KV       pets.KeyValue
	Sessions wizard.SessionRepository

	Generator   wizard.Generator // nil = StaticGenerator
	MapProvider maps.Provider    // nil = mapbox sin token

	VetDelay        time.Duration
	RateLimitPerMin int // 0 = sin límite
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.RateLimit(opts.RateLimitPerMin, log))

	r.Use(middleware.ClientContext(pets.DefaultClientID))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	kv := opts.KV
	if kv == nil {
		kv = mem.NewKV()
	}
	sessions := opts.Sessions
	if sessions == nil {
		sessions = mem.NewWizardSessions()
	}
	gen := opts.Generator
	if gen == nil {
		gen = wizard.MustStaticGenerator()
	}
	mapProvider := opts.MapProvider
	if mapProvider == nil {
		mapProvider = mapbox.New(mapbox.Config{})
	}

	// Seeds embebidos: si no parsean es un bug de build, no de runtime.
	accommodations := must(catalog.Seed())
	hospitals := must(vets.Seed())
	reviewItems := must(reviews.Seed())
	planTmpl := must(plans.Seed())
	reportItems := must(reports.Seed())
	guideDoc := must(guide.Load())

	// Services por módulo
	petsSvc := pets.NewService(kv, log.With(map[string]any{"module": "pets"}))
	catalogSvc := catalog.NewService(mem.NewCatalogRepo(accommodations), petsSvc, log.With(map[string]any{"module": "catalog"}))
	wizardSvc := wizard.NewService(sessions, gen, log.With(map[string]any{"module": "wizard"}))
	vetsSvc := vets.NewService(catalogSvc, hospitals, opts.VetDelay, log.With(map[string]any{"module": "vets"}))
	reviewsSvc := reviews.NewService(catalogSvc, reviewItems)
	plansSvc := plans.NewService(kv, planTmpl, log.With(map[string]any{"module": "plans"}))
	reportsSvc := reports.NewService(reportItems)

	// Rutas por módulo
	catalog.RegisterRoutes(r, catalogSvc, mapProvider)
	vets.RegisterRoutes(r, vetsSvc)
	reviews.RegisterRoutes(r, reviewsSvc)
	pets.RegisterRoutes(r, petsSvc)
	wizard.RegisterRoutes(r, wizardSvc)
	plans.RegisterRoutes(r, plansSvc)
	reports.RegisterRoutes(r, reportsSvc)
	guide.RegisterRoutes(r, guideDoc)

	return r
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("router: embedded seed: %v", err))
	}
	return v
}
