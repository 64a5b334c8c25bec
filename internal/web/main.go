// Package web wires the fiber application: middleware, static uploads,
// metrics, liveness and all API handlers.
package web

import (
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/config"
	fiberlogger "github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/logger/adapter/fiber"
	adminblog "github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler/admin/blog"
	admincatalog "github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler/admin/catalog"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler/admin/dashboard"
	admininbox "github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler/admin/inbox"
	adminpayment "github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler/admin/payment"
	adminpeople "github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler/admin/people"
	adminportfolio "github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler/admin/portfolio"
	adminsettings "github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler/admin/settings"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler/admin/upload"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler/authn"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler/public"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/session"
)

// CheckAlivePath is the liveness endpoint used by load balancers.
const CheckAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration. A nil session
// storage selects the in-memory store.
func New(cfg *config.Config, db *gorm.DB, sessionStorage fiber.Storage) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	session.Init(sessionStorage)

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			BodyLimit:      upload.MaxFileSize + 1<<20, // upload cap plus multipart overhead
		},
	)

	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}
	service.alive.Store(true)

	// access log
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// uploaded images
	app.Static("/uploads", cfg.Webserver.UploadDir)

	// prometheus metrics
	app.Get("/metrics", func(c *fiber.Ctx) error {
		fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())(c.Context())
		return nil
	})

	// liveness for load balancers
	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})

	// init handlers (they register their own routes)
	for _, initFn := range []func(*fiber.App, *config.Config, *gorm.DB) error{
		authn.Handler.Init,
		public.Handler.Init,
		admincatalog.Handler.Init,
		adminportfolio.Handler.Init,
		adminblog.Handler.Init,
		adminpeople.Handler.Init,
		admininbox.Handler.Init,
		adminpayment.Handler.Init,
		adminsettings.Handler.Init,
		dashboard.Handler.Init,
		upload.Handler.Init,
	} {
		if err := initFn(app, cfg, db); err != nil {
			log.Fatal().Err(err).Msg("handler init failed")
		}
	}

	return service
}
