package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/putrawicaksana/travelreg/internal/pkg/clock"
	"github.com/putrawicaksana/travelreg/internal/pkg/config"
	"github.com/putrawicaksana/travelreg/internal/pkg/hash"
	"github.com/putrawicaksana/travelreg/internal/pkg/instrument"
	"github.com/putrawicaksana/travelreg/internal/pkg/mail"
	"github.com/putrawicaksana/travelreg/internal/pkg/otp"
	"github.com/putrawicaksana/travelreg/internal/pkg/router"
	"github.com/putrawicaksana/travelreg/internal/pkg/session"
	"github.com/putrawicaksana/travelreg/internal/pkg/uid"
	"github.com/putrawicaksana/travelreg/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	bcrypt    hash.Hash
	uid       uid.NumberID
	oid       uid.StringID
	uuid      uid.StringID
	otp       otp.Generator

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	sessions  session.Store
	mail      mail.Mail

	// server
	router     *router.Router
	httpServer *http.Server

	// lifecycle
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
