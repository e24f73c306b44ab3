package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/dispenser/pkg/dispenser"
	"github.com/dmitrymomot/dispenser/pkg/httpserver"
	"github.com/dmitrymomot/dispenser/pkg/logger"
)

// API exposes one dispenser over HTTP. The machine serializes stimuli
// itself, so handlers call it directly from concurrent requests.
type API struct {
	machine *dispenser.Machine
	log     *slog.Logger
}

type Option func(*API)

// WithLogger sets the logger used for access and error logs. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

func New(m *dispenser.Machine, opts ...Option) *API {
	a := &API{machine: m, log: logger.Nop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Handle builds the router:
//
//	GET    /healthz          liveness probe
//	GET    /status           machine id, state and inventory
//	POST   /payment          insert payment
//	DELETE /payment          eject payment
//	POST   /crank            turn the crank
//	POST   /stimuli/{name}   any stimulus by name (insert, eject, crank, ...)
//
// Stimuli always answer 200: a stimulus the current state cannot honour is
// a handled transition with a diagnostic, not a client error.
func (a *API) Handle() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(a.accessLog)
	r.Use(middleware.Recoverer)

	r.NotFound(wrap(a.log, func(*http.Request) Response { return JSONError(ErrNotFound) }))
	r.MethodNotAllowed(wrap(a.log, func(*http.Request) Response { return JSONError(ErrMethodNotAllowed) }))

	r.Get("/healthz", httpserver.HealthCheckHandler(a.log))
	r.Get("/status", wrap(a.log, a.status))

	r.Post("/payment", wrap(a.log, a.stimulus(dispenser.InsertPayment)))
	r.Delete("/payment", wrap(a.log, a.stimulus(dispenser.EjectPayment)))
	r.Post("/crank", wrap(a.log, a.stimulus(dispenser.TurnCrank)))
	r.Post("/stimuli/{name}", wrap(a.log, a.namedStimulus))

	return r
}

func (a *API) status(*http.Request) Response {
	return JSON(a.machine.Status())
}

func (a *API) stimulus(s dispenser.Stimulus) handlerFunc {
	return func(r *http.Request) Response {
		return a.apply(r, s)
	}
}

func (a *API) namedStimulus(r *http.Request) Response {
	name := chi.URLParam(r, "name")
	s, err := dispenser.ParseStimulus(name)
	if err != nil {
		return JSONError(fmt.Errorf("%w: %q", ErrUnknownStimulus, name))
	}
	return a.apply(r, s)
}

func (a *API) apply(r *http.Request, s dispenser.Stimulus) Response {
	out, err := a.machine.Apply(r.Context(), s)
	if err != nil {
		a.log.ErrorContext(r.Context(), "stimulus rejected",
			logger.MachineID(a.machine.ID()),
			logger.Stimulus(s),
			logger.Error(err),
		)
		return JSONError(err)
	}
	return JSON(out)
}

func (a *API) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		a.log.InfoContext(r.Context(), "request handled",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
