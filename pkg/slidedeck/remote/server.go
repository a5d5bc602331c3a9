// Package remote exposes a presentation over HTTP and websockets so a phone
// or a second screen can drive it.
//
// Every presenter call is marshalled onto the presentation's event loop.
// Snapshots are pushed to websocket clients after each committed transition.
package remote

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck"
)

const (
	DefaultAddr    = "127.0.0.1:7070"
	defaultTimeout = 2 * time.Second
	shutdownWait   = 5 * time.Second
)

// Presenter is the part of a presentation the server drives.
type Presenter interface {
	Next() bool
	Previous() bool
	GoToSlide(n int) bool
	TotalSlides() int
	Snapshot() slidedeck.Snapshot
	OnChange(fn func(slidedeck.Snapshot))
}

// Caller runs a closure on the presentation's event loop and waits for it.
type Caller interface {
	Call(ctx context.Context, fn func()) error
}

// Options configures a Server.
type Options struct {
	Addr    string        // Listen address (default DefaultAddr)
	Timeout time.Duration // Longest wait for the event loop per request (default 2s)
	Logger  *slog.Logger  // Request and client logging (default: discard)
}

// Server is the remote control endpoint of one presentation.
type Server struct {
	app       *fiber.App
	hub       *Hub
	presenter Presenter
	loop      Caller
	options   Options
	logger    *slog.Logger
}

// New returns a server for p. It subscribes to p's transitions, so it must
// be called before the event loop starts or from the loop itself.
func New(p Presenter, loop Caller, options Options) *Server {
	if options.Addr == "" {
		options.Addr = DefaultAddr
	}
	if options.Timeout <= 0 {
		options.Timeout = defaultTimeout
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		hub:       NewHub(options.Logger),
		presenter: p,
		loop:      loop,
		options:   options,
		logger:    options.Logger,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "slidedeck",
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	s.registerRoutes()

	p.OnChange(s.hub.Broadcast)
	return s
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Hub returns the websocket hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// ListenAndServe listens on the configured address and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.options.Addr)
	if err != nil {
		return slidedeck.NewInfrastructureError("listen_remote", err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done. The hub runs for the same span.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	hubCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.hub.Run(hubCtx)

	s.logger.Info("Remote control listening", "addr", ln.Addr().String())

	errc := make(chan error, 1)
	go func() { errc <- s.app.Listener(ln) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownWait)
	defer stop()
	if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
		return err
	}
	return <-errc
}

func (s *Server) registerRoutes() {
	api := s.app.Group("/api")
	api.Get("/deck", s.getDeck)
	api.Post("/next", s.postNext)
	api.Post("/previous", s.postPrevious)
	api.Post("/slides/:n", s.postSlide)

	s.app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	s.app.Get("/ws", websocket.New(s.serveWS))
}

func (s *Server) getDeck(c *fiber.Ctx) error {
	return s.respond(c, nil)
}

func (s *Server) postNext(c *fiber.Ctx) error {
	return s.respond(c, func() { s.presenter.Next() })
}

func (s *Server) postPrevious(c *fiber.Ctx) error {
	return s.respond(c, func() { s.presenter.Previous() })
}

// postSlide jumps to a slide. Out-of-range targets leave the position alone
// and still answer with the current snapshot.
func (s *Server) postSlide(c *fiber.Ctx) error {
	n, err := c.ParamsInt("n")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid slide number")
	}
	return s.respond(c, func() { s.presenter.GoToSlide(n) })
}

func (s *Server) respond(c *fiber.Ctx, action func()) error {
	snap, err := s.do(c.UserContext(), action)
	if err != nil {
		s.logger.Warn("Remote request not served", "path", c.Path(), "error", err)
		return fiber.NewError(fiber.StatusServiceUnavailable, "presentation unavailable")
	}
	return c.JSON(snap)
}

// do runs action on the event loop and returns the snapshot taken right after it.
func (s *Server) do(ctx context.Context, action func()) (slidedeck.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.options.Timeout)
	defer cancel()

	out := make(chan slidedeck.Snapshot, 1)
	err := s.loop.Call(ctx, func() {
		if action != nil {
			action()
		}
		out <- s.presenter.Snapshot()
	})
	if err != nil {
		return slidedeck.Snapshot{}, err
	}
	return <-out, nil
}

func (s *Server) serveWS(conn *websocket.Conn) {
	client := newClient(s.hub, conn)

	snap, err := s.do(context.Background(), nil)
	if err != nil {
		s.logger.Warn("Remote client rejected", "addr", client.addr, "error", err)
		_ = conn.Close()
		return
	}
	if data, err := encode(Message{Type: "snapshot", Data: &snap}); err == nil {
		client.send <- data
	}

	if !s.hub.join(client) {
		_ = conn.Close()
		return
	}

	// The connection is pooled by the upgrader once this handler returns, so
	// the writer must be finished with it first.
	written := make(chan struct{})
	go func() {
		client.writePump()
		close(written)
	}()
	client.readPump(s.handleCommand)
	<-written
}

// handleCommand applies one websocket command. A transition is announced by
// the broadcast, so only no-op commands and errors get a direct reply.
func (s *Server) handleCommand(text string) (Message, bool) {
	cmd, err := ParseCommand(text)
	if err != nil {
		return Message{Type: "error", Error: err.Error()}, true
	}

	var changed bool
	snap, err := s.do(context.Background(), func() { changed = cmd.Apply(s.presenter) })
	if err != nil {
		return Message{Type: "error", Error: "presentation unavailable"}, true
	}
	if changed {
		return Message{}, false
	}
	return Message{Type: "snapshot", Data: &snap}, true
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
