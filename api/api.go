package api

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/skillconnect/skillconnect/views"
)

// APIServer wraps the Fiber app and its listen address
type APIServer struct {
	app           *fiber.App
	listenAddress string
}

// NewAPIServer creates the server with the embedded views engine attached
func NewAPIServer(listenAddress string) *APIServer {
	return &APIServer{
		app:           NewFiberApp(),
		listenAddress: listenAddress,
	}
}

// NewFiberApp builds a Fiber app wired to the embedded template engine.
// Exported so render tests can exercise the real views.
func NewFiberApp() *fiber.App {
	engine := html.NewFileSystem(http.FS(views.FS), ".html")

	engine.AddFunc("lower", strings.ToLower)
	engine.AddFunc("initial", func(name string) string {
		if name == "" {
			return "?"
		}
		return strings.ToUpper(name[:1])
	})
	engine.AddFunc("replace", func(s, old, new string) string {
		return strings.ReplaceAll(s, old, new)
	})
	engine.AddFunc("datefmt", func(t time.Time) string {
		return t.Format("Jan 2, 2006")
	})
	engine.AddFunc("truncate", func(s string, n int) string {
		runes := []rune(s)
		if len(runes) <= n {
			return s
		}
		return string(runes[:n])
	})

	return fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})
}

// GetEngine returns the underlying Fiber app
func (s *APIServer) GetEngine() *fiber.App {
	return s.app
}

// Run starts listening
func (s *APIServer) Run() error {
	log.Println("Starting server")
	log.Printf("Listening on %s\n", s.listenAddress)

	return s.app.Listen(s.listenAddress)
}
