package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vitormoschetta/go-gemini-chat/internal/config"
)

// Server é um servidor local que imita o endpoint generateContent da API Gemini.
// Serve para desenvolver e testar o chat sem rede nem API key real.
type Server struct {
	Addr   string
	Router chi.Router
}

// NewServer cria uma nova instância do servidor mock
func NewServer(cfg *config.Config) *Server {
	return &Server{
		Addr: cfg.MockAddr,
	}
}

// SetupRouter configura as rotas e middlewares do Chi
func (s *Server) SetupRouter(
	handleRoot http.HandlerFunc,
	handleHealth http.HandlerFunc,
	handleGenerate http.HandlerFunc,
) {
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Rotas
	r.Get("/", handleRoot)
	r.Get("/health", handleHealth)

	// O chi não separa "{model}:generateContent" dentro do mesmo segmento,
	// então o handler recebe "modelo:ação" inteiro e faz o split.
	r.Route("/v1beta/models", func(r chi.Router) {
		r.Post("/{modelAction}", handleGenerate)
	})

	s.Router = r
}

// Start sobe o servidor HTTP e bloqueia até o ctx ser cancelado (graceful shutdown).
func (s *Server) Start(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.Addr,
		Handler:      s.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)

	// Goroutine para iniciar o servidor
	go func() {
		log.Println("╔════════════════════════════════════════════════════╗")
		log.Println("║   Gemini API mock server                           ║")
		log.Println("╚════════════════════════════════════════════════════╝")
		log.Println("")
		log.Printf("🚀 Servidor HTTP iniciado em %s", s.Addr)
		log.Println("")
		log.Println("📌 Endpoints disponíveis:")
		log.Println("   • Info:      / (GET)")
		log.Println("   • Health:    /health (GET)")
		log.Println("   • Generate:  /v1beta/models/{model}:generateContent (POST)")
		log.Println("")
		log.Println("💡 Palavras-chave na última mensagem: #error, #html, #empty")
		log.Println("")
		log.Println("⚠️  Pressione Ctrl+C para parar o servidor")
		log.Println("")

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Aguardar sinal de interrupção ou falha do listener
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}
	log.Println("✅ Server stopped gracefully")
	return nil
}
