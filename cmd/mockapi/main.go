package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/vitormoschetta/go-gemini-chat/internal/config"
	"github.com/vitormoschetta/go-gemini-chat/internal/handler"
	"github.com/vitormoschetta/go-gemini-chat/internal/server"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Criar servidor
	srv := server.NewServer(cfg)

	// Criar handlers
	h := handler.NewHandler(srv)

	// Configurar rotas com os handlers
	srv.SetupRouter(h.HandleRoot, h.HandleHealth, h.HandleGenerate)

	// Iniciar servidor
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
