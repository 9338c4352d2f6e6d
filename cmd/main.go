package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/vitormoschetta/go-gemini-chat/internal/chat"
	"github.com/vitormoschetta/go-gemini-chat/internal/config"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Logs de diagnóstico só com CHAT_DEBUG, para não misturar com a conversa
	logger := log.New(io.Discard, "", 0)
	if cfg.Debug {
		logger = log.New(os.Stderr, "[chat] ", log.LstdFlags)
	}

	// Sem signal.NotifyContext: Ctrl+C encerra o processo mesmo bloqueado na leitura do stdin
	ctx := context.Background()

	sender, err := chat.NewSender(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	logger.Printf("Backend %s, endpoint %s", cfg.Backend, cfg.EndpointURL)

	loop := chat.NewLoop(sender, os.Stdin, os.Stdout, os.Stderr, logger)
	if err := loop.Run(ctx); err != nil {
		log.Fatalf("Chat failed: %v", err)
	}
}
