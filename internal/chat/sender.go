package chat

import (
	"context"
	"fmt"
	"log"

	"github.com/vitormoschetta/go-gemini-chat/internal/config"
	"github.com/vitormoschetta/go-gemini-chat/internal/gemini"
)

// NewSender escolhe a implementação conforme cfg.Backend.
// Erros de construção do cliente HTTP chegam como *gemini.InitError.
func NewSender(ctx context.Context, cfg *config.Config, logger *log.Logger) (Sender, error) {
	switch cfg.Backend {
	case config.BackendREST, "":
		client, err := gemini.NewRESTClient(cfg, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.BackendADK:
		client, err := gemini.NewADKClient(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
