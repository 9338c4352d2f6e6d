package gemini

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/vitormoschetta/go-gemini-chat/internal/config"
)

// RESTClient faz o POST direto no endpoint generateContent
type RESTClient struct {
	endpoint   string
	httpClient *http.Client
	logger     *log.Logger
}

// NewRESTClient cria o cliente a partir da configuração.
// Falhas aqui são *InitError.
func NewRESTClient(cfg *config.Config, logger *log.Logger) (*RESTClient, error) {
	httpClient, err := NewHTTPClient(cfg.CABundlePath, cfg.Timeout())
	if err != nil {
		return nil, err
	}

	logger = orDiscard(logger)
	return &RESTClient{
		endpoint:   cfg.EndpointURL,
		httpClient: WithAPIKey(httpClient, cfg.APIKey, logger),
		logger:     logger,
	}, nil
}

// Send envia o payload e devolve o corpo completo da resposta, qualquer que seja o status.
// Erros retornados são sempre de transporte (rede, TLS, timeout).
func (c *RESTClient) Send(ctx context.Context, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Printf("Gemini response: status=%d bytes=%d", resp.StatusCode, len(body))
	return body, nil
}
