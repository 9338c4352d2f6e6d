package gemini

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// InitError indica que o cliente HTTP não pôde ser construído.
// É o único erro fatal do chat.
type InitError struct {
	Op  string
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("http client init: %s: %v", e.Op, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// APIKeyTransport adiciona a API key como parâmetro "key" da query
type APIKeyTransport struct {
	Base   http.RoundTripper
	APIKey string
	Logger *log.Logger
}

func (t *APIKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clonar a requisição para não modificar a original
	reqCopy := req.Clone(req.Context())

	if t.APIKey != "" {
		q := reqCopy.URL.Query()
		q.Set("key", t.APIKey)
		reqCopy.URL.RawQuery = q.Encode()
	}

	// A URL original não carrega a key, então pode ir para o log
	if t.Logger != nil {
		t.Logger.Printf("Gemini request: %s %s (with key)", req.Method, req.URL)
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(reqCopy)
}

// NewHTTPClient cria o cliente HTTP com timeout fixo. Com caBundlePath
// preenchido, só os certificados do bundle são aceitos; vazio usa as raízes do sistema.
func NewHTTPClient(caBundlePath string, timeout time.Duration) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if caBundlePath != "" {
		pool, err := loadCertPool(caBundlePath)
		if err != nil {
			return nil, err
		}
		transport.TLSClientConfig = &tls.Config{
			RootCAs:    pool,
			MinVersion: tls.VersionTLS12,
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}, nil
}

// WithAPIKey devolve uma cópia do cliente que envia a key em toda requisição
func WithAPIKey(c *http.Client, apiKey string, logger *log.Logger) *http.Client {
	withKey := *c
	withKey.Transport = &APIKeyTransport{
		Base:   c.Transport,
		APIKey: apiKey,
		Logger: logger,
	}
	return &withKey
}

func loadCertPool(path string) (*x509.CertPool, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, &InitError{Op: "read CA bundle", Err: err}
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pemBytes) {
		return nil, &InitError{Op: "parse CA bundle", Err: fmt.Errorf("no certificates found in %s", path)}
	}
	return pool, nil
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return logger
}
