package chat

import (
	"fmt"

	simplejson "github.com/bitly/go-simplejson"
)

// Falhas de um turno. Nenhuma encerra o loop; cada uma é reportada ao usuário.

// TransportError é uma falha de rede, TLS ou timeout
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError indica que o corpo da resposta não é JSON válido
type ParseError struct {
	Err  error
	Body []byte
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// APIError é uma resposta JSON válida com a chave "error"
type APIError struct {
	Object *simplejson.Json
}

func (e *APIError) Error() string {
	raw, err := e.Object.MarshalJSON()
	if err != nil {
		return "API error"
	}
	return "API error: " + string(raw)
}

// ExtractionMiss indica que o JSON não tem texto em candidates[0].content.parts[0].text
type ExtractionMiss struct {
	Response *simplejson.Json
}

func (e *ExtractionMiss) Error() string {
	return "no model text at " + ReplyPath.String()
}
