package chat

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	simplejson "github.com/bitly/go-simplejson"

	"github.com/vitormoschetta/go-gemini-chat/internal/jsonpath"
	"github.com/vitormoschetta/go-gemini-chat/internal/model"
	"github.com/vitormoschetta/go-gemini-chat/internal/service"
)

// ExitSentinel encerra o loop quando digitado sozinho na linha
const ExitSentinel = "exit"

// ReplyPath é onde fica o texto da resposta no JSON do generateContent
var ReplyPath = jsonpath.Path{
	jsonpath.Key("candidates"), jsonpath.Index(0),
	jsonpath.Key("content"),
	jsonpath.Key("parts"), jsonpath.Index(0),
	jsonpath.Key("text"),
}

// Sender envia o payload serializado e devolve o corpo bruto da resposta.
// Um erro retornado é sempre tratado como falha de transporte.
type Sender interface {
	Send(ctx context.Context, payload []byte) ([]byte, error)
}

// Loop é o chat de linha de comando: lê uma linha, envia o histórico inteiro e imprime a resposta.
type Loop struct {
	sender       Sender
	conversation *service.Conversation
	in           *bufio.Reader
	out          io.Writer
	errOut       io.Writer
	logger       *log.Logger
}

// NewLoop cria o loop com uma conversa nova
func NewLoop(sender Sender, in io.Reader, out, errOut io.Writer, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Loop{
		sender:       sender,
		conversation: service.NewConversation(),
		in:           bufio.NewReader(in),
		out:          out,
		errOut:       errOut,
		logger:       logger,
	}
}

// History devolve as mensagens acumuladas até agora
func (l *Loop) History() []model.Message {
	return l.conversation.Messages()
}

// Run executa até o usuário digitar "exit" ou a entrada acabar.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Printf("Conversation %s started", l.conversation.ID)
	l.printBanner()

	for {
		l.printPrompt()

		line, err := l.in.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				// sem newline antes do "Chat ended."
				fmt.Fprintln(l.out)
				break
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		input := strings.TrimRight(line, "\r\n")
		if input == ExitSentinel {
			break
		}

		reply, err := l.Turn(ctx, input)
		if err != nil {
			l.logger.Printf("Conversation %s: turn failed: %v", l.conversation.ID, err)
			l.report(err)
			continue
		}
		l.printReply(reply)
	}

	l.logger.Printf("Conversation %s ended with %d messages", l.conversation.ID, l.conversation.Len())
	fmt.Fprintln(l.out, "Chat ended.")
	return nil
}

// Turn executa um turno completo para input.
// A mensagem do usuário fica no histórico mesmo quando o turno falha,
// e será reenviada no próximo turno. A resposta só entra no histórico
// quando o texto é extraído com sucesso.
func (l *Loop) Turn(ctx context.Context, input string) (string, error) {
	l.conversation.Append(model.RoleUser, input)

	payload, err := json.Marshal(model.NewRequest(l.conversation.Messages()))
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	body, err := l.sender.Send(ctx, payload)
	if err != nil {
		return "", &TransportError{Err: err}
	}

	root, err := parseBody(body)
	if err != nil {
		return "", &ParseError{Err: err, Body: body}
	}

	if errObj, ok := root.CheckGet("error"); ok {
		return "", &APIError{Object: errObj}
	}

	reply, ok := jsonpath.LookupString(root, ReplyPath)
	if !ok || reply == "" {
		return "", &ExtractionMiss{Response: root}
	}

	l.conversation.Append(model.RoleModel, reply)
	return reply, nil
}

// parseBody exige um único valor JSON; o decoder do simplejson ignora lixo depois do primeiro.
func parseBody(body []byte) (*simplejson.Json, error) {
	root, err := simplejson.NewJson(body)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, errors.New("unexpected data after top-level JSON value")
	}
	return root, nil
}
