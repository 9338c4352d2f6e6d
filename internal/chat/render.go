package chat

import (
	"errors"
	"fmt"

	simplejson "github.com/bitly/go-simplejson"
	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	modelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
)

func (l *Loop) printBanner() {
	fmt.Fprintln(l.out, bannerStyle.Render("=== Gemini Chat ==="))
	fmt.Fprint(l.out, "Type 'exit' to quit.\n\n")
}

func (l *Loop) printPrompt() {
	fmt.Fprint(l.out, promptStyle.Render("You:")+" ")
}

func (l *Loop) printReply(reply string) {
	fmt.Fprintf(l.out, "\n%s\n%s\n\n", modelStyle.Render("Gemini:"), reply)
}

// report escreve a falha do turno: erros no errOut, o dump de fallback no out.
func (l *Loop) report(err error) {
	var (
		transportErr *TransportError
		parseErr     *ParseError
		apiErr       *APIError
		miss         *ExtractionMiss
	)

	switch {
	case errors.As(err, &transportErr):
		fmt.Fprintf(l.errOut, "%s %v\n", errorStyle.Render("Request failed:"), transportErr.Err)
	case errors.As(err, &parseErr):
		fmt.Fprintf(l.errOut, "%s %v\n", errorStyle.Render("JSON parse error:"), parseErr.Err)
		fmt.Fprintf(l.errOut, "Raw response:\n%s\n", parseErr.Body)
	case errors.As(err, &apiErr):
		fmt.Fprintf(l.errOut, "%s %s\n", errorStyle.Render("API error:"), pretty(apiErr.Object))
	case errors.As(err, &miss):
		fmt.Fprintln(l.out, noticeStyle.Render("Could not find model text; raw response:"))
		fmt.Fprintln(l.out, pretty(miss.Response))
	default:
		fmt.Fprintf(l.errOut, "%s %v\n", errorStyle.Render("Error:"), err)
	}
}

// pretty serializa com indentação de 2 espaços
func pretty(v *simplejson.Json) string {
	out, err := v.EncodePretty()
	if err != nil {
		return fmt.Sprintf("%v", v.Interface())
	}
	return string(out)
}
