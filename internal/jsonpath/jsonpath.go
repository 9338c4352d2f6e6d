// Package jsonpath navega em valores JSON genéricos sem assumir que cada
// nível existe. Cada passo é conferido antes de descer; qualquer falha vira
// "ausente" em vez de panic ou valor zero.
package jsonpath

import (
	"fmt"
	"strings"

	simplejson "github.com/bitly/go-simplejson"
)

// Step é um passo do caminho: uma chave de objeto ou um índice de array.
type Step struct {
	key     string
	index   int
	isIndex bool
}

// Key cria um passo que acessa uma chave de objeto
func Key(k string) Step {
	return Step{key: k}
}

// Index cria um passo que acessa uma posição de array
func Index(i int) Step {
	return Step{index: i, isIndex: true}
}

func (s Step) String() string {
	if s.isIndex {
		return fmt.Sprintf("[%d]", s.index)
	}
	return "." + s.key
}

// Path é uma sequência de passos
type Path []Step

func (p Path) String() string {
	var b strings.Builder
	for _, s := range p {
		b.WriteString(s.String())
	}
	return b.String()
}

// Lookup segue o caminho a partir de root. O bool indica se todos os passos existiam.
func Lookup(root *simplejson.Json, path Path) (*simplejson.Json, bool) {
	if root == nil {
		return nil, false
	}

	cur := root
	for _, step := range path {
		if step.isIndex {
			arr, err := cur.Array()
			if err != nil || step.index < 0 || step.index >= len(arr) {
				return nil, false
			}
			cur = cur.GetIndex(step.index)
			continue
		}

		next, ok := cur.CheckGet(step.key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// LookupString é Lookup para folhas do tipo string.
// Uma folha que existe mas não é string conta como ausente.
func LookupString(root *simplejson.Json, path Path) (string, bool) {
	v, ok := Lookup(root, path)
	if !ok {
		return "", false
	}
	s, err := v.String()
	if err != nil {
		return "", false
	}
	return s, true
}
