package interp

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokFloat
	tokString
	tokAssign
	tokLParen
	tokRParen
	tokLBrace
	tokRBrace
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokEq
	tokNe
	tokLt
	tokLe
	tokGt
	tokGe
	tokWhile
	tokIf
	tokElse
	tokNot
	tokTrue
	tokFalse
	tokPrint
	tokInput
)

type token struct {
	kind tokenKind
	text string
	line int
}

var keywords = map[string]tokenKind{
	"while": tokWhile,
	"if":    tokIf,
	"else":  tokElse,
	"not":   tokNot,
	"true":  tokTrue,
	"false": tokFalse,
	"print": tokPrint,
	"input": tokInput,
}

func lex(src string) ([]token, error) {
	var toks []token
	line := 1
	runes := []rune(src)
	i := 0
	emit := func(kind tokenKind, text string) {
		toks = append(toks, token{kind: kind, text: text, line: line})
	}
	for i < len(runes) {
		ch := runes[i]
		switch {
		case ch == '\n':
			line++
			i++
		case unicode.IsSpace(ch):
			i++
		case unicode.IsLetter(ch) || ch == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			word := string(runes[start:i])
			if kind, ok := keywords[word]; ok {
				emit(kind, word)
			} else {
				emit(tokIdent, word)
			}
		case unicode.IsDigit(ch):
			start := i
			isFloat := false
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				if runes[i] == '.' {
					if isFloat {
						return nil, fmt.Errorf("line %d: malformed number", line)
					}
					isFloat = true
				}
				i++
			}
			if isFloat {
				emit(tokFloat, string(runes[start:i]))
			} else {
				emit(tokInt, string(runes[start:i]))
			}
		case ch == '"':
			i++
			var sb strings.Builder
			for i < len(runes) && runes[i] != '"' {
				if runes[i] == '\n' {
					return nil, fmt.Errorf("line %d: unterminated string", line)
				}
				sb.WriteRune(runes[i])
				i++
			}
			if i >= len(runes) {
				return nil, fmt.Errorf("line %d: unterminated string", line)
			}
			i++
			emit(tokString, sb.String())
		case ch == ':':
			if i+1 < len(runes) && runes[i+1] == '=' {
				emit(tokAssign, ":=")
				i += 2
			} else {
				return nil, fmt.Errorf("line %d: unexpected %q", line, ch)
			}
		case ch == '=':
			if i+1 < len(runes) && runes[i+1] == '=' {
				emit(tokEq, "==")
				i += 2
			} else {
				return nil, fmt.Errorf("line %d: unexpected %q", line, ch)
			}
		case ch == '!':
			if i+1 < len(runes) && runes[i+1] == '=' {
				emit(tokNe, "!=")
				i += 2
			} else {
				return nil, fmt.Errorf("line %d: unexpected %q", line, ch)
			}
		case ch == '<':
			if i+1 < len(runes) && runes[i+1] == '=' {
				emit(tokLe, "<=")
				i += 2
			} else {
				emit(tokLt, "<")
				i++
			}
		case ch == '>':
			if i+1 < len(runes) && runes[i+1] == '=' {
				emit(tokGe, ">=")
				i += 2
			} else {
				emit(tokGt, ">")
				i++
			}
		case ch == '(':
			emit(tokLParen, "(")
			i++
		case ch == ')':
			emit(tokRParen, ")")
			i++
		case ch == '{':
			emit(tokLBrace, "{")
			i++
		case ch == '}':
			emit(tokRBrace, "}")
			i++
		case ch == '+':
			emit(tokPlus, "+")
			i++
		case ch == '-':
			emit(tokMinus, "-")
			i++
		case ch == '*':
			emit(tokStar, "*")
			i++
		case ch == '/':
			emit(tokSlash, "/")
			i++
		default:
			return nil, fmt.Errorf("line %d: unexpected %q", line, ch)
		}
	}
	toks = append(toks, token{kind: tokEOF, line: line})
	return toks, nil
}
