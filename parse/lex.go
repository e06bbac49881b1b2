package parse

import (
	"strconv"
	"strings"
)

type kind int

const (
	eof kind = iota
	number
	name
	str
	op
	sep
)

type token struct {
	kind kind
	text string
	pos  int
	num  float64
}

// Longest operators first.
var operators = []string{
	"..-", "**", "<<", ">>", "<=", ">=", "==", "!=", "&&", "||", "^^", "??", "..",
	"+", "-", "*", "/", "%", "<", ">", "=", "!", "~", "&", "|", "^", "?", ":",
	"(", ")", ",", "@",
}

func isLetter(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// lex splits src into tokens. Newlines and semicolons outside of
// parentheses become statement separators.
func lex(src string) ([]token, error) {
	var toks []token
	depth := 0
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\n' || c == ';':
			if depth == 0 {
				toks = append(toks, token{kind: sep, text: string(c), pos: i})
			}
			i++
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case isDigit(c) || c == '.' && i+1 < len(src) && isDigit(src[i+1]):
			j := scanNumber(src, i)
			v, err := strconv.ParseFloat(src[i:j], 64)
			if err != nil {
				return nil, &Error{Src: src, Pos: i, Msg: "malformed number " + src[i:j]}
			}
			toks = append(toks, token{kind: number, text: src[i:j], pos: i, num: v})
			i = j
		case isLetter(c):
			j := i + 1
			for j < len(src) && (isLetter(src[j]) || isDigit(src[j])) {
				j++
			}
			toks = append(toks, token{kind: name, text: src[i:j], pos: i})
			i = j
		case c == '"' || c == '\'':
			j := i + 1
			for j < len(src) && src[j] != c {
				if src[j] == '\\' {
					j++
				}
				j++
			}
			if j >= len(src) {
				return nil, &Error{Src: src, Pos: i, Msg: "unterminated string"}
			}
			s := src[i+1 : j]
			if c == '"' {
				var err error
				if s, err = strconv.Unquote(src[i : j+1]); err != nil {
					return nil, &Error{Src: src, Pos: i, Msg: "malformed string"}
				}
			}
			toks = append(toks, token{kind: str, text: s, pos: i})
			i = j + 1
		default:
			o := matchOperator(src[i:])
			if o == "" {
				return nil, &Error{Src: src, Pos: i, Msg: "unexpected character " + strconv.QuoteRune(rune(c))}
			}
			switch o {
			case "(":
				depth++
			case ")":
				depth--
			case "^":
				o = "**"
			}
			toks = append(toks, token{kind: op, text: o, pos: i})
			i += len(matchOperator(src[i:]))
		}
	}
	return append(toks, token{kind: eof, pos: len(src)}), nil
}

func matchOperator(s string) string {
	for _, o := range operators {
		if strings.HasPrefix(s, o) {
			return o
		}
	}
	return ""
}

// scanNumber returns the end of the number starting at i. A dot followed
// by another dot belongs to the range operator and ends the number.
func scanNumber(src string, i int) int {
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	if i < len(src) && src[i] == '.' && !(i+1 < len(src) && src[i+1] == '.') {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
		}
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && isDigit(src[j]) {
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			i = j
		}
	}
	return i
}
