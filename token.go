package dock

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/shlex"
)

// TokenKind classifies a word of the raw input line.
type TokenKind int

const (
	// TokenProgram is the first word of the input, the invoked program name.
	TokenProgram TokenKind = iota
	// TokenCommand is a bare word, a candidate command name.
	TokenCommand
	// TokenShortFlag is a word that starts with exactly one dash, such as "-v" or "-".
	TokenShortFlag
	// TokenLongFlag is a word that starts with two dashes, such as "--verbose" or "--".
	TokenLongFlag
	// TokenString is a quoted group of words, such as "a b".
	TokenString
)

func (k TokenKind) String() string {
	switch k {
	case TokenProgram:
		return "Program"
	case TokenCommand:
		return "CommandName"
	case TokenShortFlag:
		return "ShortFlag"
	case TokenLongFlag:
		return "LongFlag"
	case TokenString:
		return "StringLiteral"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is one classified word of the raw input. Text holds the word with quotes removed.
type Token struct {
	Kind TokenKind
	Text string
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

var errNoProgram = errors.New("input is empty, no program name")

// Tokenize splits raw into words using shell quoting rules and classifies each of them. The first
// word is always a [TokenProgram]; the rest keep their input order. Classification is structural
// only, no command lookup happens here.
//
// An unterminated quote or an input without any word returns an [ErrTokenize] error.
func Tokenize(raw string) ([]Token, error) {
	words, err := shlex.Split(raw)
	if err != nil {
		return nil, NewError(ErrTokenize, err)
	}
	if len(words) == 0 {
		return nil, NewError(ErrTokenize, errNoProgram)
	}

	tokens := make([]Token, 0, len(words))
	tokens = append(tokens, Token{Kind: TokenProgram, Text: words[0]})
	for _, word := range words[1:] {
		tokens = append(tokens, Token{Kind: classify(word), Text: word})
	}
	return tokens, nil
}

// classify is order sensitive: a lone "-" is a short flag and a lone "--" a long flag.
func classify(word string) TokenKind {
	switch {
	case strings.HasPrefix(word, "-") && !strings.HasPrefix(word, "--"):
		return TokenShortFlag
	case strings.HasPrefix(word, "--"):
		return TokenLongFlag
	case strings.ContainsFunc(word, unicode.IsSpace):
		return TokenString
	default:
		return TokenCommand
	}
}

// firstCommand returns the first command-name token after the program name.
func firstCommand(tokens []Token) (string, bool) {
	for _, tok := range tokens {
		if tok.Kind == TokenCommand {
			return tok.Text, true
		}
	}
	return "", false
}
