package lexer

import (
	"github.com/funvibe/ppl/internal/pipeline"
	"github.com/funvibe/ppl/internal/token"
)

// TokenStream buffers tokens from a Lexer on demand.
type TokenStream struct {
	lexer  *Lexer
	buffer []token.Token
}

func NewTokenStream(l *Lexer) *TokenStream {
	return &TokenStream{lexer: l}
}

func (ts *TokenStream) fill(n int) {
	for len(ts.buffer) < n {
		ts.buffer = append(ts.buffer, ts.lexer.NextToken())
	}
}

// Next consumes one token
func (ts *TokenStream) Next() token.Token {
	ts.fill(1)
	tok := ts.buffer[0]
	ts.buffer = ts.buffer[1:]
	return tok
}

// Peek returns up to n upcoming tokens without consuming them. It stops after EOF.
func (ts *TokenStream) Peek(n int) []token.Token {
	for i := 0; i < n; i++ {
		ts.fill(i + 1)
		if ts.buffer[i].Type == token.EOF {
			return ts.buffer[:i+1]
		}
	}
	return ts.buffer[:n]
}

// LexerProcessor sets up the token stream of a pipeline context.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode, Options{
		LanguageVersion: ctx.LanguageVersion,
		Runtime:         ctx.Runtime,
		PackageVersion:  ctx.PackageVersion,
		Defines:         ctx.Defines,
		Errors:          &ctx.Errors,
		File:            ctx.FilePath,
	})
	ctx.TokenStream = NewTokenStream(l)
	return ctx
}

// Tokenize lexes the whole input, EOF included. Used by tooling and tests.
func Tokenize(input string, opts Options) []token.Token {
	l := New(input, opts)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}
