package lexer

import (
	"strings"
	"testing"

	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/token"
)

// identifiers returns the names of all IDENT tokens, which is what survives conditional compilation
func identifiers(tokens []token.Token) string {
	var names []string
	for _, tok := range tokens {
		if tok.Type == token.IDENT {
			names = append(names, tok.Lexeme)
		}
	}
	return strings.Join(names, " ")
}

func TestConditionalCompilation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		defines []string
		want    string
	}{
		{
			name:  "if false skips",
			input: "; $IF DEBUG\nA\n; $ENDIF\nB",
			want:  "B",
		},
		{
			name:    "if defined keeps",
			input:   "; $IF DEBUG\nA\n; $ENDIF\nB",
			defines: []string{"DEBUG"},
			want:    "A B",
		},
		{
			name:  "else branch",
			input: "; $IF DEBUG\nA\n; $ELSE\nC\n; $ENDIF\nB",
			want:  "C B",
		},
		{
			name:  "elseif chain",
			input: "; $IF LANGVERSION < 300\nA\n; $ELSEIF LANGVERSION >= 350\nC\n; $ELSE\nD\n; $ENDIF",
			want:  "C",
		},
		{
			name:  "nested if inside skipped region",
			input: "; $IF DEBUG\n; $IF 1\nA\n; $ELSE\nX\n; $ENDIF\n; $ELSE\nC\n; $ENDIF",
			want:  "C",
		},
		{
			name:  "define in source",
			input: "; $DEFINE LEVEL = 2 + 1\n; $IF LEVEL == 3\nA\n; $ENDIF",
			want:  "A",
		},
		{
			name:    "define with value from options",
			input:   "; $IF MODE = 1 & DEBUG\nA\n; $ENDIF",
			defines: []string{"MODE=1", "DEBUG"},
			want:    "A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errs []*diagnostics.DiagnosticError
			tokens := Tokenize(tt.input, Options{LanguageVersion: 400, Defines: tt.defines, Errors: &errs})
			if len(errs) > 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if got := identifiers(tokens); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSkippedRegionIsOneComment(t *testing.T) {
	tokens := Tokenize("; $IF 0\nA = 1\nB = 2\n; $ENDIF\n", Options{LanguageVersion: 400})
	var blocks []token.Comment
	for _, tok := range tokens {
		if c, ok := tok.Literal.(token.Comment); ok && c.Kind == token.CommentBlock {
			blocks = append(blocks, c)
		}
	}
	if len(blocks) != 1 || blocks[0].Text != "A = 1\nB = 2" {
		t.Errorf("blocks = %#v", blocks)
	}
}

func TestPreprocessorErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diagnostics.ErrorCode
	}{
		{"; $ELSE", diagnostics.ErrL006},
		{"; $ELSEIF 1", diagnostics.ErrL007},
		{"; $ENDIF", diagnostics.ErrL013},
		{"; $IF 1\nA", diagnostics.ErrL008},
		{"; $DEFINE X\n; $DEFINE X", diagnostics.ErrL009},
		{"; $DEFINE X = \"str\"", diagnostics.ErrL010},
	}
	for _, tt := range tests {
		var errs []*diagnostics.DiagnosticError
		Tokenize(tt.input, Options{LanguageVersion: 400, Errors: &errs})
		if len(errs) != 1 || errs[0].Code != tt.code {
			t.Errorf("%q: errors = %v, want %s", tt.input, errs, tt.code)
		}
	}
}

func TestDefineReference(t *testing.T) {
	tokens := Tokenize("PRINT ;#LANGVERSION\n", Options{LanguageVersion: 350})
	if tokens[1].Type != token.CONST {
		t.Fatalf("tokens = %v", tokens)
	}
	if c := tokens[1].Literal.(token.Constant); c.Int != 350 {
		t.Errorf("LANGVERSION = %v", c)
	}
}

func TestUseFuncs(t *testing.T) {
	tokens := Tokenize("; $USEFUNCS\n", Options{LanguageVersion: 400})
	if tokens[0].Type != token.USEFUNCS {
		t.Errorf("tokens = %v", tokens)
	}
}
