package host

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/vm"
)

func newConsole(t *testing.T, input string, opts ...Option) (*Console, *strings.Builder) {
	t.Helper()
	out := &strings.Builder{}
	opts = append([]Option{WithStreams(strings.NewReader(input), out), WithDir(t.TempDir())}, opts...)
	return NewConsole(context.Background(), opts...), out
}

func writeScript(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runFile(t *testing.T, c *Console, path string, registry *executable.TypeRegistry) error {
	t.Helper()
	exe, diags, err := LoadScript(path, registry)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(diags) > 0 {
		t.Fatalf("compile: %v", diags)
	}
	return vm.New(exe, c, vm.WithRegistry(registry)).Run(context.Background())
}

func TestRenderCodes(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		color bool
		want  string
	}{
		{"plain", "HELLO", true, "HELLO"},
		{"stripped", "@X0FHI@X07", false, "HI"},
		{"bright white on black", "@X0FHI", true, "\x1b[0;1;37;40mHI"},
		{"red on blue", "@x14X", true, "\x1b[0;22;31;44mX"},
		{"clear screen", "@CLS@A", true, "\x1b[2J\x1b[HA"},
		{"not a code", "a@b.com", true, "a@b.com"},
		{"short", "@X1", true, "@X1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderCodes(tt.in, tt.color); got != tt.want {
				t.Errorf("renderCodes(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  vm.InputOptions
		want  string
	}{
		{"line", "hello\r\n", vm.InputOptions{}, "hello"},
		{"length", "abcdef\n", vm.InputOptions{Length: 3}, "abc"},
		{"valid", "a1b2\n", vm.InputOptions{Valid: vm.MaskNum}, "12"},
		{"default", "\n", vm.InputOptions{Default: "N"}, "N"},
		{"eof", "", vm.InputOptions{Default: "Y"}, "Y"},
		{"last line", "tail", vm.InputOptions{}, "tail"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newConsole(t, tt.input)
			got, err := c.Input("? ", tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if out.String() != "? " {
				t.Errorf("prompt = %q", out.String())
			}
		})
	}
}

func TestReadKeyFromPipe(t *testing.T) {
	c, _ := newConsole(t, "yé")
	var keys []string
	for i := 0; i < 3; i++ {
		k, err := c.ReadKey()
		if err != nil {
			t.Fatal(err)
		}
		keys = append(keys, k)
	}
	if strings.Join(keys, ",") != "y,é," {
		t.Errorf("keys = %q", keys)
	}
}

func TestResolvePath(t *testing.T) {
	c := NewConsole(context.Background(), WithDir("/bbs/ppe"))
	if got := c.ResolvePath(`DATA\NEWS.TXT`); got != filepath.Join("/bbs/ppe", "DATA", "NEWS.TXT") {
		t.Errorf("got %q", got)
	}
	if got := c.ResolvePath("/tmp/x"); got != "/tmp/x" {
		t.Errorf("got %q", got)
	}
}

func TestRunScriptCallsNestedScript(t *testing.T) {
	c, out := newConsole(t, "")
	writeScript(t, c.dir, "inner.pps", "PRINT \"IN\"\nSTOP\n")
	main := writeScript(t, c.dir, "main.pps", "PRINT \"A\"\nCALL \"inner.pps\"\nPRINT \"B\"\n")

	if err := runFile(t, c, main, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := out.String(); got != "AINB" {
		t.Errorf("output = %q, want AINB", got)
	}
}

func TestRunScriptMissing(t *testing.T) {
	c, _ := newConsole(t, "")
	err := c.RunScript(filepath.Join(c.dir, "missing.pps"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v, want fs.ErrNotExist", err)
	}
}

func TestRunScriptCompileError(t *testing.T) {
	c, _ := newConsole(t, "")
	writeScript(t, c.dir, "bad.pps", "GOTO NOWHERE\n")
	if err := c.RunScript(filepath.Join(c.dir, "bad.pps")); err == nil || !strings.Contains(err.Error(), "C003") {
		t.Errorf("got %v, want a C003 diagnostic", err)
	}
}

func TestRunScriptExecutable(t *testing.T) {
	c, out := newConsole(t, "")
	src := writeScript(t, c.dir, "hello.pps", "PRINTLN \"HELLO\"\n")
	exe, diags, err := LoadScript(src, nil)
	if err != nil || len(diags) > 0 {
		t.Fatalf("compile: %v %v", err, diags)
	}
	data, err := exe.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(c.dir, "HELLO.PPE"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := c.RunScript(c.ResolvePath("HELLO.PPE")); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out.String(), "HELLO") {
		t.Errorf("output = %q", out.String())
	}
}

func TestGetUserPutUser(t *testing.T) {
	store := openStore(t, "sysop")
	if err := store.SetField("U_CITY", executable.NewString("Berlin")); err != nil {
		t.Fatal(err)
	}
	c, out := newConsole(t, "", WithUserStore(store))
	path := writeScript(t, c.dir, "user.pps", "GETUSER\nPRINT U_CITY\nU_CITY = \"Rome\"\nU_SEC = 5\nPUTUSER\n")

	if err := runFile(t, c, path, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != "Berlin" {
		t.Errorf("output = %q", out.String())
	}
	fields, err := store.GetUser()
	if err != nil {
		t.Fatal(err)
	}
	if fields["U_CITY"].AsString() != "Rome" || fields["U_SEC"].AsInt() != 5 {
		t.Errorf("stored %v %v", fields["U_CITY"], fields["U_SEC"])
	}
}

func TestUserObject(t *testing.T) {
	reg := executable.NewTypeRegistry()
	if err := RegisterTypes(reg); err != nil {
		t.Fatal(err)
	}
	store := openStore(t, "sysop")
	c, out := newConsole(t, "", WithUserStore(store), WithRegistry(reg))
	path := writeScript(t, c.dir, "obj.pps",
		"USER U\nPRINT U.NAME, \"|\"\nU.CITY(\"Lima\")\nU.SEC(\"42\")\nPRINT U.CITY, U.SEC, \"|\", U.FIELD(\"U_CITY\")\n")

	if err := runFile(t, c, path, reg); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := out.String(); got != "SYSOP|Lima42|Lima" {
		t.Errorf("output = %q", got)
	}
	v, err := store.Field("U_SEC")
	if err != nil {
		t.Fatal(err)
	}
	if v.Type != executable.TypeInteger || v.AsInt() != 42 {
		t.Errorf("U_SEC = %v", v)
	}
}
