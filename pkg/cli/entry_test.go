package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/funvibe/ppl/internal/config"
	"github.com/funvibe/ppl/pkg/host"
)

// capture redirects the command streams for the duration of the test
func capture(t *testing.T, input string) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	oldIn, oldOut, oldErr := stdin, stdout, stderr
	stdin, stdout, stderr = strings.NewReader(input), &out, &errOut
	t.Cleanup(func() { stdin, stdout, stderr = oldIn, oldOut, oldErr })
	return &out, &errOut
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func defaultOptions() *options {
	return &options{user: DefaultUser}
}

func TestParseOptions(t *testing.T) {
	opts, rest, err := parseOptions([]string{"build", "-vv", "--lang", "340", "-DDEBUG", "-D", "trace", "src", "-o", "out.ppe", "--no-color"})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(rest, []string{"build", "src"}) {
		t.Errorf("rest = %v", rest)
	}
	if opts.verbosity != 2 || opts.language != 340 || opts.output != "out.ppe" || !opts.noColor {
		t.Errorf("opts = %+v", opts)
	}
	if !reflect.DeepEqual(opts.defines, []string{"DEBUG", "TRACE"}) {
		t.Errorf("defines = %v", opts.defines)
	}
}

func TestParseOptionsErrors(t *testing.T) {
	tests := [][]string{
		{"build", "--lang", "123"},
		{"build", "--runtime"},
		{"build", "--frobnicate"},
	}
	for _, args := range tests {
		if _, _, err := parseOptions(args); err == nil {
			t.Errorf("parseOptions(%v) succeeded", args)
		}
	}
}

func TestHelpAndVersionPassThrough(t *testing.T) {
	_, rest, err := parseOptions([]string{"--version"})
	if err != nil || len(rest) != 1 {
		t.Fatalf("rest = %v, err = %v", rest, err)
	}
	out, _ := capture(t, "")
	if !handleVersion(rest[0]) {
		t.Fatal("--version not handled")
	}
	if !strings.HasPrefix(out.String(), "ppl "+config.Version) {
		t.Errorf("version output %q", out.String())
	}
}

func TestNewAndBuildWorkspace(t *testing.T) {
	out, _ := capture(t, "")
	dir := filepath.Join(t.TempDir(), "demo")
	if err := newWorkspace(dir); err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := newWorkspace(dir); err == nil {
		t.Error("second new succeeded")
	}
	writeFile(t, filepath.Join(dir, "src", "menu.pps"), "PRINTLN \"MENU\"\n")
	writeFile(t, filepath.Join(dir, "ppl.toml"), `[package]
name = "demo"
language_version = 340
runtime = 340

[data]
text_files = ["news.txt"]
`)
	writeFile(t, filepath.Join(dir, "news.txt"), "NEWS\r\n")

	if err := build([]string{dir}, defaultOptions()); err != nil {
		t.Fatalf("build: %v", err)
	}
	target := filepath.Join(dir, "target", config.TargetDir(340))
	for _, name := range []string{"main.ppe", "menu.ppe", "news.txt"} {
		if _, err := os.Stat(filepath.Join(target, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if !strings.Contains(out.String(), "Built 2 scripts") {
		t.Errorf("output = %q", out.String())
	}
}

func TestBuildReportsDiagnostics(t *testing.T) {
	capture(t, "")
	path := writeFile(t, filepath.Join(t.TempDir(), "bad.pps"), "GOTO NOWHERE\n")
	err := build([]string{path}, defaultOptions())
	var diags diagnosticsError
	if !errors.As(err, &diags) {
		t.Fatalf("got %v, want diagnostics", err)
	}
	if !strings.Contains(err.Error(), "Processing failed with errors:") || !strings.Contains(err.Error(), "C003") {
		t.Errorf("error text %q", err.Error())
	}
	if _, err := os.Stat(strings.TrimSuffix(path, ".pps") + ".ppe"); err == nil {
		t.Error("executable written for a failed build")
	}
}

func TestBuildAndRunExecutable(t *testing.T) {
	out, _ := capture(t, "")
	dir := t.TempDir()
	src := writeFile(t, filepath.Join(dir, "hello.pps"), "INTEGER I\nFOR I = 1 TO 3\nPRINT I\nNEXT\n")
	if err := build([]string{src}, defaultOptions()); err != nil {
		t.Fatalf("build: %v", err)
	}
	out.Reset()

	if err := run(context.Background(), filepath.Join(dir, "hello.ppe"), defaultOptions()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != "123" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunSource(t *testing.T) {
	out, _ := capture(t, "Ada\n")
	src := writeFile(t, filepath.Join(t.TempDir(), "ask.pps"), "STRING N\nINPUT \"Name\", N\nPRINT \"|\", N\n")
	if err := run(context.Background(), src, defaultOptions()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasSuffix(out.String(), "|Ada") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunRuntimeError(t *testing.T) {
	capture(t, "")
	src := writeFile(t, filepath.Join(t.TempDir(), "div.pps"), "INTEGER A\nA = 1 / A\n")
	err := run(context.Background(), src, defaultOptions())
	if err == nil || !strings.Contains(err.Error(), "R001") {
		t.Errorf("got %v, want R001", err)
	}
}

func TestRunWithUserDatabase(t *testing.T) {
	capture(t, "")
	dir := t.TempDir()
	db := filepath.Join(dir, "users.db")
	src := writeFile(t, filepath.Join(dir, "user.pps"), "GETUSER\nU_CITY = \"Quito\"\nPUTUSER\n")
	opts := defaultOptions()
	opts.userDB = db
	opts.user = "guest"
	if err := run(context.Background(), src, opts); err != nil {
		t.Fatalf("run: %v", err)
	}

	store, err := host.OpenUserStore(db, "guest")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	v, err := store.Field("U_CITY")
	if err != nil {
		t.Fatal(err)
	}
	if v.AsString() != "Quito" {
		t.Errorf("U_CITY = %q", v.AsString())
	}
}

func TestDisassemble(t *testing.T) {
	out, _ := capture(t, "")
	src := writeFile(t, filepath.Join(t.TempDir(), "d.pps"), "INTEGER I\nI = I + 1\nPRINTLN I\n")
	opts := defaultOptions()
	opts.vars = true
	if err := disassemble(src, opts); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"; PPE 4.00", "LET I = (I + 1)", "PRINTLN"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output lacks %q:\n%s", want, out.String())
		}
	}
}

func TestFormat(t *testing.T) {
	out, _ := capture(t, "")
	path := writeFile(t, filepath.Join(t.TempDir(), "f.pps"), "integer i\nfor i = 1 to 2\nprintln i\nnext\n")
	if err := format([]string{path}, defaultOptions()); err != nil {
		t.Fatal(err)
	}
	want := "INTEGER i\nFOR i = 1 TO 2\n    PRINTLN i\nNEXT\n"
	if out.String() != want {
		t.Errorf("got\n%s\nwant\n%s", out.String(), want)
	}

	opts := defaultOptions()
	opts.write = true
	if err := format([]string{path}, opts); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != want {
		t.Errorf("rewritten file %q", data)
	}
}

func TestCheck(t *testing.T) {
	out, _ := capture(t, "")
	dir := t.TempDir()
	good := writeFile(t, filepath.Join(dir, "good.pps"), "PRINTLN 1\n")
	bad := writeFile(t, filepath.Join(dir, "bad.pps"), "PRINTLN (\n")

	if err := check([]string{good}, defaultOptions()); err != nil {
		t.Errorf("check good: %v", err)
	}
	if !strings.Contains(out.String(), "1 files ok") {
		t.Errorf("output = %q", out.String())
	}
	if err := check([]string{good, bad}, defaultOptions()); err == nil {
		t.Error("check bad succeeded")
	}
}
