package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadToml(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, WorkspaceTomlFile), `
[package]
name = "door"
version = "1.0.0"
language_version = 350
authors = ["sysop"]

[compiler]
defines = ["DEBUG"]

[data]
text_files = ["help.txt"]
`)
	ws, err := Load(filepath.Join(dir, WorkspaceTomlFile))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ws.Package.Name != "door" || ws.Package.LanguageVersion != 350 {
		t.Errorf("unexpected package: %+v", ws.Package)
	}
	if ws.Package.Runtime != 350 {
		t.Errorf("runtime should default to language version, got %d", ws.Package.Runtime)
	}
	if len(ws.Compiler.Defines) != 1 || ws.Compiler.Defines[0] != "DEBUG" {
		t.Errorf("defines = %v", ws.Compiler.Defines)
	}
	if len(ws.Data.TextFiles) != 1 {
		t.Errorf("text files = %v", ws.Data.TextFiles)
	}
}

func TestLoadYaml(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, WorkspaceYamlFile), `
package:
  name: menu
  language_version: 300
  runtime: 330
`)
	ws, err := Load(filepath.Join(dir, WorkspaceYamlFile))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ws.Package.Runtime != 330 {
		t.Errorf("runtime = %d", ws.Package.Runtime)
	}
	if got := filepath.Base(ws.TargetPath(ws.Package.Runtime)); got != "pcboard_15.30" {
		t.Errorf("target dir = %s", got)
	}
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, WorkspaceTomlFile)
	writeFile(t, path, "[package]\nname = \"x\"\nlanguage_version = 123\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported version")
	}
}

func TestFindAndLoadWalksUp(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, WorkspaceTomlFile), "[package]\nname = \"up\"\n")
	nested := filepath.Join(dir, "src", "sub")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	ws, err := FindAndLoad(nested)
	if err != nil {
		t.Fatal(err)
	}
	if ws == nil || ws.Package.Name != "up" {
		t.Fatalf("workspace not found: %+v", ws)
	}
	if ws.Package.LanguageVersion != DefaultLanguageVersion {
		t.Errorf("default language version = %d", ws.Package.LanguageVersion)
	}
}

func TestSourceFilesMainFirst(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, WorkspaceTomlFile), "[package]\nname = \"x\"\n")
	writeFile(t, filepath.Join(dir, "src", "a.pps"), "")
	writeFile(t, filepath.Join(dir, "src", "main.pps"), "")
	writeFile(t, filepath.Join(dir, "src", "notes.txt"), "")
	ws, err := Load(filepath.Join(dir, WorkspaceTomlFile))
	if err != nil {
		t.Fatal(err)
	}
	files, err := ws.SourceFiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "main.pps" {
		t.Fatalf("files = %v", files)
	}
}

func TestTargetDir(t *testing.T) {
	cases := map[int]string{100: "pcboard_15.0", 340: "pcboard_15.40", 350: "icboard", 400: "icboard"}
	for v, want := range cases {
		if got := TargetDir(v); got != want {
			t.Errorf("TargetDir(%d) = %s, want %s", v, got, want)
		}
	}
}
