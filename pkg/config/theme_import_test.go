package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestImportTheme_Base16(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "base16.yaml")
	data := `
scheme: "base16-test"
base00: '181818'
base01: '282828'
base02: '383838'
base03: '585858'
base04: 'b8b8b8'
base05: 'd8d8d8'
base06: 'e8e8e8'
base07: 'f8f8f8'
base08: 'ab4642'
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	th, err := ImportTheme(path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if th.TextForeground == th.TextBackground {
		t.Fatalf("expected fg != bg")
	}
	if th.TextBackground != tcell.GetColor("#181818") {
		t.Fatalf("expected base00 background, got %v", th.TextBackground)
	}
	if th.GutterScrolledBackground != tcell.GetColor("#ab4642") {
		t.Fatalf("expected base08 scrolled gutter, got %v", th.GutterScrolledBackground)
	}
}

func TestImportTheme_Alacritty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "alacritty.yml")
	data := `
colors:
  primary:
    background: '0x1d1f21'
    foreground: '0xc5c8c6'
  normal:
    black: '0x282a2e'
    red: '0xa54242'
    white: '0x707880'
  bright:
    black: '0x373b41'
    white: '0xc5c8c6'
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	th, err := ImportTheme(path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if th.TextBackground != tcell.GetColor("#1d1f21") {
		t.Fatalf("expected primary background, got %v", th.TextBackground)
	}
	if th.GutterScrolledBackground != tcell.GetColor("#a54242") {
		t.Fatalf("expected normal red scrolled gutter, got %v", th.GutterScrolledBackground)
	}
}

func TestImportTheme_Unknown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.yaml")
	if err := os.WriteFile(path, []byte("foo: bar\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ImportTheme(path); err == nil {
		t.Fatalf("expected error for unrecognized theme")
	}
}
