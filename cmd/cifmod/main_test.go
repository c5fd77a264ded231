package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fractalqb/cifmod"
	"github.com/fractalqb/cifmod/cifio"
)

func TestLoadConfig(t *testing.T) {
	t.Run("toml", func(t *testing.T) {
		cfg, err := loadConfig("testdata/cifmod.toml")
		require.NoError(t, err)
		if cfg.Instructions != "a + 1; gamma / 2" || cfg.Suffix != "_toml" || cfg.Jobs != 4 {
			t.Errorf("wrong config %+v", cfg)
		}
		if cfg.Seed == nil || *cfg.Seed != 42 {
			t.Errorf("wrong seed %v", cfg.Seed)
		}
	})
	t.Run("yaml", func(t *testing.T) {
		cfg, err := loadConfig("testdata/cifmod.yaml")
		require.NoError(t, err)
		if cfg.Instructions != "a + 1\n45 -- beta -- 90\n" || cfg.Suffix != "_yaml" {
			t.Errorf("wrong config %+v", cfg)
		}
		if !cfg.NaturalPrecision || !cfg.Verbose || cfg.Seed != nil {
			t.Errorf("wrong flags %+v", cfg)
		}
	})
	t.Run("unknown format", func(t *testing.T) {
		if _, err := loadConfig("testdata/BaTiO3.cif"); err == nil {
			t.Error("no error for unknown format")
		}
	})
}

func TestInstructionText(t *testing.T) {
	name := filepath.Join(t.TempDir(), "instr.txt")
	require.NoError(t, os.WriteFile(name, []byte("a + 1\nb + 2\n"), 0644))
	text, err := instructionText(name)
	require.NoError(t, err)
	if text != "a + 1\nb + 2\n" {
		t.Errorf("wrong text from file: %q", text)
	}
	if text, _ = instructionText("a + 1"); text != "a + 1" {
		t.Errorf("wrong literal text: %q", text)
	}
}

func TestExamplesText(t *testing.T) {
	txt := examplesText()
	for _, f := range cifmod.Fields() {
		if !strings.Contains(txt, "`"+f.String()+"`") || !strings.Contains(txt, "`"+f.Alias()+"`") {
			t.Errorf("examples miss %s", f)
		}
	}
}

func TestApplyCommand(t *testing.T) {
	dir := t.TempDir()
	data, err := os.ReadFile("testdata/BaTiO3.cif")
	require.NoError(t, err)
	src := filepath.Join(dir, "BaTiO3.cif")
	require.NoError(t, os.WriteFile(src, data, 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"apply", "-c", dir, "-i", "gamma / 2; volume * 1", "--seed", "1"})
	require.NoError(t, rootCmd.Execute())

	txt, err := cifio.ReadFile(cifio.OutputPath(src, ""))
	require.NoError(t, err)
	if v, _ := cifmod.Lookup(txt.Lines, cifmod.AngleGamma); v != "45.00" {
		t.Errorf("gamma: expect 45.00, got %s", v)
	}
	if v, _ := cifmod.Lookup(txt.Lines, cifmod.Volume); v != "64.452" {
		t.Errorf("volume: expect 64.452, got %s", v)
	}

	out.Reset()
	rootCmd.SetArgs([]string{"show", src})
	require.NoError(t, rootCmd.Execute())
	if !strings.Contains(out.String(), "_cell_angle_gamma") || !strings.Contains(out.String(), "90.00") {
		t.Errorf("show output misses gamma:\n%s", out.String())
	}
}
