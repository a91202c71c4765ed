package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arcanaland/cardcollector/internal/view"
)

func TestMain(m *testing.M) {
	colorize.NoColor = true
	os.Exit(m.Run())
}

// resetFlags restores every flag to its default so package-level commands
// can be executed more than once.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the root command with args in an isolated XDG environment.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if os.Getenv("CARDCOLLECTOR_TEST_XDG") == "" {
		setupXDG(t)
	}

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	defer resetFlags(RootCmd)

	err := RootCmd.Execute()
	return out.String(), err
}

func setupXDG(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv("CARDCOLLECTOR_TEST_XDG", "1")
}

func TestShowDefaultTab(t *testing.T) {
	out, err := run(t, "show")
	if err != nil {
		t.Fatalf("show error: %v", err)
	}
	if !strings.Contains(out, "Моя коллекция") || !strings.Contains(out, "Морской Пират") {
		t.Errorf("default show is not the collection tab:\n%s", out)
	}
}

func TestShowNamedTabWithFlips(t *testing.T) {
	out, err := run(t, "show", "catalog", "--flip", "2", "-f", "5")
	if err != nil {
		t.Fatalf("show error: %v", err)
	}
	if !strings.Contains(out, "Каталог карт") {
		t.Error("catalog heading missing")
	}
	if got := strings.Count(out, "рубашкой вверх"); got != 2 {
		t.Errorf("flipped cards = %d, want 2", got)
	}
}

func TestShowErrors(t *testing.T) {
	if _, err := run(t, "show", "market"); err == nil || !strings.Contains(err.Error(), "unknown tab") {
		t.Errorf("show market error = %v", err)
	}
	if _, err := run(t, "show", "--flip", "42"); err == nil || !strings.Contains(err.Error(), "card not found") {
		t.Errorf("show --flip 42 error = %v", err)
	}
}

func TestCardsList(t *testing.T) {
	out, err := run(t, "cards", "ls")
	if err != nil {
		t.Fatalf("cards ls error: %v", err)
	}
	if lines := strings.Count(strings.TrimSpace(out), "\n") + 1; lines != 6 {
		t.Errorf("cards ls printed %d lines, want 6:\n%s", lines, out)
	}

	out, err = run(t, "cards", "ls", "--owned", "--rarity", "legendary")
	if err != nil {
		t.Fatalf("cards ls filter error: %v", err)
	}
	if !strings.Contains(out, "No cards match.") {
		t.Errorf("owned legendary cards listed:\n%s", out)
	}

	out, err = run(t, "cards", "ls", "-r", "rare")
	if err != nil {
		t.Fatalf("cards ls -r rare error: %v", err)
	}
	if !strings.Contains(out, "Мистический Страж") || !strings.Contains(out, "Лесной Эльф") || strings.Contains(out, "Огненный Дракон") {
		t.Errorf("rare filter output:\n%s", out)
	}

	if _, err := run(t, "cards", "ls", "--rarity", "mythic"); err == nil {
		t.Error("unknown rarity accepted")
	}
}

func TestCardsShow(t *testing.T) {
	out, err := run(t, "cards", "show", "2")
	if err != nil {
		t.Fatalf("cards show error: %v", err)
	}
	for _, want := range []string{"Огненный Дракон", "[Легенда]", "Не найдена"} {
		if !strings.Contains(out, want) {
			t.Errorf("cards show 2 missing %q", want)
		}
	}

	out, err = run(t, "cards", "show", "3", "--flip")
	if err != nil {
		t.Fatalf("cards show --flip error: %v", err)
	}
	if !strings.Contains(out, "рубашкой вверх") {
		t.Error("flipped card not shown face down")
	}

	if _, err := run(t, "cards", "show", "99"); err == nil {
		t.Error("cards show 99 returned nil error")
	}
	if _, err := run(t, "cards", "show", "dragon"); err == nil {
		t.Error("cards show dragon returned nil error")
	}
}

func TestRatingAndNews(t *testing.T) {
	out, err := run(t, "rating")
	if err != nil {
		t.Fatalf("rating error: %v", err)
	}
	if !strings.Contains(out, "DragonMaster") || !strings.Contains(out, "IceQueen") {
		t.Errorf("rating output:\n%s", out)
	}

	out, err = run(t, "news", "--category", "trade")
	if err != nil {
		t.Fatalf("news error: %v", err)
	}
	if !strings.Contains(out, "Успешная сделка: Огненный Дракон") || strings.Contains(out, "Турнир Легенд") {
		t.Errorf("news --category trade output:\n%s", out)
	}

	if _, err := run(t, "news", "-c", "promo"); err == nil {
		t.Error("unknown category accepted")
	}
}

func TestSnapshot(t *testing.T) {
	out, err := run(t, "snapshot", "--tab", "home", "--flip", "3", "--flip", "1", "--flip", "3", "--flip", "5")
	if err != nil {
		t.Fatalf("snapshot error: %v", err)
	}

	var snap view.Snapshot
	if _, err := toml.Decode(out, &snap); err != nil {
		t.Fatalf("decoding snapshot %q: %v", out, err)
	}
	if snap.ActiveTab != "home" {
		t.Errorf("active_tab = %q, want home", snap.ActiveTab)
	}
	if len(snap.Flipped) != 2 || snap.Flipped[0] != 1 || snap.Flipped[1] != 5 {
		t.Errorf("flipped = %v, want [1 5]", snap.Flipped)
	}
}

func TestSetDefaultTabChangesShow(t *testing.T) {
	setupXDG(t)

	out, err := run(t, "config", "set-default-tab", "news")
	if err != nil {
		t.Fatalf("set-default-tab error: %v", err)
	}
	if !strings.Contains(out, "Default tab set to: news") {
		t.Errorf("set-default-tab output: %q", out)
	}

	out, err = run(t, "snapshot")
	if err != nil {
		t.Fatalf("snapshot error: %v", err)
	}
	if !strings.Contains(out, `active_tab = "news"`) {
		t.Errorf("snapshot after set-default-tab:\n%s", out)
	}

	if _, err := run(t, "config", "set-default-tab", "market"); err == nil {
		t.Error("unknown default tab accepted")
	}
}

func TestConfigInit(t *testing.T) {
	setupXDG(t)

	out, err := run(t, "config", "init")
	if err != nil {
		t.Fatalf("config init error: %v", err)
	}
	artDir := filepath.Join(os.Getenv("XDG_DATA_HOME"), "cardcollector", "art")
	if !strings.Contains(out, artDir) {
		t.Errorf("config init output missing art dir %s:\n%s", artDir, out)
	}
	if info, err := os.Stat(artDir); err != nil || !info.IsDir() {
		t.Errorf("art dir not created: %v", err)
	}
}

func TestValidate(t *testing.T) {
	setupXDG(t)

	out, err := run(t, "validate")
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if !strings.Contains(out, "Card data is valid") {
		t.Errorf("validate output:\n%s", out)
	}
	if !strings.Contains(out, "does not exist") {
		t.Errorf("validate did not warn about the missing art library:\n%s", out)
	}
}
