package common

import (
	"flag"
	"testing"

	"github.com/polisapp/copydesk/models"
	dbpkg "github.com/polisapp/copydesk/pkg/db"
	"github.com/urfave/cli/v2"
)

func testContext(t *testing.T) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("config", "", "")
	return cli.NewContext(nil, set, nil)
}

func TestLoadEngineConfigWithoutDatabase(t *testing.T) {
	cfg := LoadEngineConfig(testContext(t), NewLogger(true), nil)

	if cfg == nil {
		t.Fatal("nil config")
	}
	if cfg.TargetFor("statement").Target != 9 {
		t.Errorf("statement target = %f, want the built-in default 9",
			cfg.TargetFor("statement").Target)
	}
}

func TestLoadEngineConfigStoredSettings(t *testing.T) {
	database, err := dbpkg.OpenAt(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	stored := models.GradeTarget{Target: 6, Min: 5, Max: 7, Note: "stored"}
	if err := database.SaveSetting("statement", stored); err != nil {
		t.Fatalf("SaveSetting failed: %v", err)
	}

	cfg := LoadEngineConfig(testContext(t), NewLogger(true), database)

	got := cfg.TargetFor("statement")
	if got.Target != 6 || got.Note != "stored" {
		t.Errorf("statement target = %+v, want the stored override", got)
	}
	// Types without a stored row keep their defaults.
	if cfg.TargetFor("speech").Target != 8 {
		t.Errorf("speech target = %f, want the default 8", cfg.TargetFor("speech").Target)
	}
}
