package config

import (
	"os"
	"reflect"
	"testing"
)

func setRequired(t *testing.T) {
	t.Setenv("BOT_TOKEN", "tg-token")
	t.Setenv("FIREBASE_PROJECT_ID", "accelmail-test")
	t.Setenv("STORAGE_BUCKET", "accelmail-test.appspot.com")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/accelmail")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppID != "default-app-id" {
		t.Fatalf("app id = %q, want default-app-id", cfg.AppID)
	}
	if cfg.RedisAddr != "redis:6379" {
		t.Fatalf("redis addr = %q", cfg.RedisAddr)
	}
	if cfg.RedisDB != 0 {
		t.Fatalf("redis db = %d", cfg.RedisDB)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	// t.Setenv registers the restore; required triggers only on unset vars.
	t.Setenv("BOT_TOKEN", "placeholder")
	os.Unsetenv("BOT_TOKEN")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error without BOT_TOKEN")
	}
}

func TestAdminIDs(t *testing.T) {
	setRequired(t)
	t.Setenv("ADMIN_IDS", "7,42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(cfg.AdminIDs, []int64{7, 42}) {
		t.Fatalf("admin ids = %v", cfg.AdminIDs)
	}

	set := cfg.AdminSet()
	if _, ok := set[42]; !ok {
		t.Fatalf("admin set = %v", set)
	}
	if _, ok := set[99]; ok {
		t.Fatalf("admin set contains an unlisted id: %v", set)
	}
}
