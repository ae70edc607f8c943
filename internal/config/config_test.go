package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("CONSOLE_USERNAME")
	os.Unsetenv("CONSOLE_PASSWORD")
	os.Unsetenv("PAGE_SIZE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ConsoleUsername != "agilept/aides.pa" {
		t.Errorf("expected default username, got %s", cfg.ConsoleUsername)
	}
	if cfg.ConsolePassword != "aides.PA" {
		t.Errorf("expected default password, got %s", cfg.ConsolePassword)
	}
	if cfg.PageSize != 25 {
		t.Errorf("expected default page size 25, got %d", cfg.PageSize)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
}

func TestLoad_Overrides(t *testing.T) {
	os.Setenv("PAGE_SIZE", "50")
	os.Setenv("SEED_PATIENTS", "12")
	defer os.Unsetenv("PAGE_SIZE")
	defer os.Unsetenv("SEED_PATIENTS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.PageSize != 50 {
		t.Errorf("expected page size 50, got %d", cfg.PageSize)
	}
	if cfg.SeedPatients != 12 {
		t.Errorf("expected 12 seed patients, got %d", cfg.SeedPatients)
	}
}

func TestLoad_RejectsBadPageSize(t *testing.T) {
	os.Setenv("PAGE_SIZE", "33")
	defer os.Unsetenv("PAGE_SIZE")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for PAGE_SIZE=33")
	}
}

func TestValidate_EmptyCredentials(t *testing.T) {
	c := &Config{ConsoleUsername: "", ConsolePassword: "x", PageSize: 25}
	if err := c.Validate(); err == nil {
		t.Error("expected error for empty username")
	}

	c = &Config{ConsoleUsername: "x", ConsolePassword: "", PageSize: 25}
	if err := c.Validate(); err == nil {
		t.Error("expected error for empty password")
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}
