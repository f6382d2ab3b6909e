package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DISCORD_BOT_TOKEN", "MISSIONS_CHANNEL_ID", "FORUM_DAILY_ID", "FORUM_REFLECT_ID",
		"TIMEZONE", "BANK_PATH", "RECENT_LIMIT", "CREATE_DELAY_MS",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_LOCALE", "LOG_COLOR",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_EnvOnlyWithDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_BOT_TOKEN", "tok")
	t.Setenv("MISSIONS_CHANNEL_ID", "C1")

	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Timezone != "Australia/Melbourne" || c.BankPath != "./missions/bank.json" {
		t.Fatalf("defaults not applied: %+v", c)
	}
	if c.RecentLimit != 30 || c.CreateDelayMS != 400 {
		t.Fatalf("numeric defaults not applied: %+v", c)
	}
	if c.LogFormat == "" || c.LogLocale == "" || c.LogColor == "" {
		t.Fatal("log defaults missing")
	}
	if err := c.ValidateMissions(); err != nil {
		t.Fatalf("validate missions: %v", err)
	}
}

func TestLoad_MissingToken(t *testing.T) {
	clearEnv(t)
	if _, err := Load(""); err == nil {
		t.Fatal("expect error for missing token")
	}
}

func TestLoad_PlaceholderCountsAsMissing(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_BOT_TOKEN", "REPLACE_WITH_YOUR_DISCORD_BOT_TOKEN")
	if _, err := Load(""); err == nil {
		t.Fatal("placeholder token must be rejected")
	}

	t.Setenv("DISCORD_BOT_TOKEN", "tok")
	t.Setenv("FORUM_DAILY_ID", "F1")
	t.Setenv("FORUM_REFLECT_ID", "REPLACE_WITH_REFLECT_FORUM_CHANNEL_ID")
	c, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := c.ValidateForums(); err == nil || !strings.Contains(err.Error(), "FORUM_REFLECT_ID") {
		t.Fatalf("placeholder forum id must be rejected, got %v", err)
	}
}

func TestLoad_FileThenEnvOverride(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "settings.yaml")
	body := "DISCORD_BOT_TOKEN: file-tok\nMISSIONS_CHANNEL_ID: file-chan\nRECENT_LIMIT: 10\n"
	if err := os.WriteFile(p, []byte(body), 0644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	t.Setenv("MISSIONS_CHANNEL_ID", "env-chan")

	c, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Token != "file-tok" {
		t.Fatalf("token = %q, want file value", c.Token)
	}
	if c.MissionsChannelID != "env-chan" {
		t.Fatalf("channel = %q, env must win", c.MissionsChannelID)
	}
	if c.RecentLimit != 10 {
		t.Fatalf("recent limit = %d, want 10", c.RecentLimit)
	}
}

func TestValidate_NegativeNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_BOT_TOKEN", "tok")
	t.Setenv("RECENT_LIMIT", "-1")
	if _, err := Load(""); err == nil {
		t.Fatal("expect error for negative RECENT_LIMIT")
	}
}
