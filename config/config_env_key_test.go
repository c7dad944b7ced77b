package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"jwt": "",
		},
		"passwordReset": map[string]any{
			"tokenTtl": "1h",
		},
		"verification": map[string]any{
			"maxAttempts": 3,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_JWT", want: "secretKey.jwt"},
		{envKey: "PASSWORDRESET_TOKENTTL", want: "passwordReset.tokenTtl"},
		{envKey: "VERIFICATION_MAXATTEMPTS", want: "verification.maxAttempts"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsAbsentSections(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Auth.AccessTokenTTL != defaultAccessTokenTTL {
		t.Fatalf("AccessTokenTTL = %v, want %v", cfg.Auth.AccessTokenTTL, defaultAccessTokenTTL)
	}
	if cfg.Verification.MaxAttempts != defaultMaxVerifyAttempts {
		t.Fatalf("MaxAttempts = %d, want %d", cfg.Verification.MaxAttempts, defaultMaxVerifyAttempts)
	}
	if cfg.Verification.BaseURL != defaultVerificationBaseURL {
		t.Fatalf("BaseURL = %q, want %q", cfg.Verification.BaseURL, defaultVerificationBaseURL)
	}
	if cfg.PasswordReset.TokenTTL != defaultResetTokenTTL {
		t.Fatalf("reset TokenTTL = %v, want %v", cfg.PasswordReset.TokenTTL, defaultResetTokenTTL)
	}
	if cfg.Revocation.SweepInterval != defaultSweepInterval {
		t.Fatalf("SweepInterval = %v, want %v", cfg.Revocation.SweepInterval, defaultSweepInterval)
	}
	if cfg.Mail.Driver != "log" {
		t.Fatalf("Mail.Driver = %q, want %q", cfg.Mail.Driver, "log")
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Auth = &AuthConfig{AccessTokenTTL: 15 * time.Minute, RefreshTokenTTL: 48 * time.Hour}
	cfg.Verification = &VerificationConfig{TokenTTL: 2 * time.Hour, MaxAttempts: 5, BaseURL: "https://handyhub.example.com"}

	cfg.applyDefaults()

	if cfg.Auth.AccessTokenTTL != 15*time.Minute {
		t.Fatalf("AccessTokenTTL = %v, want %v", cfg.Auth.AccessTokenTTL, 15*time.Minute)
	}
	if cfg.Verification.MaxAttempts != 5 {
		t.Fatalf("MaxAttempts = %d, want 5", cfg.Verification.MaxAttempts)
	}
	if cfg.Verification.BaseURL != "https://handyhub.example.com" {
		t.Fatalf("BaseURL = %q", cfg.Verification.BaseURL)
	}
}
