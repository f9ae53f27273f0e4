package config

import "testing"

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode":      "disable",
			"maxOpenConns": 10,
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"adminEmail": "",
			"bcryptCost": 10,
		},
		"pubsub": map[string]any{
			"localEndpoint": "",
		},
	}

	tests := []struct {
		name   string
		envKey string
		want   string
	}{
		{
			name:   "aligns camelCase leaf with yaml key",
			envKey: "POSTGRES_SSLMODE",
			want:   "postgres.sslMode",
		},
		{
			name:   "aligns multi-word leaf",
			envKey: "POSTGRES_MAXOPENCONNS",
			want:   "postgres.maxOpenConns",
		},
		{
			name:   "aligns camelCase section",
			envKey: "SECRETKEY_ACCESS",
			want:   "secretKey.access",
		},
		{
			name:   "aligns admin email override",
			envKey: "AUTH_ADMINEMAIL",
			want:   "auth.adminEmail",
		},
		{
			name:   "unknown keys fall back to lowercase path",
			envKey: "UNKNOWN_SECTION_VALUE",
			want:   "unknown.section.value",
		},
		{
			name:   "known section with unknown leaf",
			envKey: "PUBSUB_PROVIDER",
			want:   "pubsub.provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
