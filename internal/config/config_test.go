package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "DB_DRIVER", "REDIS_ADDR", "IMPORT_ASSIGNEE_FALLBACK", "ADMIN_PASSWORD", "IDEMPOTENCY_TTL_SECONDS"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.AppPort != "8080" {
		t.Fatalf("AppPort = %q, want 8080", c.AppPort)
	}
	if c.DBDriver != DriverMySQL {
		t.Fatalf("DBDriver = %q, want mysql", c.DBDriver)
	}
	if c.RedisAddr != "" {
		t.Fatalf("RedisAddr = %q, want empty", c.RedisAddr)
	}
	if c.ImportFallback != "first" {
		t.Fatalf("ImportFallback = %q, want first", c.ImportFallback)
	}
	if c.AdminPassword != "" {
		t.Fatalf("AdminPassword must not have a default")
	}
	if c.IdempTTLSecs != 300 {
		t.Fatalf("IdempTTLSecs = %d, want 300", c.IdempTTLSecs)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "60")
	t.Setenv("IMPORT_ASSIGNEE_FALLBACK", "skip")

	c := Load()
	if c.DBDriver != DriverSQLite {
		t.Fatalf("DBDriver = %q", c.DBDriver)
	}
	if c.RedisDB != 3 || c.IdempTTLSecs != 60 {
		t.Fatalf("redis db/ttl = %d/%d", c.RedisDB, c.IdempTTLSecs)
	}
	if c.ImportFallback != "skip" {
		t.Fatalf("ImportFallback = %q", c.ImportFallback)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := c.SQLiteDSN(); got != "file:/tmp/x.db?_foreign_keys=on" {
		t.Fatalf("SQLiteDSN = %q", got)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			AppPort: "8080", DBDriver: DriverMySQL,
			MySQLHost: "db", MySQLPort: "3306", MySQLDB: "crm", MySQLUser: "u",
			ImportFallback: "first", IdempTTLSecs: 300,
		}
	}
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "ok", mutate: func(c *Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.AppPort = "" }, wantErr: "APP_PORT"},
		{name: "missing mysql host", mutate: func(c *Config) { c.MySQLHost = "" }, wantErr: "MySQL"},
		{name: "bad mysql port", mutate: func(c *Config) { c.MySQLPort = "not-a-port" }, wantErr: "MYSQL_PORT"},
		{name: "bad driver", mutate: func(c *Config) { c.DBDriver = "oracle" }, wantErr: "DB_DRIVER"},
		{name: "bad fallback", mutate: func(c *Config) { c.ImportFallback = "random" }, wantErr: "IMPORT_ASSIGNEE_FALLBACK"},
		{name: "bad ttl", mutate: func(c *Config) { c.IdempTTLSecs = 0 }, wantErr: "IDEMPOTENCY_TTL_SECONDS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestMySQLDSN(t *testing.T) {
	c := &Config{MySQLUser: "u", MySQLPass: "p", MySQLHost: "h", MySQLPort: "3306", MySQLDB: "d"}
	if got := c.MySQLDSN(); !strings.HasPrefix(got, "u:p@tcp(h:3306)/d?") || !strings.Contains(got, "parseTime=true") {
		t.Fatalf("unexpected dsn %q", got)
	}
}
