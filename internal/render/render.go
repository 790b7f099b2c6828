// Package render turns a project configuration into the complete set of
// deployment artifacts: the Compose manifest, environment file, gateway
// config, log pipeline config, pooler bootstrap, database init scripts
// and supporting files.
//
// Rendering is pure string substitution over embedded templates. Every
// dynamic value flows in through the single project.Config, so any two
// artifacts that mention the same service name, port or credential are
// consistent by construction.
package render

import (
	"fmt"
	"strings"

	"github.com/supastack-dev/supastack/internal/project"
)

const (
	modeDefault = 0o644
	modeScript  = 0o755
)

// All renders every project artifact in write order. vectorTemplate is the
// log pipeline template text, already resolved by LoadVectorTemplate. The
// returned error reports the first artifact left with an unresolved token.
func All(cfg *project.Config, vectorTemplate string) ([]Artifact, error) {
	tokens := tokenMap(cfg)

	env := substitute(envTemplate, tokens)

	// The gateway config repeats four credentials that also live in the
	// environment file. Both renderers draw them from the same Secrets
	// record, so the two artifacts agree byte-for-byte; ExtractEnvValue
	// exists to verify that round-trip, not to feed this renderer.
	kongTokens := map[string]string{
		"{{ANON_KEY}}":           cfg.Secrets.AnonKey,
		"{{SERVICE_ROLE_KEY}}":   cfg.Secrets.ServiceRoleKey,
		"{{DASHBOARD_USERNAME}}": cfg.Secrets.DashboardUsername,
		"{{DASHBOARD_PASSWORD}}": cfg.Secrets.DashboardPassword,
		"{{CORS_ORIGIN}}":        cfg.Origin.YAMLValue(),
		"{{PROJECT_NAME}}":       cfg.Name,
	}

	artifacts := []Artifact{
		{Path: "docker-compose.yml", Content: substitute(composeTemplate, tokens), Unix: true, Mode: modeDefault},
		{Path: ".env", Content: env, Unix: true, Mode: modeDefault},
		{Path: "volumes/api/kong.yml", Content: substitute(kongTemplate, kongTokens), Unix: true, Mode: modeDefault},
		{Path: "docker-compose.override.yml", Content: composeOverrideTemplate, Mode: modeDefault},
		{Path: "volumes/logs/vector.yml", Content: renderVector(vectorTemplate, cfg.Name), Mode: modeDefault},
		{Path: "volumes/pooler/pooler.exs", Content: substitute(poolerTemplate, tokens), Unix: true, Mode: modeDefault},
		{Path: "volumes/db/_supabase.sql", Content: supabaseSQLTemplate, Unix: true, Mode: modeDefault},
		{Path: "volumes/db/logs.sql", Content: logsSQLTemplate, Unix: true, Mode: modeDefault},
		{Path: "volumes/db/jwt.sql", Content: jwtSQLTemplate, Unix: true, Mode: modeDefault},
		{Path: "volumes/db/pooler.sql", Content: poolerSQLTemplate, Unix: true, Mode: modeDefault},
		{Path: "volumes/db/realtime.sql", Content: realtimeSQLTemplate, Unix: true, Mode: modeDefault},
		{Path: "volumes/db/roles.sql", Content: rolesSQLTemplate, Unix: true, Mode: modeDefault},
		{Path: "volumes/db/webhooks.sql", Content: webhooksSQLTemplate, Unix: true, Mode: modeDefault},
		{Path: "volumes/functions/main/index.ts", Content: functionMainTemplate, Mode: modeDefault},
		{Path: "reset.sh", Content: resetScriptTemplate, Mode: modeScript},
		{Path: "README.md", Content: substitute(readmeTemplate, tokens), Mode: modeDefault},
	}

	for _, a := range artifacts {
		if i := strings.Index(a.Content, "{{"); i >= 0 {
			end := strings.Index(a.Content[i:], "}}")
			token := a.Content[i:]
			if end >= 0 {
				token = a.Content[i : i+end+2]
			}
			return nil, fmt.Errorf("artifact %s: unresolved token %q", a.Path, token)
		}
	}
	return artifacts, nil
}

// tokenMap flattens the config into the substitution tokens shared by the
// Compose, env, pooler and README templates.
func tokenMap(cfg *project.Config) map[string]string {
	p := cfg.Ports
	s := cfg.Secrets
	return map[string]string{
		"{{PROJECT_NAME}}":       cfg.Name,
		"{{KONG_HTTP_PORT}}":     fmt.Sprint(p.KongHTTP),
		"{{KONG_HTTPS_PORT}}":    fmt.Sprint(p.KongHTTPS),
		"{{POSTGRES_PORT}}":      fmt.Sprint(p.Postgres),
		"{{POOLER_PORT}}":        fmt.Sprint(p.Pooler),
		"{{STUDIO_PORT}}":        fmt.Sprint(p.Studio),
		"{{ANALYTICS_PORT}}":     fmt.Sprint(p.Analytics),
		"{{POSTGRES_PASSWORD}}":  s.PostgresPassword,
		"{{JWT_SECRET}}":         s.JWTSecret,
		"{{SECRET_KEY_BASE}}":    s.SecretKeyBase,
		"{{VAULT_ENC_KEY}}":      s.VaultEncKey,
		"{{LOGFLARE_API_KEY}}":   s.LogflareAPIKey,
		"{{ANON_KEY}}":           s.AnonKey,
		"{{SERVICE_ROLE_KEY}}":   s.ServiceRoleKey,
		"{{DASHBOARD_USERNAME}}": s.DashboardUsername,
		"{{DASHBOARD_PASSWORD}}": s.DashboardPassword,
		"{{POOLER_TENANT_ID}}":   s.PoolerTenantID,
	}
}

func substitute(template string, tokens map[string]string) string {
	out := template
	for token, value := range tokens {
		out = strings.ReplaceAll(out, token, value)
	}
	return out
}
