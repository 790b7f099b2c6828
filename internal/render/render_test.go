package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/supastack-dev/supastack/internal/netport"
	"github.com/supastack-dev/supastack/internal/project"
	"github.com/supastack-dev/supastack/internal/render"
)

// demoConfig builds a config with fixed ports and credentials so artifact
// content is fully deterministic.
func demoConfig() *project.Config {
	return &project.Config{
		Name:   "demo",
		Dir:    "demo",
		Origin: project.Localhost(),
		Ports: &netport.Allocation{
			BasePort:  4000,
			KongHTTP:  4000,
			KongHTTPS: 4443,
			Postgres:  5000,
			Pooler:    5001,
			Studio:    6000,
			Analytics: 7000,
		},
		Secrets: project.Secrets{
			PostgresPassword:  "pgpass-fixed-for-test-0000000000",
			JWTSecret:         "jwtsecret-fixed-for-test-00000000000000000000000",
			SecretKeyBase:     "keybase-fixed-for-test-0000000000000000000000000000000000000000",
			VaultEncKey:       "vaultkey-fixed-for-test-00000000",
			LogflareAPIKey:    "logflare-fixed-for-test-00000000",
			AnonKey:           project.DemoAnonKey,
			ServiceRoleKey:    project.DemoServiceRoleKey,
			DashboardUsername: "supabase",
			DashboardPassword: "demo",
			PoolerTenantID:    "8f7a3b12-0000-4000-8000-000000000000",
		},
	}
}

func renderAll(t *testing.T, cfg *project.Config) map[string]render.Artifact {
	t.Helper()
	artifacts, err := render.All(cfg, render.LoadVectorTemplate("", false))
	require.NoError(t, err)
	byPath := make(map[string]render.Artifact, len(artifacts))
	for _, a := range artifacts {
		byPath[a.Path] = a
	}
	return byPath
}

func TestAll_ArtifactSet(t *testing.T) {
	byPath := renderAll(t, demoConfig())

	want := []string{
		"docker-compose.yml",
		".env",
		"volumes/api/kong.yml",
		"docker-compose.override.yml",
		"volumes/logs/vector.yml",
		"volumes/pooler/pooler.exs",
		"volumes/db/_supabase.sql",
		"volumes/db/logs.sql",
		"volumes/db/jwt.sql",
		"volumes/db/pooler.sql",
		"volumes/db/realtime.sql",
		"volumes/db/roles.sql",
		"volumes/db/webhooks.sql",
		"volumes/functions/main/index.ts",
		"reset.sh",
		"README.md",
	}
	assert.Len(t, byPath, len(want))
	for _, path := range want {
		assert.Contains(t, byPath, path)
	}
}

func TestAll_NoUnresolvedTokens(t *testing.T) {
	for path, a := range renderAll(t, demoConfig()) {
		assert.NotContains(t, a.Content, "{{", "artifact %s", path)
		assert.NotContains(t, a.Content, "__PROJECT__", "artifact %s", path)
	}
}

func TestAll_ComposePortsAndNames(t *testing.T) {
	byPath := renderAll(t, demoConfig())
	compose := byPath["docker-compose.yml"].Content

	assert.True(t, strings.HasPrefix(compose, "name: demo\n"))
	assert.Contains(t, compose, `"4000:8000/tcp"`)
	assert.Contains(t, compose, `"4443:8443/tcp"`)
	assert.Contains(t, compose, `"5000:5432"`)
	assert.Contains(t, compose, `"5001:6543"`)
	assert.Contains(t, compose, `"6000:3000"`)
	assert.Contains(t, compose, `"7000:4000"`)
	assert.Contains(t, compose, "container_name: demo-kong")
	assert.Contains(t, compose, "container_name: demo-db")
	assert.Contains(t, compose, "name: demo-network")
	assert.True(t, byPath["docker-compose.yml"].Unix)
}

func TestAll_EnvValues(t *testing.T) {
	cfg := demoConfig()
	env := renderAll(t, cfg)[".env"].Content

	assert.Equal(t, "demo-db", render.ExtractEnvValue(env, "POSTGRES_HOST"))
	assert.Equal(t, "5000", render.ExtractEnvValue(env, "POSTGRES_PORT"))
	assert.Equal(t, "5001", render.ExtractEnvValue(env, "POOLER_PROXY_PORT_TRANSACTION"))
	assert.Equal(t, "4000", render.ExtractEnvValue(env, "KONG_HTTP_PORT"))
	assert.Equal(t, "http://localhost:6000", render.ExtractEnvValue(env, "SITE_URL"))
	assert.Equal(t, "http://localhost:4000", render.ExtractEnvValue(env, "API_EXTERNAL_URL"))
	assert.Equal(t, cfg.Secrets.PostgresPassword, render.ExtractEnvValue(env, "POSTGRES_PASSWORD"))
	assert.Equal(t, cfg.Secrets.PoolerTenantID, render.ExtractEnvValue(env, "POOLER_TENANT_ID"))
	assert.Equal(t, "demo", render.ExtractEnvValue(env, "DASHBOARD_PASSWORD"))
	assert.Equal(t, `"demo"`, render.ExtractEnvValue(env, "STUDIO_DEFAULT_ORGANIZATION"))
}

func TestAll_EnvKongRoundTrip(t *testing.T) {
	cfg := demoConfig()
	byPath := renderAll(t, cfg)
	env := byPath[".env"].Content
	kong := byPath["volumes/api/kong.yml"].Content

	for _, key := range []string{"ANON_KEY", "SERVICE_ROLE_KEY", "DASHBOARD_USERNAME", "DASHBOARD_PASSWORD"} {
		value := render.ExtractEnvValue(env, key)
		assert.NotContains(t, value, "missing_")
		assert.Contains(t, kong, value, "kong.yml must embed the env value of %s", key)
	}
	assert.Contains(t, kong, "key: "+cfg.Secrets.AnonKey)
	assert.Contains(t, kong, "password: demo")
}

func TestAll_KongOrigin(t *testing.T) {
	cfg := demoConfig()
	kong := renderAll(t, cfg)["volumes/api/kong.yml"].Content
	assert.Contains(t, kong, `- "*"`)

	cfg.Origin = project.Custom("https", "example.com")
	kong = renderAll(t, cfg)["volumes/api/kong.yml"].Content
	assert.Contains(t, kong, `- "https://example.com"`)
	assert.NotContains(t, kong, `- "*"`)
}

func TestAll_YAMLArtifactsParse(t *testing.T) {
	byPath := renderAll(t, demoConfig())

	for _, path := range []string{"docker-compose.yml", "volumes/api/kong.yml", "docker-compose.override.yml", "volumes/logs/vector.yml"} {
		var doc map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(byPath[path].Content), &doc), "artifact %s", path)
	}

	var compose struct {
		Name     string `yaml:"name"`
		Services map[string]struct {
			Ports []string `yaml:"ports"`
		} `yaml:"services"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(byPath["docker-compose.yml"].Content), &compose))
	assert.Equal(t, "demo", compose.Name)
	assert.Len(t, compose.Services, 13)
	assert.Equal(t, []string{"5000:5432"}, compose.Services["db"].Ports)
	assert.Equal(t, []string{"4000:8000/tcp", "4443:8443/tcp"}, compose.Services["kong"].Ports)
}

func TestAll_PoolerBootstrap(t *testing.T) {
	pooler := renderAll(t, demoConfig())["volumes/pooler/pooler.exs"].Content
	assert.Contains(t, pooler, `"db_host" => "demo-db"`)
	assert.NotContains(t, pooler, "self.project_name")
	assert.True(t, renderAll(t, demoConfig())["volumes/pooler/pooler.exs"].Unix)
}

func TestAll_VectorRouting(t *testing.T) {
	vector := renderAll(t, demoConfig())["volumes/logs/vector.yml"].Content
	assert.Contains(t, vector, `.project = "demo"`)
	assert.Contains(t, vector, "- demo-vector")
	assert.Contains(t, vector, `'.appname == "demo-kong"'`)
	assert.Contains(t, vector, "uri: http://demo-analytics:4000/api/logs")
}

func TestAll_ScriptAndReadme(t *testing.T) {
	byPath := renderAll(t, demoConfig())

	reset := byPath["reset.sh"]
	assert.True(t, strings.HasPrefix(reset.Content, "#!/bin/sh\n"))
	assert.Contains(t, reset.Content, "docker compose down -v --remove-orphans")
	assert.Contains(t, reset.Content, "docker compose up\"")
	assert.EqualValues(t, 0o755, reset.Mode)

	readme := byPath["README.md"].Content
	assert.Contains(t, readme, "# Supabase Project: demo")
	assert.Contains(t, readme, "Kong HTTP API: 4000")
	assert.Contains(t, readme, "Analytics: 7000")
}

func TestExtractEnvValue(t *testing.T) {
	env := "FOO=bar\n# FOO=commented\nPREFIX_FOO=nope\nEMPTY=\nSPACED=  padded  \n"

	assert.Equal(t, "bar", render.ExtractEnvValue(env, "FOO"))
	assert.Equal(t, "padded", render.ExtractEnvValue(env, "SPACED"))
	assert.Equal(t, "", render.ExtractEnvValue(env, "EMPTY"))
	assert.Equal(t, "missing_ABSENT", render.ExtractEnvValue(env, "ABSENT"))
}
