package project

import (
	"github.com/google/uuid"

	"github.com/supastack-dev/supastack/internal/secret"
)

// Fixed demo API tokens shipped by upstream for bootstrap use. Both are
// publicly known JWTs signed with a demo secret and MUST be rotated before
// any production use. Shipping them is a documented caveat, not a bug:
// fresh installs need working keys before the operator has minted real ones.
const (
	DemoAnonKey        = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyAgCiAgICAicm9sZSI6ICJhbm9uIiwKICAgICJpc3MiOiAic3VwYWJhc2UtZGVtbyIsCiAgICAiaWF0IjogMTY0MTc2OTIwMCwKICAgICJleHAiOiAxNzk5NTM1NjAwCn0.dc_X5iR_VP_qT0zsiyj_I_OZ2T9FtRU2BBNWN8Bu4GE"
	DemoServiceRoleKey = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyAgCiAgICAicm9sZSI6ICJzZXJ2aWNlX3JvbGUiLAogICAgImlzcyI6ICJzdXBhYmFzZS1kZW1vIiwKICAgICJpYXQiOiAxNjQxNzY5MjAwLAogICAgImV4cCI6IDE3OTk1MzU2MDAKfQ.DaYlNEoUrrEn2Ig7tqibS-PHK5vgusbcbo7X36XVt4Q"
)

// Secret lengths, in characters.
const (
	postgresPasswordLen = 32
	jwtSecretLen        = 48
	secretKeyBaseLen    = 64
	vaultEncKeyLen      = 32
	logflareKeyLen      = 32
)

// Secrets holds every credential embedded in the generated artifacts.
type Secrets struct {
	PostgresPassword  string
	JWTSecret         string
	SecretKeyBase     string
	VaultEncKey       string
	LogflareAPIKey    string
	AnonKey           string
	ServiceRoleKey    string
	DashboardUsername string
	DashboardPassword string
	PoolerTenantID    string
}

// NewSecrets generates the credential set for a project. The random fields
// are freshly drawn on every call; the anon and service-role keys are the
// fixed demo tokens; the dashboard password is the project name; the pooler
// tenant ID is a fresh UUID.
func NewSecrets(projectName, dashboardUser string) Secrets {
	return Secrets{
		PostgresPassword:  secret.Generate(postgresPasswordLen),
		JWTSecret:         secret.Generate(jwtSecretLen),
		SecretKeyBase:     secret.Generate(secretKeyBaseLen),
		VaultEncKey:       secret.Generate(vaultEncKeyLen),
		LogflareAPIKey:    secret.Generate(logflareKeyLen),
		AnonKey:           DemoAnonKey,
		ServiceRoleKey:    DemoServiceRoleKey,
		DashboardUsername: dashboardUser,
		DashboardPassword: projectName,
		PoolerTenantID:    uuid.NewString(),
	}
}
