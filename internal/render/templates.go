package render

import _ "embed"

// Template files embedded at compile time
var (
	//go:embed templates/compose.yml
	composeTemplate string

	//go:embed templates/compose-override.yml
	composeOverrideTemplate string

	//go:embed templates/env.txt
	envTemplate string

	//go:embed templates/kong.yml
	kongTemplate string

	//go:embed templates/vector.yml
	vectorDefaultTemplate string

	//go:embed templates/vector-minimal.yml
	vectorMinimalTemplate string

	//go:embed templates/pooler.exs
	poolerTemplate string

	//go:embed templates/db-supabase.sql
	supabaseSQLTemplate string

	//go:embed templates/db-logs.sql
	logsSQLTemplate string

	//go:embed templates/db-jwt.sql
	jwtSQLTemplate string

	//go:embed templates/db-pooler.sql
	poolerSQLTemplate string

	//go:embed templates/db-realtime.sql
	realtimeSQLTemplate string

	//go:embed templates/db-roles.sql
	rolesSQLTemplate string

	//go:embed templates/db-webhooks.sql
	webhooksSQLTemplate string

	//go:embed templates/function-main.ts
	functionMainTemplate string

	//go:embed templates/reset.sh
	resetScriptTemplate string

	//go:embed templates/readme.md
	readmeTemplate string
)
