package materialize

import (
	"os"
	"path/filepath"
	"strings"
)

// PatchResult reports the outcome of the realtime healthcheck rewrite.
type PatchResult int

const (
	// Patched means the healthcheck block was found and replaced.
	Patched PatchResult = iota
	// NotFound means the manifest had no matching block and was left as is.
	NotFound
)

// The realtime image's stock healthcheck curls an authenticated tenant
// endpoint. Interpolating ${ANON_KEY} through Compose into an exec-form
// CMD is fragile on Windows hosts, so the block is swapped for the
// unauthenticated /status endpoint after the manifest is written.
const oldHealthcheck = `    healthcheck:
      test:
        [
          "CMD",
          "curl",
          "-sSfL",
          "--head",
          "-o",
          "/dev/null",
          "-H",
          "Authorization: Bearer ${ANON_KEY}",
          "http://localhost:4000/api/tenants/realtime-dev/health"
        ]`

const newHealthcheck = `    healthcheck:
      test:
        [
          "CMD-SHELL",
          "curl -sSfL http://localhost:4000/status"
        ]`

// PatchRealtimeHealthcheck rewrites the realtime healthcheck block in the
// project's docker-compose.yml. The replacement is an exact substring
// swap; a manifest without the block is reported as NotFound, not failed.
func PatchRealtimeHealthcheck(dir string) (PatchResult, error) {
	path := filepath.Join(dir, "docker-compose.yml")
	data, err := os.ReadFile(path)
	if err != nil {
		return NotFound, &WriteError{Path: path, Err: err}
	}
	content := string(data)
	if !strings.Contains(content, oldHealthcheck) {
		return NotFound, nil
	}
	content = strings.Replace(content, oldHealthcheck, newHealthcheck, 1)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return NotFound, &WriteError{Path: path, Err: err}
	}
	return Patched, nil
}
