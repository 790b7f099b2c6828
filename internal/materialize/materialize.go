// Package materialize writes rendered artifacts to disk, creating the
// project directory tree and normalizing line endings on the files that
// containers evaluate or source directly.
package materialize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/supastack-dev/supastack/internal/logging"
	"github.com/supastack-dev/supastack/internal/render"
)

// AlreadyExistsError reports a project root that already exists. The
// generator never mutates an existing deployment.
type AlreadyExistsError struct {
	Dir string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("directory %s already exists", e.Dir)
}

// WriteError reports a failed filesystem operation inside the project tree.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// subdirs are created under the project root before any artifact is
// written. volumes/db/data stays empty; the database container owns it.
var subdirs = []string{
	"volumes/api",
	"volumes/db/data",
	"volumes/functions",
	"volumes/logs",
	"volumes/pooler",
	"volumes/storage",
	"volumes/analytics",
	"volumes/db",
}

// functionStub is seeded into volumes/functions/main/index.ts when no
// function exists there, so the edge runtime has a main service to load
// even before any artifact lands.
const functionStub = `// Sample Supabase Edge Function
import { serve } from "https://deno.land/std@0.131.0/http/server.ts";
serve((_req) => new Response("Hello from Edge Functions!"));
`

// CreateTree builds the project subdirectory tree under root. A plain file
// occupying a directory path is removed and replaced.
func CreateTree(root string) error {
	for _, sub := range subdirs {
		if err := ensureDir(filepath.Join(root, filepath.FromSlash(sub))); err != nil {
			return err
		}
	}
	// The edge-functions main service dir gets the same file-vs-dir
	// treatment plus a stub function if none exists yet.
	mainDir := filepath.Join(root, "volumes", "functions", "main")
	if err := ensureDir(mainDir); err != nil {
		return err
	}
	stubPath := filepath.Join(mainDir, "index.ts")
	if _, err := os.Stat(stubPath); os.IsNotExist(err) {
		if err := os.WriteFile(stubPath, []byte(functionStub), 0o644); err != nil {
			return &WriteError{Path: stubPath, Err: err}
		}
	}
	return nil
}

func ensureDir(path string) error {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		if err := os.Remove(path); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Materialize creates the project directory at dir and writes every
// artifact into it. dir must not exist yet. After the artifacts land, the
// realtime healthcheck rewrite runs over the written Compose manifest.
// The returned paths are the written artifacts, project-relative, in
// write order.
func Materialize(dir string, artifacts []render.Artifact) ([]string, error) {
	if _, err := os.Stat(dir); err == nil {
		return nil, &AlreadyExistsError{Dir: dir}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &WriteError{Path: dir, Err: err}
	}
	logging.Info("Created directory: %s", dir)

	if err := CreateTree(dir); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		content := a.Content
		if a.Unix {
			content = strings.ReplaceAll(content, "\r\n", "\n")
		}
		mode := a.Mode
		if mode == 0 {
			mode = 0o644
		}
		path := filepath.Join(dir, filepath.FromSlash(a.Path))
		if err := os.WriteFile(path, []byte(content), mode); err != nil {
			return nil, &WriteError{Path: path, Err: err}
		}
		written = append(written, a.Path)
	}

	res, err := PatchRealtimeHealthcheck(dir)
	if err != nil {
		return nil, err
	}
	switch res {
	case Patched:
		logging.Info("Rewrote realtime healthcheck to the unauthenticated status endpoint")
	case NotFound:
		logging.Warn("Realtime healthcheck block not found in docker-compose.yml, leaving manifest as rendered")
	}

	return written, nil
}
