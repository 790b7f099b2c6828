package render

import (
	"os"
	"strings"

	"github.com/supastack-dev/supastack/internal/logging"
)

// Placeholders used by log pipeline templates. External template files use
// the same markers, so an operator can drop in a customized config without
// hardcoding a project name.
const (
	vectorProjectPlaceholder   = "__PROJECT__"
	vectorAnalyticsPlaceholder = "__ANALYTICS_SERVICE__"
	vectorKongPlaceholder      = "__KONG_SERVICE__"
)

// LoadVectorTemplate resolves the log pipeline template text. A readable
// file at path wins; a missing file falls back to the full embedded
// default; a path that exists but cannot be read falls back to a minimal
// config that still ships container logs to analytics. Degraded outcomes
// are logged, never fatal: a broken custom template should not abort a
// whole deployment.
func LoadVectorTemplate(path string, explicit bool) string {
	if path == "" {
		return vectorDefaultTemplate
	}
	data, err := os.ReadFile(path)
	if err == nil {
		logging.Info("Using log pipeline template from %s", path)
		return string(data)
	}
	if os.IsNotExist(err) {
		if explicit {
			logging.Warn("Log pipeline template %s not found, using built-in default", path)
		} else {
			logging.Info("Using built-in log pipeline template")
		}
		return vectorDefaultTemplate
	}
	logging.Warn("Cannot read log pipeline template %s: %v, using minimal config", path, err)
	return vectorMinimalTemplate
}

// renderVector substitutes the project and service names into the log
// pipeline template.
func renderVector(template, projectName string) string {
	out := strings.ReplaceAll(template, vectorProjectPlaceholder, projectName)
	out = strings.ReplaceAll(out, vectorAnalyticsPlaceholder, projectName+"-analytics")
	out = strings.ReplaceAll(out, vectorKongPlaceholder, projectName+"-kong")
	return out
}
