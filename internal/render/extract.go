package render

import "strings"

// ExtractEnvValue returns the value of key in the rendered env file text.
// Only exact "KEY=" line prefixes match; commented or indented lines do
// not. A missing key yields the sentinel "missing_<KEY>" so the rendered
// artifact stays valid YAML and the gap is greppable instead of silent.
func ExtractEnvValue(env, key string) string {
	prefix := key + "="
	for _, line := range strings.Split(env, "\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line[len(prefix):])
		}
	}
	return "missing_" + key
}
