package project

import "strings"

// Origin is the single CORS origin expression embedded in every gateway
// route: either the wildcard for localhost deployments or an explicit
// scheme+domain. Decided once, reused verbatim everywhere.
type Origin struct {
	Wildcard bool
	Scheme   string
	Domain   string
}

// Localhost returns the wildcard origin used for localhost deployments.
func Localhost() Origin {
	return Origin{Wildcard: true}
}

// Custom returns an explicit origin for the given protocol and domain.
// A protocol without the "://" suffix has it appended.
func Custom(protocol, domain string) Origin {
	if !strings.HasSuffix(protocol, "://") {
		protocol += "://"
	}
	return Origin{Scheme: protocol, Domain: domain}
}

// Value returns the origin expression: "*" or "scheme://domain".
func (o Origin) Value() string {
	if o.Wildcard {
		return "*"
	}
	return o.Scheme + o.Domain
}

// YAMLValue returns the origin double-quoted for the gateway's declarative
// YAML config, where a bare asterisk would not survive parsing.
func (o Origin) YAMLValue() string {
	return `"` + o.Value() + `"`
}
