// Package domains validates tenant hostnames against RFC 1034/1035 and
// derives subdomains for tenants that lack one.
package domains

import (
	"regexp"
	"strings"
)

// labelRe matches one RFC 1034/1035 hostname label. Underscores are the
// usual offender in generated tenant domains and are rejected here.
var labelRe = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// RFC 1035 size limits: 63 octets per label, 253 for the full hostname.
const (
	maxLabelLen = 63
	maxHostLen  = 253
)

// Valid reports whether domain is an RFC-compliant hostname. Port suffixes
// (development hosts like tenant.localhost:8000) are ignored.
func Valid(domain string) bool {
	host := stripPort(domain)
	if host == "" || len(host) > maxHostLen {
		return false
	}
	for _, label := range strings.Split(strings.ToLower(host), ".") {
		if len(label) > maxLabelLen || !labelRe.MatchString(label) {
			return false
		}
	}
	return true
}

// SuggestedFix returns the hyphenated form of an underscore-bearing domain.
func SuggestedFix(domain string) string {
	return strings.ReplaceAll(domain, "_", "-")
}

// SubdomainFor derives the primary domain for a tenant schema. For localhost
// development a port is appended; production domains are plain
// <schema>.<base>.
func SubdomainFor(schema, baseDomain, port string) string {
	host := schema + "." + baseDomain
	if baseDomain == "localhost" && port != "" {
		return host + ":" + port
	}
	return host
}

func stripPort(domain string) string {
	if i := strings.LastIndex(domain, ":"); i >= 0 {
		return domain[:i]
	}
	return domain
}
