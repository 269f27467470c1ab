package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid reports whether the domain part of an email resolves.
// MX records are checked first; a plain A/AAAA lookup covers domains that
// receive mail on the apex record.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}
	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
