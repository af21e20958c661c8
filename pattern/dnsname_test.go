package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logident/logident/pattern"
)

func TestDNSNameValid(t *testing.T) {
	t.Parallel()

	dns := pattern.DNSName()

	valid := []string{
		"example.com", "sub.example.com", "sub-domain.example.co.uk",
		"a.b.c.d.e.f.computer", "xn--80akhbyknj4f.xn--p1ai",
	}

	for _, v := range valid {
		assert.True(t, dns.Validate(v), "expected %q to be a valid dnsname", v)
	}
}

func TestDNSNameInvalid(t *testing.T) {
	t.Parallel()

	dns := pattern.DNSName()

	invalid := []string{
		"example", ".com", "example..com", "ex ample.com",
		"-example.com", "example-.com", "192.168.1.1", "2024-12-16T14:06:41.000Z",
	}

	for _, v := range invalid {
		assert.False(t, dns.Validate(v), "expected %q to be an invalid dnsname", v)
	}
}

func TestDNSNameExtractExcludesEmailSpan(t *testing.T) {
	t.Parallel()

	dns := pattern.DNSName()

	matches := dns.Extract("contact user@example.com or visit mail.example.org")

	var values []string
	for _, m := range matches {
		values = append(values, m.Value)
	}

	assert.NotContains(t, values, "example.com")
	assert.Contains(t, values, "mail.example.org")
}

func TestDNSNameExtractTrimsTrailingPunctuation(t *testing.T) {
	t.Parallel()

	dns := pattern.DNSName()

	matches := dns.Extract("Connect to time.google.com.] and example.com for services.")

	var values []string
	for _, m := range matches {
		values = append(values, m.Value)
	}

	assert.Contains(t, values, "time.google.com")
	assert.Contains(t, values, "example.com")
}
