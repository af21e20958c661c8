package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logident/logident/pattern"
)

func TestIPValid(t *testing.T) {
	t.Parallel()

	ip := pattern.IP()

	valid := []string{
		"192.168.1.1", "10.0.0.255", "127.0.0.1", "255.255.255.255", "0.0.0.0",
		"2001:0db8:85a3:0000:0000:8a2e:0370:7334", "2001:db8:85a3::8a2e:370:7334",
		"::1", "::", "fe80::1ff:fe23:4567:890a",
	}

	for _, v := range valid {
		assert.True(t, ip.Validate(v), "expected %q to be a valid ip", v)
	}
}

func TestIPInvalid(t *testing.T) {
	t.Parallel()

	ip := pattern.IP()

	invalid := []string{"192.168.1", "192.168.1.256", "300.168.1.1", "192.168.1.1.1", "192.168.1,1"}

	for _, v := range invalid {
		assert.False(t, ip.Validate(v), "expected %q to be an invalid ip", v)
	}
}

func TestIPExtract(t *testing.T) {
	t.Parallel()

	ip := pattern.IP()

	matches := ip.Extract("connection from 173.234.31.186 to 10.0.0.1 refused")
	var values []string

	for _, m := range matches {
		values = append(values, m.Value)
	}

	assert.Contains(t, values, "173.234.31.186")
	assert.Contains(t, values, "10.0.0.1")
}
