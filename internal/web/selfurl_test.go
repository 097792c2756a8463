package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelfURLExplicitHost(t *testing.T) {
	assert.Equal(t, "http://10.0.0.5:8080", SelfURL("10.0.0.5:8080"))
	// Port 80 is implied.
	assert.Equal(t, "http://10.0.0.5", SelfURL("10.0.0.5:80"))
}

func TestSelfURLWildcardBindPicksConcreteHost(t *testing.T) {
	// The concrete host depends on the machine; the shape does not.
	url := SelfURL(":8080")
	assert.True(t, strings.HasPrefix(url, "http://"))
	assert.True(t, strings.HasSuffix(url, ":8080"))
	assert.NotContains(t, url, "0.0.0.0")
}

func TestSplitListenAddr(t *testing.T) {
	cases := []struct {
		addr, host, port string
	}{
		{"", "", "80"},
		{":80", "", "80"},
		{":8080", "", "8080"},
		{"0.0.0.0:80", "", "80"},
		{"[::]:80", "", "80"},
		{"192.168.1.4:8080", "192.168.1.4", "8080"},
	}
	for _, tc := range cases {
		host, port := splitListenAddr(tc.addr)
		assert.Equalf(t, tc.host, host, "host of %q", tc.addr)
		assert.Equalf(t, tc.port, port, "port of %q", tc.addr)
	}
}
