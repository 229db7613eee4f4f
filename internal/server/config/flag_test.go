package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_OverridesDefaults(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"test",
		"-a", ":9090",
		"-d", "postgres://localhost/other",
		"-s", "flag-secret",
		"-t", "30",
		"-m", "32768",
		"-i", "2",
		"-p", "2",
	}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":9090", c.EndpointAddrHTTP)
	assert.Equal(t, "postgres://localhost/other", c.DatabaseDSN)
	assert.Equal(t, "flag-secret", c.SecretKey)
	assert.Equal(t, 30*time.Minute, c.TokenValidityDuration)
	assert.Equal(t, uint32(32768), c.ArgonMemoryKiB)
	assert.Equal(t, uint32(2), c.ArgonTime)
	assert.Equal(t, uint8(2), c.ArgonThreads)
}

func TestParseFlags_KeepsDefaultsWithoutFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"test"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":3000", c.EndpointAddrHTTP)
	assert.Equal(t, 1*time.Hour, c.TokenValidityDuration)
}
