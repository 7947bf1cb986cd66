package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1", cfg.TargetIP)
	assert.Equal(t, "domains.txt", cfg.DomainsFile)
	assert.Equal(t, "hosts", cfg.OutputFile)
	assert.Equal(t, []string{"google.com", "www.google.com", "mail.google.com"}, cfg.FallbackDomains)
	assert.Equal(t, "Google520 Hosts", cfg.Banner.Title)
	assert.Equal(t, "https://github.com/yhjyhjlqx/Google520", cfg.Banner.ProjectURL)
	assert.Equal(t, "2006-01-02 15:04:05", cfg.Banner.TimeLayout)
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.TargetIP = "10.0.0.1"
	a.FallbackDomains[0] = "changed.com"

	b := Default()
	assert.Equal(t, "127.0.0.1", b.TargetIP)
	assert.Equal(t, "google.com", b.FallbackDomains[0])
}

func TestConfig_Fallback(t *testing.T) {
	cfg := Default()

	fallback := cfg.Fallback()
	fallback[0] = "changed.com"

	assert.Equal(t, "google.com", cfg.FallbackDomains[0])
}

func TestBanner_Markers(t *testing.T) {
	b := Banner{Title: "Google520 Hosts"}

	assert.Equal(t, "# Google520 Hosts Start", b.StartMarker())
	assert.Equal(t, "# Google520 Hosts End", b.EndMarker())
}

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		data := []byte(`targetIP: 0.0.0.0
domainsFile: list.txt
outputFile: out
fallbackDomains: [example.com]
banner:
  title: Test
  projectURL: https://example.com
  timeLayout: "2006"
`)
		cfg, err := Parse(data)
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0", cfg.TargetIP)
		assert.Equal(t, "list.txt", cfg.DomainsFile)
		assert.Equal(t, []string{"example.com"}, cfg.FallbackDomains)
		assert.Equal(t, "Test", cfg.Banner.Title)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("banner: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config")
	})

	t.Run("fails validation", func(t *testing.T) {
		_, err := Parse([]byte("targetIP: 127.0.0.1\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})
}
