package clientcontext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
contexts:
  Prod:
    cluster: prod
    user: admin
  anonymous:
    cluster: dev
  broken:
    cluster: missing
  nouser:
    cluster: dev
    user: missing
clusters:
  prod:
    server: https://prod.example.com:19080
    api_version: "6.4"
    certificate_authority: /etc/sfctl/ca.pem
  dev:
    server: http://localhost:19080
    insecure: true
users:
  admin:
    client_certificate: /etc/sfctl/admin.pem
    client_key: /etc/sfctl/admin.key
`

func writeConfig(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(testConfig), 0600))
	return p
}

func TestLoad(t *testing.T) {
	p := writeConfig(t)

	t.Run("with user", func(t *testing.T) {
		c, err := Load(p, "prod")
		require.NoError(t, err)
		assert.Equal(t, "https://prod.example.com:19080", c.Cluster.Server)
		assert.Equal(t, "6.4", c.Cluster.APIVersion)
		assert.Equal(t, "/etc/sfctl/ca.pem", c.Cluster.CertificateAuthority)
		assert.False(t, c.Cluster.InsecureSkipVerify)
		assert.Equal(t, "/etc/sfctl/admin.pem", c.User.ClientCertificate)
		assert.Equal(t, "/etc/sfctl/admin.key", c.User.ClientKey)
	})

	t.Run("without user", func(t *testing.T) {
		c, err := Load(p, "anonymous")
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:19080", c.Cluster.Server)
		assert.True(t, c.Cluster.InsecureSkipVerify)
		assert.Empty(t, c.User.ClientCertificate)
	})

	for _, name := range []string{"undefined", "broken", "nouser"} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(p, name)
			assert.True(t, errors.Is(err, Err), "got %v", err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), "prod")
		assert.Error(t, err)
		assert.False(t, errors.Is(err, Err))
	})
}

func TestNew(t *testing.T) {
	p := writeConfig(t)
	SetConfigFile(p)
	defer SetConfigFile(DefaultConfigFile)

	t.Run("no context selected", func(t *testing.T) {
		t.Setenv(EnvContext, "")
		assert.False(t, IsSet())
		c, err := New()
		require.NoError(t, err)
		assert.Equal(t, T{}, c)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(EnvContext, "anonymous")
		c, err := New()
		require.NoError(t, err)
		assert.Equal(t, "anonymous", c.Name)
	})

	t.Run("override", func(t *testing.T) {
		t.Setenv(EnvContext, "anonymous")
		SetName("Prod")
		defer SetName("")
		c, err := New()
		require.NoError(t, err)
		assert.Equal(t, "Prod", c.Name)
		assert.Equal(t, "https://prod.example.com:19080", c.Cluster.Server)
	})
}
