// Package clientcontext loads the named connection contexts of the
// contexts file. A context binds a cluster endpoint to the user
// credentials used to connect to it.
//
//	contexts:
//	  prod:
//	    cluster: prod
//	    user: admin
//	clusters:
//	  prod:
//	    server: https://prod.example.com:19080
//	    api_version: "6.4"
//	users:
//	  admin:
//	    client_certificate: ~/.sfctl/admin.pem
//	    client_key: ~/.sfctl/admin.key
package clientcontext

import (
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type (
	config struct {
		Contexts map[string]relation `mapstructure:"contexts"`
		Clusters map[string]Cluster  `mapstructure:"clusters"`
		Users    map[string]User     `mapstructure:"users"`
	}

	// T is a dereferenced Cluster-User relation.
	T struct {
		Name    string  `json:"name"`
		Cluster Cluster `json:"cluster"`
		User    User    `json:"user"`
	}

	relation struct {
		ClusterRefName string `mapstructure:"cluster"`
		UserRefName    string `mapstructure:"user"`
	}

	// Cluster hosts the endpoint address, the certificate authority to
	// trust and the api version supported by the cluster.
	Cluster struct {
		Server               string `json:"server" mapstructure:"server"`
		CertificateAuthority string `json:"certificate_authority,omitempty" mapstructure:"certificate_authority"`
		InsecureSkipVerify   bool   `json:"insecure" mapstructure:"insecure"`
		APIVersion           string `json:"api_version,omitempty" mapstructure:"api_version"`
	}

	// User hosts the certificate and private key files used to connect
	// to the cluster.
	User struct {
		ClientCertificate string `json:"client_certificate" mapstructure:"client_certificate"`
		ClientKey         string `json:"client_key" mapstructure:"client_key"`
	}
)

const (
	// EnvContext is the environment variable naming the selected context.
	EnvContext = "SFCTL_CONTEXT"

	// DefaultConfigFile is the contexts file location.
	DefaultConfigFile = "~/.sfctl/config.yaml"
)

var (
	// Err is raised when a context definition has issues.
	Err = errors.New("context error")

	nameOverride string
	configFile   = DefaultConfigFile
)

// SetName selects the context by name, overriding the EnvContext
// environment variable.
func SetName(s string) {
	nameOverride = s
}

// SetConfigFile changes the contexts file location.
func SetConfigFile(s string) {
	configFile = s
}

// Name returns the name of the selected context, or an empty string.
func Name() string {
	if nameOverride != "" {
		return nameOverride
	}
	return os.Getenv(EnvContext)
}

// IsSet returns true if a context is selected.
func IsSet() bool {
	return Name() != ""
}

// New returns the selected connection context. The zero T is returned
// when no context is selected.
func New() (T, error) {
	name := Name()
	if name == "" {
		return T{}, nil
	}
	return Load(configFile, name)
}

// Load returns the context named name from the contexts file at path.
// Names are case insensitive.
func Load(path, name string) (T, error) {
	var cfg config
	c := T{Name: name}
	p, err := homedir.Expand(path)
	if err != nil {
		return c, err
	}
	v := viper.New()
	v.SetConfigFile(p)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return c, errors.Wrapf(err, "read %s", p)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return c, errors.Wrapf(Err, "%s: %s", p, err)
	}
	// viper lowercases the map keys
	cr, ok := cfg.Contexts[strings.ToLower(name)]
	if !ok {
		return c, errors.Wrapf(Err, "context not defined: %s", name)
	}
	c.Cluster, ok = cfg.Clusters[strings.ToLower(cr.ClusterRefName)]
	if !ok {
		return c, errors.Wrapf(Err, "cluster not defined: %s", cr.ClusterRefName)
	}
	if c.Cluster.Server == "" {
		return c, errors.Wrapf(Err, "cluster %s has no server", cr.ClusterRefName)
	}
	if cr.UserRefName != "" {
		c.User, ok = cfg.Users[strings.ToLower(cr.UserRefName)]
		if !ok {
			return c, errors.Wrapf(Err, "user not defined: %s", cr.UserRefName)
		}
		if c.User.ClientCertificate, err = homedir.Expand(c.User.ClientCertificate); err != nil {
			return c, err
		}
		if c.User.ClientKey, err = homedir.Expand(c.User.ClientKey); err != nil {
			return c, err
		}
	}
	log.Debug().Msgf("new context: %s", c)
	return c, nil
}

func (t T) String() string {
	b, _ := json.Marshal(t)
	return string(b)
}
