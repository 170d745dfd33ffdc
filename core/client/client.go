// Package client is the cluster management api client.
//
// Every operation takes a context, builds the request path and query, and
// decodes the response body with the field mappers of the model packages.
// Non-2xx responses are returned as *APIError.
package client

import (
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-version"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/opensvc/sfclient/core/clientcontext"
)

type (
	// T is the cluster api client.
	T struct {
		url                  string
		insecureSkipVerify   bool
		clientCertificate    string
		clientKey            string
		certificateAuthority string
		timeout              time.Duration
		clusterAPIVersion    *version.Version
		limiter              *rate.Limiter
		metrics              *metrics
		log                  zerolog.Logger
		httpClient           *http.Client
	}

	// Option is a functional option configurer.
	// https://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis
	Option interface {
		apply(t *T) error
	}

	optionFunc func(*T) error
)

const (
	// DefaultURL is the api endpoint used when neither the options nor the
	// selected context set one.
	DefaultURL = "http://localhost:19080"
)

func (fn optionFunc) apply(t *T) error {
	return fn(t)
}

// New allocates a new client configuration and returns the reference.
func New(opts ...Option) (*T, error) {
	t := &T{
		log: log.Logger.With().Str("pkg", "client").Logger(),
	}
	for _, opt := range opts {
		if err := opt.apply(t); err != nil {
			return nil, err
		}
	}
	if err := t.Configure(); err != nil {
		return nil, err
	}
	return t, nil
}

// URL is the option pointing the api location and protocol using the
// <scheme>://<addr>[:<port>] format.
//
// Supported schemes:
//   - https: http/2 with TLS
//   - tls: alias of https
//   - http: http/1.1 without TLS
//
// If unset, the server of the selected context is used.
func URL(url string) Option {
	return optionFunc(func(t *T) error {
		t.url = url
		return nil
	})
}

// InsecureSkipVerify skips certificate validity checks.
func InsecureSkipVerify() Option {
	return optionFunc(func(t *T) error {
		t.insecureSkipVerify = true
		return nil
	})
}

// Certificate sets the x509 client certificate file path.
func Certificate(s string) Option {
	return optionFunc(func(t *T) error {
		t.clientCertificate = s
		return nil
	})
}

// Key sets the x509 client private key file path.
func Key(s string) Option {
	return optionFunc(func(t *T) error {
		t.clientKey = s
		return nil
	})
}

// CertificateAuthority sets the path of the PEM file of the certificate
// authorities trusted to sign the server certificate.
func CertificateAuthority(s string) Option {
	return optionFunc(func(t *T) error {
		t.certificateAuthority = s
		return nil
	})
}

// Timeout bounds the duration of each request, response body included.
func Timeout(d time.Duration) Option {
	return optionFunc(func(t *T) error {
		t.timeout = d
		return nil
	})
}

// ClusterAPIVersion declares the api version supported by the cluster.
// Operations requiring a more recent version fail with
// ErrUnsupportedAPIVersion without sending a request.
func ClusterAPIVersion(s string) Option {
	return optionFunc(func(t *T) error {
		v, err := version.NewVersion(s)
		if err != nil {
			return errors.Wrapf(err, "cluster api version %s", s)
		}
		t.clusterAPIVersion = v
		return nil
	})
}

// RateLimit caps the request rate to r requests per second, allowing
// bursts of burst requests.
func RateLimit(r float64, burst int) Option {
	return optionFunc(func(t *T) error {
		t.limiter = rate.NewLimiter(rate.Limit(r), burst)
		return nil
	})
}

// WithMetrics registers the request counters and durations collectors.
func WithMetrics(reg prometheus.Registerer) Option {
	return optionFunc(func(t *T) error {
		m, err := newMetrics(reg)
		if err != nil {
			return err
		}
		t.metrics = m
		return nil
	})
}

// WithLogger sets the logger of the client.
func WithLogger(l zerolog.Logger) Option {
	return optionFunc(func(t *T) error {
		t.log = l
		return nil
	})
}

// WithHTTPClient sets the http client, bypassing the transport setup.
func WithHTTPClient(c *http.Client) Option {
	return optionFunc(func(t *T) error {
		t.httpClient = c
		return nil
	})
}

// Configure loads the selected context if no URL is set, and sets up
// the transport.
func (t *T) Configure() error {
	if t.url == "" {
		if err := t.loadContext(); err != nil {
			return err
		}
	}
	if t.url == "" {
		t.url = DefaultURL
	}
	if strings.HasPrefix(t.url, "tls://") {
		t.url = "https://" + t.url[6:]
	}
	t.url = strings.TrimSuffix(t.url, "/")
	if t.httpClient == nil {
		c, err := t.newHTTPClient()
		if err != nil {
			return err
		}
		t.httpClient = c
	}
	t.log.Debug().Msgf("configured %s", t)
	return nil
}

func (t *T) loadContext() error {
	c, err := clientcontext.New()
	if err != nil {
		return err
	}
	if c.Cluster.Server == "" {
		return nil
	}
	t.url = c.Cluster.Server
	t.insecureSkipVerify = c.Cluster.InsecureSkipVerify
	t.clientCertificate = c.User.ClientCertificate
	t.clientKey = c.User.ClientKey
	t.certificateAuthority = c.Cluster.CertificateAuthority
	if c.Cluster.APIVersion != "" && t.clusterAPIVersion == nil {
		return ClusterAPIVersion(c.Cluster.APIVersion).apply(t)
	}
	return nil
}

// URL returns the api endpoint.
func (t *T) URL() string {
	return t.url
}

func (t *T) String() string {
	m := map[string]any{
		"url":      t.url,
		"insecure": t.insecureSkipVerify,
	}
	if t.clusterAPIVersion != nil {
		m["cluster_api_version"] = t.clusterAPIVersion.Original()
	}
	b, _ := json.Marshal(m)
	return "client" + string(b)
}
