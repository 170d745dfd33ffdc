package client

import (
	"crypto/tls"
	"crypto/x509"
	"net/http"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/http2"
)

func (t *T) newHTTPClient() (*http.Client, error) {
	switch {
	case strings.HasPrefix(t.url, "https://"):
		tp, err := t.newH2Transport()
		if err != nil {
			return nil, err
		}
		return &http.Client{Transport: tp, Timeout: t.timeout}, nil
	case strings.HasPrefix(t.url, "http://"):
		return &http.Client{Transport: http.DefaultTransport, Timeout: t.timeout}, nil
	default:
		return nil, errors.Errorf("unsupported url scheme: %s", t.url)
	}
}

func (t *T) newH2Transport() (*http2.Transport, error) {
	cfg := &tls.Config{
		InsecureSkipVerify: t.insecureSkipVerify,
	}
	if t.clientCertificate != "" {
		cer, err := tls.LoadX509KeyPair(t.clientCertificate, t.clientKey)
		if err != nil {
			return nil, errors.Wrap(err, "load client certificate")
		}
		cfg.Certificates = []tls.Certificate{cer}
	}
	if t.certificateAuthority != "" {
		b, err := os.ReadFile(t.certificateAuthority)
		if err != nil {
			return nil, errors.Wrap(err, "load certificate authority")
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(b) {
			return nil, errors.Errorf("no certificate found in %s", t.certificateAuthority)
		}
		cfg.RootCAs = pool
	}
	return &http2.Transport{TLSClientConfig: cfg}, nil
}
