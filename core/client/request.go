package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-version"
	"github.com/oapi-codegen/runtime"
	"github.com/pkg/errors"

	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	// request describes an api call.
	request struct {
		operation  string
		method     string
		path       string
		apiVersion string
		query      url.Values
		body       []byte
	}
)

func newRequest(operation, method, path, apiVersion string) *request {
	return &request{
		operation:  operation,
		method:     method,
		path:       path,
		apiVersion: apiVersion,
		query:      make(url.Values),
	}
}

// addQuery styles the parameter value v as a form query parameter.
func (r *request) addQuery(name string, v any) error {
	frag, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, v)
	if err != nil {
		return errors.Wrapf(err, "%s query parameter %s", r.operation, name)
	}
	parsed, err := url.ParseQuery(frag)
	if err != nil {
		return errors.Wrapf(err, "%s query parameter %s", r.operation, name)
	}
	for k, l := range parsed {
		for _, s := range l {
			r.query.Add(k, s)
		}
	}
	return nil
}

// addOptionalQuery is addQuery for parameters unset when p is nil.
func addOptionalQuery[V any](r *request, name string, p *V) error {
	if p == nil {
		return nil
	}
	return r.addQuery(name, *p)
}

func (r *request) withBody(b []byte) *request {
	r.body = b
	return r
}

// checkVersion verifies the operation api version is supported by the
// declared cluster api version.
func (t *T) checkVersion(r *request) error {
	if t.clusterAPIVersion == nil {
		return nil
	}
	want, err := version.NewVersion(r.apiVersion)
	if err != nil {
		return errors.Wrapf(err, "%s api version", r.operation)
	}
	if t.clusterAPIVersion.LessThan(want) {
		return errors.Wrapf(ErrUnsupportedAPIVersion, "%s requires api version %s, cluster supports %s",
			r.operation, want.Original(), t.clusterAPIVersion.Original())
	}
	return nil
}

func (t *T) newHTTPRequest(ctx context.Context, r *request) (*http.Request, error) {
	serverURL, err := url.Parse(t.url)
	if err != nil {
		return nil, err
	}
	queryURL, err := serverURL.Parse(r.path)
	if err != nil {
		return nil, err
	}
	values := queryURL.Query()
	values.Set("api-version", r.apiVersion)
	for k, l := range r.query {
		for _, s := range l {
			values.Add(k, s)
		}
	}
	queryURL.RawQuery = values.Encode()

	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, queryURL.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do sends the request and returns the response of a 2xx status. The
// caller must close the response body.
func (t *T) do(ctx context.Context, r *request) (*http.Response, error) {
	if err := t.checkVersion(r); err != nil {
		return nil, err
	}
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	req, err := t.newHTTPRequest(ctx, r)
	if err != nil {
		return nil, err
	}
	begin := time.Now()
	resp, err := t.httpClient.Do(req)
	duration := time.Since(begin)
	if err != nil {
		t.observe(r, "error", duration)
		t.log.Debug().Err(err).Str("method", r.method).Str("path", r.path).Dur("duration", duration).Msg("request")
		return nil, err
	}
	t.observe(r, strconv.Itoa(resp.StatusCode), duration)
	t.log.Debug().Str("method", r.method).Str("path", r.path).Int("status", resp.StatusCode).Dur("duration", duration).Msg("request")
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, newAPIError(r, resp)
	}
	return resp, nil
}

func (t *T) observe(r *request, code string, d time.Duration) {
	if t.metrics == nil {
		return
	}
	t.metrics.requests.WithLabelValues(r.operation, r.method, code).Inc()
	t.metrics.duration.WithLabelValues(r.operation).Observe(d.Seconds())
}

func newAPIError(r *request, resp *http.Response) error {
	e := &APIError{
		Method:     r.method,
		Path:       r.path,
		StatusCode: resp.StatusCode,
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil || len(b) == 0 {
		return e
	}
	var fe fabric.FabricError
	if err := jsonfield.Unmarshal(b, &fe); err == nil && fe.Detail.Code != "" {
		e.Fabric = &fe
	}
	return e
}

// get sends the request and decodes the response body with c.
func get[V any](ctx context.Context, t *T, r *request, c jsonfield.Codec[V]) (V, error) {
	var zero V
	resp, err := t.do(ctx, r)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()
	v, err := jsonfield.Decode(resp.Body, c)
	if err != nil {
		return zero, errors.Wrapf(err, "%s response", r.operation)
	}
	return v, nil
}

// send sends the request and discards the response body.
func (t *T) send(ctx context.Context, r *request) error {
	resp, err := t.do(ctx, r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// body returns the JSON encoding of v, for use as a request body.
func body[V any](operation string, v V, c jsonfield.Codec[V]) ([]byte, error) {
	b, err := jsonfield.MarshalValue(v, c)
	if err != nil {
		return nil, errors.Wrapf(err, "%s request body", operation)
	}
	return b, nil
}
