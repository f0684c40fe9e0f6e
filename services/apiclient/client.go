// Package apiclient builds the HTTP client used to talk to the school backend API.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/net/publicsuffix"

	"github.com/trezcool/escola/core"
)

// Default headers
const (
	HeaderAPIKey        = "x-api-key"
	HeaderContentType   = "Content-Type"
	MIMEApplicationJSON = "application/json"
)

// Request describes a call relative to the client base URL.
// Headers override the client default headers.
type Request struct {
	Method  rest.Method
	Path    string
	Query   map[string]string
	Headers map[string]string
	Body    []byte
}

// StatusError is returned for responses outside of the 2xx range.
type StatusError struct {
	StatusCode int
	Body       string
}

func (err *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", err.StatusCode, http.StatusText(err.StatusCode))
}

// Client sends requests to the backend API. It is safe for concurrent use.
type Client struct {
	baseURL string
	headers map[string]string
	http    *http.Client
}

var _ core.APIClient = (*Client)(nil)

// New returns a Client configured from conf:
//   - every request path is resolved against conf.BaseURL,
//   - conf.WithCredentials keeps cookies set by the API in a jar and sends them back,
//   - requests running longer than conf.Timeout fail with a timeout error,
//   - the API key and JSON content type headers are sent with every request,
//   - every request is traced and carries the trace context; opts default to the global
//     tracer provider and propagator.
func New(conf core.APIConfig, opts ...otelhttp.Option) (*Client, error) {
	httpClient := &http.Client{
		Timeout:   conf.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport, opts...),
	}
	if conf.WithCredentials {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, errors.Wrap(err, "creating cookie jar")
		}
		httpClient.Jar = jar
	}

	return &Client{
		baseURL: strings.TrimRight(conf.BaseURL, "/"),
		headers: map[string]string{
			HeaderAPIKey:      conf.Key,
			HeaderContentType: MIMEApplicationJSON,
		},
		http: httpClient,
	}, nil
}

// NewFromConfig is New for the application configuration.
func NewFromConfig(conf *core.Config) (*Client, error) {
	return New(conf.API)
}

func (c *Client) url(path string) string {
	if path == "" {
		return c.baseURL
	}
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) buildRequest(req Request) rest.Request {
	headers := make(map[string]string, len(c.headers)+len(req.Headers))
	for k, v := range c.headers {
		headers[k] = v
	}
	for k, v := range req.Headers {
		// header names are case insensitive: drop the default one it overrides
		for dk := range headers {
			if strings.EqualFold(dk, k) {
				delete(headers, dk)
			}
		}
		headers[k] = v
	}

	method := req.Method
	if method == "" {
		method = rest.Get
	}
	return rest.Request{
		Method:      method,
		BaseURL:     c.url(req.Path),
		Headers:     headers,
		QueryParams: req.Query,
		Body:        req.Body,
	}
}

// Send performs req. Transport failures (including timeouts) are returned wrapped;
// non-2xx responses return a *StatusError along with the response.
func (c *Client) Send(ctx context.Context, req Request) (*rest.Response, error) {
	httpReq, err := rest.BuildRequestObject(c.buildRequest(req))
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}

	httpRes, err := c.http.Do(httpReq.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", httpReq.Method, req.Path)
	}

	res, err := rest.BuildResponse(httpRes)
	if err != nil {
		return nil, errors.Wrap(err, "reading response")
	}
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return res, &StatusError{StatusCode: res.StatusCode, Body: res.Body}
	}
	return res, nil
}

// GetJSON performs a GET request for path and decodes the JSON response body into out.
func (c *Client) GetJSON(ctx context.Context, path string, query map[string]string, out interface{}) error {
	res, err := c.Send(ctx, Request{Method: rest.Get, Path: path, Query: query})
	if err != nil {
		return err
	}
	if out == nil || strings.TrimSpace(res.Body) == "" {
		return nil
	}
	if err = json.Unmarshal([]byte(res.Body), out); err != nil {
		return errors.Wrapf(err, "decoding %s response", path)
	}
	return nil
}
