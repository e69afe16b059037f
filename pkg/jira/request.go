package jira

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jirakit/jirakit/internal/common/uuid"
)

// API families consumed by the client. Core resources live under
// rest/api/<version>, agile boards and sprints under
// rest/greenhopper/<version>, and the login exchange under rest/auth/1.
const (
	familyAPI   = "api"
	familyAgile = "greenhopper"
	familyAuth  = "auth"
)

// authVersion is fixed by the remote service independent of APIVersion.
const authVersion = "1"

// requestOptions describes a single request to build and dispatch.
// A fresh descriptor is constructed per call; nothing is reused.
type requestOptions struct {
	method string
	family string
	path   string
	body   []byte // JSON, already encoded
}

// response is the raw outcome of a dispatched request, prior to the
// operation's status classification.
type response struct {
	status int
	body   []byte
	header http.Header
}

// newRequest builds a fully-specified HTTP request: the resource URI,
// the Cookie header from the current session, and JSON content headers.
// No validation of path or body shape happens here; that is the remote
// service's responsibility.
func (c *Client) newRequest(ctx context.Context, opts requestOptions) (*http.Request, error) {
	version := c.config.APIVersion
	if opts.family == familyAuth {
		version = authVersion
	}

	host := c.config.Host
	if c.config.Port != "" {
		host = host + ":" + c.config.Port
	}
	u := url.URL{
		Scheme: c.config.Protocol,
		Host:   host,
		Path:   fmt.Sprintf("/rest/%s/%s/%s", opts.family, version, opts.path),
	}

	var bodyReader io.Reader
	if opts.body != nil {
		bodyReader = bytes.NewReader(opts.body)
	}
	req, err := http.NewRequestWithContext(ctx, opts.method, u.String(), bodyReader)
	if err != nil {
		return nil, ErrConnection.MsgErr("failed to create request", err)
	}

	req.Header.Set("Accept", "application/json")
	if opts.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// The login exchange itself carries no cookie.
	if opts.family != familyAuth {
		if cookie := c.session.header(); cookie != "" {
			req.Header.Set("Cookie", cookie)
		}
	}

	return req, nil
}

// do builds and dispatches a request and returns the raw status, body,
// and headers. Transport failures surface as ErrConnection; status
// classification is left to the calling operation.
func (c *Client) do(ctx context.Context, opts requestOptions) (*response, error) {
	req, err := c.newRequest(ctx, opts)
	if err != nil {
		return nil, err
	}

	logger := c.logger.With().
		Stringer("request_id", uuid.New()).
		Str("method", opts.method).
		Str("path", req.URL.Path).
		Logger()
	logger.Debug().Msg("dispatching request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug().Err(err).Msg("request failed")
		return nil, ErrConnection.MsgErr("unable to connect to "+c.config.Host, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Debug().Err(err).Msg("failed to read response body")
		return nil, ErrConnection.MsgErr("failed to read response body", err)
	}

	logger.Debug().Int("status", resp.StatusCode).Msg("request complete")
	return &response{
		status: resp.StatusCode,
		body:   body,
		header: resp.Header,
	}, nil
}

// get is shorthand for dispatching a bodyless GET against the core API.
func (c *Client) get(ctx context.Context, path string) (*response, error) {
	return c.do(ctx, requestOptions{method: http.MethodGet, family: familyAPI, path: path})
}
