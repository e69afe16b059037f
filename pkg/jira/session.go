package jira

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
)

// session holds the cookies issued by the last successful login. Access
// is guarded because operations may run concurrently against one client;
// the last successful login wins.
type session struct {
	mu      sync.Mutex
	cookies []string
}

// replace swaps the stored cookies wholesale. Called only after a 200
// from the session endpoint.
func (s *session) replace(cookies []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cookies = cookies
}

// header returns the Cookie header value: the stored set-cookie values
// joined with ";", verbatim.
func (s *session) header() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.cookies, ";")
}

type sessionCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates against the session endpoint and stores the issued
// cookies. On any failure the previously stored cookies are left
// untouched. Every operation performs this exchange before its own
// request; Login is exported for callers that want to verify credentials
// up front.
func (c *Client) Login(ctx context.Context) error {
	body, err := json.Marshal(sessionCredentials{
		Username: c.config.Username,
		Password: c.config.Password,
	})
	if err != nil {
		return ErrConnection.MsgErr("failed to encode credentials", err)
	}

	resp, err := c.do(ctx, requestOptions{
		method: http.MethodPost,
		family: familyAuth,
		path:   "session",
		body:   body,
	})
	if err != nil {
		return err
	}

	switch resp.status {
	case http.StatusOK:
		c.session.replace(resp.header.Values("Set-Cookie"))
		return nil
	case http.StatusUnauthorized:
		return ErrAuthentication.New("wrong username or password")
	default:
		return ErrConnection.Msg("unable to connect to jira during login, status code: " + strconv.Itoa(resp.status)).SetStatusCode(resp.status)
	}
}

// login is the per-operation authentication step. A failure here
// short-circuits the operation entirely; no request is attempted.
func (c *Client) login(ctx context.Context) error {
	return c.Login(ctx)
}
