package jira

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginStoresCookies(t *testing.T) {
	f := newFakeJira(t)
	client := f.client(t)

	require.NoError(t, client.Login(context.Background()))
	assert.Equal(t, 1, f.loginCalls)
	assert.Equal(t, testCookie, client.session.header())
}

func TestOperationEchoesSessionCookie(t *testing.T) {
	f := newFakeJira(t)
	var gotCookie string
	f.handle("/rest/api/2/issue/TEST-1", func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		w.Write([]byte(`{"id":"10000","key":"TEST-1","fields":{"summary":"a bug"}}`))
	})
	client := f.client(t)

	issue, err := client.FindIssue(context.Background(), "TEST-1")
	require.NoError(t, err)
	assert.Equal(t, "TEST-1", issue.Key)
	assert.Equal(t, testCookie, gotCookie)
}

func TestLoginRejectedShortCircuitsOperation(t *testing.T) {
	f := newFakeJira(t)
	f.loginStatus = http.StatusUnauthorized
	apiCalls := 0
	f.handle("/rest/api/2/issue/TEST-1", func(w http.ResponseWriter, r *http.Request) {
		apiCalls++
		w.Write([]byte(`{}`))
	})
	client := f.client(t)

	_, err := client.FindIssue(context.Background(), "TEST-1")
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.Equal(t, 0, apiCalls, "no request may be issued after a failed login")
}

func TestLoginUnexpectedStatus(t *testing.T) {
	f := newFakeJira(t)
	f.loginStatus = http.StatusServiceUnavailable
	client := f.client(t)

	err := client.Login(context.Background())
	assert.ErrorIs(t, err, ErrConnection)
	assert.Contains(t, err.Error(), "503")
}

func TestEveryOperationLogsInAgain(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/api/2/issue/TEST-1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"key":"TEST-1"}`))
	})
	client := f.client(t)

	_, err := client.FindIssue(context.Background(), "TEST-1")
	require.NoError(t, err)
	_, err = client.FindIssue(context.Background(), "TEST-1")
	require.NoError(t, err)
	assert.Equal(t, 2, f.loginCalls)
}

func TestCookiesReplacedWholesaleOnRelogin(t *testing.T) {
	f := newFakeJira(t)
	cookies := make([]string, 0, 2)
	f.handle("/rest/api/2/issue/TEST-1", func(w http.ResponseWriter, r *http.Request) {
		cookies = append(cookies, r.Header.Get("Cookie"))
		w.Write([]byte(`{"key":"TEST-1"}`))
	})
	client := f.client(t)

	_, err := client.FindIssue(context.Background(), "TEST-1")
	require.NoError(t, err)

	f.cookie = "JSESSIONID=ROTATED; Path=/"
	_, err = client.FindIssue(context.Background(), "TEST-1")
	require.NoError(t, err)

	require.Len(t, cookies, 2)
	assert.Equal(t, testCookie, cookies[0])
	assert.Equal(t, "JSESSIONID=ROTATED; Path=/", cookies[1])
}

func TestFailedLoginLeavesCookiesUntouched(t *testing.T) {
	f := newFakeJira(t)
	client := f.client(t)

	require.NoError(t, client.Login(context.Background()))
	require.Equal(t, testCookie, client.session.header())

	f.loginStatus = http.StatusUnauthorized
	assert.Error(t, client.Login(context.Background()))
	assert.Equal(t, testCookie, client.session.header())
}
