package jira

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestFindRapidViewCaseInsensitive(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/greenhopper/2/rapidviews/list", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"views":[{"id":1,"name":"other"},{"id":2,"name":"alpha","sprintSupportEnabled":true}]}`))
	})
	client := f.client(t)

	view, err := client.FindRapidView(context.Background(), "Alpha")
	require.NoError(t, err)
	assert.Equal(t, 2, view.ID)
	assert.Equal(t, "alpha", view.Name)
}

func TestFindRapidViewNoMatch(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/greenhopper/2/rapidviews/list", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"views":[{"id":1,"name":"other"}]}`))
	})
	client := f.client(t)

	_, err := client.FindRapidView(context.Background(), "Alpha")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindRapidViewInvalidURL(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/greenhopper/2/rapidviews/list", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	client := f.client(t)

	_, err := client.FindRapidView(context.Background(), "Alpha")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "invalid url")
}

func TestGetLastSprintForRapidView(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/greenhopper/2/sprintquery/7", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sprints":[{"id":10,"name":"Sprint 1","closed":true},{"id":11,"name":"Sprint 2","state":"ACTIVE"}],"rapidViewId":7}`))
	})
	client := f.client(t)

	sprint, err := client.GetLastSprintForRapidView(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 11, sprint.ID)
	assert.Equal(t, "Sprint 2", sprint.Name)
}

func TestGetLastSprintForRapidViewNoSprints(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/greenhopper/2/sprintquery/7", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sprints":[],"rapidViewId":7}`))
	})
	client := f.client(t)

	_, err := client.GetLastSprintForRapidView(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddIssueToSprint(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/greenhopper/2/sprint/11/issues/add", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		body, _ := io.ReadAll(r.Body)
		keys := gjson.GetBytes(body, "issueKeys").Array()
		require.Len(t, keys, 1)
		assert.Equal(t, "TEST-1", keys[0].String())
		w.WriteHeader(http.StatusNoContent)
	})
	client := f.client(t)

	assert.NoError(t, client.AddIssueToSprint(context.Background(), "TEST-1", 11))
}

func TestAddIssueToSprintInvalidURL(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/greenhopper/2/sprint/99/issues/add", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	client := f.client(t)

	err := client.AddIssueToSprint(context.Background(), "TEST-1", 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
