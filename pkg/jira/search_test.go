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

func TestSearchJira(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/api/2/search", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "project = TEST", gjson.GetBytes(body, "jql").String())
		assert.Equal(t, int64(50), gjson.GetBytes(body, "maxResults").Int())
		w.Write([]byte(`{"startAt":0,"maxResults":50,"total":1,"issues":[{"key":"TEST-1","fields":{"summary":"a bug"}}]}`))
	})
	client := f.client(t)

	result, err := client.SearchJira(context.Background(), "project = TEST", &SearchOptions{MaxResults: 50})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "TEST-1", result.Issues[0].Key)
}

func TestSearchJiraBadJQL(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/api/2/search", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errorMessages":["Field 'bogus' does not exist"],"errors":{}}`))
	})
	client := f.client(t)

	_, err := client.SearchJira(context.Background(), "bogus ~ thing", nil)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Field 'bogus' does not exist")
}

func TestGetUsersIssuesJQL(t *testing.T) {
	f := newFakeJira(t)
	var jql string
	f.handle("/rest/api/2/search", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		jql = gjson.GetBytes(body, "jql").String()
		w.Write([]byte(`{"startAt":0,"maxResults":50,"total":0,"issues":[]}`))
	})
	client := f.client(t)

	_, err := client.GetUsersIssues(context.Background(), "fred", true)
	require.NoError(t, err)
	assert.Equal(t, `assignee = fred AND status in (Open, "In Progress", Reopened)`, jql)

	_, err = client.GetUsersIssues(context.Background(), "fred", false)
	require.NoError(t, err)
	assert.Equal(t, "assignee = fred", jql)
}
