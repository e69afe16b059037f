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

func TestFindIssue(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/api/2/issue/TEST-1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{"id":"10000","key":"TEST-1","fields":{"summary":"a bug","status":{"name":"Open"}}}`))
	})
	client := f.client(t)

	issue, err := client.FindIssue(context.Background(), "TEST-1")
	require.NoError(t, err)
	assert.Equal(t, "10000", issue.ID)
	assert.Equal(t, "a bug", issue.Fields.Summary)
	assert.Equal(t, "Open", issue.Fields.Status.Name)
}

func TestFindIssueNotFound(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/api/2/issue/NOPE-1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	client := f.client(t)

	_, err := client.FindIssue(context.Background(), "NOPE-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "NOPE-1")
}

func TestFindIssueMalformedBody(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/api/2/issue/TEST-1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"key": "TEST-1"`))
	})
	client := f.client(t)

	_, err := client.FindIssue(context.Background(), "TEST-1")
	assert.ErrorIs(t, err, ErrDecode)
	assert.NotErrorIs(t, err, ErrUnexpectedStatus)
}

func TestAddNewIssue(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/api/2/issue", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "a new bug", gjson.GetBytes(body, "fields.summary").String())
		assert.Equal(t, "TEST", gjson.GetBytes(body, "fields.project.key").String())
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"10042","key":"TEST-42"}`))
	})
	client := f.client(t)

	created, err := client.AddNewIssue(context.Background(), &Issue{
		Fields: &IssueFields{
			Summary: "a new bug",
			Project: &Project{Key: "TEST"},
			IssueType: &IssueType{Name: "Bug"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "TEST-42", created.Key)
}

func TestAddNewIssueRejected(t *testing.T) {
	f := newFakeJira(t)
	const errBody = `{"errorMessages":[],"errors":{"summary":"You must specify a summary of the issue."}}`
	f.handle("/rest/api/2/issue", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(errBody))
	})
	client := f.client(t)

	_, err := client.AddNewIssue(context.Background(), &Issue{Fields: &IssueFields{}})
	assert.ErrorIs(t, err, ErrValidation)
	// the raw error body is surfaced as the error text
	assert.Equal(t, errBody, err.Error())
}

func TestUpdateIssue(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/api/2/issue/TEST-1", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "renamed", gjson.GetBytes(body, "fields.summary").String())
		w.WriteHeader(http.StatusOK)
	})
	client := f.client(t)

	err := client.UpdateIssue(context.Background(), "TEST-1", &IssueUpdate{
		Fields: map[string]any{"summary": "renamed"},
	})
	assert.NoError(t, err)
}

func TestUpdateIssueFailure(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/api/2/issue/TEST-1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})
	client := f.client(t)

	err := client.UpdateIssue(context.Background(), "TEST-1", &IssueUpdate{})
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "409")
}

func TestDeleteIssue(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/api/2/issue/TEST-1", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})
	client := f.client(t)

	assert.NoError(t, client.DeleteIssue(context.Background(), "TEST-1"))
}

func TestDeleteIssueFailure(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/api/2/issue/TEST-1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	client := f.client(t)

	err := client.DeleteIssue(context.Background(), "TEST-1")
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "500")
}

func TestLinkIssues(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/api/2/issueLink", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "Blocks", gjson.GetBytes(body, "type.name").String())
		assert.Equal(t, "TEST-1", gjson.GetBytes(body, "inwardIssue.key").String())
		w.WriteHeader(http.StatusOK)
	})
	client := f.client(t)

	err := client.LinkIssues(context.Background(), &IssueLink{
		Type:         LinkType{Name: "Blocks"},
		InwardIssue:  LinkedIssue{Key: "TEST-1"},
		OutwardIssue: LinkedIssue{Key: "TEST-2"},
	})
	assert.NoError(t, err)
}

func TestLinkIssuesInvalidProject(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/api/2/issueLink", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	client := f.client(t)

	err := client.LinkIssues(context.Background(), &IssueLink{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddComment(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/api/2/issue/TEST-1/comment", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "looks fixed", gjson.GetBytes(body, "body").String())
		w.WriteHeader(http.StatusCreated)
	})
	client := f.client(t)

	assert.NoError(t, client.AddComment(context.Background(), "TEST-1", "looks fixed"))
}

func TestAddCommentRejected(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/api/2/issue/TEST-1/comment", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errorMessages":["comment body too long"]}`))
	})
	client := f.client(t)

	err := client.AddComment(context.Background(), "TEST-1", "nope")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "comment body too long")
}
