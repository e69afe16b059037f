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

func TestAddWorklog(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/api/2/issue/TEST-1/worklog", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "3h", gjson.GetBytes(body, "timeSpent").String())
		assert.Equal(t, "debugging", gjson.GetBytes(body, "comment").String())
		w.WriteHeader(http.StatusCreated)
	})
	client := f.client(t)

	err := client.AddWorklog(context.Background(), "TEST-1", &Worklog{
		TimeSpent: "3h",
		Comment:   "debugging",
	})
	assert.NoError(t, err)
}

func TestAddWorklogInvalidFields(t *testing.T) {
	f := newFakeJira(t)
	const errBody = `{"errorMessages":[],"errors":{"timeSpent":"Invalid time duration entered"}}`
	f.handle("/rest/api/2/issue/TEST-1/worklog", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(errBody))
	})
	client := f.client(t)

	err := client.AddWorklog(context.Background(), "TEST-1", &Worklog{TimeSpent: "bogus"})
	assert.ErrorIs(t, err, ErrValidation)
	// the response body is dumped into the error text
	assert.Contains(t, err.Error(), errBody)
}

func TestAddWorklogForbidden(t *testing.T) {
	f := newFakeJira(t)
	f.handle("/rest/api/2/issue/TEST-1/worklog", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	client := f.client(t)

	err := client.AddWorklog(context.Background(), "TEST-1", &Worklog{TimeSpent: "3h"})
	assert.ErrorIs(t, err, ErrPermission)
}
