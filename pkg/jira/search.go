package jira

import (
	"context"
	"net/http"
)

type searchRequest struct {
	JQL        string   `json:"jql"`
	StartAt    int      `json:"startAt,omitempty"`
	MaxResults int      `json:"maxResults,omitempty"`
	Fields     []string `json:"fields,omitempty"`
}

// SearchJira runs a JQL query. The query string is passed to the remote
// service verbatim; a 400 response surfaces the server's complaint about
// the JQL.
func (c *Client) SearchJira(ctx context.Context, jql string, opts *SearchOptions) (*SearchResult, error) {
	if err := c.login(ctx); err != nil {
		return nil, err
	}

	search := searchRequest{JQL: jql}
	if opts != nil {
		search.StartAt = opts.StartAt
		search.MaxResults = opts.MaxResults
		search.Fields = opts.Fields
	}
	body, err := json.Marshal(search)
	if err != nil {
		return nil, ErrValidation.MsgErr("failed to encode search request", err)
	}

	resp, err := c.do(ctx, requestOptions{
		method: http.MethodPost,
		family: familyAPI,
		path:   "search",
		body:   body,
	})
	if err != nil {
		return nil, err
	}

	switch resp.status {
	case http.StatusOK:
		var result SearchResult
		if err := json.Unmarshal(resp.body, &result); err != nil {
			return nil, decodeError("search result", err)
		}
		return &result, nil
	case http.StatusBadRequest:
		msg := serverMessage(resp.body)
		if msg == "" {
			msg = "problem with the JQL query"
		}
		return nil, ErrValidation.Msg(msg)
	default:
		return nil, unexpectedStatus("searching", resp.status, resp.body)
	}
}

// GetUsersIssues returns the issues assigned to the given user. When
// openOnly is set the query is restricted to statuses Open,
// "In Progress", and Reopened.
func (c *Client) GetUsersIssues(ctx context.Context, username string, openOnly bool) (*SearchResult, error) {
	jql := "assignee = " + username
	if openOnly {
		jql += ` AND status in (Open, "In Progress", Reopened)`
	}
	return c.SearchJira(ctx, jql, nil)
}
