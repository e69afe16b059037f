package jira

import (
	"context"
	"net/http"
)

// FindIssue retrieves a single issue by key or numeric id.
func (c *Client) FindIssue(ctx context.Context, issueKey string) (*Issue, error) {
	if err := c.login(ctx); err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, "issue/"+issueKey)
	if err != nil {
		return nil, err
	}

	switch resp.status {
	case http.StatusOK:
		var issue Issue
		if err := json.Unmarshal(resp.body, &issue); err != nil {
			return nil, decodeError("issue", err)
		}
		return &issue, nil
	case http.StatusNotFound:
		return nil, ErrNotFound.New("invalid issue number " + issueKey)
	default:
		return nil, unexpectedStatus("retrieving issue", resp.status, resp.body)
	}
}

// AddNewIssue creates an issue and returns the created record. A 400
// response surfaces the raw error body so the caller can see exactly
// which fields the remote service rejected.
func (c *Client) AddNewIssue(ctx context.Context, issue *Issue) (*Issue, error) {
	if err := c.login(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(issue)
	if err != nil {
		return nil, ErrValidation.MsgErr("failed to encode issue", err)
	}

	resp, err := c.do(ctx, requestOptions{
		method: http.MethodPost,
		family: familyAPI,
		path:   "issue",
		body:   body,
	})
	if err != nil {
		return nil, err
	}

	switch resp.status {
	case http.StatusOK, http.StatusCreated:
		var created Issue
		if err := json.Unmarshal(resp.body, &created); err != nil {
			return nil, decodeError("created issue", err)
		}
		return &created, nil
	case http.StatusBadRequest:
		return nil, ErrValidation.Msg(string(resp.body))
	default:
		return nil, unexpectedStatus("creating issue", resp.status, resp.body)
	}
}

// UpdateIssue applies a field update to an issue. Only a 200 counts as
// success; every other status is reported with its code.
func (c *Client) UpdateIssue(ctx context.Context, issueID string, update *IssueUpdate) error {
	if err := c.login(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(update)
	if err != nil {
		return ErrValidation.MsgErr("failed to encode issue update", err)
	}

	resp, err := c.do(ctx, requestOptions{
		method: http.MethodPut,
		family: familyAPI,
		path:   "issue/" + issueID,
		body:   body,
	})
	if err != nil {
		return err
	}

	if resp.status == http.StatusOK {
		return nil
	}
	return unexpectedStatus("updating issue "+issueID, resp.status, resp.body)
}

// DeleteIssue deletes an issue by key or numeric id. Only a 204 counts
// as success.
func (c *Client) DeleteIssue(ctx context.Context, issueID string) error {
	if err := c.login(ctx); err != nil {
		return err
	}

	resp, err := c.do(ctx, requestOptions{
		method: http.MethodDelete,
		family: familyAPI,
		path:   "issue/" + issueID,
	})
	if err != nil {
		return err
	}

	if resp.status == http.StatusNoContent {
		return nil
	}
	return unexpectedStatus("deleting issue "+issueID, resp.status, resp.body)
}

// LinkIssues creates a link between two issues.
func (c *Client) LinkIssues(ctx context.Context, link *IssueLink) error {
	if err := c.login(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(link)
	if err != nil {
		return ErrValidation.MsgErr("failed to encode issue link", err)
	}

	resp, err := c.do(ctx, requestOptions{
		method: http.MethodPost,
		family: familyAPI,
		path:   "issueLink",
		body:   body,
	})
	if err != nil {
		return err
	}

	switch resp.status {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusNotFound:
		return ErrNotFound.New("invalid project")
	default:
		return unexpectedStatus("linking issues", resp.status, resp.body)
	}
}

// AddComment adds a text comment to an issue.
func (c *Client) AddComment(ctx context.Context, issueID string, comment string) error {
	if err := c.login(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(Comment{Body: comment})
	if err != nil {
		return ErrValidation.MsgErr("failed to encode comment", err)
	}

	resp, err := c.do(ctx, requestOptions{
		method: http.MethodPost,
		family: familyAPI,
		path:   "issue/" + issueID + "/comment",
		body:   body,
	})
	if err != nil {
		return err
	}

	switch resp.status {
	case http.StatusCreated:
		return nil
	case http.StatusBadRequest:
		return ErrValidation.Msg("invalid comment fields: " + string(resp.body))
	default:
		return unexpectedStatus("adding comment to issue "+issueID, resp.status, resp.body)
	}
}
