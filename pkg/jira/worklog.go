package jira

import (
	"context"
	"net/http"
)

// AddWorklog records a work entry on an issue. A 400 response includes
// the remote service's body so the caller can see which worklog fields
// were rejected.
func (c *Client) AddWorklog(ctx context.Context, issueID string, worklog *Worklog) error {
	if err := c.login(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(worklog)
	if err != nil {
		return ErrValidation.MsgErr("failed to encode worklog", err)
	}

	resp, err := c.do(ctx, requestOptions{
		method: http.MethodPost,
		family: familyAPI,
		path:   "issue/" + issueID + "/worklog",
		body:   body,
	})
	if err != nil {
		return err
	}

	switch resp.status {
	case http.StatusCreated:
		return nil
	case http.StatusBadRequest:
		return ErrValidation.Msg("invalid worklog fields: " + string(resp.body))
	case http.StatusForbidden:
		return ErrPermission.New("insufficient permissions to add worklog")
	default:
		return unexpectedStatus("adding worklog to issue "+issueID, resp.status, resp.body)
	}
}
