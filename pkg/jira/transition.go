package jira

import (
	"context"
	"net/http"

	"github.com/tidwall/sjson"
)

// ListTransitions returns the state changes currently available to an
// issue.
func (c *Client) ListTransitions(ctx context.Context, issueID string) ([]Transition, error) {
	if err := c.login(ctx); err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, "issue/"+issueID+"/transitions")
	if err != nil {
		return nil, err
	}

	switch resp.status {
	case http.StatusOK:
		var list struct {
			Transitions []Transition `json:"transitions"`
		}
		if err := json.Unmarshal(resp.body, &list); err != nil {
			return nil, decodeError("transition list", err)
		}
		return list.Transitions, nil
	case http.StatusNotFound:
		return nil, ErrNotFound.New("issue " + issueID + " not found")
	default:
		return nil, unexpectedStatus("retrieving transitions", resp.status, resp.body)
	}
}

// TransitionIssue applies the transition with the given id to an issue.
func (c *Client) TransitionIssue(ctx context.Context, issueID string, transitionID string) error {
	if err := c.login(ctx); err != nil {
		return err
	}

	body, err := sjson.SetBytes([]byte(`{}`), "transition.id", transitionID)
	if err != nil {
		return ErrValidation.MsgErr("failed to encode transition request", err)
	}

	resp, err := c.do(ctx, requestOptions{
		method: http.MethodPost,
		family: familyAPI,
		path:   "issue/" + issueID + "/transitions",
		body:   body,
	})
	if err != nil {
		return err
	}

	if resp.status == http.StatusNoContent {
		return nil
	}
	return unexpectedStatus("transitioning issue "+issueID, resp.status, resp.body)
}
