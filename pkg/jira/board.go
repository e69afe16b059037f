package jira

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/tidwall/sjson"
)

// FindRapidView returns the rapid view whose name matches
// viewName case-insensitively. The first match wins.
func (c *Client) FindRapidView(ctx context.Context, viewName string) (*RapidView, error) {
	if err := c.login(ctx); err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, requestOptions{
		method: http.MethodGet,
		family: familyAgile,
		path:   "rapidviews/list",
	})
	if err != nil {
		return nil, err
	}

	switch resp.status {
	case http.StatusOK:
		var list struct {
			Views []RapidView `json:"views"`
		}
		if err := json.Unmarshal(resp.body, &list); err != nil {
			return nil, decodeError("rapid view list", err)
		}
		for i := range list.Views {
			if strings.EqualFold(list.Views[i].Name, viewName) {
				return &list.Views[i], nil
			}
		}
		return nil, ErrNotFound.New("rapid view " + viewName + " not found")
	case http.StatusNotFound:
		return nil, ErrNotFound.New("invalid url")
	default:
		return nil, unexpectedStatus("retrieving rapid views", resp.status, resp.body)
	}
}

// GetLastSprintForRapidView returns the most recent sprint of a rapid
// view, i.e. the last element of the sprint sequence the remote service
// reports.
func (c *Client) GetLastSprintForRapidView(ctx context.Context, rapidViewID int) (*Sprint, error) {
	if err := c.login(ctx); err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, requestOptions{
		method: http.MethodGet,
		family: familyAgile,
		path:   "sprintquery/" + strconv.Itoa(rapidViewID),
	})
	if err != nil {
		return nil, err
	}

	switch resp.status {
	case http.StatusOK:
		var query struct {
			Sprints []Sprint `json:"sprints"`
		}
		if err := json.Unmarshal(resp.body, &query); err != nil {
			return nil, decodeError("sprint list", err)
		}
		if len(query.Sprints) == 0 {
			return nil, ErrNotFound.New("rapid view " + strconv.Itoa(rapidViewID) + " has no sprints")
		}
		return &query.Sprints[len(query.Sprints)-1], nil
	case http.StatusNotFound:
		return nil, ErrNotFound.New("invalid url")
	default:
		return nil, unexpectedStatus("retrieving sprints", resp.status, resp.body)
	}
}

// AddIssueToSprint adds an issue to a sprint.
func (c *Client) AddIssueToSprint(ctx context.Context, issueKey string, sprintID int) error {
	if err := c.login(ctx); err != nil {
		return err
	}

	body, err := sjson.SetBytes([]byte(`{}`), "issueKeys.-1", issueKey)
	if err != nil {
		return ErrValidation.MsgErr("failed to encode sprint request", err)
	}

	resp, err := c.do(ctx, requestOptions{
		method: http.MethodPut,
		family: familyAgile,
		path:   "sprint/" + strconv.Itoa(sprintID) + "/issues/add",
		body:   body,
	})
	if err != nil {
		return err
	}

	switch resp.status {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrNotFound.New("invalid url")
	default:
		return unexpectedStatus("adding issue to sprint", resp.status, resp.body)
	}
}
