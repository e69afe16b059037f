package jira

import (
	"context"
	"net/http"
)

// GetProject retrieves a project by key or numeric id.
func (c *Client) GetProject(ctx context.Context, projectKey string) (*Project, error) {
	if err := c.login(ctx); err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, "project/"+projectKey)
	if err != nil {
		return nil, err
	}

	switch resp.status {
	case http.StatusOK:
		var project Project
		if err := json.Unmarshal(resp.body, &project); err != nil {
			return nil, decodeError("project", err)
		}
		return &project, nil
	case http.StatusNotFound:
		return nil, ErrNotFound.New("invalid project " + projectKey)
	default:
		return nil, unexpectedStatus("retrieving project", resp.status, resp.body)
	}
}

// ListProjects returns all projects visible to the authenticated user.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	if err := c.login(ctx); err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, "project")
	if err != nil {
		return nil, err
	}

	switch resp.status {
	case http.StatusOK:
		var projects []Project
		if err := json.Unmarshal(resp.body, &projects); err != nil {
			return nil, decodeError("project list", err)
		}
		return projects, nil
	case http.StatusInternalServerError:
		return nil, ErrUnexpectedStatus.New("500 error while retrieving project list").SetStatusCode(resp.status)
	default:
		return nil, unexpectedStatus("retrieving project list", resp.status, resp.body)
	}
}

// ListComponents returns the components of a project.
func (c *Client) ListComponents(ctx context.Context, projectKey string) ([]Component, error) {
	if err := c.login(ctx); err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, "project/"+projectKey+"/components")
	if err != nil {
		return nil, err
	}

	switch resp.status {
	case http.StatusOK:
		var components []Component
		if err := json.Unmarshal(resp.body, &components); err != nil {
			return nil, decodeError("component list", err)
		}
		return components, nil
	case http.StatusNotFound:
		return nil, ErrNotFound.New("invalid project " + projectKey)
	default:
		return nil, unexpectedStatus("retrieving components", resp.status, resp.body)
	}
}

// ListIssueTypes returns every issue type defined on the remote service.
func (c *Client) ListIssueTypes(ctx context.Context) ([]IssueType, error) {
	if err := c.login(ctx); err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, "issuetype")
	if err != nil {
		return nil, err
	}

	if resp.status == http.StatusOK {
		var types []IssueType
		if err := json.Unmarshal(resp.body, &types); err != nil {
			return nil, decodeError("issue type list", err)
		}
		return types, nil
	}
	return nil, unexpectedStatus("retrieving issue types", resp.status, resp.body)
}
