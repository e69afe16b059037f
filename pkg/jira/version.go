package jira

import (
	"context"
	"net/http"

	"github.com/tidwall/gjson"
)

// GetVersions returns the versions of a project.
func (c *Client) GetVersions(ctx context.Context, projectKey string) ([]Version, error) {
	if err := c.login(ctx); err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, "project/"+projectKey+"/versions")
	if err != nil {
		return nil, err
	}

	switch resp.status {
	case http.StatusOK:
		var versions []Version
		if err := json.Unmarshal(resp.body, &versions); err != nil {
			return nil, decodeError("version list", err)
		}
		return versions, nil
	case http.StatusNotFound:
		return nil, ErrNotFound.New("invalid project " + projectKey)
	default:
		return nil, unexpectedStatus("retrieving versions", resp.status, resp.body)
	}
}

// CreateVersion creates a project version and returns the created
// record with server-assigned fields filled in.
func (c *Client) CreateVersion(ctx context.Context, version *Version) (*Version, error) {
	if err := c.login(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(version)
	if err != nil {
		return nil, ErrValidation.MsgErr("failed to encode version", err)
	}

	resp, err := c.do(ctx, requestOptions{
		method: http.MethodPost,
		family: familyAPI,
		path:   "version",
		body:   body,
	})
	if err != nil {
		return nil, err
	}

	switch resp.status {
	case http.StatusCreated:
		var created Version
		if err := json.Unmarshal(resp.body, &created); err != nil {
			return nil, decodeError("created version", err)
		}
		return &created, nil
	case http.StatusNotFound:
		return nil, ErrPermission.New("version does not exist or the currently authenticated user does not have permission to view it").SetStatusCode(resp.status)
	case http.StatusForbidden:
		return nil, ErrPermission.New("the currently authenticated user does not have permission to edit the version")
	default:
		return nil, unexpectedStatus("creating version", resp.status, resp.body)
	}
}

// GetUnresolvedIssueCount returns the number of unresolved issues in a
// version.
func (c *Client) GetUnresolvedIssueCount(ctx context.Context, versionID string) (int, error) {
	if err := c.login(ctx); err != nil {
		return 0, err
	}

	resp, err := c.get(ctx, "version/"+versionID+"/unresolvedIssueCount")
	if err != nil {
		return 0, err
	}

	switch resp.status {
	case http.StatusOK:
		count := gjson.GetBytes(resp.body, "issuesUnresolvedCount")
		if !count.Exists() {
			return 0, decodeError("unresolved issue count", errMissingField("issuesUnresolvedCount"))
		}
		return int(count.Int()), nil
	case http.StatusNotFound:
		return 0, ErrNotFound.New("invalid version " + versionID)
	default:
		return 0, unexpectedStatus("retrieving unresolved issue count", resp.status, resp.body)
	}
}
