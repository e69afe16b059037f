package jira

// Domain types mirror the remote service's JSON schemas. They are
// pass-through structures: the client does not validate field values and
// ignores fields it does not model. Pointer fields distinguish "absent"
// from zero so request bodies round-trip only what the caller set.

// Issue is a JIRA issue as returned by the issue and search endpoints,
// and the body shape accepted by issue creation.
type Issue struct {
	ID     string       `json:"id,omitempty"`
	Key    string       `json:"key,omitempty"`
	Self   string       `json:"self,omitempty"`
	Fields *IssueFields `json:"fields,omitempty"`
}

// IssueFields is the fields object of an issue.
type IssueFields struct {
	Summary     string     `json:"summary,omitempty"`
	Description string     `json:"description,omitempty"`
	Project     *Project   `json:"project,omitempty"`
	IssueType   *IssueType `json:"issuetype,omitempty"`
	Status      *Status    `json:"status,omitempty"`
	Assignee    *User      `json:"assignee,omitempty"`
	Reporter    *User      `json:"reporter,omitempty"`
	Priority    *Priority  `json:"priority,omitempty"`
	Labels      []string   `json:"labels,omitempty"`
}

// IssueUpdate is the body accepted by the issue update endpoint. Both
// members are opaque to the client; the remote service enforces shape.
type IssueUpdate struct {
	Fields map[string]any `json:"fields,omitempty"`
	Update map[string]any `json:"update,omitempty"`
}

// Status is an issue workflow status.
type Status struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// User is a JIRA user reference.
type User struct {
	Name         string `json:"name,omitempty"`
	DisplayName  string `json:"displayName,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
}

// Priority is an issue priority reference.
type Priority struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Project is a JIRA project.
type Project struct {
	ID          string `json:"id,omitempty"`
	Key         string `json:"key,omitempty"`
	Name        string `json:"name,omitempty"`
	Self        string `json:"self,omitempty"`
	Description string `json:"description,omitempty"`
	Lead        *User  `json:"lead,omitempty"`
}

// Component is a project component.
type Component struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Self        string `json:"self,omitempty"`
	Description string `json:"description,omitempty"`
}

// Version is a project version, both as returned by the version
// endpoints and as the body accepted by version creation.
type Version struct {
	ID              string `json:"id,omitempty"`
	Self            string `json:"self,omitempty"`
	Name            string `json:"name,omitempty"`
	Description     string `json:"description,omitempty"`
	Project         string `json:"project,omitempty"`
	ProjectID       int    `json:"projectId,omitempty"`
	ReleaseDate     string `json:"releaseDate,omitempty"`
	UserReleaseDate string `json:"userReleaseDate,omitempty"`
	Released        *bool  `json:"released,omitempty"`
	Archived        *bool  `json:"archived,omitempty"`
}

// SearchResult is the response of the search endpoint.
type SearchResult struct {
	Expand     string  `json:"expand,omitempty"`
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

// SearchOptions narrows or pages a search. The zero value requests the
// remote service's defaults.
type SearchOptions struct {
	StartAt    int      `json:"startAt,omitempty"`
	MaxResults int      `json:"maxResults,omitempty"`
	Fields     []string `json:"fields,omitempty"`
}

// Transition is a state change available to an issue.
type Transition struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	To   *Status `json:"to,omitempty"`
}

// RapidView is an agile planning board.
type RapidView struct {
	ID                   int    `json:"id"`
	Name                 string `json:"name"`
	CanEdit              bool   `json:"canEdit,omitempty"`
	SprintSupportEnabled bool   `json:"sprintSupportEnabled,omitempty"`
}

// Sprint is an agile sprint belonging to a rapid view.
type Sprint struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	State     string `json:"state,omitempty"`
	Closed    bool   `json:"closed,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// Worklog is a work entry on an issue.
type Worklog struct {
	Comment          string `json:"comment,omitempty"`
	Started          string `json:"started,omitempty"`
	TimeSpent        string `json:"timeSpent,omitempty"`
	TimeSpentSeconds int    `json:"timeSpentSeconds,omitempty"`
}

// IssueType is an issue type reference.
type IssueType struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Subtask     bool   `json:"subtask,omitempty"`
}

// LinkType names the relationship of an issue link.
type LinkType struct {
	Name string `json:"name"`
}

// LinkedIssue references one side of an issue link.
type LinkedIssue struct {
	Key string `json:"key"`
}

// IssueLink is the body accepted by the issue link endpoint.
type IssueLink struct {
	Type         LinkType    `json:"type"`
	InwardIssue  LinkedIssue `json:"inwardIssue"`
	OutwardIssue LinkedIssue `json:"outwardIssue"`
	Comment      *Comment    `json:"comment,omitempty"`
}

// Comment is a text comment on an issue.
type Comment struct {
	Body string `json:"body"`
}
