package jira

import (
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/jirakit/jirakit/internal/common/apperrors"
)

// Error taxonomy for client operations. Every operation resolves to
// exactly one of (result, error); match with errors.Is against these
// sentinels to classify the outcome.
var (
	// ErrConfig indicates an invalid client configuration.
	ErrConfig = apperrors.New("invalid configuration")

	// ErrConnection indicates a transport-level failure or an unreadable
	// response. No status classification was possible.
	ErrConnection = apperrors.New("unable to connect to jira")

	// ErrAuthentication indicates the session endpoint rejected the
	// supplied credentials.
	ErrAuthentication = apperrors.New("authentication failed").SetStatusCode(http.StatusUnauthorized)

	// ErrNotFound indicates the operation's 404 meaning: an issue,
	// project, version, or URL that does not exist.
	ErrNotFound = apperrors.New("resource not found").SetStatusCode(http.StatusNotFound)

	// ErrValidation indicates the operation's 400 meaning: a bad JQL
	// query or rejected request fields.
	ErrValidation = apperrors.New("request rejected by jira").SetStatusCode(http.StatusBadRequest)

	// ErrPermission indicates the authenticated user lacks permission
	// for the operation.
	ErrPermission = apperrors.New("insufficient permissions").SetStatusCode(http.StatusForbidden)

	// ErrDecode indicates a response body that could not be parsed as
	// JSON. Distinct from any HTTP-status failure.
	ErrDecode = apperrors.New("malformed response body")

	// ErrUnexpectedStatus is the catch-all for statuses an operation's
	// table does not enumerate. The message always carries the status code.
	ErrUnexpectedStatus = apperrors.New("unexpected status from jira")
)

// serverMessage extracts the first server-provided error message from a
// JIRA error body, which typically looks like
// {"errorMessages":[...],"errors":{...}}.
func serverMessage(body []byte) string {
	if msg := gjson.GetBytes(body, "errorMessages.0"); msg.Exists() {
		return msg.String()
	}
	return ""
}

// unexpectedStatus builds the catch-all error for a status code outside
// the operation's table. The status code is always part of the message.
func unexpectedStatus(action string, status int, body []byte) error {
	msg := serverMessage(body)
	if msg == "" {
		msg = http.StatusText(status)
	}
	return ErrUnexpectedStatus.Msg(fmt.Sprintf("%d error while %s: %s", status, action, msg)).SetStatusCode(status)
}

// decodeError wraps a JSON decode failure for the named payload.
func decodeError(what string, err error) error {
	return ErrDecode.MsgErr("failed to decode "+what, err)
}

// errMissingField reports a response body that parsed as JSON but lacks
// a field the operation depends on.
func errMissingField(field string) error {
	return fmt.Errorf("missing field %q", field)
}
