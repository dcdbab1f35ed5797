package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type BaseError struct {
	DefaultErrString string
	Info             string
}

func (e BaseError) Error() string {
	e.DefaultErrString = "An error occurred while executing a request."
	return e.choseErrString()
}

func (e BaseError) choseErrString() string {
	if e.Info != "" {
		return e.Info
	}
	return e.DefaultErrString
}

type ErrUnexpectedResponseCode struct {
	BaseError
	URL            string
	Method         string
	Expected       []int
	Actual         int
	Body           []byte
	ResponseHeader http.Header
}

func (e ErrUnexpectedResponseCode) Error() string {
	e.DefaultErrString = fmt.Sprintf(
		"Expected HTTP response code %v when accessing [%s %s], but got %d instead: %s",
		e.Expected, e.Method, e.URL, e.Actual, ErrorMessage(e.Body),
	)
	return e.choseErrString()
}

// apiErrors is the error envelope returned by every PAPI endpoint.
type apiErrors struct {
	Errors []struct {
		Code    string `json:"code"`
		Field   string `json:"field,omitempty"`
		Message string `json:"message"`
	} `json:"errors"`
}

// ErrorMessage extracts the human readable part of an OneFS error body.
// Bodies that are not an error envelope are returned trimmed.
func ErrorMessage(body []byte) string {
	e := apiErrors{}
	if err := json.Unmarshal(body, &e); err != nil || len(e.Errors) == 0 {
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			return "empty response body"
		}
		return msg
	}

	msgs := make([]string, 0, len(e.Errors))
	for _, item := range e.Errors {
		msg := item.Message
		if item.Field != "" {
			msg = fmt.Sprintf("%s: %s", item.Field, msg)
		}
		msgs = append(msgs, msg)
	}

	return strings.Join(msgs, "; ")
}

// ResponseCodeIs reports whether err is an unexpected response carrying the
// given HTTP status code.
func ResponseCodeIs(err error, status int) bool {
	var codeError ErrUnexpectedResponseCode
	if errors.As(err, &codeError) {
		return codeError.Actual == status
	}
	return false
}

// DetermineError renders err the way it should surface in a diagnostic:
// API failures collapse to the OneFS message, everything else is unchanged.
func DetermineError(err error) string {
	var codeError ErrUnexpectedResponseCode
	if errors.As(err, &codeError) {
		return ErrorMessage(codeError.Body)
	}
	return err.Error()
}
