package alanube

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// Error kinds, matched with errors.Is
var (
	ErrInvalidRequest   = errors.New("alanube: invalid request")
	ErrNotFound         = errors.New("alanube: not found")
	ErrServer           = errors.New("alanube: server error")
	ErrAPI              = errors.New("alanube: api error")
	ErrUnexpectedStatus = errors.New("alanube: unexpected status code")
)

// APIError is a non-2xx gateway response
type APIError struct {
	StatusCode int
	URL        string
	Message    string
	Errors     []string
	Body       []byte
	kind       error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("alanube: %d %s: %s", e.StatusCode, e.URL, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// UnexpectedStatusError is a 2xx response other than the one the endpoint documents
type UnexpectedStatusError struct {
	Expected int
	Received int
	URL      string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("alanube: %s: expected response code %d, but received %d", e.URL, e.Expected, e.Received)
}

func (e *UnexpectedStatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// newAPIError classifies a failed response. JSON bodies contribute their
// "message" and every error string they hold; other bodies fall back to
// the status text.
func newAPIError(status int, url string, body []byte) *APIError {
	e := &APIError{StatusCode: status, URL: url, Body: body, kind: kindOf(status)}

	if gjson.ValidBytes(body) {
		doc := gjson.ParseBytes(body)
		e.Errors = flatten(doc)
		if msg := doc.Get("message"); msg.Exists() && msg.Type == gjson.String {
			e.Message = msg.String()
		} else if len(e.Errors) > 0 {
			e.Message = strings.Join(e.Errors, "; ")
		}
	}
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}

func kindOf(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrInvalidRequest
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusInternalServerError:
		return ErrServer
	}
	return ErrAPI
}

// flatten collects the string leaves of an error payload, one level of
// lists deep, in document order.
func flatten(doc gjson.Result) []string {
	var out []string
	collect := func(v gjson.Result) {
		switch {
		case v.IsArray():
			for _, item := range v.Array() {
				if item.Type == gjson.String || item.Type == gjson.Number {
					out = append(out, item.String())
				} else if item.IsObject() {
					out = append(out, item.Raw)
				}
			}
		case v.IsObject():
			out = append(out, v.Raw)
		case v.Type == gjson.Null:
		default:
			out = append(out, v.String())
		}
	}

	switch {
	case doc.IsObject():
		doc.ForEach(func(_, v gjson.Result) bool {
			collect(v)
			return true
		})
	default:
		collect(doc)
	}
	return out
}
