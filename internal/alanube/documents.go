package alanube

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rezonia/alanube-ecf/internal/ecf"
	"github.com/rezonia/alanube-ecf/internal/form"
	"github.com/rezonia/alanube-ecf/internal/model"
)

// Send serializes a validated document and posts it to the endpoint of
// its type. Cancellations go to the cancellations resource.
func (c *Client) Send(ctx context.Context, doc ecf.Document) (*DocumentResponse, error) {
	ep := EndpointCancellations
	if doc.Kind() != ecf.KindCancellation {
		var err error
		if ep, err = EndpointFor(doc.Type()); err != nil {
			return nil, err
		}
	}

	payload, err := doc.JSON(form.WithKeys(c.keys))
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %s: %w", doc.Kind(), err)
	}

	resp, err := c.Submit(ctx, ep, payload)
	if err != nil {
		return nil, err
	}
	c.logger.InfoContext(ctx, "document submitted",
		"kind", doc.Kind(),
		"encf", doc.Number(),
		"id", resp.ID,
		"status", resp.Status,
	)
	return resp, nil
}

// Submit posts wire JSON to a document resource
func (c *Client) Submit(ctx context.Context, ep Endpoint, payload []byte) (*DocumentResponse, error) {
	var out DocumentResponse
	err := c.do(ctx, call{
		operation: "submit",
		method:    http.MethodPost,
		path:      string(ep),
		body:      payload,
		expected:  http.StatusCreated,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Status fetches a submitted document or cancellation. companyID may be
// empty for single company accounts.
func (c *Client) Status(ctx context.Context, ep Endpoint, id, companyID string) (*DocumentResponse, error) {
	if id == "" {
		return nil, model.Invalid(id, "required", "document id is required")
	}
	var out DocumentResponse
	err := c.do(ctx, call{
		operation: "status",
		method:    http.MethodGet,
		path:      statusPath(ep, id, companyID),
		expected:  http.StatusOK,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DocumentStatus fetches a submitted e-CF of type t
func (c *Client) DocumentStatus(ctx context.Context, t model.DocumentType, id, companyID string) (*DocumentResponse, error) {
	ep, err := EndpointFor(t)
	if err != nil {
		return nil, err
	}
	return c.Status(ctx, ep, id, companyID)
}

// SendCancellation voids the NCF ranges of a validated cancellation
func (c *Client) SendCancellation(ctx context.Context, cancellation *ecf.Cancellation) (*DocumentResponse, error) {
	return c.Send(ctx, cancellation)
}

// CancellationStatus fetches a submitted cancellation
func (c *Client) CancellationStatus(ctx context.Context, id, companyID string) (*DocumentResponse, error) {
	return c.Status(ctx, EndpointCancellations, id, companyID)
}

// ListOptions filters a document listing. Zero values are omitted.
type ListOptions struct {
	CompanyID   string
	Limit       int
	Page        int
	Status      []model.Status
	LegalStatus []model.LegalStatus
}

func (o ListOptions) query() (url.Values, error) {
	q := url.Values{}
	if err := addPagination(q, o.Limit, o.Page); err != nil {
		return nil, err
	}
	if len(o.Status) > 0 {
		s, err := model.JoinStatuses(o.Status...)
		if err != nil {
			return nil, model.Invalid(o.Status, "status", "%v", err)
		}
		q.Set("status", s)
	}
	if len(o.LegalStatus) > 0 {
		s, err := joinLegalStatuses(o.LegalStatus)
		if err != nil {
			return nil, err
		}
		q.Set("legalStatus", s)
	}
	if o.CompanyID != "" {
		q.Set("idCompany", o.CompanyID)
	}
	return q, nil
}

// ListDocuments pages through the issued documents of type t
func (c *Client) ListDocuments(ctx context.Context, t model.DocumentType, opts ListOptions) (*DocumentList, error) {
	ep, err := EndpointFor(t)
	if err != nil {
		return nil, err
	}
	q, err := opts.query()
	if err != nil {
		return nil, err
	}

	var out DocumentList
	err = c.do(ctx, call{
		operation: "list",
		method:    http.MethodGet,
		path:      string(ep),
		query:     q,
		expected:  http.StatusOK,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ReceivedOptions filters the received documents listing
type ReceivedOptions struct {
	CompanyID            string
	Limit                int
	Page                 int
	IssuerIdentification string
}

// ReceivedDocuments pages through documents issued to the company
func (c *Client) ReceivedDocuments(ctx context.Context, opts ReceivedOptions) (*ReceivedDocumentList, error) {
	q := url.Values{}
	if err := addPagination(q, opts.Limit, opts.Page); err != nil {
		return nil, err
	}
	if opts.IssuerIdentification != "" {
		if err := ValidateIdentification(opts.IssuerIdentification); err != nil {
			return nil, err
		}
		q.Set("issuerIdentification", opts.IssuerIdentification)
	}
	if opts.CompanyID != "" {
		q.Set("idCompany", opts.CompanyID)
	}

	var out ReceivedDocumentList
	err := c.do(ctx, call{
		operation: "received",
		method:    http.MethodGet,
		path:      pathReceivedDocuments,
		query:     q,
		expected:  http.StatusOK,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func addPagination(q url.Values, limit, page int) error {
	if limit < 0 {
		return model.Invalid(limit, "limit", "limit must be greater than zero")
	}
	if page < 0 {
		return model.Invalid(page, "page", "page must be greater than zero")
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	return nil
}
