package alanube

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rezonia/alanube-ecf/internal/dgii"
	"github.com/rezonia/alanube-ecf/internal/model"
)

// Company fetches a company; an empty id returns the token's own company
func (c *Client) Company(ctx context.Context, id string) (Payload, error) {
	var out Payload
	err := c.do(ctx, call{
		operation: "company",
		method:    http.MethodGet,
		path:      companyPath(id),
		expected:  http.StatusOK,
	}, &out)
	return out, err
}

// CreateCompany registers a company with the configuration needed to send
// documents to DGII.
func (c *Client) CreateCompany(ctx context.Context, company any) (Payload, error) {
	body, err := encode(company)
	if err != nil {
		return nil, err
	}
	var out Payload
	err = c.do(ctx, call{
		operation: "create_company",
		method:    http.MethodPost,
		path:      pathCompany,
		body:      body,
		expected:  http.StatusCreated,
	}, &out)
	return out, err
}

// UpdateCompany patches the given fields only
func (c *Client) UpdateCompany(ctx context.Context, id string, fields any) (Payload, error) {
	body, err := encode(fields)
	if err != nil {
		return nil, err
	}
	var out Payload
	err = c.do(ctx, call{
		operation: "update_company",
		method:    http.MethodPatch,
		path:      companyPath(id),
		body:      body,
		expected:  http.StatusOK,
	}, &out)
	return out, err
}

// CheckDGIIStatus reports the availability of DGII services. A zero
// environment asks for all of them.
func (c *Client) CheckDGIIStatus(ctx context.Context, env model.Environment) (Payload, error) {
	q := url.Values{}
	if env != 0 {
		if err := ValidateEnvironment(env); err != nil {
			return nil, err
		}
		q.Set("environment", strconv.Itoa(int(env)))
	}
	var out Payload
	err := c.do(ctx, call{
		operation: "dgii_status",
		method:    http.MethodGet,
		path:      pathDGIIStatus,
		query:     q,
		expected:  http.StatusOK,
	}, &out)
	return out, err
}

// ProviderInfo returns the gateway's registration as electronic provider
func (c *Client) ProviderInfo(ctx context.Context) (Payload, error) {
	var out Payload
	err := c.do(ctx, call{
		operation: "provider_info",
		method:    http.MethodGet,
		path:      pathProviderInfo,
		expected:  http.StatusOK,
	}, &out)
	return out, err
}

// CheckDirectory lists the electronic issuers directory as seen by the company
func (c *Client) CheckDirectory(ctx context.Context, companyID string) (Payload, error) {
	p := pathDirectory
	if companyID != "" {
		p += "/idCompany/" + url.PathEscape(companyID)
	}
	var out Payload
	err := c.do(ctx, call{
		operation: "directory",
		method:    http.MethodGet,
		path:      p,
		expected:  http.StatusOK,
	}, &out)
	return out, err
}

func companyPath(id string) string {
	if id == "" {
		return pathCompany
	}
	return pathCompany + "/" + url.PathEscape(id)
}

// ValidateEnvironment accepts the three DGII environments
func ValidateEnvironment(env model.Environment) error {
	if !env.Valid() {
		return model.Invalid(int(env), "environment",
			"environment must be one of 1 (PreCertificacion), 2 (Produccion), or 3 (Certificacion)")
	}
	return nil
}

// ValidateIdentification accepts 9 or 11 digits with no separators
func ValidateIdentification(identification string) error {
	if !dgii.ValidIdentification(identification) {
		return model.Invalid(identification, "identification", "identification must contain 9 or 11 digits with no separators")
	}
	return nil
}

func joinLegalStatuses(list []model.LegalStatus) (string, error) {
	parts := make([]string, 0, len(list))
	for _, st := range list {
		if _, err := model.ParseLegalStatus(string(st)); err != nil {
			return "", model.Invalid(string(st), "legal_status", "%v", err)
		}
		parts = append(parts, string(st))
	}
	return strings.Join(parts, ","), nil
}
