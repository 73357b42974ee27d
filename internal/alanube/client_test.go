package alanube_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/rezonia/alanube-ecf/internal/alanube"
	"github.com/rezonia/alanube-ecf/internal/ecf"
	"github.com/rezonia/alanube-ecf/internal/form"
	"github.com/rezonia/alanube-ecf/internal/model"
)

type recorded struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// gateway fakes the Alanube API with a fixed status and body
type gateway struct {
	mu       sync.Mutex
	requests []recorded
	status   int
	body     string
}

func (g *gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	g.mu.Lock()
	g.requests = append(g.requests, recorded{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Header: r.Header.Clone(),
		Body:   body,
	})
	g.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(g.status)
	_, _ = io.WriteString(w, g.body)
}

func (g *gateway) last(t *testing.T) recorded {
	t.Helper()
	g.mu.Lock()
	defer g.mu.Unlock()
	require.NotEmpty(t, g.requests)
	return g.requests[len(g.requests)-1]
}

func newGateway(t *testing.T, status int, body string, opts ...alanube.ClientOption) (*gateway, *alanube.Client) {
	t.Helper()
	g := &gateway{status: status, body: body}
	srv := httptest.NewServer(g)
	t.Cleanup(srv.Close)

	client, err := alanube.NewClient("secret-token", append([]alanube.ClientOption{alanube.WithBaseURL(srv.URL + "/dom/v1/")}, opts...)...)
	require.NoError(t, err)
	return g, client
}

const submitted = `{
	"id": "01HQ8ZDOC",
	"stampDate": "2025-01-15",
	"status": "REGISTERED",
	"legalStatus": "IN_PROCESS",
	"companyIdentification": "131793916",
	"documentNumber": "E320000000001"
}`

func consumerInvoice(t *testing.T) *ecf.Invoice {
	t.Helper()
	inv, err := ecf.NewInvoice(form.Values{
		"companyId": "01HQ8Z6W2K3V",
		"idDoc": ecf.IdDocSchema.MustNew(form.Values{
			"encf": "E320000000001", "sequenceDueDate": "2025-12-31", "incomeType": 1, "paymentType": 1,
		}),
		"sender": ecf.SenderSchema.MustNew(form.Values{
			"rnc": "131793916", "companyName": "Rezonia SRL", "address": "Calle 1", "stampDate": "2025-01-15",
		}),
		"buyer":  ecf.BuyerSchema.MustNew(form.Values{"companyName": "Consumidor final"}),
		"totals": ecf.TotalsSchema.MustNew(form.Values{"exemptAmount": "100", "totalAmount": "100"}),
		"itemDetails": []*form.Form{ecf.ItemDetailSchema.MustNew(form.Values{
			"lineNumber": 1, "billingIndicator": 4, "itemName": "Libro", "goodServiceIndicator": 1,
			"quantityItem": "1", "unitPriceItem": "100",
		})},
	})
	require.NoError(t, err)
	return inv
}

func TestNewClient_Config(t *testing.T) {
	_, err := alanube.NewClient("")
	assert.Error(t, err)

	_, err = alanube.NewClient("token", alanube.WithBaseURL("not a url"))
	assert.Error(t, err)

	_, err = alanube.NewClient("token", alanube.WithTimeout(0))
	assert.Error(t, err)

	c, err := alanube.NewClient("token")
	require.NoError(t, err)
	assert.Equal(t, alanube.DefaultBaseURL, c.BaseURL())

	c, err = alanube.NewClient("token", alanube.WithSandbox(true))
	require.NoError(t, err)
	assert.Equal(t, alanube.SandboxBaseURL, c.BaseURL())
}

func TestSend_Invoice(t *testing.T) {
	g, client := newGateway(t, http.StatusCreated, submitted)

	resp, err := client.Send(context.Background(), consumerInvoice(t))
	require.NoError(t, err)
	assert.Equal(t, "01HQ8ZDOC", resp.ID)
	assert.Equal(t, model.StatusRegistered, resp.Status)
	assert.Equal(t, "E320000000001", resp.Number())
	assert.False(t, resp.Accepted())
	assert.False(t, resp.Done())

	req := g.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/dom/v1/invoices", req.Path)
	assert.Equal(t, "Bearer secret-token", req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	_, err = uuid.Parse(req.Header.Get(alanube.RequestIDHeader))
	assert.NoError(t, err)

	body := gjson.ParseBytes(req.Body)
	assert.Equal(t, "E320000000001", body.Get("IdDoc.eNCF").String())
	assert.Equal(t, 100.0, body.Get("Totales.MontoTotal").Float())
	assert.Equal(t, "generic", body.Get("config.pdf.type").String())
}

func TestSend_AttributeKeys(t *testing.T) {
	g, client := newGateway(t, http.StatusCreated, submitted, alanube.WithKeyStyle(form.KeyAttribute))

	_, err := client.Send(context.Background(), consumerInvoice(t))
	require.NoError(t, err)

	body := gjson.ParseBytes(g.last(t).Body)
	assert.Equal(t, "E320000000001", body.Get("idDoc.encf").String())
	assert.False(t, body.Get("IdDoc").Exists())
}

func TestSendCancellation(t *testing.T) {
	g, client := newGateway(t, http.StatusCreated, `{"id": "01HQCANCEL", "status": "TO_SEND"}`)

	c, err := ecf.NewSimpleCancellation("131793916", ecf.Range{From: "E310000000001", Until: "E310000000010"})
	require.NoError(t, err)

	resp, err := client.SendCancellation(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, model.StatusToSend, resp.Status)

	req := g.last(t)
	assert.Equal(t, "/dom/v1/cancellations", req.Path)
	body := gjson.ParseBytes(req.Body)
	assert.Equal(t, int64(10), body.Get("Encabezado.CantidadeNCFAnulados").Int())
	assert.Equal(t, "E310000000001", body.Get("Anulacion.0.TablaRangoSecuenciasAnuladaseNCF.0.SecuenciaeNCFDesde").String())
}

func TestStatus(t *testing.T) {
	g, client := newGateway(t, http.StatusOK, `{
		"id": "01HQ8ZDOC", "status": "FINISHED", "legalStatus": "ACCEPTED",
		"encf": "E310000000007",
		"governmentResponse": {"code": 1, "value": [{"valor": "Aceptado", "codigo": 0}]}
	}`)
	ctx := context.Background()

	resp, err := client.DocumentStatus(ctx, model.TypeFiscalInvoice, "01HQ8ZDOC", "")
	require.NoError(t, err)
	assert.True(t, resp.Accepted())
	assert.True(t, resp.Done())
	assert.Equal(t, "E310000000007", resp.Number())
	require.NotNil(t, resp.GovernmentResponse)
	assert.Equal(t, "Aceptado", resp.GovernmentResponse.Value[0].Value)
	assert.Equal(t, "/dom/v1/fiscal-invoices/01HQ8ZDOC", g.last(t).Path)

	_, err = client.DocumentStatus(ctx, model.TypeCreditNote, "01HQ8ZDOC", "01HQCOMPANY")
	require.NoError(t, err)
	assert.Equal(t, "/dom/v1/credit-notes/01HQ8ZDOC/idCompany/01HQCOMPANY", g.last(t).Path)

	_, err = client.CancellationStatus(ctx, "01HQCANCEL", "")
	require.NoError(t, err)
	assert.Equal(t, "/dom/v1/cancellations/01HQCANCEL", g.last(t).Path)

	_, err = client.DocumentStatus(ctx, model.DocumentType(99), "x", "")
	assert.Error(t, err)

	_, err = client.CancellationStatus(ctx, "", "")
	var verr *model.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		kind     error
		message  string
		messages []string
	}{
		{
			name:     "validation",
			status:   http.StatusBadRequest,
			body:     `{"message": "Invalid document", "errors": ["IdDoc.eNCF is duplicated", "Totales is required"]}`,
			kind:     alanube.ErrInvalidRequest,
			message:  "Invalid document",
			messages: []string{"Invalid document", "IdDoc.eNCF is duplicated", "Totales is required"},
		},
		{
			name:     "not found",
			status:   http.StatusNotFound,
			body:     `{"error": "document not found"}`,
			kind:     alanube.ErrNotFound,
			message:  "document not found",
			messages: []string{"document not found"},
		},
		{
			name:    "server",
			status:  http.StatusInternalServerError,
			body:    `<html>oops</html>`,
			kind:    alanube.ErrServer,
			message: "Internal Server Error",
		},
		{
			name:    "other",
			status:  http.StatusUnauthorized,
			body:    ``,
			kind:    alanube.ErrAPI,
			message: "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, client := newGateway(t, tt.status, tt.body)

			_, err := client.Send(context.Background(), consumerInvoice(t))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), err.Error())

			var apiErr *alanube.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Equal(t, tt.messages, apiErr.Errors)
		})
	}
}

func TestUnexpectedStatus(t *testing.T) {
	_, client := newGateway(t, http.StatusOK, submitted)

	_, err := client.Send(context.Background(), consumerInvoice(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, alanube.ErrUnexpectedStatus))

	var statusErr *alanube.UnexpectedStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusCreated, statusErr.Expected)
	assert.Equal(t, http.StatusOK, statusErr.Received)
}

func TestCompany(t *testing.T) {
	ctx := context.Background()

	g, client := newGateway(t, http.StatusOK, `{"id": "01HQCOMPANY", "identification": "131793916"}`)
	company, err := client.Company(ctx, "01HQCOMPANY")
	require.NoError(t, err)
	assert.Equal(t, "131793916", company.Get("identification").String())
	assert.Equal(t, "/dom/v1/company/01HQCOMPANY", g.last(t).Path)

	_, err = client.UpdateCompany(ctx, "01HQCOMPANY", map[string]any{"name": "Rezonia"})
	require.NoError(t, err)
	req := g.last(t)
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.JSONEq(t, `{"name": "Rezonia"}`, string(req.Body))

	_, err = client.CreateCompany(ctx, map[string]any{"identification": "131793916"})
	assert.True(t, errors.Is(err, alanube.ErrUnexpectedStatus))

	g, client = newGateway(t, http.StatusCreated, `{"id": "01HQNEW"}`)
	created, err := client.CreateCompany(ctx, []byte(`{"identification": "131793916"}`))
	require.NoError(t, err)
	assert.Equal(t, "01HQNEW", created.Get("id").String())
	assert.Equal(t, "/dom/v1/company", g.last(t).Path)
}

func TestDGIIQueries(t *testing.T) {
	ctx := context.Background()
	g, client := newGateway(t, http.StatusOK, `[{"service": "recepcion", "status": "online"}]`)

	status, err := client.CheckDGIIStatus(ctx, model.EnvProduction)
	require.NoError(t, err)
	assert.Equal(t, "online", status.Get("0.status").String())
	assert.Equal(t, "environment=2", g.last(t).Query)

	_, err = client.CheckDGIIStatus(ctx, model.Environment(7))
	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "environment", verr.Rule)

	_, err = client.ProviderInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/dom/v1/provider-info", g.last(t).Path)

	_, err = client.CheckDirectory(ctx, "01HQCOMPANY")
	require.NoError(t, err)
	assert.Equal(t, "/dom/v1/check-directory/idCompany/01HQCOMPANY", g.last(t).Path)
}

func TestListDocuments(t *testing.T) {
	ctx := context.Background()
	g, client := newGateway(t, http.StatusOK, `{
		"metadata": {"currentPage": 2, "limit": 10, "from": 11, "to": 12},
		"documents": [{"id": "a", "status": "FINISHED"}, {"id": "b", "status": "FAILED"}]
	}`)

	list, err := client.ListDocuments(ctx, model.TypeInvoice, alanube.ListOptions{
		Limit:  10,
		Page:   2,
		Status: []model.Status{model.StatusFinished, model.StatusFailed},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Metadata.CurrentPage)
	assert.Len(t, list.Documents, 2)
	assert.Equal(t, "limit=10&page=2&status=FINISHED%2CFAILED", g.last(t).Query)

	_, err = client.ListDocuments(ctx, model.TypeInvoice, alanube.ListOptions{Limit: -1})
	assert.Error(t, err)

	_, err = client.ListDocuments(ctx, model.TypeInvoice, alanube.ListOptions{LegalStatus: []model.LegalStatus{"MAYBE"}})
	assert.Error(t, err)

	_, err = client.ReceivedDocuments(ctx, alanube.ReceivedOptions{IssuerIdentification: "131-79391-6"})
	assert.Error(t, err)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := alanube.NewMetrics(reg)
	_, client := newGateway(t, http.StatusCreated, submitted, alanube.WithMetrics(metrics))

	_, err := client.Send(context.Background(), consumerInvoice(t))
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests.WithLabelValues("submit", "201")))
}

func TestEndpointFor(t *testing.T) {
	for _, dt := range model.DocumentTypes() {
		ep, err := alanube.EndpointFor(dt)
		require.NoError(t, err, dt.String())
		assert.NotEmpty(t, ep)
	}

	ep, err := alanube.ParseEndpoint("47")
	require.NoError(t, err)
	assert.Equal(t, alanube.EndpointPaymentAbroadSupports, ep)

	ep, err = alanube.ParseEndpoint("cancellations")
	require.NoError(t, err)
	assert.Equal(t, alanube.EndpointCancellations, ep)

	_, err = alanube.ParseEndpoint("receipts")
	assert.Error(t, err)
}
