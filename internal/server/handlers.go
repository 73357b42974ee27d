package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rezonia/alanube-ecf/internal/alanube"
	"github.com/rezonia/alanube-ecf/internal/dgii"
	"github.com/rezonia/alanube-ecf/internal/ecf"
	"github.com/rezonia/alanube-ecf/internal/form"
	"github.com/rezonia/alanube-ecf/internal/journal"
	"github.com/rezonia/alanube-ecf/internal/model"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// readBody answers 400 and returns false when the body is missing
func readBody(c *gin.Context) ([]byte, bool) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return nil, false
	}
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty request body"})
		return nil, false
	}
	return body, true
}

// decode parses body as a document of the :kind path parameter, or detects
// the kind when it is "auto" or empty
func decode(kind string, body []byte) (ecf.Document, error) {
	if kind == "" || kind == "auto" {
		return ecf.DecodeAuto(body)
	}
	k, err := ecf.ParseKind(kind)
	if err != nil {
		return nil, model.NewParseError("request", "kind", "unknown document kind", err)
	}
	return ecf.Decode(k, body)
}

func (s *Server) handleValidate(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	doc, err := decode(c.Param("kind"), body)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, ValidationResponse{
				Valid:  false,
				Errors: []FieldError{fieldError(verr)},
			})
			return
		}
		s.fail(c, err)
		return
	}

	keys := form.KeyExternal
	if k, ok := form.ParseKeyStyle(c.Query("keys")); ok {
		keys = k
	}
	data, err := doc.Serialize(form.WithKeys(keys))
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ValidationResponse{
		Valid:    true,
		Kind:     string(doc.Kind()),
		Type:     int(doc.Type()),
		Encf:     doc.Number(),
		Document: data,
	})
}

func (s *Server) handleSubmitDocument(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	doc, err := decode(c.Query("kind"), body)
	if err != nil {
		s.fail(c, err)
		return
	}
	if doc.Kind() == ecf.KindCancellation {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cancellations are submitted to /api/v1/cancellations"})
		return
	}
	s.submit(c, doc)
}

func (s *Server) handleSubmitCancellation(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	doc, err := ecf.Decode(ecf.KindCancellation, body)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.submit(c, doc)
}

func (s *Server) submit(c *gin.Context, doc ecf.Document) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), gatewayTimeout)
	defer cancel()

	resp, err := s.submitter.Submit(ctx, doc)
	if err != nil && resp == nil {
		s.fail(c, err)
		return
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "submission not journaled", "encf", doc.Number(), "error", err)
	}

	s.logger.InfoContext(ctx, "document submitted",
		"kind", doc.Kind(),
		"encf", doc.Number(),
		"id", resp.ID,
		"status", resp.Status)
	c.JSON(http.StatusCreated, resp)
}

func (s *Server) handleDocumentStatus(c *gin.Context) {
	ep, err := alanube.ParseEndpoint(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown document type", "details": err.Error()})
		return
	}
	s.status(c, ep)
}

func (s *Server) handleCancellationStatus(c *gin.Context) {
	s.status(c, alanube.EndpointCancellations)
}

func (s *Server) status(c *gin.Context, ep alanube.Endpoint) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), gatewayTimeout)
	defer cancel()

	resp, err := s.gateway.Status(ctx, ep, c.Param("id"), c.Query("companyId"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleJournalList(c *gin.Context) {
	entries, err := s.submitter.Journal().List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}

	if pending := c.Query("pending"); pending == "true" || pending == "1" {
		open := entries[:0]
		for _, e := range entries {
			if !e.Done() {
				open = append(open, e)
			}
		}
		entries = open
	}
	if entries == nil {
		entries = []journal.Entry{}
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

func (s *Server) handleJournalEntry(c *gin.Context) {
	key := c.Param("encf")

	var (
		entry journal.Entry
		err   error
	)
	if refresh := c.Query("refresh"); refresh == "true" || refresh == "1" {
		ctx, cancel := context.WithTimeout(c.Request.Context(), gatewayTimeout)
		defer cancel()
		entry, err = s.submitter.Refresh(ctx, key)
	} else {
		entry, err = s.submitter.Journal().Get(c.Request.Context(), key)
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) handleVerify(c *gin.Context) {
	if s.verifier == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "signature verification unavailable",
			"details": "no trust store configured",
		})
		return
	}

	body, ok := readBody(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), gatewayTimeout)
	defer cancel()

	result, err := s.verifier.Verify(ctx, body)
	if err != nil {
		resp := gin.H{
			"error":   "signature verification failed",
			"details": err.Error(),
		}
		if result != nil {
			resp["result"] = result
		}
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}

	s.logger.InfoContext(ctx, "signature verified",
		"encf", result.Document.Encf,
		"valid", result.Valid)

	status := http.StatusOK
	if !result.Valid {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, result)
}

func (s *Server) handleCatalogNames(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"catalogs": dgii.CatalogNames()})
}

func (s *Server) handleCatalog(c *gin.Context) {
	name := c.Param("name")
	entries, err := dgii.Catalog(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown catalog", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": name, "entries": entries})
}

// fail maps err to a status code and writes an ErrorResponse
func (s *Server) fail(c *gin.Context, err error) {
	var (
		verr   *model.ValidationError
		perr   *model.ParseError
		apiErr *alanube.APIError
	)

	switch {
	case errors.As(err, &verr):
		v := fieldError(verr)
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:      "validation failed",
			Details:    err.Error(),
			Validation: &v,
		})
	case errors.As(err, &perr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid document", Details: err.Error()})
	case errors.Is(err, journal.ErrNotFound), errors.Is(err, alanube.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found", Details: err.Error()})
	case errors.As(err, &apiErr) && errors.Is(err, alanube.ErrInvalidRequest):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "rejected by gateway",
			Details: apiErr.Message,
			Gateway: apiErr.Errors,
		})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: "gateway timeout", Details: err.Error()})
	case errors.As(err, &apiErr), errors.Is(err, alanube.ErrUnexpectedStatus):
		s.logger.WarnContext(c.Request.Context(), "gateway error", "error", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "gateway error", Details: err.Error()})
	default:
		s.logger.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Details: err.Error()})
	}
}
