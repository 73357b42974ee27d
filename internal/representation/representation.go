// Package representation inspects the printed representation (PDF) the
// gateway produces for every stamped document.
package representation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// MaxSize bounds downloaded representations
const MaxSize = 20 << 20

// ErrNotPDF is returned for input without a PDF header
var ErrNotPDF = errors.New("representation: not a PDF document")

func init() {
	// pdfcpu would otherwise write its configuration under the user's home
	api.DisableConfigDir()
}

// Info describes a valid representation
type Info struct {
	Pages    int    `json:"pages"`
	Size     int    `json:"size"`
	Title    string `json:"title,omitempty"`
	Producer string `json:"producer,omitempty"`
}

// Inspector validates representations
type Inspector struct {
	conf   *model.Configuration
	http   *http.Client
	logger *slog.Logger
}

// Option configures an Inspector
type Option func(*Inspector)

// WithHTTPClient sets the client used by Fetch
func WithHTTPClient(c *http.Client) Option {
	return func(i *Inspector) {
		if c != nil {
			i.http = c
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(i *Inspector) {
		if l != nil {
			i.logger = l
		}
	}
}

// WithStrict validates against the PDF specification instead of the
// relaxed rules most producers need
func WithStrict() Option {
	return func(i *Inspector) {
		i.conf.ValidationMode = model.ValidationStrict
	}
}

// NewInspector creates an Inspector
func NewInspector(opts ...Option) *Inspector {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	i := &Inspector{conf: conf, http: http.DefaultClient, logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(i)
		}
	}
	return i
}

// Inspect validates data and reports its page count
func (i *Inspector) Inspect(data []byte) (*Info, error) {
	if !bytes.HasPrefix(bytes.TrimLeft(data, "\x00\t\r\n "), []byte("%PDF-")) {
		return nil, ErrNotPDF
	}

	ctx, err := api.ReadContext(bytes.NewReader(data), i.conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("invalid PDF: %w", err)
	}

	return &Info{
		Pages:    ctx.PageCount,
		Size:     len(data),
		Title:    ctx.Title,
		Producer: ctx.Producer,
	}, nil
}

// Fetch downloads a representation, usually the pdf URL of a gateway
// response
func (i *Inspector) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/pdf")

	resp, err := i.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download %s: status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", url, err)
	}
	if len(data) > MaxSize {
		return nil, fmt.Errorf("representation at %s exceeds %d bytes", url, MaxSize)
	}
	i.logger.Debug("downloaded representation", "url", url, "bytes", len(data))
	return data, nil
}

// FetchAndInspect downloads and validates a representation
func (i *Inspector) FetchAndInspect(ctx context.Context, url string) (*Info, error) {
	data, err := i.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return i.Inspect(data)
}
