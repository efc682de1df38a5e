package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"treasury-curve/internal/domain"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	CNBCBaseURL = "https://quote.cnbc.com"
	cnbcPath    = "/quote-html-webservice/restQuote/symbolType/symbol"
	userAgent   = "treasury-curve/1.0"
)

var errNoQuotes = errors.New("payload has no FormattedQuote array")

// CNBCProvider fetches bond quotes from CNBC's public quote web service.
type CNBCProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	symbols []string
}

// NewCNBCProvider builds a provider for the given symbols. An empty baseURL
// means the public CNBC host; no symbols means the default Treasury set.
func NewCNBCProvider(tracer trace.Tracer, baseURL string, symbols []string, timeout time.Duration) *CNBCProvider {
	if baseURL == "" {
		baseURL = CNBCBaseURL
	}
	if len(symbols) == 0 {
		symbols = domain.TreasurySymbols
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &CNBCProvider{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		tracer:  tracer,
		symbols: append([]string(nil), symbols...),
	}
}

// FetchBondQuotes returns every quote in the order CNBC lists them.
func (p *CNBCProvider) FetchBondQuotes(ctx context.Context) ([]domain.RawQuote, error) {
	ctx, span := p.tracer.Start(ctx, "cnbc.fetch-bond-quotes")
	defer span.End()
	span.SetAttributes(attribute.Int("symbols.requested", len(p.symbols)))

	body, err := p.doRequest(ctx, p.quoteURL())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return nil, fmt.Errorf("fetch bond quotes: %w", err)
	}

	quotes, err := parseQuotes(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		return nil, fmt.Errorf("parse bond quotes: %w", err)
	}

	span.SetAttributes(attribute.Int("symbols.returned", len(quotes)))
	return quotes, nil
}

func (p *CNBCProvider) quoteURL() string {
	q := url.Values{}
	q.Set("symbols", strings.Join(p.symbols, "|"))
	q.Set("requestMethod", "itv")
	q.Set("noform", "1")
	q.Set("partnerId", "2")
	q.Set("fund", "1")
	q.Set("exthrs", "1")
	q.Set("output", "json")
	q.Set("events", "1")
	return p.baseURL + cnbcPath + "?" + q.Encode()
}

func (p *CNBCProvider) doRequest(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("cnbc API error %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

// parseQuotes reads FormattedQuoteResult.FormattedQuote, which CNBC sends as an
// array, or as a bare object when only one symbol was requested.
func parseQuotes(body []byte) ([]domain.RawQuote, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("invalid JSON payload")
	}

	result := gjson.GetBytes(body, "FormattedQuoteResult.FormattedQuote")
	if !result.Exists() || !(result.IsArray() || result.IsObject()) {
		return nil, errNoQuotes
	}

	items := result.Array()
	quotes := make([]domain.RawQuote, 0, len(items))
	for _, item := range items {
		symbol := item.Get("symbol").String()
		if symbol == "" {
			continue
		}
		quotes = append(quotes, domain.RawQuote{
			Symbol:   symbol,
			Last:     item.Get("last").String(),
			Name:     item.Get("name").String(),
			Change:   item.Get("change").String(),
			LastTime: item.Get("last_time").String(),
		})
	}
	return quotes, nil
}
