// Package assistant is the HTTP client of the external text assistant that
// rewrites and generates post content.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
	"github.com/heartmarshall/contentplanner-backend/internal/service/modification"
)

const breakerName = "assistant"

// maxResponseBytes bounds the body read from the assistant.
const maxResponseBytes = 1 << 20

// ErrUnavailable is returned while the circuit breaker is open.
var ErrUnavailable = errors.New("assistant unavailable")

type recorder interface {
	RecordAssistantCall(op string, err error)
	SetBreakerState(name string, state int)
}

// Options configure a Client.
type Options struct {
	BaseURL     string
	APIKey      string
	Timeout     time.Duration
	MaxFailures uint32
	OpenTimeout time.Duration
	UserAgent   string
	Metrics     recorder
}

// Client calls the assistant API through a circuit breaker.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	metrics    recorder
	log        *slog.Logger
}

// NewClient creates an assistant client.
func NewClient(logger *slog.Logger, opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.MaxFailures == 0 {
		opts.MaxFailures = 5
	}
	if opts.OpenTimeout <= 0 {
		opts.OpenTimeout = 30 * time.Second
	}

	c := &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		userAgent:  opts.UserAgent,
		httpClient: &http.Client{Timeout: opts.Timeout},
		metrics:    opts.Metrics,
		log:        logger.With("adapter", "assistant"),
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     breakerName,
		Interval: 60 * time.Second,
		Timeout:  opts.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.MaxFailures
		},
		// Rejections by the assistant are answers, not outages. Calls the
		// caller gave up on say nothing about the assistant either.
		IsSuccessful: func(err error) bool {
			var (
				se *StatusError
				ce *callerGoneError
			)
			return err == nil ||
				errors.As(err, &ce) ||
				(errors.As(err, &se) && se.Code < http.StatusInternalServerError)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn("assistant breaker state changed",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			if c.metrics != nil {
				c.metrics.SetBreakerState(name, int(to))
			}
		},
	})

	return c
}

// StatusError is a non-2xx response from the assistant.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// callerGoneError marks a call that failed because the caller's context was
// cancelled or expired.
type callerGoneError struct {
	err error
}

func (e *callerGoneError) Error() string { return e.err.Error() }
func (e *callerGoneError) Unwrap() error { return e.err }

// BreakerState reports the circuit breaker state: closed, half-open or open.
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Modify asks the assistant to rewrite a post following the instruction.
func (c *Client) Modify(ctx context.Context, req modification.ModifyRequest) (domain.Proposal, error) {
	body := modifyRequest{
		Post:        toPostPayload(req.Post),
		Instruction: req.Instruction,
	}
	if req.Previous != nil {
		prev := toProposalPayload(*req.Previous)
		body.Previous = &prev
	}

	var out proposalPayload
	if err := c.call(ctx, "modify", "/v1/posts:modify", body, &out); err != nil {
		return domain.Proposal{}, err
	}

	prop := out.toDomain()
	if prop.Title == "" && prop.Text == "" {
		return domain.Proposal{}, fmt.Errorf("assistant: modify: empty proposal")
	}
	return prop, nil
}

// Generate asks the assistant for count new posts for the month.
func (c *Client) Generate(ctx context.Context, month domain.MonthKey, count int) ([]domain.Proposal, error) {
	body := generateRequest{
		Month: month.String(),
		Label: month.Label(),
		Count: count,
	}

	var out generateResponse
	if err := c.call(ctx, "generate", "/v1/posts:generate", body, &out); err != nil {
		return nil, err
	}

	props := make([]domain.Proposal, 0, len(out.Posts))
	for _, p := range out.Posts {
		props = append(props, p.toDomain())
	}
	return props, nil
}

// ---------------------------------------------------------------------------
// Transport
// ---------------------------------------------------------------------------

func (c *Client) call(ctx context.Context, op, path string, in, out any) error {
	start := time.Now()

	_, err := c.breaker.Execute(func() (any, error) {
		err := c.post(ctx, path, in, out)
		if err != nil && ctx.Err() != nil {
			return nil, &callerGoneError{err: err}
		}
		return nil, err
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if c.metrics != nil {
		c.metrics.RecordAssistantCall(op, err)
	}

	var gone *callerGoneError
	if errors.As(err, &gone) {
		c.log.InfoContext(ctx, "assistant call abandoned by caller",
			slog.String("op", op),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("assistant: %s: %w", op, err)
	}
	if err != nil {
		c.log.ErrorContext(ctx, "assistant call failed",
			slog.String("op", op),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("assistant: %s: %w", op, err)
	}

	c.log.DebugContext(ctx, "assistant call",
		slog.String("op", op),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}
