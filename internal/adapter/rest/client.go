package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"userfeed/pkg/logger"
	"userfeed/pkg/result"
)

// Fixed user-facing failure messages. These are the only strings a failed
// fetch ever surfaces; the underlying technical cause stays in logs.
const (
	MsgTimeout    = "Request timed out. Check connection."
	MsgDataFormat = "Data format error."
	MsgNetwork    = "Network error. Check connection."
)

// Timeouts holds the three timeouts applied to a fetch.
type Timeouts struct {
	Connect time.Duration // TCP dial deadline
	Request time.Duration // whole request, including body read
	Socket  time.Duration // waiting for response headers
}

// DefaultTimeouts returns the stock timeout configuration.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Connect: 10 * time.Second,
		Request: 30 * time.Second,
		Socket:  30 * time.Second,
	}
}

// Client fetches user records from the remote users endpoint.
type Client struct {
	http    *http.Client
	baseURL string
	log     *zap.Logger
}

// NewClient creates a Client for the given base URL. The /users path is
// appended per request. Zero timeout fields fall back to the defaults.
func NewClient(baseURL string, t Timeouts, log *zap.Logger) *Client {
	def := DefaultTimeouts()
	if t.Connect <= 0 {
		t.Connect = def.Connect
	}
	if t.Request <= 0 {
		t.Request = def.Request
	}
	if t.Socket <= 0 {
		t.Socket = def.Socket
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   t.Connect,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ResponseHeaderTimeout: t.Socket,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
	}

	return &Client{
		http: &http.Client{
			Timeout:   t.Request,
			Transport: transport,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

// FetchUsers performs exactly one GET {baseURL}/users and decodes the body
// as a list of UserDTO. Failures are classified into one of the fixed
// messages above; no retries are attempted.
func (c *Client) FetchUsers(ctx context.Context) result.Result[[]UserDTO] {
	ctx = context.WithValue(ctx, logger.RequestIDKey, uuid.NewString())
	log := logger.WithContext(ctx, c.log)

	url := c.baseURL + "/users"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("failed to build request", zap.String("url", url), zap.Error(err))
		return result.Err[[]UserDTO](MsgNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			log.Warn("request timed out", zap.String("url", url), zap.Duration("elapsed", time.Since(start)), zap.Error(err))
			return result.Err[[]UserDTO](MsgTimeout, err)
		}
		log.Warn("request failed", zap.String("url", url), zap.Error(err))
		return result.Err[[]UserDTO](MsgNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("unexpected status %d", resp.StatusCode)
		log.Warn("unexpected response status", zap.String("url", url), zap.Int("status", resp.StatusCode))
		return result.Err[[]UserDTO](MsgNetwork, err)
	}

	var dtos []UserDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		if isTimeout(err) {
			log.Warn("timed out reading body", zap.String("url", url), zap.Error(err))
			return result.Err[[]UserDTO](MsgTimeout, err)
		}
		if isDecodeError(err) {
			log.Warn("malformed response body", zap.String("url", url), zap.Error(err))
			return result.Err[[]UserDTO](MsgDataFormat, err)
		}
		log.Warn("failed reading body", zap.String("url", url), zap.Error(err))
		return result.Err[[]UserDTO](MsgNetwork, err)
	}

	log.Debug("fetched users",
		zap.Int("count", len(dtos)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result.Ok(dtos)
}

// isTimeout reports whether err stems from an exceeded deadline, either the
// request context or one of the transport timeouts.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// isDecodeError reports whether err means the body was readable but not the
// expected JSON shape. Transport faults during the body read are not decode
// errors and classify as network failures instead.
func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return true
	}
	// A body that ends mid-value surfaces as io.ErrUnexpectedEOF from the
	// decoder; an empty body surfaces as io.EOF. Both mean the payload did
	// not have the expected shape.
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF)
}
