package account

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"

	"github.com/riskibarqy/wordle-teams/internal/domain/user"
	"github.com/riskibarqy/wordle-teams/internal/platform/resilience"
	"github.com/riskibarqy/wordle-teams/internal/usecase"
)

var errIntrospectTransient = crerr.New("account introspection transient failure")

type ClientConfig struct {
	BaseURL        string
	IntrospectPath string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client verifies access tokens against the account service's
// introspection endpoint. Transport failures and 5xx responses trip the
// circuit breaker; auth denials do not.
type Client struct {
	httpClient     *fasthttp.Client
	introspectURL  string
	timeout        time.Duration
	logger         *slog.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     &fasthttp.Client{},
		introspectURL:  buildURL(cfg.BaseURL, cfg.IntrospectPath),
		timeout:        timeout,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "account circuit breaker rejected introspection", "state", c.breaker.State())
			return user.Principal{}, fmt.Errorf("%w: account service is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	introspectURL, err := validateHTTPBaseURL(c.introspectURL)
	if err != nil {
		return user.Principal{}, crerr.Wrap(err, "invalid account introspect URL")
	}

	encoded, err := sonic.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, crerr.Wrap(err, "marshal introspect request")
	}

	c.logger.DebugContext(ctx, "account introspection request", "curl_preview", buildCurlPreview(introspectURL))

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(introspectURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBody(encoded)

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	if err := c.httpClient.DoTimeout(req, resp, timeout); err != nil {
		callErr := fmt.Errorf("%w: request introspection: %v", errIntrospectTransient, err)
		c.recordCircuitResult(callErr)
		return user.Principal{}, fmt.Errorf("%w: account service unreachable", usecase.ErrDependencyUnavailable)
	}

	statusCode := resp.StatusCode()
	if statusCode == fasthttp.StatusUnauthorized || statusCode == fasthttp.StatusForbidden {
		c.recordCircuitResult(nil)
		return user.Principal{}, fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	}
	if statusCode != fasthttp.StatusOK {
		c.logger.WarnContext(ctx, "account introspection non-200", "status_code", statusCode)
		callErr := fmt.Errorf("%w: introspection status %d", errIntrospectTransient, statusCode)
		if !isRetryableStatus(statusCode) {
			callErr = crerr.Newf("introspection failed with status %d", statusCode)
		}
		c.recordCircuitResult(callErr)
		return user.Principal{}, fmt.Errorf("%w: account introspection failed", usecase.ErrDependencyUnavailable)
	}

	var decoded introspectResponse
	if err := sonic.Unmarshal(resp.Body(), &decoded); err != nil {
		c.recordCircuitResult(nil)
		return user.Principal{}, crerr.Wrap(err, "unmarshal introspect response")
	}
	c.recordCircuitResult(nil)

	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, crerr.New("invalid introspect response: user_id is empty")
	}

	return user.Principal{
		UserID:    decoded.UserID,
		Email:     decoded.Email,
		FirstName: decoded.FirstName,
		LastName:  decoded.LastName,
	}, nil
}

func (c *Client) recordCircuitResult(err error) {
	if !c.circuitEnabled || c.breaker == nil {
		return
	}
	if err == nil {
		c.breaker.RecordSuccess()
		return
	}
	if stderrors.Is(err, errIntrospectTransient) {
		c.breaker.RecordFailure()
		return
	}
	c.breaker.RecordSuccess()
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active    bool   `json:"active"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == fasthttp.StatusRequestTimeout ||
		statusCode == fasthttp.StatusTooManyRequests ||
		statusCode >= fasthttp.StatusInternalServerError
}

func buildURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return baseURL + path
}

func validateHTTPBaseURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return strings.TrimRight(candidate, "/"), nil
}
