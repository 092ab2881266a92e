package cloudns

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

// Call is the single dispatch point every operation funnels through:
// it attaches credentials, fires the request through the throttled
// transport, and decodes the JSON reply into out (ignored when nil).
//
// Only GET and POST are part of the vendor surface; any other method
// fails with an error matching [ErrInvalidArgument] before any network
// access. GET sends the parameter set as the query string, POST as a
// form-encoded body. A non-200 reply fails with an [*APIError].
func (c *Client) Call(ctx context.Context, endpoint, method string, params *Params, out any) error {
	ctx, span := c.tracer.Start(ctx, "cloudns.call")
	defer span.End()
	span.SetAttributes(attribute.String("endpoint", endpoint), attribute.String("method", method))

	auth := NewParams().
		Add("auth-id", c.authID).
		Add("auth-password", c.authPassword)
	if params != nil {
		auth.pairs = append(auth.pairs, params.pairs...)
	}
	encoded := auth.Encode()

	reqURL := *c.baseURL
	reqURL.Path = strings.TrimSuffix(c.baseURL.Path, "/") + "/" + endpoint

	var body io.Reader
	switch method {
	case http.MethodGet:
		reqURL.RawQuery = encoded
	case http.MethodPost:
		body = strings.NewReader(encoded)
	default:
		return invalidArgument(fmt.Sprintf("unsupported http method %q", method))
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return fmt.Errorf("instantiating request: %w", err)
	}
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.c.Do(req)
	if err != nil {
		return fmt.Errorf("exec http do: %w", err)
	}

	discardBody := true
	defer func() {
		if discardBody {
			if _, err = io.Copy(io.Discard, resp.Body); err != nil {
				c.logger.Error("failed to discard unused body", "error", err)
			}
		}
		if err = resp.Body.Close(); err != nil {
			c.logger.Error("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySize))
		if err != nil {
			b = []byte("unable to read body")
		}

		return newAPIError(resp.StatusCode, b)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			discardBody = false
			return fmt.Errorf("decoding body: %w", err)
		}
	}

	return nil
}
