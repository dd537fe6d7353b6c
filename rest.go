package stakecube

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/nikandfor/errors"
	"github.com/nikandfor/tlog"
)

var ErrNotLoggedIn = errors.New("login with api key and secret before sending private requests")

func (c *Client) public(ctx context.Context, op, path string, p *Params) (json.RawMessage, error) {
	if err := p.check(op); err != nil {
		return nil, err
	}

	return c.do(ctx, op, http.MethodGet, path, p.String(), "")
}

func (c *Client) private(ctx context.Context, op, method, path string, p *Params) (json.RawMessage, error) {
	if err := p.check(op); err != nil {
		return nil, err
	}

	if c.sess.Key() == "" {
		return nil, &Error{Kind: Authentication, Op: op, Err: ErrNotLoggedIn}
	}

	q := p.String()

	sig, err := c.sess.Sign(q)
	if err != nil {
		return nil, &Error{Kind: Authentication, Op: op, Err: err}
	}

	q += "&signature=" + sig

	return c.do(ctx, op, method, path, q, c.sess.Key())
}

func (c *Client) do(ctx context.Context, op, method, path, q, key string) (json.RawMessage, error) {
	url := c.BaseURL + path

	var body io.Reader
	if method == http.MethodGet {
		if q != "" {
			url += "?" + q
		}
	} else {
		body = strings.NewReader(q)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, &Error{Kind: Transport, Op: op, Err: errors.Wrap(err, "new request")}
	}

	req.Header.Set("User-Agent", c.UserAgent)

	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	if key != "" {
		req.Header.Set("X-API-KEY", key)
	}

	start := time.Now()

	tlog.V("http").Printw("request", "op", op, "method", method, "path", path, "signed", key != "")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: Transport, Op: op, Err: errors.Wrap(err, "do")}
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: Transport, Op: op, Status: resp.StatusCode, Err: errors.Wrap(err, "read body")}
	}

	tlog.V("http").Printw("response", "op", op, "status", resp.StatusCode, "size", len(data), "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			Kind:   Transport,
			Op:     op,
			Status: resp.StatusCode,
			Body:   data,
			Err:    errors.New("%s", serverMessage(resp.StatusCode, data)),
		}
	}

	return json.RawMessage(data), nil
}

func serverMessage(status int, body []byte) string {
	for _, k := range []string{"error", "message"} {
		v, err := jsonparser.GetString(body, k)
		if err == nil && v != "" {
			return v
		}
	}

	return http.StatusText(status)
}
