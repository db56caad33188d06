package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
)

// TokenSource supplies the bearer token attached to every request. The token
// lives in client-persisted storage and may change between calls (login,
// logout), so it is read per request rather than captured at construction.
type TokenSource interface {
	Token() string
}

// Observer is notified after each completed request. Used for the console's
// own request counters.
type Observer interface {
	RequestCompleted(ok bool)
}

// Client talks to the upstream event-management API. One request per
// operation, single attempt, no retry: a failed call is reported to the
// caller and the caller decides whether to re-trigger it.
type Client struct {
	BaseURL  string
	Tokens   TokenSource
	HTTP     *http.Client
	Observer Observer
}

func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		BaseURL: baseURL,
		Tokens:  tokens,
		HTTP:    &http.Client{},
	}
}

// FormBody is a multipart payload: plain fields plus zero or more attached
// files. Passing a *FormBody to a mutation switches the request encoding from
// JSON to multipart form data.
type FormBody struct {
	Fields map[string]string
	Files  []FormFile
}

type FormFile struct {
	Field    string
	Name     string
	Contents io.Reader
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, path string, body interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) put(ctx context.Context, path string, body interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *Client) delete(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	contentType := ""
	switch payload := body.(type) {
	case nil:
	case *FormBody:
		encoded, boundary, err := encodeMultipart(payload)
		if err != nil {
			return nil, WrapError(err, "encode form")
		}
		reader = encoded
		contentType = boundary
	default:
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, WrapError(err, "encode body")
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.Tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.observe(false)
		log.Printf("upstream %s %s: %v", method, path, err)
		return nil, WrapError(err, "upstream request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(false)
		log.Printf("upstream %s %s: read body: %v", method, path, err)
		return nil, WrapError(err, "read upstream response")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.observe(false)
		apiErr := APIError{Status: resp.StatusCode, Message: envelopeMessage(raw)}
		log.Printf("upstream %s %s: %d %s", method, path, resp.StatusCode, apiErr.Message)
		return nil, apiErr
	}
	c.observe(true)
	return raw, nil
}

func (c *Client) observe(ok bool) {
	if c.Observer != nil {
		c.Observer.RequestCompleted(ok)
	}
}

func encodeMultipart(body *FormBody) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range body.Fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", err
		}
	}
	for _, file := range body.Files {
		part, err := writer.CreateFormFile(file.Field, file.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, file.Contents); err != nil {
			return nil, "", err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}

func idPath(prefix string, id int) string {
	return prefix + "/" + strconv.Itoa(id)
}
