package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/bookshop/internal/client/models"
)

// HTTPClient talks to the bookshop REST API. After a successful Login the
// session token is kept on the client and attached as a bearer credential
// to review mutations.
type HTTPClient struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type reviewBody struct {
	Review string `json:"review"`
}

func (c *HTTPClient) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/register", credentials{Username: username, Password: password}, nil, false)
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) error {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", credentials{Username: username, Password: password}, &resp, false); err != nil {
		return err
	}
	c.accessToken = resp.Token
	return nil
}

func (c *HTTPClient) ListBooks(ctx context.Context) ([]models.Book, error) {
	var out []models.Book
	if err := c.do(ctx, http.MethodGet, "/books", nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetBook(ctx context.Context, isbn string) (*models.Book, error) {
	var out models.Book
	if err := c.do(ctx, http.MethodGet, "/books/"+url.PathEscape(isbn), nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SearchByAuthor(ctx context.Context, author string) ([]models.Book, error) {
	var out []models.Book
	path := "/books?author=" + url.QueryEscape(author)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) SearchByTitle(ctx context.Context, title string) ([]models.Book, error) {
	var out []models.Book
	path := "/books?title=" + url.QueryEscape(title)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Reviews(ctx context.Context, isbn string) (*models.ReviewsPage, error) {
	var out models.ReviewsPage
	if err := c.do(ctx, http.MethodGet, "/books/"+url.PathEscape(isbn)+"/review", nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) AddReview(ctx context.Context, isbn, text string) error {
	return c.do(ctx, http.MethodPost, "/books/"+url.PathEscape(isbn)+"/review", reviewBody{Review: text}, nil, true)
}

func (c *HTTPClient) DeleteReview(ctx context.Context, isbn string) error {
	return c.do(ctx, http.MethodDelete, "/books/"+url.PathEscape(isbn)+"/review", nil, nil, true)
}

// do performs one API call: marshals the optional body, attaches the
// bearer token when authed is set, and decodes the response into out.
// Transport failures map to ErrUnavailable, HTTP failures to the package
// sentinels.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any, authed bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed && c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := statusToError(resp.StatusCode); err != nil {
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return err
		}
	}

	return nil
}

func statusToError(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusBadRequest:
		return ErrBadRequest
	case code == http.StatusUnauthorized:
		return ErrUnauthorized
	case code == http.StatusForbidden:
		return ErrForbidden
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusConflict:
		return ErrConflict
	default:
		return fmt.Errorf("unexpected status %d", code)
	}
}
