// Package catalog looks up bibliographic metadata against the Google Books
// volumes API and normalizes it into the model.Book shape.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"booksnap/backend/internal/model"

	"github.com/avast/retry-go/v4"
)

// ErrNotFound means the catalog returned zero items for the query. Callers
// surface it as "no book found", not as a failure.
var ErrNotFound = errors.New("no book found")

const (
	defaultBaseURL = "https://www.googleapis.com/books/v1/volumes"
	lookupAttempts = 3
	lookupDelay    = 300 * time.Millisecond
)

// Client queries the Google Books volumes API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// NewClient creates a Google Books client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type volumeInfo struct {
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Categories    []string `json:"categories"`
	Description   string   `json:"description"`
	PublishedDate string   `json:"publishedDate"`
	PageCount     int      `json:"pageCount"`
	ImageLinks    struct {
		Thumbnail string `json:"thumbnail"`
	} `json:"imageLinks"`
	IndustryIdentifiers []struct {
		Type       string `json:"type"`
		Identifier string `json:"identifier"`
	} `json:"industryIdentifiers"`
}

type volume struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumesResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []volume `json:"items"`
}

// SearchByTitle returns up to max books matching the title.
func (c *Client) SearchByTitle(ctx context.Context, title string, max int) ([]model.Book, error) {
	q := fmt.Sprintf("intitle:%s", title)
	return c.search(ctx, q, max)
}

// SearchByTitleAuthor returns the best single match for a title and author
// pair, used to attach metadata to discovery suggestions.
func (c *Client) SearchByTitleAuthor(ctx context.Context, title, author string) (*model.Book, error) {
	q := fmt.Sprintf("intitle:%s+inauthor:%s", title, author)
	books, err := c.search(ctx, q, 1)
	if err != nil {
		return nil, err
	}
	return &books[0], nil
}

// LookupISBN resolves a scanned barcode into a book record.
func (c *Client) LookupISBN(ctx context.Context, isbn string) (*model.Book, error) {
	books, err := c.search(ctx, "isbn:"+isbn, 1)
	if err != nil {
		return nil, err
	}
	book := &books[0]
	if book.ISBN == "" {
		book.ISBN = isbn
	}
	return book, nil
}

func (c *Client) search(ctx context.Context, query string, max int) ([]model.Book, error) {
	u := fmt.Sprintf("%s?q=%s&maxResults=%d", c.baseURL, url.QueryEscape(query), max)

	var parsed volumesResponse
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			resp, err := c.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode >= 500 {
				return fmt.Errorf("catalog returned status %d", resp.StatusCode)
			}
			if resp.StatusCode != http.StatusOK {
				return retry.Unrecoverable(fmt.Errorf("catalog returned status %d", resp.StatusCode))
			}

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			if err := json.Unmarshal(body, &parsed); err != nil {
				return retry.Unrecoverable(fmt.Errorf("decoding catalog response: %w", err))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(lookupAttempts),
		retry.Delay(lookupDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}

	if len(parsed.Items) == 0 {
		return nil, ErrNotFound
	}

	books := make([]model.Book, len(parsed.Items))
	for i, item := range parsed.Items {
		books[i] = normalizeVolume(item)
	}
	return books, nil
}

// normalizeVolume flattens a Google Books volume into a Book record.
func normalizeVolume(v volume) model.Book {
	book := model.Book{
		ID:            v.ID,
		Title:         v.VolumeInfo.Title,
		Authors:       v.VolumeInfo.Authors,
		Categories:    v.VolumeInfo.Categories,
		Description:   v.VolumeInfo.Description,
		Thumbnail:     v.VolumeInfo.ImageLinks.Thumbnail,
		PublishedDate: v.VolumeInfo.PublishedDate,
		PageCount:     v.VolumeInfo.PageCount,
	}
	for _, id := range v.VolumeInfo.IndustryIdentifiers {
		if id.Type == "ISBN_13" {
			book.ISBN = id.Identifier
			break
		}
		if id.Type == "ISBN_10" && book.ISBN == "" {
			book.ISBN = id.Identifier
		}
	}
	return book
}
