package laundryapi

import (
	"context"
	"net/http"
	"net/url"

	"fastlaundry/internal/domain"
)

// Posts fetches every published article. Reads are public.
func (c *Client) Posts(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	if err := c.do(ctx, http.MethodGet, "/api/posts", "", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) PostByID(ctx context.Context, id string) (*domain.Post, error) {
	var post domain.Post
	if err := c.do(ctx, http.MethodGet, "/api/posts/"+url.PathEscape(id), "", nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Post mutations require the caller's bearer token; the gateway passes it
// through without inspecting it.
func (c *Client) CreatePost(ctx context.Context, token string, post domain.Post) (*domain.Post, error) {
	var created domain.Post
	if err := c.do(ctx, http.MethodPost, "/api/posts/create", token, post, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdatePost(ctx context.Context, token, id string, post domain.Post) (*domain.Post, error) {
	var updated domain.Post
	if err := c.do(ctx, http.MethodPut, "/api/posts/update/"+url.PathEscape(id), token, post, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeletePost(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/posts/delete/"+url.PathEscape(id), token, nil, nil)
}
