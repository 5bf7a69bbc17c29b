package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/bandmate/internal/client/models"
	"github.com/google/uuid"
)

// HTTPClient talks JSON over HTTP to the Bandmate API server.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewHTTPClient builds a client for the given base URL
// (e.g. "http://127.0.0.1:5000"). A trailing slash is tolerated.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

func (c *HTTPClient) Close() error { return nil }

func (c *HTTPClient) SetToken(token string) { c.token = token }

// errorBody is the shape of every failure response from the server.
type errorBody struct {
	Message string `json:"message"`
}

// do performs a single round trip. body (if non-nil) is JSON-encoded; the
// response is decoded into out (if non-nil). withAuth attaches the bearer
// token. Transport failures map to ErrUnavailable, non-2xx responses to
// *APIError carrying the server's message.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any, withAuth bool) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withAuth && c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var eb errorBody
		if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil {
			apiErr.Message = eb.Message
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, req, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, nil, &users, false); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) SearchUsers(ctx context.Context, filters SearchFilters) ([]models.User, error) {
	q := url.Values{}
	if filters.City != "" {
		q.Set("city", filters.City)
	}
	if filters.Instrument != "" {
		q.Set("instrument", filters.Instrument)
	}
	if filters.Genre != "" {
		q.Set("genre", filters.Genre)
	}

	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/api/users/search", q, nil, &users, false); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) UsersByCity(ctx context.Context, city string) ([]models.User, error) {
	var users []models.User
	path := "/api/users/city/" + url.PathEscape(city)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &users, false); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) SendConnectionRequest(ctx context.Context, recipientID string) (*models.Connection, error) {
	body := map[string]string{"recipient": recipientID}
	var conn models.Connection
	if err := c.do(ctx, http.MethodPost, "/api/connections/request", nil, body, &conn, true); err != nil {
		return nil, err
	}
	return &conn, nil
}

func (c *HTTPClient) RespondToRequest(ctx context.Context, id string, status models.ConnectionStatus) (*models.Connection, error) {
	body := map[string]string{"status": string(status)}
	var conn models.Connection
	if err := c.do(ctx, http.MethodPut, "/api/connections/"+url.PathEscape(id), nil, body, &conn, true); err != nil {
		return nil, err
	}
	return &conn, nil
}

func (c *HTTPClient) Bandmates(ctx context.Context) ([]models.Connection, error) {
	return c.connectionList(ctx, "/api/connections")
}

func (c *HTTPClient) PendingRequests(ctx context.Context) ([]models.Connection, error) {
	return c.connectionList(ctx, "/api/connections/pending")
}

func (c *HTTPClient) SentRequests(ctx context.Context) ([]models.Connection, error) {
	return c.connectionList(ctx, "/api/connections/sent")
}

func (c *HTTPClient) connectionList(ctx context.Context, path string) ([]models.Connection, error) {
	var conns []models.Connection
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &conns, true); err != nil {
		return nil, err
	}
	return conns, nil
}

func (c *HTTPClient) Messages(ctx context.Context, peerID string) ([]models.Message, error) {
	var msgs []models.Message
	path := "/api/messages/" + url.PathEscape(peerID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &msgs, true); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *HTTPClient) SendMessage(ctx context.Context, peerID, content string) (*models.Message, error) {
	body := map[string]string{"receiver": peerID, "content": content}
	var msg models.Message
	if err := c.do(ctx, http.MethodPost, "/api/messages", nil, body, &msg, true); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *HTTPClient) Feed(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.do(ctx, http.MethodGet, "/api/posts/feed", nil, nil, &posts, true); err != nil {
		return nil, err
	}
	return posts, nil
}

// postBody carries create/edit payloads. Image is omitted when empty so
// a text-only post does not send an empty image field.
type postBody struct {
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

func (c *HTTPClient) CreatePost(ctx context.Context, content, image string) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodPost, "/api/posts", nil, postBody{Content: content, Image: image}, &post, true); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) LikePost(ctx context.Context, postID string) (int, error) {
	var resp struct {
		LikesCount int `json:"likesCount"`
	}
	path := "/api/posts/" + url.PathEscape(postID) + "/like"
	if err := c.do(ctx, http.MethodPost, path, nil, struct{}{}, &resp, true); err != nil {
		return 0, err
	}
	return resp.LikesCount, nil
}

func (c *HTTPClient) AddComment(ctx context.Context, postID, text string) (*models.Comment, error) {
	body := map[string]string{"text": text}
	var comment models.Comment
	path := "/api/posts/" + url.PathEscape(postID) + "/comment"
	if err := c.do(ctx, http.MethodPost, path, nil, body, &comment, true); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *HTTPClient) EditPost(ctx context.Context, postID, content, image string) (*models.Post, error) {
	var post models.Post
	path := "/api/posts/" + url.PathEscape(postID)
	if err := c.do(ctx, http.MethodPut, path, nil, postBody{Content: content, Image: image}, &post, true); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, postID string) error {
	return c.do(ctx, http.MethodDelete, "/api/posts/"+url.PathEscape(postID), nil, nil, nil, true)
}

func (c *HTTPClient) Profile(ctx context.Context, userID string) (*ProfileResponse, error) {
	path := "/api/profile"
	if userID != "" {
		path += "/" + url.PathEscape(userID)
	}
	var resp ProfileResponse
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, update ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPut, "/api/profile", nil, update, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}
