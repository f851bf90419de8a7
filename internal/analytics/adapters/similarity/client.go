package similarity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/ports"
	"session-analytics-service/pkg/apperrors"
)

// Client calls the external nearest-neighbor service:
//
//	GET {base}/similar-users/{user_id}?limit=N[&device=D]
//	-> {"similar_users":[{"user_id":"...","similarity_score":0.42}]}
type Client struct {
	baseURL string
	timeout time.Duration
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), timeout: timeout}
}

var _ ports.SimilarityPort = (*Client)(nil)

type similarUserDTO struct {
	UserID          string  `json:"user_id"`
	SimilarityScore float64 `json:"similarity_score"`
}

type similarUsersResponse struct {
	SimilarUsers []similarUserDTO `json:"similar_users"`
}

func (c *Client) FindSimilarUsers(ctx context.Context, userID string, device *string, limit int) ([]domain.SimilarUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if device != nil {
		q.Set("device", *device)
	}

	timeout := c.timeout
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < timeout {
			timeout = left
		}
	}

	endpoint := fmt.Sprintf("%s/similar-users/%s", c.baseURL, url.PathEscape(userID))
	a := fiber.Get(endpoint).
		QueryString(q.Encode()).
		Timeout(timeout)

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, apperrors.NewExternalError("similarity request", errs[0])
	}
	if code != fiber.StatusOK {
		return nil, apperrors.NewExternalError(
			fmt.Sprintf("similarity service returned %d: %s", code, truncate(body, 200)), nil)
	}

	var resp similarUsersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apperrors.NewExternalError("decode similarity response", err)
	}

	out := make([]domain.SimilarUser, 0, len(resp.SimilarUsers))
	for _, u := range resp.SimilarUsers {
		out = append(out, domain.SimilarUser{UserID: u.UserID, SimilarityScore: u.SimilarityScore})
	}
	return out, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n])
}
