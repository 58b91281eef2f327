package admin

import (
	"atelier/internal/model"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client вызывает административный HTTP API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// RemoteError - ошибка, которую вернул сервер.
type RemoteError struct {
	Status  int
	Code    string `json:"code"`
	Message string `json:"error"`
	Details string `json:"details"`
}

func (e *RemoteError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%d %s: %s (%s)", e.Status, e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

// Do отправляет действие на /api/admin/actions.
func (c *Client) Do(ctx context.Context, a Action) error {
	body, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("ошибка сериализации действия: %w", err)
	}
	return c.call(ctx, http.MethodPost, "/api/admin/actions", body, nil)
}

// PendingVerifications запрашивает очередь проверки оплат.
func (c *Client) PendingVerifications(ctx context.Context) ([]model.PendingVerification, error) {
	var items []model.PendingVerification
	if err := c.call(ctx, http.MethodGet, "/api/admin/verifications", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) call(ctx context.Context, method, path string, body []byte, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("запрос %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		remote := &RemoteError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(remote); err != nil {
			remote.Message = http.StatusText(resp.StatusCode)
		}
		return remote
	}
	if dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("ошибка разбора ответа: %w", err)
	}
	return nil
}
