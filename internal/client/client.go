// Package client is a small HTTP client for the gifttrack API. The board
// controller uses it to load the board and persist reassignments; it keeps
// the session cookie in a jar after Login.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"gifttrack/internal/gift"
)

var ErrUnauthorized = errors.New("unauthorized")

type Client struct {
	base string
	http *http.Client
}

func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar: jar,
			// The gate answers unauthenticated requests with a redirect to
			// the login page; surface that as ErrUnauthorized instead of
			// following it.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}

// Login submits the shared password; on success the session cookie lands in
// the jar and every later call carries it.
func (c *Client) Login(ctx context.Context, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/login", map[string]string{"password": password}, nil)
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *Client) ListPeople(ctx context.Context) ([]gift.PersonView, error) {
	var out []gift.PersonView
	if err := c.do(ctx, http.MethodGet, "/people", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListGifts(ctx context.Context) ([]gift.Gift, error) {
	var out []gift.Gift
	if err := c.do(ctx, http.MethodGet, "/gifts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReassignGift persists only the personId field, the drag-and-drop
// contract.
func (c *Client) ReassignGift(ctx context.Context, giftID, personID string) error {
	return c.do(ctx, http.MethodPut, "/gifts/"+giftID, map[string]string{"personId": personID}, nil)
}

func (c *Client) CreatePerson(ctx context.Context, in gift.CreatePersonInput) (*gift.Person, error) {
	var out gift.Person
	if err := c.do(ctx, http.MethodPost, "/people", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateGift(ctx context.Context, in gift.CreateGiftInput) (*gift.Gift, error) {
	var out gift.Gift
	if err := c.do(ctx, http.MethodPost, "/gifts", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusFound:
		return ErrUnauthorized
	case resp.StatusCode >= 400:
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Error == "" {
			e.Error = resp.Status
		}
		return fmt.Errorf("%s %s: %s", method, path, e.Error)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
