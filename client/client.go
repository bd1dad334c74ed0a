package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"

	"github.com/bcspragu/Ludo/ludo"
	"github.com/bcspragu/Ludo/web"
)

type Client struct {
	scheme string
	addr   string
	http   *http.Client
}

func New(scheme, addr string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %v", err)
	}

	return &Client{
		scheme: scheme,
		addr:   addr,
		http:   &http.Client{Jar: jar},
	}, nil
}

// CreateGame starts a new game. The server remembers this client, through its
// cookie jar, as the only one allowed to roll and move in it.
func (c *Client) CreateGame() (ludo.GameID, error) {
	req, err := http.NewRequest(http.MethodPost, c.url("/api/game"), nil)
	if err != nil {
		return "", fmt.Errorf("failed to form request: %w", err)
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(req, &resp); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return ludo.GameID(resp.ID), nil
}

func (c *Client) ActiveGames() ([]ludo.GameID, error) {
	req, err := http.NewRequest(http.MethodGet, c.url("/api/games"), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to form request: %w", err)
	}

	var resp []ludo.GameID
	if err := c.do(req, &resp); err != nil {
		return nil, fmt.Errorf("failed to load games: %w", err)
	}
	return resp, nil
}

func (c *Client) Game(gID ludo.GameID) (*ludo.GameState, error) {
	req, err := http.NewRequest(http.MethodGet, c.url("/api/game/"+string(gID)), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to form request: %w", err)
	}

	var resp ludo.GameState
	if err := c.do(req, &resp); err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	return &resp, nil
}

func (c *Client) LegalTokens(gID ludo.GameID) ([]ludo.TokenID, error) {
	req, err := http.NewRequest(http.MethodGet, c.url("/api/game/"+string(gID)+"/legal"), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to form request: %w", err)
	}

	var resp []ludo.TokenID
	if err := c.do(req, &resp); err != nil {
		return nil, fmt.Errorf("failed to load legal tokens: %w", err)
	}
	return resp, nil
}

func (c *Client) Roll(gID ludo.GameID) (*web.Outcome, error) {
	req, err := http.NewRequest(http.MethodPost, c.url("/api/game/"+string(gID)+"/roll"), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to form request: %w", err)
	}

	var resp web.Outcome
	if err := c.do(req, &resp); err != nil {
		return nil, fmt.Errorf("failed to roll: %w", err)
	}
	return &resp, nil
}

func (c *Client) Select(gID ludo.GameID, id ludo.TokenID) (*web.Outcome, error) {
	req, err := http.NewRequest(http.MethodPost, c.url("/api/game/"+string(gID)+"/select"), toBody(id))
	if err != nil {
		return nil, fmt.Errorf("failed to form request: %w", err)
	}

	var resp web.Outcome
	if err := c.do(req, &resp); err != nil {
		return nil, fmt.Errorf("failed to select %s: %w", id, err)
	}
	return &resp, nil
}

func (c *Client) url(path string) string {
	return c.scheme + "://" + c.addr + path
}

func (c *Client) do(req *http.Request, resp interface{}) error {
	httpResp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return handleError(httpResp)
	}

	if resp != nil {
		if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}
	}

	return nil
}

type httpError struct {
	statusCode int
	body       string
	err        error
}

func (h *httpError) Error() string {
	if h.err != nil {
		return fmt.Sprintf("[%d] failed to handle error: %v", h.statusCode, h.err)
	}
	return fmt.Sprintf("[%d] error from server: %s", h.statusCode, h.body)
}

// StatusCode returns the HTTP status of a failed request, or 0 if the error
// didn't come from the server.
func StatusCode(err error) int {
	var herr *httpError
	if errors.As(err, &herr) {
		return herr.statusCode
	}
	return 0
}

func handleError(resp *http.Response) error {
	dat, err := io.ReadAll(resp.Body)
	if err != nil {
		return &httpError{
			statusCode: resp.StatusCode,
			err:        fmt.Errorf("failed to read error response body: %w", err),
		}
	}

	return &httpError{
		statusCode: resp.StatusCode,
		body:       string(bytes.TrimSpace(dat)),
	}
}

func toBody(req interface{}) io.Reader {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(req); err != nil {
		return &errReader{err: err}
	}
	return &buf
}

type errReader struct {
	err error
}

func (e *errReader) Read(_ []byte) (int, error) {
	return 0, e.err
}
