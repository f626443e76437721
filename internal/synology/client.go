package synology

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client is an authenticated session against the DSM webapi of one NAS.
// It is owned by a single run: create, Login, issue calls, Logout. Nothing
// here is safe for concurrent use and nothing is persisted between runs.
type Client struct {
	host      string
	port      int
	useHTTPS  bool
	baseURL   string
	account   string
	password  string
	userAgent string
	http      *http.Client

	sid     string
	station *DownloadStation
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithHTTPS switches the webapi scheme to https. The caller is responsible
// for pointing the client at the DSM HTTPS port (5001 by default).
func WithHTTPS() Option {
	return func(c *Client) {
		c.useHTTPS = true
	}
}

// WithBaseURL points the client at a full base URL instead of the host and
// port given to New.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a client for the DSM instance at host:port. Credentials are
// carried by the client so that a session can be opened with a bare Login
// call; they are sent only at login time.
func New(host string, port int, account, password string, opts ...Option) *Client {
	c := &Client{
		host:      host,
		port:      port,
		account:   account,
		password:  password,
		userAgent: "tg-fsyn",
		http:      &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.baseURL == "" {
		scheme := "http"
		if c.useHTTPS {
			scheme = "https"
		}
		c.baseURL = fmt.Sprintf("%s://%s:%d", scheme, host, port)
	}
	c.station = &DownloadStation{client: c}
	return c
}

// LoggedIn reports whether the client holds a session id.
func (c *Client) LoggedIn() bool {
	return c.sid != ""
}

// Login opens a DSM session with the credentials given at construction.
// A rejected login surfaces as *APIError.
func (c *Client) Login(ctx context.Context) error {
	query := url.Values{}
	query.Set("api", "SYNO.API.Auth")
	query.Set("method", "login")
	query.Set("version", "7")
	query.Set("account", c.account)
	query.Set("passwd", c.password)
	query.Set("format", "json")

	var data struct {
		SID string `json:"sid"`
	}
	if err := c.get(ctx, "auth.cgi", query, &data); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if data.SID == "" {
		return fmt.Errorf("login failed: response carried no session id")
	}

	c.sid = data.SID
	return nil
}

// Logout releases the session. It is a no-op when no session is held, so it
// is safe to defer unconditionally next to Login.
func (c *Client) Logout(ctx context.Context) error {
	if c.sid == "" {
		return nil
	}

	query := url.Values{}
	query.Set("api", "SYNO.API.Auth")
	query.Set("method", "logout")
	query.Set("version", "7")
	query.Set("_sid", c.sid)

	c.sid = ""
	if err := c.get(ctx, "auth.cgi", query, nil); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

// DownloadStation returns the Download Station subsystem proxy.
func (c *Client) DownloadStation() *DownloadStation {
	return c.station
}

// RefreshTasks re-fetches the Download Station task list into the client's
// cache with a single blocking round-trip.
func (c *Client) RefreshTasks(ctx context.Context) error {
	return c.station.Update(ctx)
}

// Tasks returns the cached task snapshot in the order the station sent it.
func (c *Client) Tasks() []Task {
	return c.station.Tasks()
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code int `json:"code"`
	} `json:"error"`
}

// get issues one webapi call and decodes the response envelope. A response
// with success=false becomes an *APIError; otherwise the data payload is
// unmarshalled into out when out is non-nil.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + "/webapi/" + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !envelope.Success {
		return &APIError{API: query.Get("api"), Code: envelope.Error.Code}
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode %s data: %w", query.Get("api"), err)
		}
	}
	return nil
}

// Addr returns the host:port the client talks to, for logging.
func (c *Client) Addr() string {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return c.baseURL
	}
	return u.Host
}
