// Package tinycards is a client of the unofficial REST API of Tinycards.
package tinycards

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strconv"
	"time"

	"golang.org/x/net/publicsuffix"
	"resty.dev/v3"

	"github.com/at-ishikawa/tinycards/internal/form"
)

const (
	DefaultBaseURL = "https://tinycards.duolingo.com/api/1/"

	DefaultTimeout       = 30 * time.Second
	DefaultRetryAttempts = 2
	DefaultRetryDelay    = 500 * time.Millisecond

	IdentifierEnv = "TINYCARDS_IDENTIFIER"
	PasswordEnv   = "TINYCARDS_PASSWORD"

	sessionCookieName = "jwt_token"
)

type Config struct {
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts uint
	RetryDelay    time.Duration
}

func DefaultConfig() Config {
	return Config{
		BaseURL:       DefaultBaseURL,
		Timeout:       DefaultTimeout,
		RetryAttempts: DefaultRetryAttempts,
		RetryDelay:    DefaultRetryDelay,
	}
}

// Client is not safe for concurrent use.
type Client struct {
	httpClient *resty.Client
	jar        http.CookieJar
	baseURL    *url.URL
	encoder    *form.Encoder

	retryAttempts uint
	retryDelay    time.Duration

	userID int64
}

// Session is the state needed to call the API as a logged-in user.
type Session struct {
	Token  string
	UserID int64
}

// defaultHeaders returns the headers sent by the web client of Tinycards.
func defaultHeaders() map[string]string {
	return map[string]string{
		"Accept":  "application/json, text/plain, */*",
		"Referer": "https://tinycards.duolingo.com/",
		"User-Agent": "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_12_4)" +
			" AppleWebKit/537.36 (KHTML, like Gecko)" +
			" Chrome/58.0.3029.94 Safari/537.36",
	}
}

// NewClient creates a client. images resolves the cover of decks uploaded with a multipart form.
func NewClient(config Config, images form.ImageResolver) (*Client, error) {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("url.Parse(%s) > %w", config.BaseURL, err)
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookiejar.New > %w", err)
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(config.BaseURL)
	httpClient.SetHeaders(defaultHeaders())
	httpClient.SetCookieJar(jar)
	if config.Timeout > 0 {
		httpClient.SetTimeout(config.Timeout)
	}

	return &Client{
		httpClient:    httpClient,
		jar:           jar,
		baseURL:       baseURL,
		encoder:       form.NewEncoder(images),
		retryAttempts: config.RetryAttempts,
		retryDelay:    config.RetryDelay,
	}, nil
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type loginResponse struct {
	ID       int64  `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
}

// Login logs in and returns the id of the user.
// An empty identifier or password is read from TINYCARDS_IDENTIFIER or TINYCARDS_PASSWORD.
func (client *Client) Login(ctx context.Context, identifier, password string) (int64, error) {
	if identifier == "" {
		identifier = os.Getenv(IdentifierEnv)
	}
	if password == "" {
		password = os.Getenv(PasswordEnv)
	}
	if identifier == "" || password == "" {
		return 0, ErrMissingCredentials
	}

	body, err := client.send(ctx, http.MethodPost, "/login", func(request *resty.Request) {
		request.SetBody(loginRequest{
			Identifier: identifier,
			Password:   password,
		})
	})
	if err != nil {
		return 0, fmt.Errorf("login > %w", err)
	}

	var response loginResponse
	if err := decodeJSON(body, &response); err != nil {
		return 0, fmt.Errorf("login > %w", err)
	}
	client.userID = response.ID
	slog.Default().Info("Logged in",
		"fullname", response.Fullname,
		"email", response.Email,
		"userID", response.ID)
	return response.ID, nil
}

// Session returns the session of the logged-in user so that it can be restored later.
func (client *Client) Session() (Session, error) {
	if client.userID == 0 {
		return Session{}, ErrNotLoggedIn
	}
	session := Session{UserID: client.userID}
	for _, cookie := range client.jar.Cookies(client.baseURL) {
		if cookie.Name == sessionCookieName {
			session.Token = cookie.Value
		}
	}
	return session, nil
}

// RestoreSession makes the client act as the user of a session returned by Session.
func (client *Client) RestoreSession(session Session) {
	client.userID = session.UserID
	if session.Token == "" {
		return
	}
	client.jar.SetCookies(client.baseURL, []*http.Cookie{
		{
			Name:  sessionCookieName,
			Value: session.Token,
			Path:  "/",
		},
	})
}

// UserID returns the id of the logged-in user, or 0.
func (client *Client) UserID() int64 {
	return client.userID
}

func (client *Client) requireUserID() (int64, error) {
	if client.userID == 0 {
		return 0, ErrNotLoggedIn
	}
	return client.userID, nil
}

// get sends a GET request under the retry policy and returns the response body.
func (client *Client) get(ctx context.Context, operation string, path string, query map[string]string) ([]byte, error) {
	var body []byte
	err := client.withRetry(ctx, operation, func() error {
		var err error
		body, err = client.send(ctx, http.MethodGet, path, func(request *resty.Request) {
			request.SetQueryParams(query)
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s > %w", operation, err)
	}
	return body, nil
}

// send sends a request once and returns the response body.
func (client *Client) send(ctx context.Context, method, path string, prepare func(request *resty.Request)) ([]byte, error) {
	request := client.httpClient.R().SetContext(ctx)
	if prepare != nil {
		prepare(request)
	}

	slog.Default().Debug("Tinycards API request", "method", method, "path", path)
	response, err := request.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("httpClient.%s(%s) > %w", method, path, err)
	}
	if response.IsError() {
		return nil, &APIError{
			StatusCode: response.StatusCode(),
			Body:       response.String(),
		}
	}
	return response.Bytes(), nil
}

func userPath(userID int64, elements ...string) string {
	path := "/users/" + strconv.FormatInt(userID, 10)
	for _, element := range elements {
		path += "/" + url.PathEscape(element)
	}
	return path
}
