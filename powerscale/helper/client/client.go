package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"golang.org/x/time/rate"

	httphelper "terraform-provider-powerscale/powerscale/helper/http"
)

const (
	DefaultUserAgent = "terraform-provider-powerscale/1.0.0"

	AuthTypeSession = "session"
	AuthTypeBasic   = "basic"

	sessionCookie = "isisessid"
	csrfCookie    = "isicsrf"
)

var applicationJSON = "application/json"

type Client struct {
	baseURL    string
	authType   string
	username   string
	password   string
	sessionID  string
	csrfToken  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

type ClientConfig struct {
	Endpoint             string
	Username             string
	Password             string
	AuthType             string
	Insecure             bool
	Timeout              time.Duration
	MaxRequestsPerSecond int
	EnableLogging        bool
	HttpProxy            string
}

func NewClient(ctx context.Context, cfg *ClientConfig) (*Client, error) {
	httpClient, err := httphelper.NewHttpClient(ctx,
		httphelper.WithSkipTls(cfg.Insecure),
		httphelper.WithTimeout(cfg.Timeout),
		httphelper.WithLogging(cfg.EnableLogging),
		httphelper.WithHttpProxy(cfg.HttpProxy),
	)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.Endpoint, "/"),
		authType:   cfg.AuthType,
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: httpClient,
	}

	if c.authType == "" {
		c.authType = AuthTypeSession
	}

	if cfg.MaxRequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.MaxRequestsPerSecond), cfg.MaxRequestsPerSecond)
	}

	if err := c.Authenticate(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

type RequestOpts struct {
	JSONBody         any
	RawBody          io.Reader
	JSONResponse     any
	OkCodes          []int
	MoreHeaders      map[string]string
	OmitHeaders      []string
	KeepResponseBody bool

	noReauth bool
}

// Authenticate opens a platform API session. Basic auth needs no handshake.
func (client *Client) Authenticate(ctx context.Context) error {
	if client.authType == AuthTypeBasic {
		return nil
	}

	type SessionPayload struct {
		Username string   `json:"username"`
		Password string   `json:"password"`
		Services []string `json:"services"`
	}

	payload := SessionPayload{
		Username: client.username,
		Password: client.password,
		Services: []string{"platform", "namespace"},
	}

	client.sessionID = ""
	client.csrfToken = ""

	opts := &RequestOpts{
		OkCodes:  []int{200, 201},
		noReauth: true,
	}

	resp, err := client.Post(ctx, ApiPath.Session, payload, nil, opts)
	if err != nil {
		return fmt.Errorf("unable to open a PowerScale session: %w", err)
	}

	for _, cookie := range resp.Cookies() {
		switch cookie.Name {
		case sessionCookie:
			client.sessionID = cookie.Value
		case csrfCookie:
			client.csrfToken = cookie.Value
		}
	}

	if client.sessionID == "" {
		return errors.New("no isisessid cookie found in the session response")
	}

	return nil
}

func (client *Client) Get(ctx context.Context, path string, JSONResponse any, opts *RequestOpts) (*http.Response, error) {
	if opts == nil {
		opts = new(RequestOpts)
	}
	client.initReqOpts(nil, JSONResponse, opts)
	return client.doRequest(ctx, http.MethodGet, client.baseURL+path, opts)
}

func (client *Client) Post(ctx context.Context, path string, JSONBody any, JSONResponse any, opts *RequestOpts) (*http.Response, error) {
	if opts == nil {
		opts = new(RequestOpts)
	}
	client.initReqOpts(JSONBody, JSONResponse, opts)
	return client.doRequest(ctx, http.MethodPost, client.baseURL+path, opts)
}

func (client *Client) Put(ctx context.Context, path string, JSONBody any, JSONResponse any, opts *RequestOpts) (*http.Response, error) {
	if opts == nil {
		opts = new(RequestOpts)
	}
	client.initReqOpts(JSONBody, JSONResponse, opts)
	return client.doRequest(ctx, http.MethodPut, client.baseURL+path, opts)
}

func (client *Client) Patch(ctx context.Context, path string, JSONBody any, JSONResponse any, opts *RequestOpts) (*http.Response, error) {
	if opts == nil {
		opts = new(RequestOpts)
	}
	client.initReqOpts(JSONBody, JSONResponse, opts)
	return client.doRequest(ctx, http.MethodPatch, client.baseURL+path, opts)
}

func (client *Client) Delete(ctx context.Context, path string, opts *RequestOpts) (*http.Response, error) {
	if opts == nil {
		opts = new(RequestOpts)
	}
	client.initReqOpts(nil, nil, opts)
	return client.doRequest(ctx, http.MethodDelete, client.baseURL+path, opts)
}

func (client *Client) doRequest(ctx context.Context, method, url string, options *RequestOpts) (*http.Response, error) {
	var rendered []byte
	var contentType *string

	if options.JSONBody != nil {
		if options.RawBody != nil {
			return nil, errors.New("please provide only one of JSONBody or RawBody to Request")
		}

		var err error
		rendered, err = json.Marshal(options.JSONBody)
		if err != nil {
			return nil, err
		}

		contentType = &applicationJSON
	}

	if options.KeepResponseBody && options.JSONResponse != nil {
		return nil, errors.New("cannot use KeepResponseBody when JSONResponse is not nil")
	}

	if client.limiter != nil {
		if err := client.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var body io.Reader
	if rendered != nil {
		body = bytes.NewReader(rendered)
	}

	if options.RawBody != nil {
		body = options.RawBody
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)

	if err != nil {
		return nil, err
	}

	if contentType != nil {
		req.Header.Set("Content-Type", *contentType)
	}

	requestID := uuid.NewString()

	req.Header.Set("Accept", applicationJSON)
	req.Header.Set("User-Agent", DefaultUserAgent)
	req.Header.Set("X-Request-ID", requestID)
	client.authorize(req)

	if options.MoreHeaders != nil {
		for k, v := range options.MoreHeaders {
			req.Header.Set(k, v)
		}
	}

	for _, v := range options.OmitHeaders {
		req.Header.Del(v)
	}

	tflog.Trace(ctx, "Sending PowerScale API request", map[string]interface{}{
		"method":     method,
		"url":        url,
		"request_id": requestID,
	})

	resp, err := client.httpClient.Do(req)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && client.authType == AuthTypeSession &&
		!options.noReauth && options.RawBody == nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		tflog.Debug(ctx, "PowerScale session expired, authenticating again", map[string]interface{}{
			"request_id": requestID,
		})

		if err := client.Authenticate(ctx); err != nil {
			return nil, err
		}

		options.noReauth = true
		return client.doRequest(ctx, method, url, options)
	}

	okc := options.OkCodes

	if okc == nil {
		okc = defaultOkCodes(method)
	}

	var ok bool

	for _, code := range okc {
		if resp.StatusCode == code {
			ok = true
			break
		}
	}

	if !ok {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		err := ErrUnexpectedResponseCode{
			URL:            url,
			Method:         method,
			Expected:       okc,
			Actual:         resp.StatusCode,
			Body:           body,
			ResponseHeader: resp.Header,
		}

		if resp.StatusCode != http.StatusNotFound {
			tflog.Error(ctx, "An error occurred while executing a request.", map[string]interface{}{
				"status":     err.Actual,
				"url":        err.URL,
				"method":     err.Method,
				"body":       string(err.Body),
				"request_id": requestID,
			})
		}

		return resp, err
	}

	if options.JSONResponse != nil {
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNoContent {
			_, err = io.Copy(io.Discard, resp.Body)
			return resp, err
		}

		if err := json.NewDecoder(resp.Body).Decode(options.JSONResponse); err != nil {
			if errors.Is(err, io.EOF) {
				return resp, nil
			}
			return nil, err
		}
	}

	if !options.KeepResponseBody && options.JSONResponse == nil {
		defer resp.Body.Close()

		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			return nil, err
		}
	}

	return resp, nil
}

func (client *Client) authorize(req *http.Request) {
	if client.authType == AuthTypeBasic {
		req.SetBasicAuth(client.username, client.password)
		return
	}

	if client.sessionID == "" {
		return
	}

	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: client.sessionID})
	req.Header.Set("Referer", client.baseURL)

	if client.csrfToken != "" {
		req.Header.Set("X-CSRF-Token", client.csrfToken)
	}
}

func defaultOkCodes(method string) []int {
	switch method {
	case http.MethodGet, http.MethodHead:
		return []int{200}
	case http.MethodPost:
		return []int{200, 201}
	case http.MethodPut:
		return []int{200, 204}
	case http.MethodPatch:
		return []int{200, 204}
	case http.MethodDelete:
		return []int{200, 204}
	}

	return []int{}
}

func (client *Client) initReqOpts(JSONBody any, JSONResponse any, opts *RequestOpts) {
	if v, ok := (JSONBody).(io.Reader); ok {
		opts.RawBody = v
	} else if JSONBody != nil {
		opts.JSONBody = JSONBody
	}

	if JSONResponse != nil {
		opts.JSONResponse = JSONResponse
	}
}
