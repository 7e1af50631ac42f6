package gdax

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// ProductionAPIURL is the official Coinbase Exchange REST endpoint.
	ProductionAPIURL = "https://api.gdax.com"

	UserAgent = "go-gdax/1.0"

	defaultHTTPTimeout = time.Second * 15
)

var logger = log.WithField("exchange", "gdax")

// Response is a wrapper for the standard http.Response with the body fully
// buffered before any decoding happens.
type Response struct {
	*http.Response

	// Body overrides the composited Body field.
	Body []byte
}

// newResponse reads the response body and closes it.
func newResponse(r *http.Response) (response *Response, err error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	err = r.Body.Close()
	response = &Response{Response: r, Body: body}
	return response, err
}

// String converts response body to string.
func (r *Response) String() string {
	return string(r.Body)
}

func (r *Response) DecodeJSON(o interface{}) error {
	if err := json.Unmarshal(r.Body, o); err != nil {
		return &DecodeError{Err: err, Body: r.Body}
	}
	return nil
}

type RestClient struct {
	client *http.Client

	BaseURL *url.URL

	// Authentication
	apiKey        string
	apiSecret     string
	apiPassphrase string

	// nowFunc supplies the signing timestamp, seconds resolution.
	nowFunc func() time.Time

	AccountService *AccountService
	OrderService   *OrderService
	PublicService  *PublicService
}

func NewRestClientWithHttpClient(baseURL string, httpClient *http.Client) *RestClient {
	u, err := url.Parse(baseURL)
	if err != nil {
		panic(err)
	}

	var client = &RestClient{
		client:  httpClient,
		BaseURL: u,
		nowFunc: time.Now,
	}

	client.AccountService = &AccountService{client}
	client.OrderService = &OrderService{client}
	client.PublicService = &PublicService{client}
	return client
}

func NewRestClient(baseURL string) *RestClient {
	return NewRestClientWithHttpClient(baseURL, &http.Client{
		Timeout: defaultHTTPTimeout,
	})
}

// Auth sets api key, secret and passphrase for usage in requests that require
// authentication. Credentials are immutable for the lifetime of the client.
func (c *RestClient) Auth(key, secret, passphrase string) *RestClient {
	c.apiKey = key
	// pragma: allowlist nextline secret
	c.apiSecret = secret
	c.apiPassphrase = passphrase
	return c
}

// newRequest creates a new unauthenticated API request. The refPath must
// start with a slash '/' and may carry a query string.
func (c *RestClient) newRequest(ctx context.Context, method, refPath string, body []byte) (*http.Request, error) {
	rel, err := url.Parse(refPath)
	if err != nil {
		return nil, err
	}

	u := c.BaseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/json")
	req.Header.Add("User-Agent", UserAgent)
	return req, nil
}

// newAuthenticatedRequest creates a new http request for authenticated
// routes. The signing message and the CB-ACCESS-TIMESTAMP header carry the
// exact same timestamp string; the exchange rejects the request otherwise.
func (c *RestClient) newAuthenticatedRequest(ctx context.Context, method, refPath string, body []byte) (*http.Request, error) {
	if len(c.apiKey) == 0 {
		return nil, errors.New("empty api key")
	}

	if len(c.apiSecret) == 0 {
		return nil, errors.New("empty api secret")
	}

	req, err := c.newRequest(ctx, method, refPath, body)
	if err != nil {
		return nil, err
	}

	timestamp := strconv.FormatInt(c.nowFunc().Unix(), 10)
	signature, err := sign(c.apiSecret, timestamp, method, refPath, string(body))
	if err != nil {
		return nil, err
	}

	req.Header.Add("CB-ACCESS-KEY", c.apiKey)
	req.Header.Add("CB-ACCESS-SIGN", signature)
	req.Header.Add("CB-ACCESS-PASSPHRASE", c.apiPassphrase)
	req.Header.Add("CB-ACCESS-TIMESTAMP", timestamp)
	return req, nil
}

// sendRequest dispatches the request and decodes the response body into v.
// A non-2xx status yields an APIError carrying the raw body text verbatim;
// the body is never re-parsed as structured JSON in that case.
func (c *RestClient) sendRequest(req *http.Request, v interface{}) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}

	response, err := newResponse(resp)
	if err != nil {
		return &TransportError{Err: err}
	}

	if isError(response) {
		return &APIError{StatusCode: response.StatusCode, Message: response.String()}
	}

	if v == nil {
		return nil
	}
	return response.DecodeJSON(v)
}

// isError checks the response status code to see if a response is an error.
func isError(response *Response) bool {
	var c = response.StatusCode
	return c < 200 || c > 299
}

func (c *RestClient) get(ctx context.Context, refPath string, v interface{}) error {
	req, err := c.newAuthenticatedRequest(ctx, "GET", refPath, nil)
	if err != nil {
		return err
	}
	return c.sendRequest(req, v)
}

func (c *RestClient) post(ctx context.Context, refPath string, body []byte, v interface{}) error {
	req, err := c.newAuthenticatedRequest(ctx, "POST", refPath, body)
	if err != nil {
		return err
	}
	req.Header.Add("Content-Type", "application/json")
	return c.sendRequest(req, v)
}

func (c *RestClient) delete(ctx context.Context, refPath string, v interface{}) error {
	req, err := c.newAuthenticatedRequest(ctx, "DELETE", refPath, nil)
	if err != nil {
		return err
	}
	return c.sendRequest(req, v)
}

// getPublic sends an unauthenticated GET to the api endpoint.
func (c *RestClient) getPublic(ctx context.Context, refPath string, v interface{}) error {
	req, err := c.newRequest(ctx, "GET", refPath, nil)
	if err != nil {
		return err
	}
	return c.sendRequest(req, v)
}
