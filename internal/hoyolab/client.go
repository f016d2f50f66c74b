// Package hoyolab implements the client for the HoyoLab enhancement-progression
// calculator API. The calculator tracks the account's owned material counts as
// a side effect of pricing enhancement plans, which is the inventory source
// this tool harvests.
package hoyolab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the overseas calculator endpoint root.
const DefaultBaseURL = "https://sg-public-api.hoyolab.com/event/calculateos"

// DefaultTimeout bounds each request round trip.
const DefaultTimeout = 30 * time.Second

// userAgent identifies this tool to the vendor.
const userAgent = "goodsync/1.0"

// listPageSize is large enough to return the full roster in a single page.
const listPageSize = 999

// Client issues authenticated requests against the calculator API. The
// session cookie is attached verbatim to every request.
type Client struct {
	baseURL string
	cookies string
	uid     string
	region  string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the endpoint root. Tests point this at a mock server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// NewClient builds a calculator client for one account session.
func NewClient(cookies, uid, region string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		cookies: cookies,
		uid:     uid,
		region:  region,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the wrapper every calculator response comes in. A non-zero
// retcode means the request was understood but refused.
type envelope struct {
	Retcode int             `json:"retcode"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// listRequest is the roster query body for avatar/list and weapon/list.
type listRequest struct {
	ElementAttrIDs []int64 `json:"element_attr_ids"`
	WeaponCatIDs   []int64 `json:"weapon_cat_ids"`
	Page           int     `json:"page"`
	Size           int     `json:"size"`
	IsAll          bool    `json:"is_all"`
	Lang           string  `json:"lang"`
}

func newListRequest() listRequest {
	return listRequest{
		ElementAttrIDs: []int64{},
		WeaponCatIDs:   []int64{},
		Page:           1,
		Size:           listPageSize,
		IsAll:          true,
		Lang:           "en-us",
	}
}

// computeRequest is the batch_compute body. UID and region identify whose
// inventory the calculator nets the plans against.
type computeRequest struct {
	Items  []ComputeItem `json:"items"`
	UID    string        `json:"uid"`
	Region string        `json:"region"`
}

// AvatarList fetches the full character roster.
func (c *Client) AvatarList(ctx context.Context) ([]Avatar, error) {
	var data struct {
		List []Avatar `json:"list"`
	}
	if err := c.post(ctx, "/avatar/list", newListRequest(), &data); err != nil {
		return nil, err
	}
	return data.List, nil
}

// WeaponList fetches the full weapon roster.
func (c *Client) WeaponList(ctx context.Context) ([]Weapon, error) {
	var data struct {
		List []Weapon `json:"list"`
	}
	if err := c.post(ctx, "/weapon/list", newListRequest(), &data); err != nil {
		return nil, err
	}
	return data.List, nil
}

// BatchCompute prices the given enhancement plans against the account's
// inventory.
func (c *Client) BatchCompute(ctx context.Context, items []ComputeItem) (*BatchComputeResult, error) {
	var result BatchComputeResult
	req := computeRequest{Items: items, UID: c.uid, Region: c.region}
	if err := c.post(ctx, "/batch_compute", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// post performs one API call: marshal body, attach the session cookie, send,
// unwrap the envelope, decode data into out. Exactly one attempt.
func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	url := c.baseURL + path

	payload, err := json.Marshal(body)
	if err != nil {
		return &RequestError{URL: url, Message: "failed to encode request body", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return &RequestError{URL: url, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", c.cookies)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{URL: url, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{URL: url, Message: "failed to read response body", Cause: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthError{Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	case resp.StatusCode != http.StatusOK:
		return &RequestError{URL: url, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &RequestError{URL: url, Message: "malformed response envelope", Cause: err}
	}
	if env.Retcode != 0 {
		if isAuthRetcode(env.Retcode) {
			return &AuthError{Retcode: env.Retcode, Message: env.Message}
		}
		return &APIError{Retcode: env.Retcode, Message: env.Message}
	}

	// batch_compute reports HasUserInfo=false instead of a retcode when the
	// UID and cookie do not belong to the same account.
	var probe struct {
		HasUserInfo *bool `json:"HasUserInfo"`
	}
	if err := json.Unmarshal(env.Data, &probe); err == nil && probe.HasUserInfo != nil && !*probe.HasUserInfo {
		return &AuthError{Message: "either the UID or the cookies are invalid"}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &RequestError{URL: url, Message: "failed to decode response data", Cause: err}
		}
	}
	return nil
}
