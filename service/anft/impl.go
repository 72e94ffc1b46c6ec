package anft

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	bCtx "github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/base/log"
	"github.com/anft-xyz/goapi/base/metrics"
	"github.com/anft-xyz/goapi/domain"
	"github.com/anft-xyz/goapi/domain/listing"
	"github.com/anft-xyz/goapi/service/cache"
)

type client struct {
	client  http.Client
	baseUrl string
	timeout time.Duration
	limiter *rate.Limiter
	cache   cache.Service
	met     metrics.Service
}

// NewClient returns the listing api client. It implements listing.Repo.
func NewClient(cfg *ClientCfg) listing.Repo {
	baseUrl := cfg.BaseUrl
	if !strings.HasSuffix(baseUrl, "/") {
		baseUrl += "/"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rateLimit := cfg.RateLimit
	if rateLimit <= 0 {
		rateLimit = defaultRateLimit
	}
	return &client{
		client:  cfg.HttpClient,
		baseUrl: baseUrl,
		timeout: timeout,
		limiter: rate.NewLimiter(rate.Limit(rateLimit), 1),
		cache:   cfg.Cache,
		met:     metrics.New("anft"),
	}
}

func (c *client) FindAll(ctx bCtx.Ctx, filter listing.Filter) (*listing.Page, error) {
	u := c.baseUrl + listingsPath
	if q := filter.Values().Encode(); q != "" {
		u += "?" + q
	}
	page := &listing.Page{}
	if err := c.do(ctx, http.MethodGet, u, nil, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (c *client) FindOne(ctx bCtx.Ctx, id string) (*listing.Listing, error) {
	if c.cache == nil {
		return c.findOne(ctx, id)
	}
	l := &listing.Listing{}
	if err := c.cache.GetByFunc(ctx, id, l, func() (interface{}, error) {
		return c.findOne(ctx, id)
	}); err != nil {
		return nil, err
	}
	return l, nil
}

func (c *client) findOne(ctx bCtx.Ctx, id string) (*listing.Listing, error) {
	u := c.baseUrl + listingsPath + "/" + url.PathEscape(id)
	l := &listing.Listing{}
	if err := c.do(ctx, http.MethodGet, u, nil, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (c *client) FindByAddresses(ctx bCtx.Ctx, addresses []domain.Address) (*listing.Page, error) {
	req := addressesReq{Addresses: make([]string, len(addresses))}
	for i, a := range addresses {
		req.Addresses[i] = string(a)
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	page := &listing.Page{}
	if err := c.do(ctx, http.MethodPost, c.baseUrl+listingsPath, bytes.NewReader(body), page); err != nil {
		return nil, err
	}
	return page, nil
}

// do sends one request and decodes a 2xx body into out. Other statuses become *listing.APIError.
func (c *client) do(ctx bCtx.Ctx, method, u string, body io.Reader, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	defer c.met.BumpTime("request.latency", "method", method).End()

	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.met.BumpSum("request.err", 1, "method", method)
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("client.Do failed")
		return err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("failed to read body")
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.met.BumpSum("request.err", 1, "method", method, "status", resp.Status)
		apiErr := listing.NewAPIError(resp.StatusCode, data)
		ctx.WithFields(log.Fields{
			"url":        u,
			"statusCode": resp.StatusCode,
			"message":    apiErr.Message,
		}).Warn("listing api rejected request")
		return apiErr
	}

	if err := json.Unmarshal(data, out); err != nil {
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("json.Unmarshal failed")
		return err
	}
	return nil
}
