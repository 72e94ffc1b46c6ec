package anft

import (
	"net/http"
	"time"

	"github.com/anft-xyz/goapi/service/cache"
)

const (
	listingsPath = "api/public/listings"

	defaultTimeout   = 10 * time.Second
	defaultRateLimit = 10
)

type ClientCfg struct {
	HttpClient http.Client
	// BaseUrl ends with a slash, e.g. https://api.anft.vn/
	BaseUrl string
	Timeout time.Duration
	// RateLimit is the number of requests per second sent upstream
	RateLimit float64
	// Cache holds single listings, nil disables caching
	Cache cache.Service
}

type addressesReq struct {
	Addresses []string `json:"addresses"`
}
