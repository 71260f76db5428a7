package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// serviceName is reported by the health endpoint.
const serviceName = "habrreader"

// HealthResponse is the health endpoint body.
type HealthResponse struct {
	Status  string       `json:"status"`
	Service string       `json:"service"`
	Version string       `json:"version,omitempty"`
	Uptime  string       `json:"uptime"`
	Fetcher FetcherTotal `json:"fetcher"`
}

// FetcherTotal sums the fetcher stats of every request served so far.
type FetcherTotal struct {
	Sessions  int64 `json:"sessions"`
	Requests  int64 `json:"requests"`
	CacheHits int64 `json:"cache_hits"`
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: serviceName,
		Version: h.version,
		Uptime:  time.Since(h.startTime).Truncate(time.Second).String(),
		Fetcher: FetcherTotal{
			Sessions:  h.sessions.Load(),
			Requests:  h.requests.Load(),
			CacheHits: h.cacheHits.Load(),
		},
	})
}
