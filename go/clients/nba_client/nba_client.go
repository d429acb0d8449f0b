package nba_client

import (
	"time"

	"github.com/ttflab/injurytrack/go/clients"
)

// NBAClient talks to the two public NBA feeds: the static schedule CDN
// and the stats API for rosters.
type NBAClient struct {
	cdn   *clients.BaseClient
	stats *clients.BaseClient
}

func NewNBAClient() *NBAClient {
	cdn := clients.NewBaseClient(CDNBaseURL)
	cdn.SetRetries(3, time.Second)

	stats := clients.NewBaseClient(StatsBaseURL)
	stats.SetRetries(3, time.Second)
	stats.SetHeader("User-Agent", statsUserAgent)
	stats.SetHeader("Referer", statsReferer)
	stats.SetHeader("x-nba-stats-origin", statsOrigin)
	stats.SetHeader("Accept", "application/json")

	return &NBAClient{
		cdn:   cdn,
		stats: stats,
	}
}
