package espn_client

import (
	"context"
	"fmt"
	"time"

	"github.com/ttflab/injurytrack/go/clients"
)

// ESPNClient scrapes the ESPN NBA injuries page. There is no public
// JSON endpoint for this data; the HTML table layout is the contract.
type ESPNClient struct {
	*clients.BaseClient
}

func NewESPNClient() *ESPNClient {
	client := &ESPNClient{
		BaseClient: clients.NewBaseClient(BaseURL),
	}

	client.SetHeader("User-Agent", browserUserAgent)
	client.SetHeader("Accept", acceptHTML)
	client.SetHeader("Connection", "close")
	// ESPN throttles scrapers hard; back off generously.
	client.SetRetries(5, time.Second)

	return client
}

// GetInjuries fetches and parses the full league injuries page.
func (c *ESPNClient) GetInjuries(ctx context.Context) ([]TeamReport, error) {
	body, err := c.Get(ctx, injuriesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get ESPN injuries page: %w", err)
	}
	return ParseInjuriesHTML(body)
}
