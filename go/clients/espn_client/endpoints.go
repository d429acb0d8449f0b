package espn_client

const (
	// Base URL
	BaseURL = "https://www.espn.com"

	// Paths
	injuriesPath = "/nba/injuries"

	// ESPN serves a bot-wall to default Go user agents.
	browserUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/128 Safari/537.36"
	acceptHTML       = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)
