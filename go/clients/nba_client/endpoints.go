package nba_client

const (
	// Base URLs. The schedule lives on the static CDN, rosters behind the
	// stats API.
	CDNBaseURL   = "https://cdn.nba.com/static/json/staticData/"
	StatsBaseURL = "https://stats.nba.com/stats/"

	// Paths
	schedulePath = "scheduleLeagueV2.json"
	rosterPath   = "commonteamroster"

	// stats.nba.com refuses requests without browser-looking headers.
	statsUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/128 Safari/537.36"
	statsReferer   = "https://stats.nba.com/"
	statsOrigin    = "stats"
)
