package api

import (
	"context"
	"net/url"
	"strconv"
)

// DefaultPopularLimit is the number of entries the popular ranking
// returns when the caller does not ask for a specific size.
const DefaultPopularLimit = 5

// WatchlistResponse carries a user's saved instruments.
type WatchlistResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    []WatchlistItem `json:"data,omitempty"`
	Count   int             `json:"count,omitempty"`
}

// AddWatchlistResponse carries the created watchlist entry.
type AddWatchlistResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Data    *WatchlistItem `json:"data,omitempty"`
}

// RemoveWatchlistResponse acknowledges a deletion.
type RemoveWatchlistResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// PopularResponse carries the most-watched instruments.
type PopularResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    []PopularEtf `json:"data,omitempty"`
	Count   int          `json:"count,omitempty"`
}

// StatisticsResponse carries watchlist aggregates.
type StatisticsResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    *Statistics `json:"data,omitempty"`
}

// Watchlist fetches a user's saved instruments.
func (c *Client) Watchlist(ctx context.Context, userID int64, includeEtfInfo bool) (WatchlistResponse, error) {
	params := url.Values{
		"userId":         {strconv.FormatInt(userID, 10)},
		"includeEtfInfo": {strconv.FormatBool(includeEtfInfo)},
	}
	var resp WatchlistResponse
	return resp, c.get(ctx, "/api/watchlist", params, &resp)
}

// AddWatchlist saves an instrument to a user's watchlist.
func (c *Client) AddWatchlist(ctx context.Context, userID int64, isinCd, memo string) (AddWatchlistResponse, error) {
	form := url.Values{
		"userId": {strconv.FormatInt(userID, 10)},
		"isinCd": {isinCd},
		"memo":   {memo},
	}
	var resp AddWatchlistResponse
	return resp, c.postForm(ctx, "/api/watchlist", form, &resp)
}

// RemoveWatchlist deletes a watchlist entry by its id.
func (c *Client) RemoveWatchlist(ctx context.Context, watchlistID int64) (RemoveWatchlistResponse, error) {
	var resp RemoveWatchlistResponse
	return resp, c.delete(ctx, "/api/watchlist/"+strconv.FormatInt(watchlistID, 10), &resp)
}

// PopularEtfs fetches the most-watched instruments. limit <= 0 falls
// back to DefaultPopularLimit.
func (c *Client) PopularEtfs(ctx context.Context, limit int) (PopularResponse, error) {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}
	var resp PopularResponse
	return resp, c.get(ctx, "/api/watchlist/popular", url.Values{"limit": {strconv.Itoa(limit)}}, &resp)
}

// Statistics fetches watchlist aggregates for a user.
func (c *Client) Statistics(ctx context.Context, userID int64) (StatisticsResponse, error) {
	var resp StatisticsResponse
	return resp, c.get(ctx, "/api/watchlist/statistics", url.Values{"userId": {strconv.FormatInt(userID, 10)}}, &resp)
}
