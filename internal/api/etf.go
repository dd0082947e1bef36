package api

import (
	"context"
	"net/url"
)

// RankingType selects the ordering of the rankings endpoint.
type RankingType string

const (
	RankGainers RankingType = "gainers"
	RankLosers  RankingType = "losers"
	RankVolume  RankingType = "volume"
	RankAmount  RankingType = "amount"
	RankAsset   RankingType = "asset"
)

// DashboardResponse carries the dashboard snapshot. Unlike the list
// endpoints, the backend puts the payload fields directly on the
// envelope rather than under data.
type DashboardResponse struct {
	Success          bool         `json:"success"`
	Message          string       `json:"message,omitempty"`
	MarketStats      *MarketStats `json:"marketStats,omitempty"`
	TopGainers       []EtfInfo    `json:"topGainers,omitempty"`
	MostTradedVolume []EtfInfo    `json:"mostTradedVolume,omitempty"`
}

// RankingsResponse carries one ranking list with its display title.
type RankingsResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Data    []EtfInfo `json:"data,omitempty"`
	Title   string    `json:"title,omitempty"`
	Count   int       `json:"count,omitempty"`
}

// SearchResponse carries keyword search results.
type SearchResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Data    []EtfInfo `json:"data,omitempty"`
	Count   int       `json:"count,omitempty"`
}

// ThemesResponse carries the theme summary: per-theme counts plus the
// full category grouping.
type ThemesResponse struct {
	Success        bool                 `json:"success"`
	Message        string               `json:"message,omitempty"`
	ThemeCounts    map[string]int       `json:"themeCounts,omitempty"`
	CategoryGroups map[string][]EtfInfo `json:"categoryGroups,omitempty"`
}

// ThemeDetailResponse carries the instruments of a single theme.
type ThemeDetailResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Data    []EtfInfo `json:"data,omitempty"`
	Count   int       `json:"count,omitempty"`
}

// EtfDetailResponse carries a single instrument snapshot.
type EtfDetailResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    *EtfInfo `json:"data,omitempty"`
}

// Dashboard fetches the market dashboard snapshot.
func (c *Client) Dashboard(ctx context.Context) (DashboardResponse, error) {
	var resp DashboardResponse
	return resp, c.get(ctx, "/api/dashboard", nil, &resp)
}

// Rankings fetches a ranking list by type.
func (c *Client) Rankings(ctx context.Context, rankType RankingType) (RankingsResponse, error) {
	var resp RankingsResponse
	return resp, c.get(ctx, "/api/rankings", url.Values{"type": {string(rankType)}}, &resp)
}

// Search fetches instruments matching a keyword.
func (c *Client) Search(ctx context.Context, keyword string) (SearchResponse, error) {
	var resp SearchResponse
	return resp, c.get(ctx, "/api/search", url.Values{"keyword": {keyword}}, &resp)
}

// Themes fetches the theme summary.
func (c *Client) Themes(ctx context.Context) (ThemesResponse, error) {
	var resp ThemesResponse
	return resp, c.get(ctx, "/api/themes", nil, &resp)
}

// ThemeDetail fetches the instruments of a single theme.
func (c *Client) ThemeDetail(ctx context.Context, theme string) (ThemeDetailResponse, error) {
	var resp ThemeDetailResponse
	return resp, c.get(ctx, "/api/themes/"+url.PathEscape(theme), nil, &resp)
}

// EtfDetail fetches one instrument by ISIN.
func (c *Client) EtfDetail(ctx context.Context, isinCd string) (EtfDetailResponse, error) {
	var resp EtfDetailResponse
	return resp, c.get(ctx, "/api/etf/"+url.PathEscape(isinCd), nil, &resp)
}
