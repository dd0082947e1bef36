package api

// EtfInfo is the instrument snapshot returned by the ETF data service.
// Any numeric field may be zero when the backing data has not been
// synchronized yet; rendering treats zero as "no data".
type EtfInfo struct {
	IsinCd   string `json:"isinCd"`
	SrtnCd   string `json:"srtnCd"`
	ItmsNm   string `json:"itmsNm"`
	Category string `json:"category"`

	ClosePrice float64 `json:"closePrice"`
	FltRt      float64 `json:"fltRt"`
	Nav        float64 `json:"nav"`
	Vs         float64 `json:"vs"`
	OpenPrice  float64 `json:"openPrice"`
	HighPrice  float64 `json:"highPrice"`
	LowPrice   float64 `json:"lowPrice"`

	TradeVolume int64   `json:"tradeVolume"`
	TradePrice  float64 `json:"tradePrice"`

	MarketTotalAmt   float64 `json:"marketTotalAmt"`
	NetAssetTotalAmt float64 `json:"netAssetTotalAmt"`

	PriceDirection string `json:"priceDirection"`
	BaseDate       string `json:"baseDate"`

	BaseIndexName       string  `json:"baseIndexName,omitempty"`
	BaseIndexClosePrice float64 `json:"baseIndexClosePrice,omitempty"`
	StLstgCnt           int64   `json:"stLstgCnt,omitempty"`
}

// MarketStats aggregates market-wide counts for the dashboard.
type MarketStats struct {
	TotalCount             int            `json:"totalCount"`
	RisingCount            int            `json:"risingCount"`
	FallingCount           int            `json:"fallingCount"`
	StableCount            int            `json:"stableCount"`
	ChangeRateDistribution map[string]int `json:"changeRateDistribution"`
}

// User is the account record returned by the user service.
type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	FullName       string `json:"fullName"`
	WatchListCount int    `json:"watchListCount,omitempty"`
}

// WatchlistItem is one saved instrument, optionally with its embedded
// EtfInfo snapshot.
type WatchlistItem struct {
	ID        int64    `json:"id"`
	UserID    int64    `json:"userId"`
	IsinCd    string   `json:"isinCd"`
	Memo      string   `json:"memo,omitempty"`
	CreatedAt string   `json:"createdAt"`
	EtfInfo   *EtfInfo `json:"etfInfo,omitempty"`
}

// PopularEtf is one entry of the most-watched ranking.
type PopularEtf struct {
	IsinCd    string `json:"isinCd"`
	EtfName   string `json:"etfName"`
	LikeCount int    `json:"likeCount"`
}

// Statistics is the aggregate returned by the watchlist statistics
// endpoint.
type Statistics struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalEtfs       int64 `json:"totalEtfs"`
	TotalWatchLists int64 `json:"totalWatchLists"`
}
