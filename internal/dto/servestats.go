package dto

type ServeCountersResponse struct {
	Endpoint      string `json:"endpoint" example:"dashboard"`
	Date          string `json:"date" example:"2024-01-15"`
	Hour          int    `json:"hour" example:"14"`
	Real          int64  `json:"real" example:"120"`
	Synthetic     int64  `json:"synthetic" example:"8"`
	ContextErrors int64  `json:"context_errors" example:"1"`
}

type ServeCountersListResponse struct {
	Hours    int                     `json:"hours" example:"24"`
	Counters []ServeCountersResponse `json:"counters"`
}

type ServeSummaryResponse struct {
	Period         string  `json:"period" example:"24h"`
	TotalServed    int64   `json:"total_served" example:"1000"`
	Real           int64   `json:"real" example:"950"`
	Synthetic      int64   `json:"synthetic" example:"50"`
	ContextErrors  int64   `json:"context_errors" example:"3"`
	SyntheticShare float64 `json:"synthetic_share" example:"5"`
}
