package dto

type ValidationError struct {
	Field   string `json:"field" example:"interval"`
	Message string `json:"message" example:"interval not supported for timeframe"`
}
