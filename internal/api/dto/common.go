package dto

// Response is the uniform envelope every endpoint returns.
type Response struct {
	Code    int         `json:"Code"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data"`
}
