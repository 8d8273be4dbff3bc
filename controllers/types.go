package controllers

import "github.com/snap-point/places-api/types"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the response wrapper shared by the single-item endpoints.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type PlaceListResponse struct {
	Status  string                `json:"status"`
	Data    []types.PlaceResponse `json:"data"`
	Count   int                   `json:"count"`
	Filters map[string]string     `json:"filters"`
	Sort    string                `json:"sort"`
	Order   string                `json:"order"`
}

type ListResponse struct {
	Status string   `json:"status"`
	Data   []string `json:"data"`
	Count  int      `json:"count"`
}
