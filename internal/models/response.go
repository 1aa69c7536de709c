package models

import (
	"horaires.srtgn.tn/internal/clock"
)

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data,omitempty"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// NewResponseWithClock creates a standard response using the provided clock.
func NewResponseWithClock(code int, data interface{}, text string, c clock.Clock) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: ResponseCurrentTimeWithClock(c),
		Data:        data,
		Text:        text,
		Version:     2,
	}
}

// NewOKResponseWithClock creates a successful response using the provided clock.
func NewOKResponseWithClock(data interface{}, c clock.Clock) ResponseModel {
	return NewResponseWithClock(200, data, "OK", c)
}

// NewListResponseWithClock wraps a list payload in the standard envelope.
func NewListResponseWithClock(list interface{}, c clock.Clock) ResponseModel {
	data := map[string]interface{}{
		"limitExceeded": false,
		"list":          list,
	}
	return NewOKResponseWithClock(data, c)
}

// NewEntryResponseWithClock wraps a single entry in the standard envelope.
func NewEntryResponseWithClock(entry interface{}, c clock.Clock) ResponseModel {
	data := map[string]interface{}{
		"entry": entry,
	}
	return NewOKResponseWithClock(data, c)
}

// ResponseCurrentTimeWithClock returns the current time from the provided clock as Unix milliseconds.
func ResponseCurrentTimeWithClock(c clock.Clock) int64 {
	return c.NowUnixMilli()
}
