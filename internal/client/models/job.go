// Package models defines the value types exchanged between the QuickWork
// backend and the client layers.
package models

import (
	"encoding/json"
	"fmt"
)

// ID is a job identifier. The backend is inconsistent about the wire type
// (listings have historically carried numeric ids, client-created jobs use
// string ids), so it decodes from either form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case string:
		*id = ID(value)
	case float64:
		*id = ID(fmt.Sprintf("%.0f", value))
	default:
		return fmt.Errorf("unsupported id type %T", v)
	}
	return nil
}

// Job is a short-term work listing.
//
// Pay is a non-negative amount in Colombian pesos. Image is a URL; job
// creation currently always sends a placeholder (see compose).
type Job struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Pay         int    `json:"pay"`
	Duration    string `json:"duration"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image"`
}
