package models

import "fmt"

// Venue represents a stadium that hosts matches
type Venue struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Country  string  `json:"country"`
	Capacity int     `json:"capacity"`
	Surface  string  `json:"surface"`
	Image    *string `json:"image,omitempty"`
	Timestamps
}

func (v Venue) String() string {
	return fmt.Sprintf("<Venue: %s>", v.Name)
}
