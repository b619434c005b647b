package models

import "fmt"

// League represents a football competition, e.g. the South African PSL.
type League struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Logo    *string `json:"logo,omitempty"`
	Country string  `json:"country"`
	Code    string  `json:"code"` // at most 3 characters
	Flag    string  `json:"flag"`
	Timestamps
}

func (l League) String() string {
	return fmt.Sprintf("<League: %s>", l.Name)
}
