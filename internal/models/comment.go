// internal/models/comment.go
package models

// Comment is an immutable value object for a single user comment. The JSON
// tags match the payload stored in the source table's comments column.
type Comment struct {
	UserName  string `json:"userFullName"`
	Rate      int    `json:"rate"`
	Text      string `json:"comment"`
	Date      string `json:"date"`
	IsTrusted bool   `json:"is_trusted"`
	Likes     int    `json:"likes"`
}

// A comment falls into exactly one of the three sentiment buckets.

func (c Comment) IsPositive() bool {
	return c.Rate >= 4
}

func (c Comment) IsNegative() bool {
	return c.Rate <= 2
}

func (c Comment) IsNeutral() bool {
	return c.Rate == 3
}
