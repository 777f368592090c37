package repository

import "time"

// Entry is one line of the calculator tape.
type Entry struct {
	ID        string
	Operator  string
	Left      string
	Right     string
	Result    string
	Chained   bool
	CreatedAt time.Time
}
