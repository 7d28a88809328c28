package model

import "time"

// TimeLayout mirrors the en-US locale string a browser produces for
// Date.toLocaleString(), e.g. "3/14/2026, 9:05:12 PM".
const TimeLayout = "1/2/2006, 3:04:05 PM"

// Submission represents one entry sent through the contact form.
type Submission struct {
	Name    string `json:"name" yaml:"name"`
	Email   string `json:"email" yaml:"email"`
	Message string `json:"message" yaml:"message"`
	Time    string `json:"time" yaml:"time"`
}

// FormatTime renders t in the local zone using TimeLayout.
func FormatTime(t time.Time) string {
	return t.Local().Format(TimeLayout)
}
