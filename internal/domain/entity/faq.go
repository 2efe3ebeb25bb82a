package entity

// FAQ is a frequently asked question shown on the dashboard help page.
type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
