package models

// Walker is a user offering walking services, as shown on browse lists.
type Walker struct {
	User

	Bio         string  `json:"bio,omitempty"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	Featured    bool    `json:"featured"`
	HourlyRate  int64   `json:"hourlyRate"`
}
