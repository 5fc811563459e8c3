package domain

import "time"

// Birthday is a date owned by a single user.
type Birthday struct {
	ID                string    `json:"_id"`
	Owner             string    `json:"owner"`
	Date              time.Time `json:"birthday"`
	UpcomingBirthdays []string  `json:"upcomingBirthdays"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// BirthdayDetail is a birthday joined with its owner.
type BirthdayDetail struct {
	ID       string    `json:"_id"`
	Owner    string    `json:"owner"`
	Username string    `json:"username"`
	Email    string    `json:"-"`
	Date     time.Time `json:"birthday"`
}

// UpcomingBirthday is a list entry with the number of whole days until the
// next occurrence of the date.
type UpcomingBirthday struct {
	ID       string    `json:"_id"`
	Username string    `json:"username"`
	Date     time.Time `json:"birthday"`
	DaysLeft int       `json:"daysLeft"`
}
