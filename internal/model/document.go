package model

// Document is the whole persisted data set: every registered user keyed
// by lower-cased email, plus app-wide settings. Exactly one instance
// exists per process and it is passed explicitly to everything that
// reads or mutates it.
type Document struct {
	Users    map[string]*User `json:"users"`
	Settings Settings         `json:"settings"`
}

// Settings holds preferences that survive restarts.
type Settings struct {
	Theme            string  `json:"theme"`
	LastLoggedInUser *string `json:"last_logged_in_user"`
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// NewDocument returns an empty document with defaults applied.
func NewDocument() *Document {
	return &Document{
		Users:    map[string]*User{},
		Settings: Settings{Theme: ThemeLight},
	}
}
