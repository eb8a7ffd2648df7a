package models

import "time"

// BreatheList is a named, user-created collection of apps. It is
// independent of the selected-apps set; both are consulted when deciding
// whether to intercept.
type BreatheList struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Apps      []AppInfo `json:"apps"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// App returns the list entry with the given id.
func (bl BreatheList) App(id string) (AppInfo, bool) {
	for _, app := range bl.Apps {
		if app.ID == id {
			return app, true
		}
	}
	return AppInfo{}, false
}
