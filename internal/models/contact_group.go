package models

import "time"

// ContactGroup is a user-defined grouping of device contacts, persisted
// separately from the settings aggregate.
type ContactGroup struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ContactIDs []string  `json:"contactIds"`
	CreatedAt  time.Time `json:"createdAt"`
}
