package calendarview

import "time"

// Navigator builds the URLs the view models carry. One implementation lives
// at the routing boundary so Month, Week and Day stay interchangeable instead
// of each view inventing its own switch mechanics.
type Navigator interface {
	// ViewURL links to another calendar view anchored at date.
	ViewURL(view View, date time.Time) string
	// CreateURL links to appointment creation prefilled with the clicked
	// cell. hour is nil for day cells.
	CreateURL(date time.Time, hour *int, view View) string
	// DetailURL links to the appointment detail (modal) payload.
	DetailURL(id int) string
	// EditURL links to appointment editing, carrying view/date as return
	// context.
	EditURL(id int, view View, date time.Time) string
}
