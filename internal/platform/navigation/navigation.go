// Package navigation carries view intents from the core to whatever
// presentation layer is attached. The core signals where the user should go
// next; it never performs navigation itself.
package navigation

// View names a destination the presentation layer knows how to render.
type View string

const (
	ViewAppointments View = "appointments"
	ViewMedBay       View = "med-bay"
)

// Intent is a desired next view plus optional contextual state, such as a
// search term to pre-fill.
type Intent struct {
	View  View   `json:"view"`
	Query string `json:"query,omitempty"`
}
