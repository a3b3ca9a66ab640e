package events

// EventType is an application analytics event a rule can be bound to
type EventType struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// The catalog is static: event names are defined by the mobile apps'
// analytics instrumentation and only change with an app release.
var catalog = []EventType{
	{ID: "AcademyVerifyView_VIEW", Label: "Academy verification screen viewed"},
	{ID: "Appmenu_select", Label: "App menu selected"},
	{ID: "cardNotRegistered_VIEW", Label: "Card-not-registered screen viewed"},
	{ID: "crm_update", Label: "CRM update"},
	{ID: "analytics_alert", Label: "Analytics alert"},
	{ID: "system_alert", Label: "System alert"},
}

// Types returns the selectable event types
func Types() []EventType {
	out := make([]EventType, len(catalog))
	copy(out, catalog)
	return out
}

// IsKnown reports whether id names a catalogued event type
func IsKnown(id string) bool {
	for _, e := range catalog {
		if e.ID == id {
			return true
		}
	}
	return false
}
