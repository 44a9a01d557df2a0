package registry

// Descriptor configures how a registered entity type is summarized by the
// management interface.
type Descriptor struct {
	// ListDisplay is the ordered set of fields surfaced as list columns.
	// Entries may use either the Go field name or the column name. Empty
	// means every persisted field, in schema order.
	ListDisplay []string `json:"listDisplay,omitempty"`

	// Label overrides the menu label derived from the entity name.
	Label string `json:"label,omitempty"`
}

// Default returns the system fallback descriptor applied to entity types
// registered without one: no explicit column selection, so the renderer
// shows every persisted field.
func Default() *Descriptor {
	return &Descriptor{}
}
