// Package model declares the optional interfaces an entity type may
// implement to refine how the admin surface treats it.
package model

import (
	"net/http"
	"time"

	"github.com/ThomasMo54/teaching-shop-example/message"
)

// TableModel overrides the table name derived by the naming strategy.
type TableModel interface {
	TableName() string
}

// OrderedModel supplies the default ordering of list screens, e.g. "name ASC".
type OrderedModel interface {
	DefaultOrder() string
}

// LabeledModel overrides the human-readable entity label shown in the
// navigation menu. Without it the label is derived from the type name.
type LabeledModel interface {
	Label() string
}

// ValidationModel runs entity-specific checks after tag validation passes.
type ValidationModel interface {
	Validate(r *http.Request) message.Message
}

// BaseModel carries the audit timestamps shared by every persisted entity.
type BaseModel struct {
	CreatedAt time.Time `json:",omitempty"`
	UpdatedAt time.Time `json:",omitempty"`
}
