// Package registry maintains the ordered mapping from entity types to their
// display descriptors. It is populated once at startup and read by the
// generic admin controllers to decide which entities to expose and how to
// present them.
package registry

import (
	"fmt"
	"iter"
	"reflect"
	"sync"

	"github.com/ThomasMo54/teaching-shop-example/model"
	"github.com/ThomasMo54/teaching-shop-example/utils"

	"github.com/iancoleman/orderedmap"
	"gorm.io/gorm/schema"
)

// ConfigurationError reports a registration that references an undefined or
// malformed entity type. It is raised synchronously at startup and is not
// retried: the caller is expected to abort.
type ConfigurationError struct {
	Entity string
	Field  string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("entity %s: field %s does not exist on the schema", e.Entity, e.Field)
	}
	if e.Err != nil {
		return fmt.Sprintf("entity %s: %v", e.Entity, e.Err)
	}
	return fmt.Sprintf("entity %s: invalid entity type", e.Entity)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Entry is a registered entity type with its parsed schema and optional
// descriptor. Entries are immutable once stored.
type Entry struct {
	Name       string
	Model      any
	Schema     *schema.Schema
	Descriptor *Descriptor
}

// Label returns the menu label of the entry: descriptor label first, then
// the LabeledModel override, otherwise the sentence-cased type name.
func (e *Entry) Label() string {
	if e.Descriptor != nil && e.Descriptor.Label != "" {
		return e.Descriptor.Label
	}
	if m, ok := e.Model.(model.LabeledModel); ok {
		return m.Label()
	}
	return utils.SentenceCase(e.Name)
}

// Columns resolves the list columns of the entry to database column names.
// Without a descriptor every persisted field is included, in schema order.
func (e *Entry) Columns() []string {
	if e.Descriptor == nil || len(e.Descriptor.ListDisplay) == 0 {
		cols := make([]string, 0, len(e.Schema.DBNames))
		cols = append(cols, e.Schema.DBNames...)
		return cols
	}
	cols := make([]string, 0, len(e.Descriptor.ListDisplay))
	for _, name := range e.Descriptor.ListDisplay {
		cols = append(cols, e.Schema.LookUpField(name).DBName)
	}
	return cols
}

// Registry is the authoritative mapping consumed by the admin controllers.
// Registration normally happens sequentially during startup, before any
// request is served; mutation is still guarded so a plugin may register at
// runtime without breaking concurrent readers.
type Registry struct {
	mu      sync.RWMutex
	entries *orderedmap.OrderedMap
	cache   *sync.Map
	namer   schema.Namer
}

func New() *Registry {
	return &Registry{
		entries: orderedmap.New(),
		cache:   &sync.Map{},
		namer:   schema.NamingStrategy{},
	}
}

// Register inserts or overwrites the mapping for the given entity type in a
// single call, so a descriptor can never be defined without being wired in.
// Re-registering an entity keeps its original menu position and replaces the
// descriptor. An undefined entity type or a descriptor naming a missing
// field fails with *ConfigurationError and leaves the registry unchanged.
func (g *Registry) Register(mdl any, desc *Descriptor) error {
	name, sch, err := g.parse(mdl)
	if err != nil {
		return err
	}

	if desc != nil {
		for _, field := range desc.ListDisplay {
			if sch.LookUpField(field) == nil {
				return &ConfigurationError{Entity: name, Field: field}
			}
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.entries.Set(name, &Entry{
		Name:       name,
		Model:      mdl,
		Schema:     sch,
		Descriptor: desc,
	})
	return nil
}

// MustRegister is Register for the startup path: a broken registration has
// no well-formed partial state to run with, so it panics with a diagnostic
// naming the offending entity.
func (g *Registry) MustRegister(mdl any, desc *Descriptor) {
	if err := g.Register(mdl, desc); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor registered for the entity, or the system
// default when none was supplied. It never fails: unknown entities get the
// default descriptor too.
func (g *Registry) Lookup(name string) *Descriptor {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v, ok := g.entries.Get(name); ok {
		if entry := v.(*Entry); entry.Descriptor != nil {
			return entry.Descriptor
		}
	}
	return Default()
}

// Entry returns the registered entry for the entity name.
func (g *Registry) Entry(name string) (*Entry, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v, ok := g.entries.Get(name); ok {
		return v.(*Entry), true
	}
	return nil, false
}

// All yields the registered entries in registration order. The sequence is
// restartable and iterates over a snapshot, so it is safe against concurrent
// registration.
func (g *Registry) All() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, entry := range g.snapshot() {
			if !yield(entry) {
				return
			}
		}
	}
}

// Names returns the registered entity names in registration order.
func (g *Registry) Names() []string {
	entries := g.snapshot()
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return names
}

func (g *Registry) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.entries.Keys())
}

func (g *Registry) snapshot() []*Entry {
	g.mu.RLock()
	defer g.mu.RUnlock()
	entries := make([]*Entry, 0, len(g.entries.Keys()))
	for _, key := range g.entries.Keys() {
		v, _ := g.entries.Get(key)
		entries = append(entries, v.(*Entry))
	}
	return entries
}

func (g *Registry) parse(mdl any) (string, *schema.Schema, error) {
	if mdl == nil {
		return "", nil, &ConfigurationError{Entity: "<nil>"}
	}
	name := utils.Name(mdl)
	typ := reflect.TypeOf(mdl)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return "", nil, &ConfigurationError{Entity: name, Err: fmt.Errorf("%s is not a struct type", typ)}
	}
	sch, err := schema.Parse(mdl, g.cache, g.namer)
	if err != nil {
		return "", nil, &ConfigurationError{Entity: name, Err: err}
	}
	return name, sch, nil
}
