// Package record provides the generic persisted-record capability the
// concrete tenant models build on: store-assigned identity, workflow
// state, indexed tag attributes, tag-filter queries and versioned schema
// migrations over a GORM-backed store.
package record

// Tags holds the indexed attributes of a record. The store keeps one tag
// row per entry, so records can be looked up by any tag value without
// touching the serialized payload.
type Tags map[string]string

// Record is what a concrete record type exposes to the store. Types embed
// Base for the identity and state half and supply the rest themselves.
type Record interface {
	RecordType() string
	RecordID() string
	SetRecordID(id string)
	RecordState() string
	SetRecordState(state string)
	RecordTags() Tags
	RecordValue() map[string]any
}

// Base carries the store-assigned identifier and workflow state shared by
// all record types. The identifier stays empty until the first save.
type Base struct {
	ID    string
	State string
}

func (b *Base) RecordID() string        { return b.ID }
func (b *Base) SetRecordID(id string)   { b.ID = id }
func (b *Base) RecordState() string     { return b.State }
func (b *Base) SetRecordState(s string) { b.State = s }
