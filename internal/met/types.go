package met

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
)

// Field names recognised in /objects/{id} payloads. The spelling follows the
// live API.
const (
	FieldObjectID          = "objectID"
	FieldTitle             = "title"
	FieldArtistDisplayName = "artistDisplayName"
	FieldArtistDisplayBio  = "artistDisplayBio"
	FieldPrimaryImageSmall = "primaryImageSmall"
	FieldClassification    = "classification"
	FieldObjectName        = "objectName"
	FieldMedium            = "medium"
	FieldDimensions        = "dimensions"
	FieldCulture           = "culture"
	FieldPeriod            = "period"
)

// ObjectID is an opaque collection identifier. The API sends numbers, but
// strings are accepted too and kept verbatim.
type ObjectID string

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (id *ObjectID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*id = ObjectID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("object id: %w", err)
	}
	*id = ObjectID(n.String())
	return nil
}

// String returns the identifier as sent by the API.
func (id ObjectID) String() string {
	return string(id)
}

// SearchResponse mirrors /search. ObjectIDs is nil when the API reports no
// hits (it sends null) or omits the field.
type SearchResponse struct {
	Total     int        `json:"total"`
	ObjectIDs []ObjectID `json:"objectIDs"`
}

// Object is the full /objects/{id} payload keyed by field name. An empty
// Object means nothing has been loaded.
type Object map[string]any

// IsEmpty reports whether the object carries no fields at all.
func (o Object) IsEmpty() bool {
	return len(o) == 0
}

// Has reports whether field is present, even if its value is empty.
func (o Object) Has(field string) bool {
	_, ok := o[field]
	return ok
}

// String renders a field as text. Missing and null fields render as "".
func (o Object) String(field string) string {
	v, ok := o[field]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Clone returns a shallow copy. Values in API payloads are scalars for the
// recognised fields, so a shallow copy is enough to keep snapshots apart.
func (o Object) Clone() Object {
	if o == nil {
		return Object{}
	}
	return maps.Clone(o)
}

func (o Object) ID() ObjectID { return ObjectID(o.String(FieldObjectID)) }
func (o Object) Title() string { return o.String(FieldTitle) }
func (o Object) ArtistDisplayName() string { return o.String(FieldArtistDisplayName) }
func (o Object) ArtistDisplayBio() string { return o.String(FieldArtistDisplayBio) }
func (o Object) PrimaryImageSmall() string { return o.String(FieldPrimaryImageSmall) }
func (o Object) Classification() string { return o.String(FieldClassification) }
func (o Object) ObjectName() string { return o.String(FieldObjectName) }
func (o Object) Medium() string { return o.String(FieldMedium) }
func (o Object) Dimensions() string { return o.String(FieldDimensions) }
func (o Object) Culture() string { return o.String(FieldCulture) }
func (o Object) Period() string { return o.String(FieldPeriod) }
