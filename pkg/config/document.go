package config

// Document is a loaded configuration payload tagged with where it came from.
// The location only serves diagnostics; the parser consumes the raw bytes.
type Document struct {
	location string
	raw      []byte
}

// NewDocument tags a raw payload with its origin.
func NewDocument(location string, raw []byte) Document {
	return Document{location: location, raw: raw}
}

// Location returns the origin identifier, usually a path or URL.
func (d Document) Location() string {
	return d.location
}

// Raw returns the payload bytes.
func (d Document) Raw() []byte {
	return d.raw
}
