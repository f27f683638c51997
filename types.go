package sdkmodel

//go:generate go tool stringer -type=MarshallingType,Location,TimestampFormat,Kind -linecomment -output=types_string.go

// MarshallingType tags how a field value is encoded on the wire.
type MarshallingType int

const (
	MarshallingString    MarshallingType = iota // STRING
	MarshallingInteger                          // INTEGER
	MarshallingLong                             // LONG
	MarshallingBoolean                          // BOOLEAN
	MarshallingDouble                           // DOUBLE
	MarshallingFloat                            // FLOAT
	MarshallingInstant                          // INSTANT
	MarshallingBytes                            // SDK_BYTES
	MarshallingStructure                        // STRUCTURE
	MarshallingList                             // LIST
	MarshallingMap                              // MAP
)

// IsCollection reports whether values of this type are List or Map views.
func (m MarshallingType) IsCollection() bool {
	return m == MarshallingList || m == MarshallingMap
}

// Location says where a field travels in a request or response.
type Location int

const (
	LocationPayload    Location = iota // PAYLOAD
	LocationPath                       // PATH
	LocationQueryParam                 // QUERY_PARAM
	LocationHeader                     // HEADER
)

// TimestampFormat is the wire format of an INSTANT field.
type TimestampFormat int

const (
	ISO8601             TimestampFormat = iota // ISO_8601
	RFC822                                     // RFC_822
	UnixTimestamp                              // UNIX_TIMESTAMP
	UnixTimestampMillis                        // UNIX_TIMESTAMP_MILLIS
)

// Kind classifies a value type by the envelope it carries.
type Kind int

const (
	KindStructure Kind = iota // structure
	KindRequest               // request
	KindResponse              // response
)
