// Package codec holds bidirectional converters between the wire form of a
// property (always a string in Open Graph) and its domain value.
package codec

// Codec converts between the wire representation A and the domain
// representation B. Decode validates while converting; Encode produces the
// canonical wire form.
type Codec[A, B any] interface {
	Decode(a A) (B, error)
	Encode(b B) (A, error)
}
