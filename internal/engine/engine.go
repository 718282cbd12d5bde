package engine

import (
	"errors"
	"io"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
}

// ErrTrailingData reports tokens left in the source after the first
// complete value.
var ErrTrailingData = errors.New("trailing data after top-level value")

// NodeKind classifies a Node of the generic tree.
type NodeKind int

const (
	NodeNull NodeKind = iota
	NodeObject
	NodeArray
	NodeString
	NodeNumber
	NodeBool
)

// Node is a generic structured value. Unlike map[string]any, objects keep
// their members in input order.
type Node struct {
	Kind    NodeKind
	Members []Member // NodeObject
	Items   []Node   // NodeArray
	String  string   // NodeString
	Number  string   // NodeNumber, as text
	Bool    bool     // NodeBool
}

// Member is one key/value pair of an object node.
type Member struct {
	Key   string
	Value Node
}

// Decode builds a Node tree from the streaming token source.
func Decode(src TokenSource) (Node, error) {
	tok, err := src.NextToken()
	if err != nil {
		return Node{}, err
	}
	return decodeValue(src, tok)
}

// DecodeAll is Decode for a source that must hold exactly one value.
func DecodeAll(src TokenSource) (Node, error) {
	n, err := Decode(src)
	if err != nil {
		return Node{}, err
	}
	if _, err := src.NextToken(); err != io.EOF {
		if err == nil {
			err = ErrTrailingData
		}
		return Node{}, err
	}
	return n, nil
}

func decodeValue(src TokenSource, tok Token) (Node, error) {
	switch tok.Kind {
	case KindBeginObject:
		return decodeObject(src)
	case KindBeginArray:
		return decodeArray(src)
	case KindString:
		return Node{Kind: NodeString, String: tok.String}, nil
	case KindNumber:
		return Node{Kind: NodeNumber, Number: tok.Number}, nil
	case KindBool:
		return Node{Kind: NodeBool, Bool: tok.Bool}, nil
	case KindNull:
		return Node{Kind: NodeNull}, nil
	default:
		return Node{}, io.ErrUnexpectedEOF
	}
}

func decodeObject(src TokenSource) (Node, error) {
	n := Node{Kind: NodeObject}
	for {
		tok, err := src.NextToken()
		if err != nil {
			return Node{}, err
		}
		if tok.Kind == KindEndObject {
			return n, nil
		}
		if tok.Kind != KindKey {
			return Node{}, io.ErrUnexpectedEOF
		}
		vt, err := src.NextToken()
		if err != nil {
			return Node{}, err
		}
		v, err := decodeValue(src, vt)
		if err != nil {
			return Node{}, err
		}
		n.Members = append(n.Members, Member{Key: tok.String, Value: v})
	}
}

func decodeArray(src TokenSource) (Node, error) {
	n := Node{Kind: NodeArray}
	for {
		tok, err := src.NextToken()
		if err != nil {
			return Node{}, err
		}
		if tok.Kind == KindEndArray {
			return n, nil
		}
		v, err := decodeValue(src, tok)
		if err != nil {
			return Node{}, err
		}
		n.Items = append(n.Items, v)
	}
}
