package engine

import "fmt"

// DepthError reports input nested deeper than the configured limit.
type DepthError struct {
	Max int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("max depth %d exceeded", e.Max)
}

// LimitDepth returns a TokenSource that fails with *DepthError once objects
// and arrays nest deeper than maxDepth. maxDepth <= 0 disables the check.
func LimitDepth(inner TokenSource, maxDepth int) TokenSource {
	if maxDepth <= 0 {
		return inner
	}
	return &depthLimiter{inner: inner, max: maxDepth}
}

type depthLimiter struct {
	inner TokenSource
	max   int
	depth int
}

func (d *depthLimiter) NextToken() (Token, error) {
	tok, err := d.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		d.depth++
		if d.depth > d.max {
			return Token{}, &DepthError{Max: d.max}
		}
	case KindEndObject, KindEndArray:
		if d.depth > 0 {
			d.depth--
		}
	}
	return tok, nil
}
