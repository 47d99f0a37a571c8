package ufmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNilSink              = errors.New("nil sink")
	ErrNilHandler           = errors.New("nil handler")
	ErrInvalidVerb          = errors.New("invalid verb")
	ErrRegistryFull         = errors.New("handler registry full")
	ErrHandlerNotFound      = errors.New("handler not found")
	ErrArgument             = errors.New("argument mismatch")
	ErrInvalidConfig        = errors.New("invalid config")
	ErrTemplateNotFound     = errors.New("template not found")
	ErrUnsupportedAlignment = errors.New("unsupported alignment")
	ErrUnsupportedTransform = errors.New("unsupported transform")
)

// Alignment places text inside a wider field.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignRight   Alignment = "right"
	AlignCenter  Alignment = "center"
	AlignJustify Alignment = "justify"
)

var alignments = []Alignment{AlignLeft, AlignRight, AlignCenter, AlignJustify}

// String returns the alignment name.
func (a Alignment) String() string { return string(a) }

// Alignments returns all supported alignment names.
func Alignments() []Alignment {
	out := make([]Alignment, len(alignments))
	copy(out, alignments)
	return out
}

// ParseAlignment parses an alignment name.
func ParseAlignment(s string) (Alignment, error) {
	for _, a := range alignments {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedAlignment, s)
}

// Transform is a text rewrite applied by [TransformText].
type Transform string

const (
	TransformNone       Transform = "none"
	TransformUpper      Transform = "upper"
	TransformLower      Transform = "lower"
	TransformCapitalize Transform = "capitalize"
	TransformReverse    Transform = "reverse"
	TransformROT13      Transform = "rot13"
)

var transforms = []Transform{TransformNone, TransformUpper, TransformLower, TransformCapitalize, TransformReverse, TransformROT13}

// String returns the transform name.
func (t Transform) String() string { return string(t) }

// Transforms returns all supported transform names.
func Transforms() []Transform {
	out := make([]Transform, len(transforms))
	copy(out, transforms)
	return out
}

// ParseTransform parses a transform name.
func ParseTransform(s string) (Transform, error) {
	for _, t := range transforms {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedTransform, s)
}
