// Package errors provides structured error handling for the grid engine.
//
// Layout failures never propagate to the host as hard errors; they are
// reported through a pluggable [Handler] and the engine degrades to
// "nothing placed". The default handler logs via charmbracelet/log.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindGeometry indicates an invalid container or column geometry.
	KindGeometry
	// KindItem indicates an item that could not be placed.
	KindItem
	// KindRender indicates a host renderer failure.
	KindRender
	// KindSession indicates a stale or mismatched render session.
	KindSession
	// KindManifest indicates an item manifest that could not be loaded.
	KindManifest
	// KindProbe indicates a preview file whose dimensions could not be read.
	KindProbe
)

func (k Kind) String() string {
	switch k {
	case KindGeometry:
		return "geometry"
	case KindItem:
		return "item"
	case KindRender:
		return "render"
	case KindSession:
		return "session"
	case KindManifest:
		return "manifest"
	case KindProbe:
		return "probe"
	default:
		return "unknown"
	}
}

// GridError represents a structured error in the grid engine.
type GridError struct {
	// Op is the operation that failed (e.g., "masonry.AddItems").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *GridError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *GridError) Unwrap() error {
	return e.Err
}

// Handler receives errors reported by the grid engine.
type Handler interface {
	HandleError(err *GridError)
}
