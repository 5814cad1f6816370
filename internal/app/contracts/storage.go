package contracts

import (
	"context"
)

// RawDocument is the unparsed timetable as fetched from a source.
type RawDocument struct {
	Body    []byte
	Version string
	Origin  string
}

type DocumentSource interface {
	Name() string
	Fetch(ctx context.Context) (*RawDocument, error)
}

// DocumentCache keeps the bytes of the last document that decoded cleanly.
type DocumentCache interface {
	SaveLastGood(ctx context.Context, raw *RawDocument) error
	LoadLastGood(ctx context.Context) (*RawDocument, error)
}
