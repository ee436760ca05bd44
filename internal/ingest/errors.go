package ingest

import (
	"errors"
	"fmt"
)

// Kind classifies where in the ingestion pipeline a failure occurred.
type Kind string

const (
	KindFetch      Kind = "fetch"
	KindExtract    Kind = "extract"
	KindUpload     Kind = "upload"
	KindProcessing Kind = "processing"
)

// Error is an ingestion failure tagged with the pipeline stage it came from.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the stage kind of err, or "" if err is not an ingestion error.
func KindOf(err error) Kind {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return ""
}

func fetchErr(msg string, err error) *Error {
	return &Error{Kind: KindFetch, Msg: msg, Err: err}
}

func extractErr(msg string) *Error {
	return &Error{Kind: KindExtract, Msg: msg}
}

func uploadErr(msg string, err error) *Error {
	return &Error{Kind: KindUpload, Msg: msg, Err: err}
}

func processingErr(msg string) *Error {
	return &Error{Kind: KindProcessing, Msg: msg}
}
