// Package codec implements the binary form of report bodies used to hand a
// report to another trusted process. It is not wire compatible with the JSON
// payload produced by ReportFormData.
//
// A deprecation body is four msgpack values in fixed order: id (str),
// anticipatedRemoval (timestamp ext), message (str), sourceFile (str or nil).
// Line and column numbers are never encoded.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"example.com/deprecationreport/internal/domain"
)

var (
	// ErrMalformed is returned when a value is missing, truncated or of the wrong type.
	ErrMalformed = errors.New("codec: malformed report")
	// ErrUnknownType is returned for a frame tag that names no known report body.
	ErrUnknownType = errors.New("codec: unknown report type")
)

// EncodeDeprecation writes the four construction fields of b to w.
func EncodeDeprecation(w io.Writer, b *domain.DeprecationReportBody) error {
	return encodeDeprecation(msgpack.NewEncoder(w), b)
}

// DecodeDeprecation reads a body written by EncodeDeprecation. On any failure it
// returns a nil body and an error wrapping ErrMalformed. The returned body never
// carries a line or column number.
func DecodeDeprecation(r io.Reader) (*domain.DeprecationReportBody, error) {
	return decodeDeprecation(msgpack.NewDecoder(r))
}

// MarshalDeprecation returns the binary form of b.
func MarshalDeprecation(b *domain.DeprecationReportBody) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeDeprecation(&buf, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalDeprecation decodes data produced by MarshalDeprecation.
func UnmarshalDeprecation(data []byte) (*domain.DeprecationReportBody, error) {
	return DecodeDeprecation(bytes.NewReader(data))
}

// EncodeReportBody writes the body's type tag followed by its fields.
func EncodeReportBody(w io.Writer, body domain.ReportBody) error {
	enc := msgpack.NewEncoder(w)
	switch b := body.(type) {
	case *domain.DeprecationReportBody:
		if err := enc.EncodeString(string(b.Type())); err != nil {
			return fmt.Errorf("encode type: %w", err)
		}
		return encodeDeprecation(enc, b)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownType, body)
	}
}

// DecodeReportBody reads a frame written by EncodeReportBody and dispatches on its tag.
func DecodeReportBody(r io.Reader) (domain.ReportBody, error) {
	dec := msgpack.NewDecoder(r)
	tag, err := decodeRequiredString(dec, "type")
	if err != nil {
		return nil, err
	}
	switch domain.ReportType(tag) {
	case domain.DeprecationReportType:
		b, err := decodeDeprecation(dec)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, tag)
	}
}

func encodeDeprecation(enc *msgpack.Encoder, b *domain.DeprecationReportBody) error {
	if err := enc.EncodeString(b.ID()); err != nil {
		return fmt.Errorf("encode id: %w", err)
	}
	if err := enc.EncodeTime(b.AnticipatedRemoval()); err != nil {
		return fmt.Errorf("encode anticipatedRemoval: %w", err)
	}
	if err := enc.EncodeString(b.Message()); err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	var err error
	if file, ok := b.SourceFile(); ok {
		err = enc.EncodeString(file)
	} else {
		err = enc.EncodeNil()
	}
	if err != nil {
		return fmt.Errorf("encode sourceFile: %w", err)
	}
	return nil
}

func decodeDeprecation(dec *msgpack.Decoder) (*domain.DeprecationReportBody, error) {
	id, err := decodeRequiredString(dec, "id")
	if err != nil {
		return nil, err
	}
	removal, err := decodeRequiredTime(dec, "anticipatedRemoval")
	if err != nil {
		return nil, err
	}
	message, err := decodeRequiredString(dec, "message")
	if err != nil {
		return nil, err
	}
	sourceFile, err := decodeNullableString(dec, "sourceFile")
	if err != nil {
		return nil, err
	}
	return domain.NewDeprecationReportBody(id, removal, message, sourceFile), nil
}

func malformed(field string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrMalformed, field, err)
}

// peekValue fails on EOF and, since required values may not be absent, on nil.
func peekValue(dec *msgpack.Decoder, field string) (byte, error) {
	c, err := dec.PeekCode()
	if err != nil {
		return 0, malformed(field, err)
	}
	return c, nil
}

func decodeRequiredString(dec *msgpack.Decoder, field string) (string, error) {
	c, err := peekValue(dec, field)
	if err != nil {
		return "", err
	}
	if c == msgpcode.Nil {
		return "", malformed(field, errors.New("nil value"))
	}
	s, err := dec.DecodeString()
	if err != nil {
		return "", malformed(field, err)
	}
	return s, nil
}

func decodeNullableString(dec *msgpack.Decoder, field string) (*string, error) {
	c, err := peekValue(dec, field)
	if err != nil {
		return nil, err
	}
	if c == msgpcode.Nil {
		if err := dec.DecodeNil(); err != nil {
			return nil, malformed(field, err)
		}
		return nil, nil
	}
	s, err := dec.DecodeString()
	if err != nil {
		return nil, malformed(field, err)
	}
	return &s, nil
}

func decodeRequiredTime(dec *msgpack.Decoder, field string) (time.Time, error) {
	c, err := peekValue(dec, field)
	if err != nil {
		return time.Time{}, err
	}
	if c == msgpcode.Nil {
		return time.Time{}, malformed(field, errors.New("nil value"))
	}
	t, err := dec.DecodeTime()
	if err != nil {
		return time.Time{}, malformed(field, err)
	}
	return t.UTC(), nil
}
