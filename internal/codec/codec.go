// Package codec serializes values as a CBOR array of kind tag and payload.
package codec

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/leonardinius/sqlvalue/internal/value"
)

var ErrUnsupportedKind = errors.New("unsupported value kind")

type wireValue struct {
	_       struct{} `cbor:",toarray"`
	Kind    value.Kind
	Payload int64
}

var (
	encMode = mustEncMode(cbor.CoreDetEncOptions())
	decMode = mustDecMode(cbor.DecOptions{})
)

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	em, err := opts.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	dm, err := opts.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}

// Marshal encodes v. Only integral kinds are supported.
func Marshal(v value.Value) ([]byte, error) {
	w := wireValue{Kind: v.Kind()}
	switch v := v.(type) {
	case *value.IntValue:
		w.Payload = int64(v.Int32())
	case *value.LongValue:
		w.Payload = v.Int64()
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedKind, v.Kind())
	}

	return encMode.Marshal(w)
}

// Unmarshal decodes data through the interning factories, so small payloads
// come back as the shared instances.
func Unmarshal(data []byte) (value.Value, error) {
	var w wireValue
	if err := decMode.Unmarshal(data, &w); err != nil {
		return nil, err
	}

	if !w.Kind.IsIntegral() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedKind, w.Kind)
	}

	// INT payloads wider than 32 bits fail the narrowing conversion.
	return value.Convert(value.GetLong(w.Payload), w.Kind)
}
