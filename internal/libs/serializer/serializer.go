// Package serializer encodes a statistics report in one of the supported output formats.
// The plain text format is the default; JSON, MessagePack and CBOR carry the same
// document for machine consumers.
package serializer

import (
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/arith/internal/constants"
	"github.com/hyp3rd/arith/internal/sentinel"
	"github.com/hyp3rd/arith/pkg/format"
	"github.com/hyp3rd/arith/pkg/stats"
)

// ISerializer is the interface that wraps the basic serializer methods.
type ISerializer interface {
	// Marshal encodes the given report into a byte slice.
	Marshal(report *stats.Report) ([]byte, error)
}

// Registry manages serializer constructors.
type Registry struct {
	serializers map[string]func(digits int) ISerializer
}

// getDefaultSerializers returns the default set of serializers.
func getDefaultSerializers() map[string]func(digits int) ISerializer {
	return map[string]func(digits int) ISerializer{
		constants.TextFormat: func(digits int) ISerializer {
			return &TextSerializer{Digits: digits}
		},
		constants.JSONFormat: func(digits int) ISerializer {
			return &JSONSerializer{Digits: digits}
		},
		constants.MsgpackFormat: func(digits int) ISerializer {
			return &MsgpackSerializer{Digits: digits}
		},
		constants.CBORFormat: func(digits int) ISerializer {
			return &CBORSerializer{Digits: digits}
		},
	}
}

// NewSerializerRegistry creates a new serializer registry with default serializers pre-registered.
func NewSerializerRegistry() *Registry {
	registry := &Registry{
		serializers: make(map[string]func(digits int) ISerializer),
	}
	// Register the default serializers
	for name, createFunc := range getDefaultSerializers() {
		registry.Register(name, createFunc)
	}

	return registry
}

// NewEmptySerializerRegistry creates a new serializer registry without default serializers.
// This is useful for testing or when you want to register only specific serializers.
func NewEmptySerializerRegistry() *Registry {
	return &Registry{
		serializers: make(map[string]func(digits int) ISerializer),
	}
}

// Register registers a new serializer with the given name.
func (r *Registry) Register(serializerType string, createFunc func(digits int) ISerializer) {
	r.serializers[serializerType] = createFunc
}

// New returns a new serializer based on the serializerType, rendering values with digits fractional digits.
func (r *Registry) New(serializerType string, digits int) (ISerializer, error) {
	if serializerType == "" {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "serializerType")
	}

	err := format.ValidateDigits(digits)
	if err != nil {
		return nil, err
	}

	createFunc, ok := r.serializers[serializerType]
	if !ok {
		return nil, ewrap.Wrap(sentinel.ErrSerializerNotFound, serializerType)
	}

	return createFunc(digits), nil
}

// New returns a new serializer using a new registry instance with default serializers.
// The serializerType parameter is used to select the serializer from the default serializers.
func New(serializerType string, digits int) (ISerializer, error) {
	registry := NewSerializerRegistry()

	return registry.New(serializerType, digits)
}
