package rest

import (
	jsoniter "github.com/json-iterator/go"
)

// Codec serializes request bodies and parses response bodies.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// DefaultCodec is json-iterator configured to behave like encoding/json.
var DefaultCodec Codec = jsoniter.ConfigCompatibleWithStandardLibrary
