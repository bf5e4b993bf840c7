// Package rpcjson registers a gRPC codec that marshals messages as JSON
// instead of wire-format protobuf. GroupUserService and UserService carry
// plain structs, not compiled descriptor-backed proto.Message types, so the
// default proto codec cannot serialize them; grpc's framing, flow control
// and interceptor chain work unchanged regardless of which codec moves the
// bytes.
package rpcjson

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

const Name = "json"

func init() {
	encoding.RegisterCodec(codec{})
}

type codec struct{}

func (codec) Marshal(v interface{}) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("rpcjson: marshal: %w", err)
	}
	return b, nil
}

func (codec) Unmarshal(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("rpcjson: unmarshal: %w", err)
	}
	return nil
}

func (codec) Name() string {
	return Name
}
