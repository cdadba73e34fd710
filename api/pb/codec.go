package pb

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// jsonCodec replaces grpc-go's built-in "proto" codec. Every message in
// this package is a plain struct (no protoc-generated marshalers), so
// encoding.json carries them over the wire instead of real protobuf
// binary encoding. Registered under the name "proto" because that is
// the codec grpc.Dial/grpc.NewServer select by default when a call
// doesn't request CallContentSubtype explicitly.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return "proto"
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
