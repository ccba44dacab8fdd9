package wal

import (
	"google.golang.org/protobuf/proto"

	"github.com/dpzmick/sustain/infra/wal/walpb"
)

// Serializer converts publish records to and from journal payloads.
type Serializer interface {
	Encode(*walpb.PublishRecord) ([]byte, error)
	Decode([]byte) (*walpb.PublishRecord, error)
}

// ProtoSerializer is the production encoding.
type ProtoSerializer struct{}

func (ProtoSerializer) Encode(r *walpb.PublishRecord) ([]byte, error) {
	return proto.Marshal(r)
}

func (ProtoSerializer) Decode(b []byte) (*walpb.PublishRecord, error) {
	var r walpb.PublishRecord
	if err := proto.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
