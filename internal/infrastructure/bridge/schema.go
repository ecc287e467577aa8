package bridge

import (
	"sort"

	"github.com/invopop/jsonschema"
)

// MessageSchema describes one message type.
type MessageSchema struct {
	Type    string             `json:"type"`
	Payload *jsonschema.Schema `json:"payload,omitempty"`
}

// ProtocolSchema is the exported description of the wire protocol.
type ProtocolSchema struct {
	Envelope *jsonschema.Schema `json:"envelope"`
	Messages []MessageSchema    `json:"messages"`
}

// Schema reflects the envelope and every payload type, sorted by message type.
func Schema() *ProtocolSchema {
	r := &jsonschema.Reflector{
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}

	out := &ProtocolSchema{Envelope: r.Reflect(&Envelope{})}

	types := PayloadTypes()
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		msg := MessageSchema{Type: name}
		if v := types[name]; v != nil {
			msg.Payload = r.Reflect(v)
		}
		out.Messages = append(out.Messages, msg)
	}
	return out
}
