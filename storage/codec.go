package storage

import (
	"fmt"
	"math"
	"scrapbook/domain"
	"scrapbook/errors"
	"strconv"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// timeKey marks a struct value holding a timestamp, structpb has no native time kind.
const timeKey = "@ts"

const (
	envelopeID        = "id"
	envelopeCreatedAt = "createdAt"
	envelopeUpdatedAt = "updatedAt"
	envelopeFields    = "fields"
)

// encodeDocument stores a document as a protobuf Struct envelope:
// {"id": ..., "createdAt": unixnano, "updatedAt": unixnano, "fields": {...}}
func encodeDocument(doc domain.Document) ([]byte, error) {
	fields, err := encodeFields(doc.Fields)
	if err != nil {
		return nil, err
	}
	envelope := &structpb.Struct{Fields: map[string]*structpb.Value{
		envelopeID:        structpb.NewStringValue(doc.ID),
		envelopeCreatedAt: structpb.NewStringValue(strconv.FormatInt(doc.CreatedAt.UnixNano(), 10)),
		envelopeUpdatedAt: structpb.NewStringValue(strconv.FormatInt(doc.UpdatedAt.UnixNano(), 10)),
		envelopeFields:    structpb.NewStructValue(fields),
	}}
	return proto.Marshal(envelope)
}

func decodeDocument(data []byte) (domain.Document, error) {
	var envelope structpb.Struct
	if err := proto.Unmarshal(data, &envelope); err != nil {
		return domain.Document{}, err
	}
	createdAt, err := decodeUnixNano(envelope.Fields[envelopeCreatedAt])
	if err != nil {
		return domain.Document{}, err
	}
	updatedAt, err := decodeUnixNano(envelope.Fields[envelopeUpdatedAt])
	if err != nil {
		return domain.Document{}, err
	}
	fields := domain.Fields{}
	for name, value := range envelope.Fields[envelopeFields].GetStructValue().GetFields() {
		fields[name] = decodeValue(value)
	}
	return domain.Document{
		ID:        envelope.Fields[envelopeID].GetStringValue(),
		Fields:    fields,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func encodeFields(fields domain.Fields) (*structpb.Struct, error) {
	out := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(fields))}
	for name, value := range fields {
		encoded, err := encodeValue(value)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", errors.ErrValidation, name, err)
		}
		out.Fields[name] = encoded
	}
	return out, nil
}

func encodeValue(v any) (*structpb.Value, error) {
	switch x := v.(type) {
	case time.Time:
		return timeValue(x), nil
	case *time.Time:
		if x == nil {
			return structpb.NewNullValue(), nil
		}
		return timeValue(*x), nil
	case domain.Fields:
		return encodeMap(x)
	case map[string]any:
		return encodeMap(x)
	case []string:
		values := make([]*structpb.Value, 0, len(x))
		for _, s := range x {
			values = append(values, structpb.NewStringValue(s))
		}
		return structpb.NewListValue(&structpb.ListValue{Values: values}), nil
	case []any:
		values := make([]*structpb.Value, 0, len(x))
		for _, item := range x {
			encoded, err := encodeValue(item)
			if err != nil {
				return nil, err
			}
			values = append(values, encoded)
		}
		return structpb.NewListValue(&structpb.ListValue{Values: values}), nil
	}
	return structpb.NewValue(v)
}

func encodeMap(m map[string]any) (*structpb.Value, error) {
	s := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(m))}
	for k, item := range m {
		encoded, err := encodeValue(item)
		if err != nil {
			return nil, err
		}
		s.Fields[k] = encoded
	}
	return structpb.NewStructValue(s), nil
}

func timeValue(t time.Time) *structpb.Value {
	return structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
		timeKey: structpb.NewStringValue(t.UTC().Format(time.RFC3339Nano)),
	}})
}

// decodeValue turns integral numbers back into int64, other numbers stay float64.
func decodeValue(v *structpb.Value) any {
	switch k := v.GetKind().(type) {
	case *structpb.Value_BoolValue:
		return k.BoolValue
	case *structpb.Value_NumberValue:
		n := k.NumberValue
		if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
			return int64(n)
		}
		return n
	case *structpb.Value_StringValue:
		return k.StringValue
	case *structpb.Value_ListValue:
		out := make([]any, 0, len(k.ListValue.GetValues()))
		for _, item := range k.ListValue.GetValues() {
			out = append(out, decodeValue(item))
		}
		return out
	case *structpb.Value_StructValue:
		fields := k.StructValue.GetFields()
		if raw, ok := fields[timeKey]; ok && len(fields) == 1 {
			if t, err := time.Parse(time.RFC3339Nano, raw.GetStringValue()); err == nil {
				return t
			}
		}
		out := make(map[string]any, len(fields))
		for name, item := range fields {
			out[name] = decodeValue(item)
		}
		return out
	}
	return nil
}

func decodeUnixNano(v *structpb.Value) (time.Time, error) {
	raw := v.GetStringValue()
	if raw == "" {
		return time.Time{}, nil
	}
	nanos, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", raw, err)
	}
	return time.Unix(0, nanos).UTC(), nil
}
