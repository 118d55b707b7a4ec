package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns an event payload as T. In-process events carry T (or
// *T) directly; payloads read back from the dead-letter file arrive as raw JSON
// or generic maps and are decoded.
func DecodePayload[T any](input any) (T, error) {
	var result T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, fmt.Errorf("nil %T payload", v)
		}
		return *v, nil
	case json.RawMessage:
		return result, json.Unmarshal(v, &result)
	case []byte:
		return result, json.Unmarshal(v, &result)
	}
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
