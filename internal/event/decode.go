package event

import "encoding/json"

// DecodePayload converts an event payload into T. Payloads published on the
// in-process bus are already T; payloads replayed from the dead-letter file
// arrive as raw JSON or as generic maps and are decoded through JSON.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T
	switch v := input.(type) {
	case T:
		return v, nil
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
