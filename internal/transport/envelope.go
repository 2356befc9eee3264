package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Envelope keys the backend has been seen wrapping collections in. The
// console standardizes on a bare list; this is the shim over the legacy mix.
var envelopeKeys = []string{"items", "data", "orders", "requests", "users", "suppliers", "tables"}

// DecodeList unmarshals a collection response into out (a pointer to a
// slice), accepting either a bare JSON array or an enveloped object.
func DecodeList(data []byte, out interface{}) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, out)
	}

	var wrapper map[string]interface{}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return fmt.Errorf("collection response is neither array nor object: %w", err)
	}

	for _, key := range envelopeKeys {
		raw, ok := wrapper[key]
		if !ok {
			continue
		}
		list, ok := raw.([]interface{})
		if !ok {
			continue
		}
		return decodeElements(list, out)
	}

	return fmt.Errorf("no collection found under known envelope keys")
}

func decodeElements(list []interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(list)
}
