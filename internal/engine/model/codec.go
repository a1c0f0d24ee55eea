// internal/engine/model/codec.go

package model

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var cborDecMode = mustDecMode()

func mustDecMode() cbor.DecMode {
	dm, err := cbor.DecOptions{
		MapKeyByteString: cbor.MapKeyByteStringAllowed,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}

// cborToJSON decodes a CBOR artifact into generic data and re-encodes it as
// JSON so both formats go through the same schema check.
func cborToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := cborDecMode.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode cbor: %w", err)
	}
	out, err := json.Marshal(stringKeyed(doc))
	if err != nil {
		return nil, fmt.Errorf("re-encode cbor document as json: %w", err)
	}
	return out, nil
}

// JSONToCBOR converts a JSON artifact into its CBOR form after checking it
// against the artifact schema. Map keys are sorted so the output is stable.
func JSONToCBOR(data []byte) ([]byte, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("cbor encoder: %w", err)
	}
	return em.Marshal(doc)
}

func stringKeyed(data interface{}) interface{} {
	switch v := data.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, value := range v {
			var k string
			switch kk := key.(type) {
			case string:
				k = kk
			case []byte:
				k = string(kk)
			default:
				k = fmt.Sprintf("%v", kk)
			}
			out[k] = stringKeyed(value)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, value := range v {
			out[key] = stringKeyed(value)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = stringKeyed(item)
		}
		return out
	default:
		return v
	}
}
