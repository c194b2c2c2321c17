package compare

import (
	"encoding/json"
	"fmt"
)

// JSONFormatter renders a comparison set as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format marshals the comparison set, indented when Pretty is set
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	marshal := json.Marshal
	if jf.Pretty {
		marshal = func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }
	}
	data, err := marshal(compSet)
	if err != nil {
		return "", fmt.Errorf("failed to marshal comparison: %w", err)
	}
	return string(data), nil
}
