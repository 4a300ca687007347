package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// EngineMessage accompanies every accepted simulation.
const EngineMessage = "Mock engine çalıştı. Sonraki adım: Gemini API proxy bağlamak."

// Scenario ids are SIM- followed by a four-digit number in [1000, 9999].
const (
	ScenarioMin  = 1000
	ScenarioSpan = 9000
)

// Scenario is an accepted simulation request. Input is the request body as
// received; it is never stored.
type Scenario struct {
	ID    string
	Input json.RawMessage
}

// ScenarioID formats n as a scenario id.
func ScenarioID(n int) string {
	return fmt.Sprintf("SIM-%d", n)
}

// HasBaseline reports whether doc.baseline.revenue and doc.baseline.net_profit
// are both truthy. doc is a value decoded with json.Decoder.UseNumber.
func HasBaseline(doc any) bool {
	root, ok := doc.(map[string]any)
	if !ok {
		return false
	}
	baseline, ok := root["baseline"].(map[string]any)
	if !ok {
		return false
	}
	return Truthy(baseline["revenue"]) && Truthy(baseline["net_profit"])
}

// Truthy applies JavaScript truthiness to a decoded JSON value: null, false,
// zero and the empty string are falsy; objects and arrays are truthy.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, _ := strconv.ParseFloat(x.String(), 64)
		return f != 0
	case float64:
		return x != 0
	default:
		return true
	}
}
