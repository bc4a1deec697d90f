package entity

// Metadata markers embedded by the host's variable framework. They describe
// schema shape and must never surface as data.
const (
	MetaKey       = "$meta"
	ExtensibleKey = "$__META_EXTENSIBLE__$"
)

// Section names of the world-state document. The wire keys are fixed by the
// chat host.
const (
	SectionInventory = "道具"
	SectionDiary     = "摘要"
	SectionUser      = "用户"
	SectionNPC       = "NPC"
	SectionQuest     = "任务"
)

// StateDocument is the raw, semi-structured world-state document as stored by
// the host: nested maps whose leaves are [value, annotation] pairs.
type StateDocument map[string]interface{}

// Section returns the named top-level section, or nil when absent or not an
// object.
func (d StateDocument) Section(name string) map[string]interface{} {
	if d == nil {
		return nil
	}
	sec, ok := d[name].(map[string]interface{})
	if !ok {
		return nil
	}
	return sec
}

// IsEmpty reports whether the document carries no sections at all.
func (d StateDocument) IsEmpty() bool {
	return len(d) == 0
}

// PairValue unwraps a [value, annotation] leaf. A bare (non-slice) value is
// returned as-is; the host occasionally stores leaves unwrapped.
func PairValue(raw interface{}) interface{} {
	if arr, ok := raw.([]interface{}); ok {
		if len(arr) == 0 {
			return nil
		}
		return arr[0]
	}
	return raw
}

// PairString unwraps a leaf and coerces it to string. Non-string values yield
// the empty string.
func PairString(raw interface{}) string {
	s, _ := PairValue(raw).(string)
	return s
}

// PairNumber unwraps a leaf and coerces it to a number. JSON numbers arrive
// as float64; integers stored by mutations arrive as int.
func PairNumber(raw interface{}) float64 {
	switch v := PairValue(raw).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}
