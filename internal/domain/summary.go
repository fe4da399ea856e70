package domain

// Summary is the result of summarizing a permit document.
//
// TimeSlots and FieldNames hold every extracted line in document order.
// FieldSlots groups slot lines under the field heading that most recently
// preceded them; slot lines seen before any heading stay in TimeSlots but
// are not attributed to a field.
type Summary struct {
	Path       string              `json:"path,omitempty"`
	Title      string              `json:"title,omitempty"`
	Kind       DocumentKind        `json:"kind"`
	Pages      int                 `json:"pages"`
	Excerpt    string              `json:"excerpt"`
	TimeSlots  []string            `json:"time_slots"`
	FieldNames []string            `json:"field_names"`
	FieldSlots map[string][]string `json:"field_slots"`
	Words      int                 `json:"words"`
	Characters int                 `json:"characters"`
}

// BatchResult pairs a summarized path with its outcome. A batch keeps going
// past individual failures, so Err is per-file.
type BatchResult struct {
	Path    string
	Summary Summary
	Err     error
}
