package permit

import "testing"

const samplePermit = `City of Mountain View
Permit #2025-118

Shoreline North Field (Athletic Field Use)
Sat, Dec 6, 2025 8:00 AM Sat, Dec 6, 2025 1:00 PM
Sun, Dec 7, 2025 9:00 AM Sun, Dec 7, 2025 12:00 PM

Crittenden South Field (Athletic Field Use)
Wed, Dec 10, 2025 12:00 PM Wed, Dec 10, 2025 5:00 PM

Approved by the Parks Division.
`

func TestExtract_FieldsAndSlots(t *testing.T) {
	got := extract(samplePermit, 500)

	wantFields := []string{
		"Shoreline North Field (Athletic Field Use)",
		"Crittenden South Field (Athletic Field Use)",
	}
	if len(got.fieldNames) != len(wantFields) {
		t.Fatalf("want %d field names, got %d: %v", len(wantFields), len(got.fieldNames), got.fieldNames)
	}
	for i, want := range wantFields {
		if got.fieldNames[i] != want {
			t.Fatalf("field %d: want %q, got %q", i, want, got.fieldNames[i])
		}
	}

	if len(got.timeSlots) != 3 {
		t.Fatalf("want 3 time slots, got %d: %v", len(got.timeSlots), got.timeSlots)
	}

	shoreline := got.fieldSlots["Shoreline North Field (Athletic Field Use)"]
	if len(shoreline) != 2 {
		t.Fatalf("want 2 slots for Shoreline, got %d", len(shoreline))
	}
	crittenden := got.fieldSlots["Crittenden South Field (Athletic Field Use)"]
	if len(crittenden) != 1 {
		t.Fatalf("want 1 slot for Crittenden, got %d", len(crittenden))
	}
	if crittenden[0] != "Wed, Dec 10, 2025 12:00 PM Wed, Dec 10, 2025 5:00 PM" {
		t.Fatalf("unexpected slot: %q", crittenden[0])
	}
}

func TestExtract_SlotBeforeAnyField(t *testing.T) {
	text := "Sat, Dec 6, 2025 8:00 AM\nShoreline North Field (Athletic Field Use)\n"
	got := extract(text, 500)

	if len(got.timeSlots) != 1 {
		t.Fatalf("want the orphan slot kept, got %v", got.timeSlots)
	}
	if len(got.fieldSlots["Shoreline North Field (Athletic Field Use)"]) != 0 {
		t.Fatalf("orphan slot must not attach to a later field")
	}
}

func TestExtract_SingleSlotLine(t *testing.T) {
	got := extract("Mon, Jan 5, 2026 7:30 PM\n", 500)
	if len(got.timeSlots) != 1 {
		t.Fatalf("single-window line should match, got %v", got.timeSlots)
	}
}

func TestExtract_CapsPerCategory(t *testing.T) {
	text := ""
	for i := 0; i < 5; i++ {
		text += "Shoreline North Field (Athletic Field Use)\n"
		text += "Sat, Dec 6, 2025 8:00 AM Sat, Dec 6, 2025 1:00 PM\n"
	}

	got := extract(text, 2)
	if len(got.timeSlots) != 2 {
		t.Fatalf("want 2 slots after cap, got %d", len(got.timeSlots))
	}
	if len(got.fieldNames) != 2 {
		t.Fatalf("want 2 field names after cap, got %d", len(got.fieldNames))
	}
}

func TestExtract_IgnoresProseAndBlankLines(t *testing.T) {
	text := "\n\nSome narrative about the permit.\nFees due on receipt.\n"
	got := extract(text, 500)
	if len(got.timeSlots) != 0 || len(got.fieldNames) != 0 {
		t.Fatalf("prose must not match: %+v", got)
	}
}

func TestMatchesAny(t *testing.T) {
	patterns := []string{"*.pdf", "*permit*"}
	cases := []struct {
		name string
		want bool
	}{
		{"winter.PDF", true},
		{"/tmp/docs/Permit-2025.txt", true},
		{"notes.md", false},
	}
	for _, c := range cases {
		if got := MatchesAny(c.name, patterns); got != c.want {
			t.Fatalf("MatchesAny(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}
