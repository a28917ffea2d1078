package log

import "testing"

func TestDetectLegacyFormat(t *testing.T) {
	legacy := []string{
		"Processing %d items",
		"User %(name)s logged in",
		"Temperature is %f degrees",
		"Error code: %x",
		"Found %r in data",
		"Character: %c",
		"Octal: %o",
		"Multiple %s and %d patterns",
		"100%% done",
	}

	for _, msg := range legacy {
		if !detectLegacyFormat(msg) {
			t.Errorf("detectLegacyFormat(%q) = false, want true", msg)
		}
	}

	clean := []string{
		"no tokens here",
		"User {user_id} logged in",
		"50% of the time",
		"%z is not a conversion",
		"",
	}

	for _, msg := range clean {
		if detectLegacyFormat(msg) {
			t.Errorf("detectLegacyFormat(%q) = true, want false", msg)
		}
	}
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name   string
		event  string
		fields []Field
		want   string
	}{
		{
			name:   "single placeholder",
			event:  "Hello {x}",
			fields: []Field{F("x", "y")},
			want:   "Hello y",
		},
		{
			name:   "unused field left alone",
			event:  "Hello {x}",
			fields: []Field{F("x", "y"), F("z", 1)},
			want:   "Hello y",
		},
		{
			name:   "missing placeholder left verbatim",
			event:  "User {user_id} performed {action}",
			fields: []Field{F("user_id", 123)},
			want:   "User 123 performed {action}",
		},
		{
			name:   "unterminated brace falls back",
			event:  "Invalid format {",
			fields: []Field{F("k", 1)},
			want:   "Invalid format {",
		},
		{
			name:   "unterminated token falls back",
			event:  "Invalid format {incomplete",
			fields: []Field{F("incomplete", 1)},
			want:   "Invalid format {incomplete",
		},
		{
			name:   "stray closing brace falls back",
			event:  "odd } brace {x}",
			fields: []Field{F("x", "y")},
			want:   "odd } brace {x}",
		},
		{
			name:   "empty token falls back",
			event:  "auto {} numbering",
			fields: []Field{F("x", "y")},
			want:   "auto {} numbering",
		},
		{
			name:   "non-identifier token falls back",
			event:  "positional {0} token",
			fields: []Field{F("x", "y")},
			want:   "positional {0} token",
		},
		{
			name:  "no tokens",
			event: "plain message",
			want:  "plain message",
		},
		{
			name:   "numeric and string values",
			event:  "query took {duration}ms for table {table}",
			fields: []Field{F("duration", 250), F("table", "users")},
			want:   "query took 250ms for table users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interpolate(tt.event, tt.fields)
			if got != tt.want {
				t.Errorf("interpolate(%q) = %q, want %q", tt.event, got, tt.want)
			}
		})
	}
}

func TestFlattenExtra(t *testing.T) {
	fields := []Field{
		F("extra", Fields{"b": 2, "a": 1, "dup": "from-extra"}),
		F("dup", "explicit"),
		F("c", 3),
	}

	got := flattenExtra(fields)

	want := []Field{
		F("a", 1),
		F("b", 2),
		F("dup", "explicit"),
		F("c", 3),
	}

	if len(got) != len(want) {
		t.Fatalf("flattenExtra returned %d fields, want %d: %v", len(got), len(want), got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFlattenExtra_NonMappingExtraKept(t *testing.T) {
	fields := []Field{F("extra", "just a string")}

	got := flattenExtra(fields)
	if len(got) != 1 || got[0].Key != "extra" {
		t.Errorf("non-mapping extra was not preserved: %v", got)
	}
}

func TestMergeFields_OverlayWins(t *testing.T) {
	base := []Field{F("user_id", 1), F("session", "s")}
	overlay := []Field{F("user_id", 2), F("action", "login")}

	got := mergeFields(base, overlay)

	want := []Field{F("user_id", 2), F("session", "s"), F("action", "login")}
	if len(got) != len(want) {
		t.Fatalf("merged %d fields, want %d: %v", len(got), len(want), got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d = %v, want %v", i, got[i], want[i])
		}
	}

	// The inputs must never be mutated.
	if base[0].Value != 1 {
		t.Error("mergeFields mutated its base input")
	}
}
