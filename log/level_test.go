package log

import (
	"errors"
	"testing"
)

func TestParseLevel_ResolvesNames(t *testing.T) {
	tests := []struct {
		name string
		want Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warning", LevelWarning},
		{"error", LevelError},
		{"critical", LevelCritical},
		{"DEBUG", LevelDebug},
		{"Warning", LevelWarning},
		{"  INFO  ", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if err != nil {
				t.Fatalf("ParseLevel(%q) returned error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseLevel_RejectsUnknownNames(t *testing.T) {
	for _, name := range []string{"", "verbose", "warn", "trace", "INFO2"} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseLevel(name)
			if err == nil {
				t.Fatalf("ParseLevel(%q) succeeded, want error", name)
			}

			var invalid *InvalidLevelError
			if !errors.As(err, &invalid) {
				t.Fatalf("ParseLevel(%q) error type = %T, want *InvalidLevelError", name, err)
			}
			if invalid.Value != name {
				t.Errorf("error names %q, want %q", invalid.Value, name)
			}
		})
	}
}

func TestLevel_NumericOrdering(t *testing.T) {
	// The numeric values are load-bearing for filtering and for
	// external consumers parsing severities.
	want := map[Level]int{
		LevelDebug:    10,
		LevelInfo:     20,
		LevelWarning:  30,
		LevelError:    40,
		LevelCritical: 50,
	}

	for level, value := range want {
		if int(level) != value {
			t.Errorf("%s = %d, want %d", level, int(level), value)
		}
	}
}

func TestLevels_AscendingOrder(t *testing.T) {
	prev := Level(0)

	count := 0
	for level := range Levels() {
		if level <= prev {
			t.Errorf("levels out of order: %v after %v", level, prev)
		}

		if !level.Valid() {
			t.Errorf("Levels yielded invalid level %d", int(level))
		}

		prev = level
		count++
	}

	if count != 5 {
		t.Errorf("Levels yielded %d levels, want 5", count)
	}
}

func TestLevel_String_RoundTrips(t *testing.T) {
	for level := range Levels() {
		parsed, err := ParseLevel(level.String())
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", level.String(), err)
		}
		if parsed != level {
			t.Errorf("round trip %v -> %q -> %v", level, level.String(), parsed)
		}
	}

	if got := Level(99).String(); got != "" {
		t.Errorf("Level(99).String() = %q, want empty", got)
	}
}
