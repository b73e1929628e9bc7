package corpl

import "testing"

func TestEvalOption(t *testing.T) {
	opts := &Options{
		Keep:     true,
		Enabled:  NewSet("a", "b"),
		Disabled: NewSet("c"),
	}
	cases := []struct {
		expr string
		want activation
	}{
		{"a", activationYes},
		{"c", activationNo},
		{"unknown", activationIgnore},
		{"a && b", activationYes},
		{"a && c", activationNo},
		{"a && unknown", activationYes},
		{"unknown && c", activationNo},
		{"unknown && other", activationIgnore},
		{"!c", activationYes},
		{"!a", activationNo},
		{"!unknown", activationIgnore},
		{"a && !c", activationYes},
		{"a && !b", activationNo},
		{"!c && !a", activationNo},
	}
	for _, tc := range cases {
		if got := evalOption([]byte(tc.expr), opts); got != tc.want {
			t.Fatalf("evalOption(%q) = %d, want %d", tc.expr, got, tc.want)
		}
	}
}

func TestEvalOptionWithoutKeepEveryIdentifierIsKnown(t *testing.T) {
	opts := &Options{Enabled: NewSet("a")}
	if got := evalOption([]byte("missing"), opts); got != activationNo {
		t.Fatalf("absent identifier without keep should disable, got %d", got)
	}
	if got := evalOption([]byte("!missing"), opts); got != activationYes {
		t.Fatalf("negated absent identifier without keep should enable, got %d", got)
	}
}

func TestEvalOptionDisabledBeatsEnabled(t *testing.T) {
	opts := &Options{
		Keep:     true,
		Enabled:  NewSet("x"),
		Disabled: NewSet("x"),
	}
	if got := evalOption([]byte("x"), opts); got != activationNo {
		t.Fatalf("explicit disable should win, got %d", got)
	}
}

func TestEvalOptionShortCircuits(t *testing.T) {
	// The second conjunct decides No before the third is reached; a
	// negated enabled identifier there must not flip the verdict back.
	opts := &Options{Enabled: NewSet("a", "z")}
	if got := evalOption([]byte("a && b && !z"), opts); got != activationNo {
		t.Fatalf("expected No from the unsatisfied middle conjunct, got %d", got)
	}
}

func TestStatusTriState(t *testing.T) {
	opts := &Options{Keep: true, Enabled: NewSet("on"), Disabled: NewSet("off")}
	if active, known := opts.status([]byte("on")); !active || !known {
		t.Fatalf("expected enabled/known, got %v/%v", active, known)
	}
	if active, known := opts.status([]byte("off")); active || !known {
		t.Fatalf("expected disabled/known, got %v/%v", active, known)
	}
	if _, known := opts.status([]byte("other")); known {
		t.Fatalf("expected unknown status with keep")
	}

	opts = &Options{Enabled: NewSet("on")}
	if active, known := opts.status([]byte("other")); active || !known {
		t.Fatalf("without keep, absent identifiers collapse to disabled; got %v/%v", active, known)
	}
}
