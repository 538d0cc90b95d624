package bench

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNameGeneratorDefaultFormat(t *testing.T) {
	t.Parallel()

	runID := uuid.MustParse("c0ffee00-0000-4000-8000-000000000000")
	gen, err := NewNameGenerator(runID, "")
	if err != nil {
		t.Fatal("creating generator: err:", err)
	}

	name := gen.Generate()
	if !gen.Matches(name) {
		t.Error("generated name does not match its own format: name:", name)
	}
	if exp := "s_nb_c0ffee00_"; !strings.HasPrefix(name, exp) {
		t.Error("name is missing the run segment: exp prefix:", exp, "got:", name)
	}

	other := gen.Generate()
	if other == name {
		t.Error("expected distinct names from consecutive calls: got:", name)
	}
	if exp, got := name[:len("s_nb_c0ffee00")], other[:len("s_nb_c0ffee00")]; exp != got {
		t.Error("run segments differ between names: exp:", exp, "got:", got)
	}
}

func TestNameGeneratorMatches(t *testing.T) {
	gen, err := NewNameGenerator(uuid.New(), "")
	if err != nil {
		t.Fatal("creating generator: err:", err)
	}

	matchTests := []struct {
		name    string
		subject string
		exp     bool
	}{
		{"generated shape", "s_nb_c0ffee00_Ab12Cd34", true},
		{"wrong prefix", "s_xx_c0ffee00_Ab12Cd34", false},
		{"segment too short", "s_nb_c0ffee_Ab12Cd34", false},
		{"trailing garbage", "s_nb_c0ffee00_Ab12Cd34x", false},
		{"bad characters", "s_nb_c0ffee00_Ab12Cd3_", false},
		{"empty", "", false},
	}

	for _, test := range matchTests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if got := gen.Matches(test.subject); got != test.exp {
				t.Error("unexpected match: subject:", test.subject, "exp:", test.exp, "got:", got)
			}
		})
	}
}

func TestNameGeneratorSinglePlaceholder(t *testing.T) {
	t.Parallel()

	gen, err := NewNameGenerator(uuid.New(), "lb_XXXXXXXX")
	if err != nil {
		t.Fatal("creating generator: err:", err)
	}

	a, b := gen.Generate(), gen.Generate()
	if a == b {
		t.Error("single placeholder names should be random: got twice:", a)
	}
	if !gen.Matches(a) || !gen.Matches(b) {
		t.Error("generated names do not match the format:", a, b)
	}
}

func TestNameGeneratorRejectsStaticFormat(t *testing.T) {
	t.Parallel()

	if _, err := NewNameGenerator(uuid.New(), "static_name"); err == nil {
		t.Error("expected an error for a format without placeholders")
	}
}
