package bench

import (
	"testing"

	"github.com/pkg/errors"
)

func TestIsNotFound(t *testing.T) {
	notFoundTests := []struct {
		name string
		err  error
		exp  bool
	}{
		{
			"direct",
			&NotFoundError{Resource: "network", ID: "net-1"},
			true,
		},
		{
			"wrapped",
			errors.Wrap(&NotFoundError{Resource: "subnet", ID: "sub-1"}, "creating topology"),
			true,
		},
		{
			"get failure",
			&GetResourceError{Resource: "network", ID: "net-1", Err: errors.New("boom")},
			false,
		},
		{
			"plain",
			errors.New("boom"),
			false,
		},
		{
			"nil",
			nil,
			false,
		},
	}

	for _, test := range notFoundTests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if got := IsNotFound(test.err); got != test.exp {
				t.Error("unexpected IsNotFound: exp:", test.exp, "got:", got)
			}
		})
	}
}

func TestErrorStrings(t *testing.T) {
	t.Parallel()

	nf := &NotFoundError{Resource: "network", ID: "ext-net"}
	if exp := `network "ext-net" not found`; nf.Error() != exp {
		t.Error("unexpected error text: exp:", exp, "got:", nf.Error())
	}

	ge := &GetResourceError{Resource: "port", ID: "port-1", Err: errors.New("boom")}
	if exp := `getting port "port-1": boom`; ge.Error() != exp {
		t.Error("unexpected error text: exp:", exp, "got:", ge.Error())
	}
	if errors.Unwrap(ge) == nil {
		t.Error("expected GetResourceError to unwrap its cause")
	}
}
