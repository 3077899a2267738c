package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind      *Error
		err       error
		wantMatch bool
	}{
		"instance of the same root error": {
			kind:      ErrDuplicate,
			err:       ErrDuplicate,
			wantMatch: true,
		},
		"wrapped instance of the root error": {
			kind:      ErrDuplicate,
			err:       Wrap(ErrDuplicate, "mine"),
			wantMatch: true,
		},
		"deeply wrapped instance": {
			kind:      ErrDuplicate,
			err:       Wrap(Wrap(ErrDuplicate, "inner"), "outer"),
			wantMatch: true,
		},
		"different root error": {
			kind:      ErrDuplicate,
			err:       ErrNotFound,
			wantMatch: false,
		},
		"stdlib error": {
			kind:      ErrDuplicate,
			err:       stderrors.New("duplicate"),
			wantMatch: false,
		},
		"nil error": {
			kind:      ErrDuplicate,
			err:       nil,
			wantMatch: false,
		},
		"nil kind matches nil error": {
			kind:      nil,
			err:       nil,
			wantMatch: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.wantMatch {
				t.Fatalf("want match=%v, got %v", tc.wantMatch, got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "description"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
}

func TestWrapPreservesMessage(t *testing.T) {
	err := Wrap(ErrState, "owner registry")
	const want = "owner registry: invalid state"
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestWrapAttachesStackTraceOnce(t *testing.T) {
	inner := Wrap(ErrInput, "inner")
	outer := Wrap(inner, "outer")
	if stackTrace(outer) == nil {
		t.Fatal("wrapped error must carry a stack trace")
	}
}

func TestRegisterPanicsOnCodeReuse(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("reusing an error code must panic")
		}
	}()
	Register(2, "also unauthorized")
}

func TestRecover(t *testing.T) {
	fail := func() (err error) {
		defer Recover(&err)
		panic("stop")
	}
	err := fail()
	if !ErrPanic.Is(err) {
		t.Fatalf("want ErrPanic, got %+v", err)
	}
}

func TestErrorCode(t *testing.T) {
	if code := ErrUnauthorized.Code(); code != 2 {
		t.Fatalf("want code 2, got %d", code)
	}
}

func TestNewfFormats(t *testing.T) {
	err := ErrInput.Newf("address: %X", []byte{0xbe, 0xef})
	want := fmt.Sprintf("address: BEEF: %s", ErrInput)
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
