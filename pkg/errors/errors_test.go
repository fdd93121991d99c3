package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

// capturingHandler records reported errors for assertions.
type capturingHandler struct {
	reported []*GridError
}

func (h *capturingHandler) HandleError(err *GridError) {
	h.reported = append(h.reported, err)
}

func TestGridError_ErrorIncludesOpAndKind(t *testing.T) {
	err := &GridError{
		Op:   "masonry.AddItems",
		Kind: KindGeometry,
		Err:  stderrors.New("column width is zero"),
	}

	msg := err.Error()
	if !strings.Contains(msg, "masonry.AddItems") {
		t.Errorf("message should contain op, got: %s", msg)
	}
	if !strings.Contains(msg, "geometry") {
		t.Errorf("message should contain kind, got: %s", msg)
	}
}

func TestGridError_Unwrap(t *testing.T) {
	cause := stderrors.New("bad width")
	err := &GridError{Op: "packer.Place", Kind: KindItem, Err: cause}

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestReport_SetsTimestampAndDispatches(t *testing.T) {
	h := &capturingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Reportf("masonry.AddItems", KindGeometry, "effective width %v", -3.0)

	if len(h.reported) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(h.reported))
	}
	got := h.reported[0]
	if got.Timestamp.IsZero() {
		t.Error("Report should set a timestamp")
	}
	if got.Kind != KindGeometry {
		t.Errorf("kind = %v, want KindGeometry", got.Kind)
	}
}

func TestReport_NilIsNoOp(t *testing.T) {
	h := &capturingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(nil)

	if len(h.reported) != 0 {
		t.Errorf("nil report should not dispatch, got %d", len(h.reported))
	}
}

func TestKind_String(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindGeometry, "geometry"},
		{KindItem, "item"},
		{KindRender, "render"},
		{KindSession, "session"},
		{KindManifest, "manifest"},
		{KindProbe, "probe"},
		{KindUnknown, "unknown"},
		{Kind(99), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}
