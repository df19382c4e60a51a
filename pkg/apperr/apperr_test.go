package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{NotFound("x"), KindNotFound},
		{BadRequest("x"), KindBadRequest},
		{Upstream("x", errors.New("boom")), KindUpstream},
		{Unconfigured("x"), KindUnconfigured},
		{errors.New("plain"), KindUnknown},
		{nil, KindUnknown},
	}
	for i, c := range cases {
		if got := KindOf(c.err); got != c.want {
			t.Errorf("case %d: kind = %v, want %v", i, got, c.want)
		}
	}
}

func TestKindOf_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("loan not found"))
	if KindOf(err) != KindNotFound {
		t.Fatalf("kind lost through fmt wrapping: %v", err)
	}
}

func TestUpstream_KeepsExistingKind(t *testing.T) {
	err := Upstream("upload image", Unconfigured("object storage is not configured"))
	if KindOf(err) != KindUnconfigured {
		t.Fatalf("kind = %v, want Unconfigured", KindOf(err))
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := Upstream("fetch loans", cause)
	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable via errors.Is")
	}
}
