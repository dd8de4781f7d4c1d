package rest

import (
	"errors"
	"fmt"
	"testing"
)

func TestStatusError_Helpers(t *testing.T) {
	tests := []struct {
		code  int
		check func(error) bool
	}{
		{400, IsBadRequest},
		{401, IsUnauthorized},
		{403, IsForbidden},
		{404, IsNotFound},
		{500, IsInternal},
		{418, IsUnknownStatus},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			_, err := Classify(tt.code)
			wrapped := fmt.Errorf("calling api: %w", err)
			if !tt.check(wrapped) {
				t.Errorf("helper should match wrapped %d error", tt.code)
			}
		})
	}
}

func TestStatusError_HelpersAreExclusive(t *testing.T) {
	_, err := Classify(404)
	if IsBadRequest(err) || IsUnauthorized(err) || IsForbidden(err) || IsInternal(err) || IsUnknownStatus(err) {
		t.Error("404 should only match IsNotFound")
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("plain error should not match")
	}
	if _, ok := KindOf(nil); ok {
		t.Error("KindOf(nil) should report false")
	}
}

func TestStatusError_Message(t *testing.T) {
	_, err := Classify(403)
	if got := err.Error(); got != "rest: forbidden (status 403)" {
		t.Errorf("Error() = %q", got)
	}
}

func TestCodecErrors(t *testing.T) {
	cause := errors.New("bad json")
	de := &DecodeError{Err: cause, Body: []byte("{")}
	if !errors.Is(de, cause) || !IsDecode(fmt.Errorf("x: %w", de)) {
		t.Error("DecodeError should unwrap and match IsDecode")
	}
	ee := &EncodeError{Err: cause}
	if !errors.Is(ee, cause) || !IsEncode(ee) {
		t.Error("EncodeError should unwrap and match IsEncode")
	}
	if IsDecode(ee) || IsEncode(de) {
		t.Error("codec error helpers should not cross-match")
	}
}
