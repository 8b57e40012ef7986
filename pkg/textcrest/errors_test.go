package textcrest

import (
	"strings"
	"testing"
)

func TestNewAPIErrorDecodesEnvelope(t *testing.T) {
	err := newAPIError(429, []byte(`{"code":"RATE_LIMITED","message":"Too many requests"}`))
	if err.Status != 429 || err.Code != CodeRateLimited || err.Message != "Too many requests" {
		t.Fatalf("err = %+v", err)
	}
}

func TestNewAPIErrorToleratesNonJSONBody(t *testing.T) {
	err := newAPIError(502, []byte("Bad Gateway"))
	if err.Status != 502 {
		t.Fatalf("Status = %d", err.Status)
	}
	if err.Code != "" || err.Message != "" {
		t.Fatalf("expected empty code/message, got %+v", err)
	}
	if !strings.Contains(err.Error(), "502") {
		t.Fatalf("Error() = %s", err.Error())
	}
}

func TestAPIErrorMessageFormats(t *testing.T) {
	cases := []struct {
		err  *APIError
		want string
	}{
		{&APIError{Status: 401, Code: "UNAUTHORIZED", Message: "Invalid API key"}, "Invalid API key"},
		{&APIError{Status: 400, Code: "VALIDATION_ERROR"}, "VALIDATION_ERROR"},
		{&APIError{Status: 500}, "500"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); !strings.Contains(got, tc.want) {
			t.Fatalf("Error() = %q, want substring %q", got, tc.want)
		}
	}
}
