package apperr

import (
  "errors"
  "fmt"
  "strings"
  "testing"
)

func TestStatusOf(t *testing.T) {
  cases := []struct {
    err  error
    want int
  }{
    {Validation("bad input"), 400},
    {NotFound("gone"), 404},
    {Upstream("model down", errors.New("dial tcp")), 502},
    {Parse("bad json", "{", errors.New("unexpected EOF")), 500},
    {Internal("oops", nil), 500},
    {errors.New("plain"), 500},
  }
  for _, tc := range cases {
    if got := StatusOf(tc.err); got != tc.want {
      t.Fatalf("StatusOf(%v) = %d, want %d", tc.err, got, tc.want)
    }
  }
}

func TestStatusOfWrappedError(t *testing.T) {
  wrapped := fmt.Errorf("handler: %w", NotFound("no session"))
  if got := StatusOf(wrapped); got != 404 {
    t.Fatalf("expected 404 through wrapping, got %d", got)
  }
  if got := MessageOf(wrapped); got != "no session" {
    t.Fatalf("expected inner message through wrapping, got %q", got)
  }
}

func TestMessageOfPlainError(t *testing.T) {
  if got := MessageOf(errors.New("db exploded")); got != "Internal Server Error" {
    t.Fatalf("plain errors must not leak their text, got %q", got)
  }
}

func TestCauseOf(t *testing.T) {
  if got := CauseOf(Upstream("model down", errors.New("dial tcp"))); got != "dial tcp" {
    t.Fatalf("expected wrapped cause, got %q", got)
  }
  if got := CauseOf(Validation("bad input")); got != "" {
    t.Fatalf("expected empty cause for bare error, got %q", got)
  }
  raw := `{"truncated`
  if got := CauseOf(Parse("bad reply", raw, errors.New("unexpected EOF"))); !strings.Contains(got, raw) {
    t.Fatalf("expected raw reply in cause, got %q", got)
  }
}

func TestParseCarriesRawReply(t *testing.T) {
  err := Parse("bad reply", `{"truncated`, errors.New("unexpected EOF"))
  if err.Unwrap() == nil {
    t.Fatalf("expected wrapped cause")
  }
  if msg := err.Error(); msg == "bad reply" {
    t.Fatalf("expected cause and raw text in Error(), got %q", msg)
  }
}
