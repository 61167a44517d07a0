package logger

import (
	"context"
	"testing"
)

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()

	// must not panic and must accept the full zerolog API
	l.Info().Str("key", "value").Msg("discarded")
	l.Err(nil).Msg("discarded too")
}

func TestGetChildLogger_Independent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	if child == nil {
		t.Fatal("expected non-nil child logger")
	}
	if child == parent {
		t.Fatal("expected a distinct child logger instance")
	}
}

func TestFromContext_NeverNil(t *testing.T) {
	l := FromContext(context.Background())
	if l == nil {
		t.Fatal("expected non-nil logger from empty context")
	}
	l.Debug().Msg("ok")
}
