package logger

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLogger_AddsRoleField(t *testing.T) {
	l := NewLogger("test-role")

	buf := new(bytes.Buffer)
	child := Logger{l.Output(buf)}
	child.Info().Msg("hello")

	if !bytes.Contains(buf.Bytes(), []byte(`"role":"test-role"`)) {
		t.Errorf("expected role field in output, got: %s", buf.String())
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	// must not panic and must be usable
	l.Info().Msg("discarded")
	l.Err(nil).Msg("discarded too")
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	base := zerolog.New(buf)

	ctx := base.WithContext(context.Background())
	l := FromContext(ctx)
	l.Info().Msg("from context")

	if !bytes.Contains(buf.Bytes(), []byte("from context")) {
		t.Errorf("expected message written through context logger, got: %s", buf.String())
	}
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	base := zerolog.New(buf)

	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(base.WithContext(req.Context()))

	l := FromRequest(req)
	l.Info().Msg("from request")

	if !bytes.Contains(buf.Bytes(), []byte("from request")) {
		t.Errorf("expected message written through request logger, got: %s", buf.String())
	}
}
