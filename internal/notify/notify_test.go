package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifierLevels(t *testing.T) {
	tests := []struct {
		name  string
		emit  func(n *Notifier)
		glyph string
		want  string
	}{
		{
			name:  "success",
			emit:  func(n *Notifier) { n.Success("logged out") },
			glyph: "✓",
			want:  "logged out",
		},
		{
			name:  "warning",
			emit:  func(n *Notifier) { n.Warning("logged out locally, server unreachable") },
			glyph: "!",
			want:  "server unreachable",
		},
		{
			name:  "error",
			emit:  func(n *Notifier) { n.Error("login failed") },
			glyph: "✗",
			want:  "login failed",
		},
		{
			name:  "info",
			emit:  func(n *Notifier) { n.Info("checking session") },
			glyph: "•",
			want:  "checking session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n := New(WithWriter(&buf), WithNoColor(true))
			tt.emit(n)
			out := buf.String()
			assert.Contains(t, out, tt.glyph)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestNotifierFormatting(t *testing.T) {
	var buf bytes.Buffer
	n := New(WithWriter(&buf), WithNoColor(true))
	n.Success("deleted company %s", "c1")
	assert.Contains(t, buf.String(), "deleted company c1")
}
