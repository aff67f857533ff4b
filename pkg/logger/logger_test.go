package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogger_MessageFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		message string
		args    []interface{}
		want    []string
	}{
		{name: "printf verb", message: "app - Run - version: %s", args: []interface{}{"100%"}, want: []string{`"message":"app - Run - version: 100%"`}},
		{name: "literal percent", message: "disk 100% full", want: []string{`"message":"disk 100% full"`}},
		{name: "fields", message: "poll", args: []interface{}{"node", "n1"}, want: []string{`"node":"n1"`, `"message":"poll"`}},
		{name: "odd fields", message: "poll", args: []interface{}{"node"}, want: []string{`"extra":"node"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			zl := zerolog.New(&buf)
			l := &Logger{logger: &zl}

			l.Info(tt.message, tt.args...)

			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
