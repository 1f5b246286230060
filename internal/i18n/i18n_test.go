package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatchLanguage(t *testing.T) {
	tests := []struct {
		accept   string
		expected language.Tag
	}{
		{"en-US,en;q=0.9", language.English},
		{"de-DE,de;q=0.8", language.English}, // unsupported falls back
		{"", language.English},
		{"garbage", language.English},
	}

	for _, tt := range tests {
		got := MatchLanguage(tt.accept)
		base, _ := got.Base()
		wantBase, _ := tt.expected.Base()
		assert.Equal(t, wantBase, base, "accept=%q", tt.accept)
	}
}

func TestNewCLIPrinter(t *testing.T) {
	t.Setenv("LC_ALL", "en_US.UTF-8")
	p := NewCLIPrinter()
	assert.NotNil(t, p)

	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "")
	p = NewCLIPrinter()
	assert.NotNil(t, p)
}
