package colors

import (
	"bytes"
	"strings"
	"testing"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{string(RED) + "error" + string(RESET) + ": " + string(BOLD_CYAN) + "42" + string(RESET), "error: 42"},
		{string(ORANGE) + "warn" + string(RESET), "warn"},
		{"plain", "plain"},
		{"cut \033[3", "cut "},
	}
	for _, tt := range tests {
		if got := StripANSI(tt.in); got != tt.want {
			t.Errorf("StripANSI(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	GREEN.Fprint(&buf, "ok")
	if buf.String() != string(GREEN)+"ok"+string(RESET) {
		t.Errorf("unexpected output %q", buf.String())
	}

	buf.Reset()
	GREY.Fprintf(&buf, "%d:%d", 3, 4)
	if StripANSI(buf.String()) != "3:4" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestConvertANSIToHTML(t *testing.T) {
	var buf bytes.Buffer
	RED.Fprintln(&buf, "a < b")
	BOLD_RED.Fprint(&buf, "x")

	html := ConvertANSIToHTML(buf.String())
	if strings.Contains(html, "\033[") {
		t.Errorf("raw escape left in %q", html)
	}
	for _, want := range []string{
		"&lt;",
		`<span style="color: #ef4444">a &lt; b<br></span>`,
		`<span style="color: #ef4444; font-weight: bold">x</span>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in %q", want, html)
		}
	}
}
