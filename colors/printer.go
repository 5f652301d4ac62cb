package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
)

func (c COLOR) Println(args ...any) {
	c.Fprintln(os.Stdout, args...)
}

func (c COLOR) Fprintf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, string(c)+format+string(RESET), args...)
}

func (c COLOR) Fprintln(w io.Writer, args ...any) {
	fmt.Fprint(w, string(c))
	fmt.Fprintln(w, args...)
	fmt.Fprint(w, string(RESET))
}

func (c COLOR) Fprint(w io.Writer, args ...any) {
	fmt.Fprint(w, string(c))
	fmt.Fprint(w, args...)
	fmt.Fprint(w, string(RESET))
}

// StripANSI drops every "\033[...<letter>" sequence from s
func StripANSI(s string) string {
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && !isFinalByte(s[i]) {
				i++
			}
			continue
		}
		out.WriteByte(s[i])
	}
	return out.String()
}

func isFinalByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// htmlStyles maps each color of this package to an inline style
var htmlStyles = map[COLOR]string{
	BOLD:         "font-weight: bold",
	RED:          "color: #ef4444",
	GREEN:        "color: #10b981",
	YELLOW:       "color: #f59e0b",
	BLUE:         "color: #3b82f6",
	PURPLE:       "color: #c678dd; font-weight: bold",
	CYAN:         "color: #56b6c2",
	WHITE:        "color: #f3f4f6",
	GREY:         "color: #5c6370",
	LIGHT_GREEN:  "color: #34d399",
	LIGHT_YELLOW: "color: #fbbf24",
	LIGHT_BLUE:   "color: #60a5fa",
	BOLD_RED:     "color: #ef4444; font-weight: bold",
	BOLD_GREEN:   "color: #10b981; font-weight: bold",
	BOLD_YELLOW:  "color: #f59e0b; font-weight: bold",
	BOLD_PURPLE:  "color: #a855f7; font-weight: bold",
	BOLD_CYAN:    "color: #56b6c2; font-weight: bold",
	ORANGE:       "color: #ff8700",
	LIGHT_ORANGE: "color: #d19a66",
}

// ConvertANSIToHTML turns colored terminal output into HTML for the browser
// build. Text is escaped first; newlines become <br>.
func ConvertANSIToHTML(text string) string {
	pairs := []string{"&", "&amp;", "<", "&lt;", ">", "&gt;"}
	result := strings.NewReplacer(pairs...).Replace(text)

	pairs = []string{string(RESET), "</span>"}
	for color, style := range htmlStyles {
		pairs = append(pairs, string(color), `<span style="`+style+`">`)
	}
	result = strings.NewReplacer(pairs...).Replace(result)

	result = strings.ReplaceAll(result, "\n", "<br>")
	return strings.ReplaceAll(result, "  ", "&nbsp;&nbsp;")
}
