package extract

import (
	"errors"
	"strings"
	"testing"
)

func TestInfoboxText_FirstInfoboxOnly(t *testing.T) {
	page := `
	<html><body>
	<table class="infobox vcard">
	<tr><th>Born</th><td>Springfield, Illinois</td></tr>
	</table>
	<table class="infobox">
	<tr><th>Other</th><td>ignored</td></tr>
	</table>
	</body></html>`

	text, err := InfoboxText(page)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(text, "Springfield, Illinois") {
		t.Errorf("Expected first infobox content, got %q", text)
	}
	if strings.Contains(text, "ignored") {
		t.Errorf("Expected only the first infobox, got %q", text)
	}
}

func TestInfoboxText_NoInfobox(t *testing.T) {
	page := `<html><body><p>No summary panel here.</p></body></html>`

	_, err := InfoboxText(page)
	if !errors.Is(err, ErrNoInfobox) {
		t.Errorf("Expected ErrNoInfobox, got %v", err)
	}
}

func TestInfoboxText_RowsSeparateFields(t *testing.T) {
	page := `
	<table class="infobox">
	<tr><th>Polar radius</th><td>3,376.2 km</td></tr>
	<tr><th>Died</th><td>unknown</td></tr>
	</table>`

	text, err := InfoboxText(page)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Label and value stay adjacent; rows break onto separate lines.
	if !strings.Contains(text, "Polar radius 3,376.2 km") {
		t.Errorf("Expected label and value on one line, got %q", text)
	}
	if !strings.Contains(text, "\n") {
		t.Errorf("Expected rows separated by newlines, got %q", text)
	}
}

func TestInfoboxText_BrBecomesNewline(t *testing.T) {
	page := `<div class="infobox">line one<br>line two</div>`

	text, err := InfoboxText(page)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(text, "line one\nline two") {
		t.Errorf("Expected <br> rendered as newline, got %q", text)
	}
}

func TestInfoboxText_SkipsScriptsAndStyles(t *testing.T) {
	page := `
	<table class="infobox">
	<tr><td><script>var x = 1;</script><style>.a{}</style>visible</td></tr>
	</table>`

	text, err := InfoboxText(page)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if strings.Contains(text, "var x") || strings.Contains(text, ".a{}") {
		t.Errorf("Expected script/style content skipped, got %q", text)
	}
	if !strings.Contains(text, "visible") {
		t.Errorf("Expected visible text kept, got %q", text)
	}
}

func TestInfoboxText_ClassMatchingIsExact(t *testing.T) {
	page := `<div class="infobox-caption">nope</div>`

	_, err := InfoboxText(page)
	if !errors.Is(err, ErrNoInfobox) {
		t.Errorf("Expected ErrNoInfobox for a similar class name, got %v", err)
	}
}
