package questiongen

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dayne-app/dayne/internal/i18n"
)

func TestBuildUserMessage_Language(t *testing.T) {
	text := strings.Repeat("x", 150)

	en := buildUserMessage(text, i18n.English, 12, 3000)
	if !strings.Contains(en, "EXACTLY 12") || !strings.Contains(en, "exactly 12 questions") {
		t.Errorf("english prompt missing count: %s", en)
	}
	kz := buildUserMessage(text, i18n.Kazakh, 12, 3000)
	if !strings.Contains(kz, "ДӘЛМЕ-ДӘЛ 12") {
		t.Errorf("kazakh prompt missing count: %s", kz)
	}
	for _, p := range []string{en, kz} {
		if !strings.Contains(p, text) {
			t.Error("prompt does not embed the text")
		}
		if !strings.Contains(p, `"questions"`) {
			t.Error("prompt does not describe the JSON shape")
		}
	}
}

func TestBuildUserMessage_Truncates(t *testing.T) {
	text := strings.Repeat("б", 3500)
	msg := buildUserMessage(text, i18n.Kazakh, 5, 3000)

	want := strings.Repeat("б", 3000) + "..."
	if !strings.Contains(msg, want) {
		t.Fatal("expected text cut to 3000 characters followed by ...")
	}
	if strings.Contains(msg, strings.Repeat("б", 3001)) {
		t.Fatal("text not truncated")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncate("exactly", 7); got != "exactly" {
		t.Errorf("got %q", got)
	}
	got := truncate("сәлеметсіз", 4)
	if got != "сәле..." {
		t.Errorf("got %q", got)
	}
	if utf8.RuneCountInString(got) != 7 {
		t.Errorf("rune count = %d", utf8.RuneCountInString(got))
	}
}

func TestSystemPrompt(t *testing.T) {
	if systemPrompt(i18n.English) == systemPrompt(i18n.Kazakh) {
		t.Error("expected distinct system prompts per language")
	}
	if systemPrompt(i18n.Language("fr")) != systemPromptEN {
		t.Error("unknown language should fall back to english")
	}
}
