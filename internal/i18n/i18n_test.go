package i18n

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := map[string]Language{
		"kz":      Kazakh,
		" KZ ":    Kazakh,
		"kk":      Kazakh,
		"en":      English,
		"":        English,
		"fr":      English,
		"English": English,
	}
	for in, want := range cases {
		assert.Equal(t, want, Parse(in), "Parse(%q)", in)
	}
}

func TestToggle(t *testing.T) {
	assert.Equal(t, English, Kazakh.Toggle())
	assert.Equal(t, Kazakh, English.Toggle())
}

func TestTablesComplete(t *testing.T) {
	for _, lang := range []Language{Kazakh, English} {
		v := reflect.ValueOf(For(lang))
		for i := 0; i < v.NumField(); i++ {
			assert.NotEmpty(t, v.Field(i).String(), "%s: %s is empty", lang, v.Type().Field(i).Name)
		}
	}
}

func TestForUnknownFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, For(English), For(Language("de")))
}
