package localization

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type Locale struct {
	language     string
	translations map[string]string
}

// NewLocale loads the string table for lang from localesDir (e.g. "es" -> es.json).
func NewLocale(localesDir, lang string) (*Locale, error) {
	l := &Locale{}
	if err := l.SetLanguage(lang, localesDir); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Locale) SetLanguage(lang, localesDir string) error {
	file, err := os.Open(filepath.Join(localesDir, lang+".json"))
	if err != nil {
		return err
	}
	defer file.Close()

	var translations map[string]string
	if err := json.NewDecoder(file).Decode(&translations); err != nil {
		return err
	}

	l.language = lang
	l.translations = translations
	return nil
}

func (l *Locale) Language() string {
	return l.language
}

func (l *Locale) Translate(key string) string {
	if translation, ok := l.translations[key]; ok {
		return translation
	}
	return key
}
