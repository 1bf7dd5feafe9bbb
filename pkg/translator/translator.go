package translator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

var matcher = language.NewMatcher([]language.Tag{language.English})

// InitTranslator loads every <lang>.toml file of the translation folder.
func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	matcher = newMatcher(cfg.SupportedLanguages)

	files, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	loaded := 0
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".toml" {
			continue
		}

		if _, err := Translator.LoadMessageFile(filepath.Join(cfg.TranslationFolder, f.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
			continue
		}
		loaded++
	}
	zap.L().Debug("translations loaded", zap.Int("files", loaded))
}

// MatchLanguage picks the best supported language for an Accept-Language header.
func MatchLanguage(header string) string {
	if strings.TrimSpace(header) == "" {
		return LanguageEn
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return LanguageEn
	}

	tag, _, _ := matcher.Match(tags...)
	base, _ := tag.Base()
	return base.String()
}

func newMatcher(supported []string) language.Matcher {
	tags := []language.Tag{language.English}
	for _, lang := range supported {
		tag, err := language.Parse(lang)
		if err != nil || tag == language.English {
			continue
		}
		tags = append(tags, tag)
	}
	return language.NewMatcher(tags)
}
