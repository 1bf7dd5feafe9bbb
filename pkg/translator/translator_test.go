package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"taskstats/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTranslator_LoadsMessages(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.toml"), []byte(`failTaskStats = "Stats failed"`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.toml"), []byte(`failTaskStats = "Statistiques en échec"`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o644))

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	en, err := i18n.NewLocalizer(translator.Translator, translator.LanguageEn).Localize(&i18n.LocalizeConfig{MessageID: "failTaskStats"})
	require.NoError(t, err)
	assert.Equal(t, "Stats failed", en)

	fr, err := i18n.NewLocalizer(translator.Translator, translator.LanguageFr).Localize(&i18n.LocalizeConfig{MessageID: "failTaskStats"})
	require.NoError(t, err)
	assert.Equal(t, "Statistiques en échec", fr)
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})
	assert.NotNil(t, translator.Translator)
}

func TestInitTranslator_ShippedTranslations(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	for _, lang := range []string{translator.LanguageEn, translator.LanguageFr} {
		msg, err := i18n.NewLocalizer(translator.Translator, lang).Localize(&i18n.LocalizeConfig{MessageID: "invalidUserID"})
		require.NoError(t, err, lang)
		assert.NotEmpty(t, msg)
	}
}

func TestMatchLanguage(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  t.TempDir(),
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	assert.Equal(t, translator.LanguageFr, translator.MatchLanguage("fr-FR,fr;q=0.9,en;q=0.8"))
	assert.Equal(t, translator.LanguageEn, translator.MatchLanguage("en-US"))
	assert.Equal(t, translator.LanguageEn, translator.MatchLanguage(""))
	assert.Equal(t, translator.LanguageEn, translator.MatchLanguage("de-DE"))
}
