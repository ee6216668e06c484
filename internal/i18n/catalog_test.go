package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Verify(t *testing.T) {
	require.NoError(t, Default().Verify())
}

func TestDefaultCatalog_BuiltinDictionariesComplete(t *testing.T) {
	for _, cov := range Default().Coverage() {
		switch cov.Language {
		case "en", "es", "fr":
			assert.True(t, cov.Complete(), "language %s missing %v", cov.Language, cov.Missing)
		case "hi", "mr":
			assert.Len(t, cov.Missing, len(AllKeys))
		}
	}
}

func TestLookup_CurrentLanguage(t *testing.T) {
	c := Default()
	assert.Equal(t, "Inquilinos", c.Lookup("es", KeyTenants))
	assert.Equal(t, "Locataires", c.Lookup("fr", KeyTenants))
	assert.Equal(t, "Tenants", c.Lookup("en", KeyTenants))
}

func TestTranslate_UnknownKeyReturnsKey(t *testing.T) {
	c := Default()
	for _, lang := range []string{"en", "es", "fr", "hi", "zz", ""} {
		assert.Equal(t, "nonexistentKey", c.Translate(lang, "nonexistentKey"))
	}
}

func TestTranslate_FallsBackToEnglish(t *testing.T) {
	fr := Dictionary{KeyTenants: "Locataires"}
	c := NewCatalog(map[string]Dictionary{"en": english, "fr": fr})

	assert.Equal(t, "Full Name", c.Translate("fr", "fullName"))
	assert.Equal(t, "Locataires", c.Translate("fr", "tenants"))
}

func TestTranslate_LanguageWithoutDictionary(t *testing.T) {
	assert.Equal(t, "Dashboard", Default().Translate("hi", "dashboard"))
}

func TestTranslate_EmptyValueTreatedAsMissing(t *testing.T) {
	c := NewCatalog(map[string]Dictionary{
		"en": {KeySave: "Save"},
		"es": {KeySave: ""},
	})
	assert.Equal(t, "Save", c.Translate("es", "save"))
}

func TestVerify_ReportsMissingEnglishKeys(t *testing.T) {
	c := NewCatalog(map[string]Dictionary{"en": {KeySave: "Save"}})
	err := c.Verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fullName")
}

func TestNewCatalog_CopiesInput(t *testing.T) {
	en := Dictionary{KeySave: "Save"}
	c := NewCatalog(map[string]Dictionary{"en": en})
	en[KeySave] = "changed"
	assert.Equal(t, "Save", c.Translate("en", "save"))
}
