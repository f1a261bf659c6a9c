package chat

import (
	"strings"

	"github.com/samber/lo"
)

// Language is a language the bot can converse in.
type Language struct {
	Code       string
	Name       string
	NativeName string
}

// Languages is the set of supported languages in picker order.
var Languages = []Language{
	{Code: "en", Name: "English", NativeName: "English"},
	{Code: "hi", Name: "Hindi", NativeName: "हिंदी"},
	{Code: "mr", Name: "Marathi", NativeName: "मराठी"},
	{Code: "gu", Name: "Gujarati", NativeName: "ગુજરાતી"},
	{Code: "ta", Name: "Tamil", NativeName: "தமிழ்"},
	{Code: "te", Name: "Telugu", NativeName: "తెలుగు"},
	{Code: "kn", Name: "Kannada", NativeName: "ಕನ್ನಡ"},
	{Code: "ml", Name: "Malayalam", NativeName: "മലയാളം"},
	{Code: "pa", Name: "Punjabi", NativeName: "ਪੰਜਾਬੀ"},
	{Code: "bn", Name: "Bengali", NativeName: "বাংলা"},
}

// LookupLanguage finds a supported language by code or English name,
// case-insensitively.
func LookupLanguage(key string) (Language, bool) {
	key = strings.TrimSpace(key)
	return lo.Find(Languages, func(l Language) bool {
		return strings.EqualFold(l.Code, key) || strings.EqualFold(l.Name, key)
	})
}

// Label renders a language for menus, e.g. "Hindi (हिंदी)".
func (l Language) Label() string {
	if l.NativeName == "" || l.NativeName == l.Name {
		return l.Name
	}
	return l.Name + " (" + l.NativeName + ")"
}
