package translate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// supported is the set of target languages the translation backend accepts
var supported = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.German,
	language.Italian,
	language.Portuguese,
	language.Russian,
	language.Japanese,
	language.Korean,
	language.Chinese,
	language.Arabic,
	language.Hindi,
	language.Thai,
	language.Vietnamese,
	language.Turkish,
	language.Polish,
	language.Dutch,
	language.Swedish,
	language.Danish,
	language.Norwegian,
	language.Finnish,
	language.Czech,
	language.Romanian,
	language.Hungarian,
	language.Greek,
	language.Hebrew,
	language.Indonesian,
	language.Malay,
	language.Ukrainian,
	language.Bulgarian,
	language.Croatian,
	language.Slovak,
	language.Slovenian,
	language.Estonian,
	language.Latvian,
	language.Lithuanian,
}

var matcher = language.NewMatcher(supported)

// Resolve maps a caller-supplied language code to a supported base code.
// Unknown or unparseable codes fall back to English.
func Resolve(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return "en"
	}

	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "en"
	}

	base, _ := supported[idx].Base()
	return base.String()
}

// Languages returns the supported codes with their English display names
func Languages() map[string]string {
	names := make(map[string]string, len(supported))
	for _, tag := range supported {
		base, _ := tag.Base()
		names[base.String()] = display.English.Languages().Name(tag)
	}
	return names
}
