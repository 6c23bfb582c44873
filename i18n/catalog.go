// Package i18n implements favmeta.Localizer with built-in English and Chinese
// message tables. Locale identifiers are matched with golang.org/x/text/language,
// so "zh-CN" or "zh-Hans" resolve to the Chinese table.
package i18n

import (
	"github.com/fwojciec/favmeta"
	"golang.org/x/text/language"
)

// Display labels used by the presentation layer.
const (
	MsgPageTitle   = "pageTitle"
	MsgFavicon     = "favicon"
	MsgKeywords    = "keywords"
	MsgDescription = "description"
	MsgTryExamples = "tryExamples"
	MsgFetching    = "fetching"
)

var messages = map[language.Tag]map[string]string{
	language.English: {
		favmeta.MsgNoTitle:       "No title found",
		favmeta.MsgNoKeywords:    "No keywords found",
		favmeta.MsgNoDescription: "No description found",
		favmeta.MsgInvalidURL:    "Please enter a valid URL",
		favmeta.MsgFetchError:    "Failed to fetch website information, please check the URL",
		favmeta.MsgInputRequired: "Please enter a URL",
		MsgPageTitle:             "Page Title",
		MsgFavicon:               "Icons",
		MsgKeywords:              "Keywords",
		MsgDescription:           "Description",
		MsgTryExamples:           "Try these examples:",
		MsgFetching:              "Fetching...",
	},
	language.Chinese: {
		favmeta.MsgNoTitle:       "未找到标题",
		favmeta.MsgNoKeywords:    "未找到关键词",
		favmeta.MsgNoDescription: "未找到描述",
		favmeta.MsgInvalidURL:    "请输入有效的网址",
		favmeta.MsgFetchError:    "获取网站信息失败，请检查网址",
		favmeta.MsgInputRequired: "请输入网址",
		MsgPageTitle:             "网站标题",
		MsgFavicon:               "网站图标",
		MsgKeywords:              "关键词",
		MsgDescription:           "描述",
		MsgTryExamples:           "试试这些示例：",
		MsgFetching:              "获取中...",
	},
}

// Supported lists the available locales; the first one is the fallback.
var Supported = []language.Tag{language.English, language.Chinese}

var matcher = language.NewMatcher(Supported)

// Ensure Catalog implements favmeta.Localizer at compile time.
var _ favmeta.Localizer = (*Catalog)(nil)

// Catalog serves messages for one locale, falling back to English for keys
// the locale lacks.
type Catalog struct {
	tag language.Tag
}

// New returns the Catalog best matching locale. Unknown or malformed locales
// get English.
func New(locale string) *Catalog {
	_, idx := language.MatchStrings(matcher, locale)
	return &Catalog{tag: Supported[idx]}
}

// Locale returns the resolved locale, e.g. "en" or "zh".
func (c *Catalog) Locale() string {
	return c.tag.String()
}

// Message returns the string for key, or key itself if no table has it.
func (c *Catalog) Message(key string) string {
	if msg, ok := messages[c.tag][key]; ok {
		return msg
	}
	if msg, ok := messages[language.English][key]; ok {
		return msg
	}
	return key
}
