// Package i18n 界面文案翻译。
//
// 查找顺序：当前语言 -> 英文 -> 键本身，缺失的翻译在界面上可见而不是空白。
package i18n

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultLanguage 默认语言，也是回退语言
const DefaultLanguage = "en"

// Dictionary 单个语言的词典
type Dictionary map[Key]string

// Language 可选语言
type Language struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Languages 语言选择列表。hi、mr 暂无词典，全部回退到英文
var Languages = []Language{
	{Code: "en", Label: "English"},
	{Code: "es", Label: "Español"},
	{Code: "fr", Label: "Français"},
	{Code: "hi", Label: "हिन्दी"},
	{Code: "mr", Label: "मराठी"},
}

// Coverage 某个语言的词典覆盖情况
type Coverage struct {
	Language string `json:"language"`
	Total    int    `json:"total"`
	Missing  []Key  `json:"missing"`
}

// Complete 是否覆盖全部键
func (c Coverage) Complete() bool {
	return len(c.Missing) == 0
}

// Catalog 多语言词典集合，构造后只读
type Catalog struct {
	dicts map[string]Dictionary
}

// NewCatalog 使用给定词典创建目录
func NewCatalog(dicts map[string]Dictionary) *Catalog {
	copied := make(map[string]Dictionary, len(dicts))
	for lang, dict := range dicts {
		d := make(Dictionary, len(dict))
		for k, v := range dict {
			d[k] = v
		}
		copied[lang] = d
	}
	return &Catalog{dicts: copied}
}

var defaultCatalog = NewCatalog(map[string]Dictionary{
	"en": english,
	"es": spanish,
	"fr": french,
})

// Default 内置词典
func Default() *Catalog {
	return defaultCatalog
}

// Translate 按字符串键查找，键不在枚举中时原样返回
func (c *Catalog) Translate(lang, key string) string {
	return c.Lookup(lang, Key(key))
}

// Lookup 查找翻译。空字符串视为缺失
func (c *Catalog) Lookup(lang string, key Key) string {
	if v := c.dicts[lang][key]; v != "" {
		return v
	}
	if v := c.dicts[DefaultLanguage][key]; v != "" {
		return v
	}
	return string(key)
}

// Coverage 各语言（含语言列表中没有词典的语言）缺失的键
func (c *Catalog) Coverage() []Coverage {
	langs := make(map[string]struct{}, len(c.dicts)+len(Languages))
	for lang := range c.dicts {
		langs[lang] = struct{}{}
	}
	for _, l := range Languages {
		langs[l.Code] = struct{}{}
	}

	codes := make([]string, 0, len(langs))
	for lang := range langs {
		codes = append(codes, lang)
	}
	sort.Strings(codes)

	result := make([]Coverage, 0, len(codes))
	for _, lang := range codes {
		cov := Coverage{Language: lang, Total: len(AllKeys)}
		dict := c.dicts[lang]
		for _, key := range AllKeys {
			if dict[key] == "" {
				cov.Missing = append(cov.Missing, key)
			}
		}
		result = append(result, cov)
	}
	return result
}

// Verify 启动时检查：英文词典必须覆盖全部键，其他语言允许缺失（回退英文）
func (c *Catalog) Verify() error {
	var missing []string
	for _, key := range AllKeys {
		if c.dicts[DefaultLanguage][key] == "" {
			missing = append(missing, string(key))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("英文词典缺少翻译键: %s", strings.Join(missing, ", "))
	}
	return nil
}

// HasLanguage 是否存在该语言的词典
func (c *Catalog) HasLanguage(lang string) bool {
	_, ok := c.dicts[lang]
	return ok
}
