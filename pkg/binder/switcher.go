package binder

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/rosetta/pkg/i18n"
)

// switcherHTML builds the switcher children: one anchor per registry
// language, the active one marked. Called on every bind so the list always
// replaces whatever the container held, entries never accumulate.
func (b *Binder) switcherHTML(tr Translator) string {
	active := tr.Lang()

	var sb strings.Builder
	for _, lang := range tr.Languages() {
		class := "lang-option"
		if lang.Code == active {
			class += " active"
		}

		fmt.Fprintf(&sb, `<a class="%s" href="%s" data-lang="%s">`,
			class, escape(b.switchURL(lang.Code)), escape(lang.Code))
		if flag := b.flagURL(lang); flag != "" {
			fmt.Fprintf(&sb, `<img class="lang-flag" src="%s" alt="">`, escape(flag))
		}
		fmt.Fprintf(&sb, `<span class="lang-name">%s</span></a>`, escape(lang.Name))
	}
	return sb.String()
}

func (b *Binder) flagURL(lang i18n.Language) string {
	flag := strings.TrimSpace(lang.Flag)
	if flag == "" {
		return ""
	}
	if strings.HasPrefix(flag, "/") || strings.Contains(flag, "://") {
		return flag
	}
	return strings.TrimRight(b.flagBase, "/") + "/" + flag
}
