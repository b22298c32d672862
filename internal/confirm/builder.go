// Package confirm assembles the text of bulk-action confirmation prompts.
//
// Phrasing comes from go-i18n message bundles so every sentence can be
// translated and pluralized. English and German are embedded; further TOML
// message files can be loaded from a directory and override them.
package confirm

import (
	"embed"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Message IDs used in locale files
const (
	MsgTotalSelections  = "TotalSelections"
	MsgHiddenSelections = "HiddenSelections"
	MsgDeleteSelections = "DeleteSelections"
)

// Fallbacks when a bundle lacks a message entirely
var defaultMessages = map[string]*i18n.Message{
	MsgTotalSelections: {
		ID:    MsgTotalSelections,
		One:   "{{.Count}} row is selected.",
		Other: "{{.Count}} rows are selected.",
	},
	MsgHiddenSelections: {
		ID:    MsgHiddenSelections,
		One:   "{{.Count}} of them is not displayed.",
		Other: "{{.Count}} of them are not displayed.",
	},
	MsgDeleteSelections: {
		ID:    MsgDeleteSelections,
		One:   "Delete the selected row?",
		Other: "Delete all selected rows?",
	},
}

// NewBundle creates a bundle with the embedded locales plus every *.toml
// file in extraDir. An empty extraDir loads only the embedded files.
func NewBundle(extraDir string) (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	embedded, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded locales: %w", err)
	}
	for _, entry := range embedded {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+entry.Name()); err != nil {
			return nil, fmt.Errorf("failed to load embedded locale %s: %w", entry.Name(), err)
		}
	}

	if extraDir == "" {
		return bundle, nil
	}
	if _, err := os.Stat(extraDir); err != nil {
		return nil, fmt.Errorf("messages directory: %w", err)
	}
	files, err := filepath.Glob(filepath.Join(extraDir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list message files: %w", err)
	}
	sort.Strings(files)
	for _, f := range files {
		if _, err := bundle.LoadMessageFile(f); err != nil {
			return nil, fmt.Errorf("failed to load message file %s: %w", f, err)
		}
		log.Printf("Loaded message file %s", f)
	}
	return bundle, nil
}

// Builder produces confirmation strings for one locale preference list
type Builder struct {
	localizer *i18n.Localizer
}

// New creates a builder. Locales are tried in order; English is the
// final fallback.
func New(bundle *i18n.Bundle, locales ...string) *Builder {
	return &Builder{localizer: i18n.NewLocalizer(bundle, locales...)}
}

// NewDefault creates an English builder over the embedded locales
func NewDefault() *Builder {
	bundle, err := NewBundle("")
	if err != nil {
		// embedded files are part of the binary
		panic(err)
	}
	return New(bundle, "en")
}

// BuildDelete states the total number of selections to delete and, when
// some are not displayed, how many of them are hidden.
func (b *Builder) BuildDelete(visible, hidden int) string {
	msg, total := b.counted(visible, hidden)
	return msg + "\n\n" + b.localize(MsgDeleteSelections, total)
}

// BuildGeneric is BuildDelete for any action: the counted message is
// followed by actionLabel verbatim.
func (b *Builder) BuildGeneric(visible, hidden int, actionLabel string) string {
	msg, _ := b.counted(visible, hidden)
	if label := strings.TrimSpace(actionLabel); label != "" {
		msg += "\n\n" + label
	}
	return msg
}

func (b *Builder) counted(visible, hidden int) (string, int) {
	if visible < 0 {
		visible = 0
	}
	if hidden < 0 {
		hidden = 0
	}
	total := visible + hidden
	lines := []string{b.localize(MsgTotalSelections, total)}
	if hidden > 0 {
		lines = append(lines, b.localize(MsgHiddenSelections, hidden))
	}
	return strings.Join(lines, "\n"), total
}

func (b *Builder) localize(id string, count int) string {
	msg, err := b.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: defaultMessages[id],
		TemplateData:   map[string]interface{}{"Count": count},
		PluralCount:    count,
	})
	if err != nil {
		// Localize still returns the default message on a missing translation
		if msg != "" {
			return msg
		}
		log.Printf("confirm: localize %s: %v", id, err)
		return fmt.Sprintf("%s: %d", id, count)
	}
	return msg
}
