package viewstate

import (
	"errors"

	"github.com/rvrdev/portfolio/internal/logging"
)

const (
	// ThemeKey is the storage key holding the theme preference.
	ThemeKey   = "theme"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// SystemScheme reports the platform's color-scheme preference.
type SystemScheme interface {
	PrefersDark() (bool, error)
}

// Document applies the visual mode to the whole page.
type Document interface {
	SetDark(dark bool)
}

// ThemeController owns the dark/light preference. After Initialize or Toggle
// the document mode always matches IsDark.
type ThemeController struct {
	store  Store
	system SystemScheme
	doc    Document

	isDark   bool
	volatile bool
}

// NewThemeController builds a controller. A nil store keeps the preference
// in memory only, a nil system scheme means light by default.
func NewThemeController(store Store, system SystemScheme, doc Document) *ThemeController {
	return &ThemeController{store: store, system: system, doc: doc}
}

// Initialize resolves the preference from storage, then from the system
// scheme, applies it and returns it.
func (c *ThemeController) Initialize() bool {
	log := logging.For("theme")

	saved, err := c.load()
	switch {
	case err == nil && saved != "":
		c.isDark = saved == ThemeDark
	case err != nil && !errors.Is(err, ErrNotFound):
		log.WithError(err).Debug("theme storage unreadable, using system scheme")
		fallthrough
	default:
		c.isDark = c.systemPrefersDark()
	}

	c.apply()
	return c.isDark
}

// Toggle flips the preference, applies it and persists it.
func (c *ThemeController) Toggle() bool {
	c.isDark = !c.isDark
	c.apply()
	c.save()
	return c.isDark
}

// IsDark returns the current preference.
func (c *ThemeController) IsDark() bool {
	return c.isDark
}

func (c *ThemeController) load() (string, error) {
	if c.store == nil {
		return "", ErrNotFound
	}
	return c.store.Get(ThemeKey)
}

func (c *ThemeController) save() {
	if c.store == nil || c.volatile {
		return
	}
	value := ThemeLight
	if c.isDark {
		value = ThemeDark
	}
	if err := c.store.Set(ThemeKey, value); err != nil {
		// keep working for this session without persistence
		c.volatile = true
		logging.For("theme").WithError(err).Debug("theme storage unwritable, preference kept in memory")
	}
}

func (c *ThemeController) systemPrefersDark() bool {
	if c.system == nil {
		return false
	}
	dark, err := c.system.PrefersDark()
	if err != nil {
		logging.For("theme").WithError(err).Debug("system color scheme unavailable, defaulting to light")
		return false
	}
	return dark
}

func (c *ThemeController) apply() {
	if c.doc != nil {
		c.doc.SetDark(c.isDark)
	}
}
