// Package icons resolves Material icon names to Gio icons.
package icons

import (
	"fmt"
	"sort"
	"sync"

	"gioui.org/widget"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// ExpandMore is the name of the chevron shown by expandable list items.
const ExpandMore = "keyboard_arrow_down"

var registry = map[string][]byte{
	ExpandMore:      icons.HardwareKeyboardArrowDown,
	"expand_more":   icons.NavigationExpandMore,
	"chevron_right": icons.NavigationChevronRight,
	"inbox":         icons.ContentInbox,
	"send":          icons.ContentSend,
	"drafts":        icons.ContentDrafts,
	"add":           icons.ContentAdd,
	"archive":       icons.ContentArchive,
	"star":          icons.ToggleStar,
	"folder":        icons.FileFolder,
	"folder_open":   icons.FileFolderOpen,
	"person":        icons.SocialPerson,
	"settings":      icons.ActionSettings,
	"info":          icons.ActionInfo,
	"delete":        icons.ActionDelete,
	"home":          icons.ActionHome,
	"label":         icons.ActionLabel,
	"favorite":      icons.ActionFavorite,
	"search":        icons.ActionSearch,
	"email":         icons.CommunicationEmail,
	"error":         icons.AlertError,
	"warning":       icons.AlertWarning,
	"sync":          icons.NotificationSync,
	"play_arrow":    icons.AVPlayArrow,
	"stop":          icons.AVStop,
}

var (
	mu      sync.Mutex
	decoded = make(map[string]*widget.Icon)
)

// Has reports whether name is a known icon.
func Has(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns the known icon names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the decoded icon for name.
func Lookup(name string) (*widget.Icon, error) {
	mu.Lock()
	defer mu.Unlock()

	if ic, ok := decoded[name]; ok {
		return ic, nil
	}
	data, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown icon %q", name)
	}
	ic, err := widget.NewIcon(data)
	if err != nil {
		return nil, fmt.Errorf("decode icon %q: %w", name, err)
	}
	decoded[name] = ic
	return ic, nil
}
