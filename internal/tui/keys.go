package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	lock     key.Binding
	newItem  key.Binding
	rename   key.Binding
	delete   key.Binding
	addCol   key.Binding
	delCol   key.Binding
	edit     key.Binding
	copy     key.Binding
	sync     key.Binding
	settings key.Binding
	passwd   key.Binding
	export   key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left", "h")),
	right:    key.NewBinding(key.WithKeys("right", "l")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	lock:     key.NewBinding(key.WithKeys("L")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	rename:   key.NewBinding(key.WithKeys("r")),
	delete:   key.NewBinding(key.WithKeys("d")),
	addCol:   key.NewBinding(key.WithKeys("a")),
	delCol:   key.NewBinding(key.WithKeys("D")),
	edit:     key.NewBinding(key.WithKeys("e")),
	copy:     key.NewBinding(key.WithKeys("c")),
	sync:     key.NewBinding(key.WithKeys("s")),
	settings: key.NewBinding(key.WithKeys("S")),
	passwd:   key.NewBinding(key.WithKeys("p")),
	export:   key.NewBinding(key.WithKeys("x")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
