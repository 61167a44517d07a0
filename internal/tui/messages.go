package tui

import "github.com/dkotenko/claviger/models"

type unlockDoneMsg struct {
	firstRun bool
	err      error
}

type tablesLoadedMsg struct {
	names []string
	err   error
}

type tableLoadedMsg struct {
	name  string
	table *models.Table
	err   error
}

type opDoneMsg struct {
	status string
	err    error
}

type syncDoneMsg struct {
	err error
}

type pendingMsg struct {
	pending bool
}

type settingsLoadedMsg struct {
	creds models.SyncCredentials
	err   error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
