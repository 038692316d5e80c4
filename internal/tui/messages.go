package tui

import (
	"github.com/MKhiriev/go-time-keeper/models"
)

type statusMsg struct {
	status models.SyncStatus
}

type resultMsg struct {
	result models.SyncResult
}

type streamClosedMsg struct {
	err error
}

type syncDoneMsg struct {
	result models.SyncResult
	err    error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
