package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/mhollis/trackledger/internal/reports"
)

var _ list.Item = reportItem{}

// reportItem wraps [reports.Descriptor] to implement [list.Item].
type reportItem struct {
	descriptor reports.Descriptor
}

func (i reportItem) FilterValue() string { return i.descriptor.Name }
func (i reportItem) Title() string       { return i.descriptor.Name }
func (i reportItem) Description() string { return i.descriptor.Usage }
