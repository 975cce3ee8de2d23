// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a two-view workflow for browsing the report catalog:
//  1. [ReportListView] : Browse the available reports
//  2. [TableView] : Inspect the computed table for the selected report
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Reports are computed off the update loop via tea commands, so a slow
// computation never blocks keyboard input.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
