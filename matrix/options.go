// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for rendering. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic output: stored elements in row-major order, grid rows top-down.
//   - No dead switches: each option changes the rendered text and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "strings"

// Layout selects how Format renders a matrix.
type Layout int

const (
	// LayoutList renders one line per stored element, in row-major order.
	// Default cells are not listed.
	LayoutList Layout = iota

	// LayoutGrid renders every cell, one bracketed line per row.
	LayoutGrid
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLayout is the layout used by String and by Format without options.
	DefaultLayout = LayoutList

	// DefaultValueFormat is the fmt verb applied to cell values.
	DefaultValueFormat = "%v"

	// DefaultCellSeparator separates cells of one grid row.
	DefaultCellSeparator = ", "
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLayoutInvalid      = "matrix: WithLayout: unknown layout"
	panicValueFormatInvalid = "matrix: WithValueFormat: format must contain a % verb"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective rendering configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option.
type Options struct {
	layout      Layout // DefaultLayout
	valueFormat string // DefaultValueFormat
	cellSep     string // DefaultCellSeparator
}

// WithLayout selects the rendering layout.
// Panics with a stable message when l is not a known Layout.
func WithLayout(l Layout) Option {
	if l != LayoutList && l != LayoutGrid {
		panic(panicLayoutInvalid)
	}

	return func(o *Options) { o.layout = l }
}

// WithGrid renders every cell of the logical grid.
func WithGrid() Option { return WithLayout(LayoutGrid) }

// WithList renders stored elements only (default).
func WithList() Option { return WithLayout(LayoutList) }

// WithValueFormat sets the fmt format applied to every value, e.g. "%.2f".
// Panics when format carries no % verb.
func WithValueFormat(format string) Option {
	if !strings.Contains(format, "%") {
		panic(panicValueFormatInvalid)
	}

	return func(o *Options) { o.valueFormat = format }
}

// WithCellSeparator sets the text between cells of a grid row.
// Has no effect on LayoutList.
func WithCellSeparator(sep string) Option {
	return func(o *Options) { o.cellSep = sep }
}

// gatherOptions applies user options over the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		layout:      DefaultLayout,
		valueFormat: DefaultValueFormat,
		cellSep:     DefaultCellSeparator,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
