// Package io reads chart requests and reads and writes resolved layouts.
//
// # Request Files
//
// A request names the ascendant, optionally a chart mode, and lists the
// planetary placements:
//
//	# chart.yaml
//	name: example
//	ascendant: Capricorn
//	mode: ascendant
//	placements:
//	  - {name: Sun, sign: Taurus, degree: 3, minute: 12, status: "[C]"}
//	  - {name: Mars, sign: Aries, degree: 22}
//
// The same structure is accepted as JSON (comments and trailing commas are
// tolerated), YAML and TOML (as [[placements]] tables). [ImportRequest] picks
// the decoder from the file extension; [ReadRequest] takes it explicitly.
//
// # Layouts
//
// [WriteLayout] and [ExportLayoutFile] write an assembled [chart.Layout] as
// indented JSON. Output is deterministic, so layouts can be diffed, cached and
// re-rendered later with [ReadLayout] or [ImportLayout].
//
// [chart.Layout]: github.com/matzehuels/kundali/pkg/chart.Layout
package io
