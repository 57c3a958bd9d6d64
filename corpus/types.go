package corpus

import "strings"

// System is the sub-corpus (Currier hand) tag partitioning the manuscript
// into disjoint writing-style subsets.
type System string

const (
	// SystemA marks Currier language A pages.
	SystemA System = "A"
	// SystemB marks Currier language B pages.
	SystemB System = "B"
	// SystemUnknown marks pages with no assigned hand.
	SystemUnknown System = "?"
)

// Section is the thematic section a page belongs to.
type Section string

const (
	SectionHerbal         Section = "herbal"
	SectionAstronomical   Section = "astronomical"
	SectionBiological     Section = "biological"
	SectionCosmological   Section = "cosmological"
	SectionPharmaceutical Section = "pharmaceutical"
	SectionRecipes        Section = "recipes"
	SectionUnknown        Section = "?"
)

// UncertainGlyphs are the transliteration markers for glyphs the scribe of
// the source transcription could not read with confidence. Tokens containing
// any of them are rejected at ingestion and never reach the analysis core.
const UncertainGlyphs = "?*"

// Record is one transcribed token with its location and position metadata.
// A Record is immutable after construction; the core only reads it through
// a borrowed pointer during iteration.
type Record struct {
	// Text is the token's transliterated surface form. Non-empty and free
	// of uncertain-glyph markers for every record a default Filter yields.
	Text string

	// Page identifies the folio (e.g. "f1r"). Not required to be numeric.
	Page string

	// Line identifies the line within the page. Not required to be numeric.
	Line string

	// System is the Currier hand of the page.
	System System

	// Section is the thematic section of the page.
	Section Section

	// Placement is the locus placement tag (e.g. "P" for paragraph text,
	// "L" for labels). Empty when the transcription carries none.
	Placement string

	// ParagraphInitial reports whether the token opens a paragraph.
	ParagraphInitial bool

	// LineInitial reports whether the token opens its line.
	LineInitial bool

	// LineFinal reports whether the token closes its line.
	LineFinal bool
}

// Uncertain reports whether the record's text carries an uncertain-glyph
// marker and therefore must not enter any analysis.
func (r *Record) Uncertain() bool {
	return strings.ContainsAny(r.Text, UncertainGlyphs)
}
