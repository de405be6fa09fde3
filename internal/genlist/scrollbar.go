/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package genlist

// scrollTrack describes the proportional thumb painted between the
// "more above" and "more below" markers when WithScrollTrack is set.
type scrollTrack struct {
	hasTrack bool
	thumbRow int
}

// computeScrollTrack calculates where the one-row thumb sits on a track
// of the given height for a list of total entries whose window starts
// at offset. There is no track when everything fits.
func computeScrollTrack(total, height, offset int) scrollTrack {
	if height <= 0 || total <= height {
		return scrollTrack{hasTrack: false}
	}

	scrollRange := total - height
	if scrollRange < 1 {
		scrollRange = 1
	}
	clamped := offset
	if clamped < 0 {
		clamped = 0
	}
	if clamped > scrollRange {
		clamped = scrollRange
	}

	steps := height - 1
	if steps < 1 {
		steps = 1
	}
	pos := clamped * steps / scrollRange
	if pos > height-1 {
		pos = height - 1
	}

	return scrollTrack{hasTrack: true, thumbRow: pos}
}

// glyphAt returns the track glyph for the zero-based track row.
func (s scrollTrack) glyphAt(row int) rune {
	if !s.hasTrack {
		return ' '
	}
	if row == s.thumbRow {
		return GlyphThumb
	}
	return GlyphTrack
}
