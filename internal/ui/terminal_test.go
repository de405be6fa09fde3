/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"testing"

	"github.com/mikeb26/genlist/internal/genlist"
	"github.com/stretchr/testify/assert"
)

func TestClipRun(t *testing.T) {
	cases := []struct {
		x, count, width int
		start, n        int
	}{
		{0, 5, 10, 0, 5},
		{8, 5, 10, 8, 2},
		{-2, 5, 10, 0, 3},
		{-6, 5, 10, 0, -1},
		{12, 1, 10, 12, -2},
	}
	for _, tc := range cases {
		start, n := clipRun(tc.x, tc.count, tc.width)
		assert.Equal(t, tc.start, start, "start for %+v", tc)
		assert.Equal(t, tc.n, n, "n for %+v", tc)
	}
}

func TestConsoleToANSI(t *testing.T) {
	assert.Equal(t, 4, consoleToANSI(1)) // blue
	assert.Equal(t, 2, consoleToANSI(2)) // green
	assert.Equal(t, 1, consoleToANSI(4)) // red
	assert.Equal(t, 7, consoleToANSI(7))
	assert.Equal(t, 7, consoleToANSI(15))
	assert.Equal(t, 0, consoleToANSI(8))
}

func TestThemeReverse(t *testing.T) {
	var theme Theme

	assert.True(t, theme.Reverse(genlist.StyleSelected))
	assert.False(t, theme.Reverse(genlist.StyleNormal))
	assert.False(t, theme.Bold(genlist.StyleNormal))
	assert.True(t, theme.Bold(genlist.StyleNormal|genlist.FgIntensity))
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "pgdn", KeyPageDown.String())
	assert.Equal(t, "esc", KeyEscape.String())
	assert.Equal(t, "unknown", Key(99).String())
}
