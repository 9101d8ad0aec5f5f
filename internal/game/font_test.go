package game

import "testing"

func TestFontCharsetComplete(t *testing.T) {
	for _, ch := range fontCharset {
		g, ok := fontGlyphs[ch]
		if !ok {
			t.Fatalf("charset rune %q has no glyph", ch)
		}
		for row, line := range g {
			if len(line) != FontGlyphW {
				t.Fatalf("glyph %q row %d is %d cells, want %d", ch, row, len(line), FontGlyphW)
			}
		}
	}
	if len(fontCharset) > FontCols*FontRows {
		t.Fatalf("charset of %d runes overflows %d atlas cells", len(fontCharset), FontCols*FontRows)
	}
}

func TestFontAtlasPixels(t *testing.T) {
	img := buildFontAtlas()
	b := img.Bounds()
	if b.Dx() != FontAtlasW || b.Dy() != FontAtlasH {
		t.Fatalf("atlas %dx%d, want %dx%d", b.Dx(), b.Dy(), FontAtlasW, FontAtlasH)
	}

	// 'I' occupies cell 8: its top row has lit pixels, its cell edges don't.
	idx := fontIndex['I']
	cx := (idx % FontCols) * FontCellW
	cy := (idx / FontCols) * FontCellH
	lit := false
	for px := 0; px < FontGlyphW; px++ {
		if img.Pix[img.PixOffset(cx+px, cy)+3] == 255 {
			lit = true
		}
	}
	if !lit {
		t.Fatalf("glyph I rendered empty")
	}
	// Spacer column stays transparent.
	if img.Pix[img.PixOffset(cx+FontGlyphW, cy)+3] != 0 {
		t.Fatalf("glyph spacer column not transparent")
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth("ABC", 1); got != 3*FontCellW {
		t.Fatalf("TextWidth(ABC) = %d, want %d", got, 3*FontCellW)
	}
	if got := TextWidth("AB\nABCD", 1); got != 4*FontCellW {
		t.Fatalf("multiline TextWidth = %d, want %d", got, 4*FontCellW)
	}
	if got := TextWidth("AA", 2); got != 4*FontCellW {
		t.Fatalf("scaled TextWidth = %d, want %d", got, 4*FontCellW)
	}
}
