package game

import "image"

// Built-in 5x7 pixel font. Uppercase letters, digits and the punctuation
// the HUD needs. Each glyph is 7 rows of 5 cells, '#' marks a lit pixel.
const fontCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 .,:!?-+/%[]>*#"

var fontIndex = func() map[rune]int {
	m := make(map[rune]int, len(fontCharset))
	for i, ch := range fontCharset {
		m[ch] = i
	}
	return m
}()

var fontGlyphs = map[rune][FontGlyphH]string{
	'A': {".###.", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	'B': {"####.", "#...#", "#...#", "####.", "#...#", "#...#", "####."},
	'C': {".###.", "#...#", "#....", "#....", "#....", "#...#", ".###."},
	'D': {"####.", "#...#", "#...#", "#...#", "#...#", "#...#", "####."},
	'E': {"#####", "#....", "#....", "####.", "#....", "#....", "#####"},
	'F': {"#####", "#....", "#....", "####.", "#....", "#....", "#...."},
	'G': {".###.", "#...#", "#....", "#.###", "#...#", "#...#", ".###."},
	'H': {"#...#", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	'I': {".###.", "..#..", "..#..", "..#..", "..#..", "..#..", ".###."},
	'J': {"..###", "...#.", "...#.", "...#.", "...#.", "#..#.", ".##.."},
	'K': {"#...#", "#..#.", "#.#..", "##...", "#.#..", "#..#.", "#...#"},
	'L': {"#....", "#....", "#....", "#....", "#....", "#....", "#####"},
	'M': {"#...#", "##.##", "#.#.#", "#.#.#", "#...#", "#...#", "#...#"},
	'N': {"#...#", "##..#", "#.#.#", "#..##", "#...#", "#...#", "#...#"},
	'O': {".###.", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."},
	'P': {"####.", "#...#", "#...#", "####.", "#....", "#....", "#...."},
	'Q': {".###.", "#...#", "#...#", "#...#", "#.#.#", "#..#.", ".##.#"},
	'R': {"####.", "#...#", "#...#", "####.", "#.#..", "#..#.", "#...#"},
	'S': {".####", "#....", "#....", ".###.", "....#", "....#", "####."},
	'T': {"#####", "..#..", "..#..", "..#..", "..#..", "..#..", "..#.."},
	'U': {"#...#", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."},
	'V': {"#...#", "#...#", "#...#", "#...#", "#...#", ".#.#.", "..#.."},
	'W': {"#...#", "#...#", "#...#", "#.#.#", "#.#.#", "##.##", "#...#"},
	'X': {"#...#", "#...#", ".#.#.", "..#..", ".#.#.", "#...#", "#...#"},
	'Y': {"#...#", "#...#", ".#.#.", "..#..", "..#..", "..#..", "..#.."},
	'Z': {"#####", "....#", "...#.", "..#..", ".#...", "#....", "#####"},
	'0': {".###.", "#...#", "#..##", "#.#.#", "##..#", "#...#", ".###."},
	'1': {"..#..", ".##..", "..#..", "..#..", "..#..", "..#..", ".###."},
	'2': {".###.", "#...#", "....#", "...#.", "..#..", ".#...", "#####"},
	'3': {".###.", "#...#", "....#", "..##.", "....#", "#...#", ".###."},
	'4': {"...#.", "..##.", ".#.#.", "#..#.", "#####", "...#.", "...#."},
	'5': {"#####", "#....", "####.", "....#", "....#", "#...#", ".###."},
	'6': {".###.", "#....", "#....", "####.", "#...#", "#...#", ".###."},
	'7': {"#####", "....#", "...#.", "..#..", ".#...", ".#...", ".#..."},
	'8': {".###.", "#...#", "#...#", ".###.", "#...#", "#...#", ".###."},
	'9': {".###.", "#...#", "#...#", ".####", "....#", "....#", ".###."},
	' ': {".....", ".....", ".....", ".....", ".....", ".....", "....."},
	'.': {".....", ".....", ".....", ".....", ".....", ".....", "..#.."},
	',': {".....", ".....", ".....", ".....", ".....", "..#..", ".#..."},
	':': {".....", ".....", "..#..", ".....", ".....", "..#..", "....."},
	'!': {"..#..", "..#..", "..#..", "..#..", "..#..", ".....", "..#.."},
	'?': {".###.", "#...#", "....#", "...#.", "..#..", ".....", "..#.."},
	'-': {".....", ".....", ".....", ".###.", ".....", ".....", "....."},
	'+': {".....", "..#..", "..#..", "#####", "..#..", "..#..", "....."},
	'/': {"....#", "....#", "...#.", "..#..", ".#...", "#....", "#...."},
	'%': {"##..#", "##..#", "...#.", "..#..", ".#...", "#..##", "#..##"},
	'[': {".###.", ".#...", ".#...", ".#...", ".#...", ".#...", ".###."},
	']': {".###.", "...#.", "...#.", "...#.", "...#.", "...#.", ".###."},
	'>': {"#....", ".#...", "..#..", "...#.", "..#..", ".#...", "#...."},
	'*': {".....", "#.#.#", ".###.", "#####", ".###.", "#.#.#", "....."},
	'#': {".#.#.", ".#.#.", "#####", ".#.#.", "#####", ".#.#.", ".#.#."},
}

// buildFontAtlas rasterizes the glyph table into an RGBA atlas with
// FontCols cells per row. Glyphs sit at the top-left of their cell, the
// spare cell pixels stay transparent for letter spacing.
func buildFontAtlas() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	for i, ch := range fontCharset {
		g, ok := fontGlyphs[ch]
		if !ok {
			continue
		}
		cx := (i % FontCols) * FontCellW
		cy := (i / FontCols) * FontCellH
		for row := 0; row < FontGlyphH; row++ {
			for col := 0; col < FontGlyphW; col++ {
				if g[row][col] != '#' {
					continue
				}
				off := img.PixOffset(cx+col, cy+row)
				img.Pix[off+0] = 255
				img.Pix[off+1] = 255
				img.Pix[off+2] = 255
				img.Pix[off+3] = 255
			}
		}
	}
	return img
}
