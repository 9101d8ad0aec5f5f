package game

import "fmt"

// RenderHUD draws all in-game UI elements using the font atlas.
func RenderHUD(r *Renderer, session *GameSession, chain *Chain, fbW, fbH int) {
	white := RGB{R: 255, G: 255, B: 255}
	green := RGB{R: 100, G: 255, B: 100}
	red := RGB{R: 255, G: 80, B: 80}
	yellow := RGB{R: 255, G: 255, B: 100}

	switch session.State {
	case StateMenu:
		title := "SPIRAL CHAIN"
		titleScale := float32(3.0)
		r.DrawString(title, fbW/2-TextWidth(title, titleScale)/2, fbH/2-80, titleScale, green)

		msg := "PRESS SPACE TO START"
		msgScale := float32(1.0)
		r.DrawString(msg, fbW/2-TextWidth(msg, msgScale)/2, fbH/2+20, msgScale, white)

		hint := "AIM WITH MOUSE, CLICK TO SHOOT, RIGHT CLICK TO SWAP"
		hintScale := float32(0.65)
		r.DrawString(hint, fbW/2-TextWidth(hint, hintScale)/2, fbH/2+55, hintScale, yellow)

	case StatePlaying:
		s := float32(0.85)

		// Top-left: score.
		scoreStr := fmt.Sprintf("SCORE: %d", session.Score)
		r.DrawString(scoreStr, 8, 8, s, white)

		// Top-center: level.
		lvlStr := fmt.Sprintf("LEVEL %d", session.CurrentLevel)
		r.DrawString(lvlStr, fbW/2-TextWidth(lvlStr, s)/2, 8, s, white)

		// Top-right: tokens left to spawn out of the level cap.
		if chain != nil {
			leftStr := fmt.Sprintf("TOKENS: %d/%d", chain.Spawned(), chain.SpawnCap())
			col := green
			if chain.ReachedEnd() {
				col = red
			}
			r.DrawString(leftStr, fbW-TextWidth(leftStr, s)-8, 8, s, col)
		}

		// Bottom-left: combo meter while the window is open.
		if session.Combo > 1 && session.ComboTimer > 0 {
			comboStr := fmt.Sprintf("COMBO X%d [%s]", session.Combo,
				repeatChar('#', clamp(session.Combo, 0, 10)))
			r.DrawString(comboStr, 10, fbH-30, s, yellow)
		}

		// Combo/announcement label: fades out over its last second.
		if session.MsgTimer > 0 {
			alpha := session.MsgTimer
			if alpha > 1.0 {
				alpha = 1.0
			}
			col := RGB{
				R: uint8(float64(session.MsgCol.R) * alpha),
				G: uint8(float64(session.MsgCol.G) * alpha),
				B: uint8(float64(session.MsgCol.B) * alpha),
			}
			popScale := float32(1.5)
			r.DrawString(session.Msg, fbW/2-TextWidth(session.Msg, popScale)/2, fbH/2-110, popScale, col)
		}

	case StateLevelComplete:
		msg1 := "LEVEL CLEAR!"
		r.DrawString(msg1, fbW/2-TextWidth(msg1, 1.5)/2, fbH/2-80, 1.5, green)

		msg2 := fmt.Sprintf("LEVEL %d   SCORE: %d   TIME: %.1fS", session.CurrentLevel, session.Score, session.LevelTimer)
		r.DrawString(msg2, fbW/2-TextWidth(msg2, 0.75)/2, fbH/2-20, 0.75, white)

		next := "PRESS SPACE FOR NEXT LEVEL"
		r.DrawString(next, fbW/2-TextWidth(next, 0.75)/2, fbH/2+40, 0.75, white)

	case StateLevelFailed:
		msg1 := "GAME OVER"
		r.DrawString(msg1, fbW/2-TextWidth(msg1, 2.0)/2, fbH/2-60, 2.0, red)

		msg2 := fmt.Sprintf("FINAL SCORE: %d", session.Score)
		r.DrawString(msg2, fbW/2-TextWidth(msg2, 0.9)/2, fbH/2, 0.9, yellow)

		msg3 := "PRESS SPACE TO RETRY"
		r.DrawString(msg3, fbW/2-TextWidth(msg3, 0.75)/2, fbH/2+50, 0.75, white)
	}

	r.FlushText(fbW, fbH)
}

// repeatChar returns a string of n copies of ch.
func repeatChar(ch byte, n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ch
	}
	return string(b)
}
