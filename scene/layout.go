package scene

import "image"

// Metrics derives every panel size and position from the viewport. It is a
// cheap pure function recomputed on resize and on each transition into a menu
// state, never cached across frames.
type Metrics struct {
	Width, Height int
	Scale         float64

	// Menu chrome.
	Panel     image.Rectangle
	TitleY    int
	ListTop   int
	ListRows  int
	RowHeight int

	// Battle layout.
	EnemyBox  image.Rectangle
	PromptBox image.Rectangle
	ChoiceBox image.Rectangle

	// Touch controls.
	PadCenter image.Point
	PadRadius int
	ActionBtn image.Rectangle
	CancelBtn image.Rectangle
}

// ComputeMetrics lays out the UI for a w x h viewport. The scale factor is
// clamped so tiny phones stay legible and huge monitors do not balloon.
func ComputeMetrics(w, h int) Metrics {
	scale := float64(h) / 480
	if scale < 1 {
		scale = 1
	}
	if scale > 2.5 {
		scale = 2.5
	}

	panelW := int(float64(w) * 0.6)
	if panelW < 300 {
		panelW = w - 20
	}
	panelH := int(float64(h) * 0.7)
	px := (w - panelW) / 2
	py := (h - panelH) / 2

	rowH := int(18 * scale)
	listTop := py + int(60*scale)
	listRows := (py + panelH - listTop - rowH) / rowH
	if listRows < 3 {
		listRows = 3
	}

	padR := int(52 * scale)
	padC := image.Pt(padR+int(16*scale), h-padR-int(16*scale))
	btnSize := int(44 * scale)

	return Metrics{
		Width:     w,
		Height:    h,
		Scale:     scale,
		Panel:     image.Rect(px, py, px+panelW, py+panelH),
		TitleY:    py + int(20*scale),
		ListTop:   listTop,
		ListRows:  listRows,
		RowHeight: rowH,
		EnemyBox:  image.Rect(w/2-int(90*scale), int(30*scale), w/2+int(90*scale), int(120*scale)),
		PromptBox: image.Rect(20, int(140*scale), w-20, int(230*scale)),
		ChoiceBox: image.Rect(20, int(240*scale), w-20, h-int(30*scale)),
		PadCenter: padC,
		PadRadius: padR,
		ActionBtn: image.Rect(w-btnSize*2-24, h-btnSize-16, w-btnSize-24, h-16),
		CancelBtn: image.Rect(w-btnSize-12, h-btnSize*2-28, w-12, h-btnSize-28),
	}
}
