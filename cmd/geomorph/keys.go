package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyCodes translates ebiten keys to the key codes geomorph key maps use.
var keyCodes = map[ebiten.Key]int{
	ebiten.KeyBackspace:  8,
	ebiten.KeyTab:        9,
	ebiten.KeyEnter:      13,
	ebiten.KeyEscape:     27,
	ebiten.KeySpace:      32,
	ebiten.KeyArrowLeft:  37,
	ebiten.KeyArrowUp:    38,
	ebiten.KeyArrowRight: 39,
	ebiten.KeyArrowDown:  40,
	ebiten.KeyDelete:     46,
	ebiten.KeyDigit0:     48,
	ebiten.KeyDigit1:     49,
	ebiten.KeyDigit2:     50,
	ebiten.KeyDigit3:     51,
	ebiten.KeyDigit4:     52,
	ebiten.KeyDigit5:     53,
	ebiten.KeyDigit6:     54,
	ebiten.KeyDigit7:     55,
	ebiten.KeyDigit8:     56,
	ebiten.KeyDigit9:     57,
	ebiten.KeyA:          65,
	ebiten.KeyB:          66,
	ebiten.KeyC:          67,
	ebiten.KeyD:          68,
	ebiten.KeyE:          69,
	ebiten.KeyF:          70,
	ebiten.KeyG:          71,
	ebiten.KeyH:          72,
	ebiten.KeyI:          73,
	ebiten.KeyJ:          74,
	ebiten.KeyK:          75,
	ebiten.KeyL:          76,
	ebiten.KeyM:          77,
	ebiten.KeyN:          78,
	ebiten.KeyO:          79,
	ebiten.KeyP:          80,
	ebiten.KeyQ:          81,
	ebiten.KeyR:          82,
	ebiten.KeyS:          83,
	ebiten.KeyT:          84,
	ebiten.KeyU:          85,
	ebiten.KeyV:          86,
	ebiten.KeyW:          87,
	ebiten.KeyX:          88,
	ebiten.KeyY:          89,
	ebiten.KeyZ:          90,
}

// pressedCodes returns codes for keys pressed this frame. Keys with no code
// are skipped.
func pressedCodes() []int {
	var codes []int
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if c, ok := keyCodes[k]; ok {
			codes = append(codes, c)
		}
	}
	return codes
}
