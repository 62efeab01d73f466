package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// State tracks mouse and keyboard state per frame for the desktop front end
type State struct {
	MouseX, MouseY    int
	LeftPressed       bool
	RightPressed      bool
	LeftJustPressed   bool
	RightJustPressed  bool
	LeftJustReleased  bool
	RightJustReleased bool

	// Drag painting: a press that started on the grid keeps painting while
	// the button stays down
	Painting bool
	Erasing  bool
}

func NewState() *State {
	return &State{}
}

// Update should be called once at the top of every frame
func (s *State) Update() {
	s.MouseX, s.MouseY = ebiten.CursorPosition()

	s.LeftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.RightPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.RightJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	s.LeftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	s.RightJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight)

	if !s.LeftPressed {
		s.Painting = false
	}
	if !s.RightPressed {
		s.Erasing = false
	}
}

// IsKeyJustPressed reports whether key went down this frame
func (s *State) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
