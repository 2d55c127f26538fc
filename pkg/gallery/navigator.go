package gallery

import (
	"github.com/weissgruber/website/pkg/models"
)

type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

// ParseDirection accepts "prev", "previous" and "next".
func ParseDirection(raw string) (Direction, bool) {
	switch raw {
	case "prev", "previous":
		return Previous, true

	case "next":
		return Next, true
	}

	return 0, false
}

func (d Direction) String() string {
	if d == Previous {
		return "prev"
	}

	return "next"
}

/*
CaptionState tracks the "read more" toggles. The main caption and the
gallery alt text expand independently.
*/
type CaptionState struct {
	MainExpanded bool
	AltExpanded  bool
}

func (c CaptionState) ToggleMain() CaptionState {
	c.MainExpanded = !c.MainExpanded
	return c
}

func (c CaptionState) ToggleAlt() CaptionState {
	c.AltExpanded = !c.AltExpanded
	return c
}

/*
State is either gallery-closed (Open false) or gallery-open at Index.
*/
type State struct {
	Open     bool
	Index    int
	Captions CaptionState
}

/*
Outcome is the result of a transition. NavigateTo is set when the
browser must go to another artwork page; the gallery is closed then.
Changed is false for no-ops.
*/
type Outcome struct {
	State      State
	NavigateTo string
	Changed    bool
}

type Navigator struct {
	slideCount int
	neighbors  models.Neighbors
}

func NewNavigator(slideCount int, neighbors models.Neighbors) Navigator {
	if slideCount < 1 {
		slideCount = 1
	}

	return Navigator{
		slideCount: slideCount,
		neighbors:  neighbors,
	}
}

func (n Navigator) SlideCount() int {
	return n.slideCount
}

// OpenAt opens the gallery, clamping index into range.
func (n Navigator) OpenAt(index int) State {
	return State{
		Open:  true,
		Index: n.clamp(index),
	}
}

func (n Navigator) Close() State {
	return State{}
}

/*
Step moves within the open gallery. Stepping past either end navigates
to the neighboring artwork when there is one and does nothing otherwise.
With the gallery closed a step goes straight to the neighbor.
*/
func (n Navigator) Step(state State, direction Direction) Outcome {
	if !state.Open {
		return n.navigate(state, direction)
	}

	target := state.Index + int(direction)

	if target < 0 || target >= n.slideCount {
		return n.navigate(state, direction)
	}

	return Outcome{
		State: State{
			Open:  true,
			Index: target,
		},
		Changed: true,
	}
}

// Key maps ArrowLeft and ArrowRight to Step. Other keys are no-ops.
func (n Navigator) Key(state State, key string) Outcome {
	switch key {
	case "ArrowLeft":
		return n.Step(state, Previous)

	case "ArrowRight":
		return n.Step(state, Next)
	}

	return Outcome{State: state}
}

func (n Navigator) navigate(state State, direction Direction) Outcome {
	target := n.neighbors.NextID

	if direction == Previous {
		target = n.neighbors.PreviousID
	}

	if target == "" {
		return Outcome{State: state}
	}

	return Outcome{
		State:      State{},
		NavigateTo: target,
		Changed:    true,
	}
}

func (n Navigator) clamp(index int) int {
	if index < 0 {
		return 0
	}

	if index >= n.slideCount {
		return n.slideCount - 1
	}

	return index
}
