package warp

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Yaw    float64 `json:"yaw,omitempty"`
	Pitch  float64 `json:"pitch,omitempty"`
	Zoom   float64 `json:"zoom,omitempty"`
}

// scriptFile is the top-level JSON structure for a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences portal actions across frames for automated and visual
// testing. Attach it with Portal.SetScript.
//
// Supported actions: "enter", "back", "orbit" (yaw, pitch, zoom),
// "wait" (frames) and "screenshot" (label).
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range file.Steps {
		switch st.Action {
		case "enter", "back", "orbit", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: file.Steps}, nil
}

// Done reports whether all steps have been executed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame. Called from Portal.Update.
func (s *Script) step(p *Portal) {
	if s.done {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "enter":
		p.Enter()
	case "back":
		p.Back()
	case "orbit":
		zoom := st.Zoom
		if zoom == 0 {
			zoom = 1
		}
		p.Orbit(st.Yaw, st.Pitch, zoom)
	case "screenshot":
		if p.onCapture != nil {
			p.onCapture(st.Label)
		}
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
}
