package script

import (
	"fmt"
	"io"
)

// Frame is one render the machine pushed to its view.
type Frame struct {
	Result bool
	Text   string
}

func (f Frame) String() string {
	if f.Result {
		return "result:  " + f.Text
	}
	return "display: " + f.Text
}

// Trace is a calc.Renderer that keeps every frame it was asked to draw.
type Trace struct {
	Frames  []Frame
	display string
	result  string
}

func (t *Trace) RenderDisplay(text string) {
	t.display = text
	t.Frames = append(t.Frames, Frame{Text: text})
}

func (t *Trace) RenderResult(text string) {
	t.result = text
	t.Frames = append(t.Frames, Frame{Result: true, Text: text})
}

// Display is the most recent display text.
func (t *Trace) Display() string { return t.display }

// Result is the most recent result text.
func (t *Trace) Result() string { return t.result }

// WriteTo prints the frames one per line.
func (t *Trace) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, f := range t.Frames {
		n, err := fmt.Fprintln(w, f.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
