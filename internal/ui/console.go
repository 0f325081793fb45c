package ui

import (
	"fmt"
	"io"
)

// Console renders styled message blocks to a writer. Multi-line messages are
// styled as one block, mirroring how each diagnostic is written in a single
// call.
type Console struct {
	w      io.Writer
	styles Styles
}

// NewConsole wraps w with the default styles.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w, styles: defaultStyles()}
}

func (c *Console) write(s string) {
	fmt.Fprintln(c.w, s)
}

// Success writes msg in the success style.
func (c *Console) Success(msg string) { c.write(c.styles.Success.Render(msg)) }

// Warning writes msg in the warning style.
func (c *Console) Warning(msg string) { c.write(c.styles.Warning.Render(msg)) }

// Error writes msg in the error style.
func (c *Console) Error(msg string) { c.write(c.styles.Error.Render(msg)) }

// Plain writes msg without emphasis.
func (c *Console) Plain(msg string) { c.write(c.styles.Plain.Render(msg)) }

// Successf, Warningf, Errorf and Plainf are the fmt variants.
func (c *Console) Successf(format string, args ...any) { c.Success(fmt.Sprintf(format, args...)) }
func (c *Console) Warningf(format string, args ...any) { c.Warning(fmt.Sprintf(format, args...)) }
func (c *Console) Errorf(format string, args ...any)   { c.Error(fmt.Sprintf(format, args...)) }
func (c *Console) Plainf(format string, args ...any)   { c.Plain(fmt.Sprintf(format, args...)) }
