package shell

import "github.com/fatih/color"

// Theme holds the console colors used for shell output.
type Theme struct {
	Prompt  *color.Color
	Error   *color.Color
	Warning *color.Color
	Success *color.Color
	Dir     *color.Color
	Help    *color.Color
}

// NewTheme builds the default theme. When enabled is false every color is
// disabled and output is plain text.
func NewTheme(enabled bool) *Theme {
	t := &Theme{
		Prompt:  color.New(color.FgGreen, color.Bold),
		Error:   color.New(color.FgRed, color.Bold),
		Warning: color.New(color.FgYellow),
		Success: color.New(color.FgGreen),
		Dir:     color.New(color.FgBlue, color.Bold),
		Help:    color.New(color.FgCyan),
	}
	if !enabled {
		for _, c := range []*color.Color{t.Prompt, t.Error, t.Warning, t.Success, t.Dir, t.Help} {
			c.DisableColor()
		}
	}
	return t
}
