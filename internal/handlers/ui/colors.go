package ui

import "github.com/fatih/color"

// Diagnostic colors, used on stderr only. The count on stdout stays plain.
var (
	ErrorColor  = color.New(color.FgRed).SprintFunc()
	DetailColor = color.New(color.FgHiBlack).SprintFunc() // For hints under an error
)
