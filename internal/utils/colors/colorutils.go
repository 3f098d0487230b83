package colors

import "github.com/fatih/color"

var (
	BranchC    = color.New(color.FgMagenta)
	IndicatorC = color.New(color.FgYellow)
	FailureC   = color.New(color.FgRed)
	FaintC     = color.New(color.Faint)
)

var (
	Branch    = BranchC.Sprint
	Indicator = IndicatorC.Sprint
	Failure   = FailureC.Sprint
	Faint     = FaintC.Sprint
)
