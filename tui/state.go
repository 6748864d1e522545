package tui

type state int

const (
	loadingState state = iota
	errorState
	guessState
	higherLowerState
	browseState
	overState
)
