package tui

type View int

const (
	ViewDashboard View = iota
	ViewChart
	ViewReader
	ViewShare
)
