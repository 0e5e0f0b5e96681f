package types

// ConsoleInterface is the console output surface used by the use cases.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle
	ProgressWithTotal(total int) ProgressHandle

	CreateTable() TableInterface
	DisplayCostBars(title string, shares []CostShare)
}

// StatusHandle updates a status spinner.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// ProgressHandle advances a progress bar.
type ProgressHandle interface {
	Increment()
	Stop()
}

// TableInterface builds and renders a table.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// CostShare is one bar of a cost breakdown chart.
type CostShare struct {
	Label string
	Cost  float64
}
