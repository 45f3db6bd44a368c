package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxVoidNotesLength          = 500
	MaxCancellationReasonLength = 500
	MaxTurnaroundWorkingDays    = 28
	MaxReportingWindowDays      = 366 // отчет не длиннее года
)
