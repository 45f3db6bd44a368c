package build_usage_report

import (
	"time"

	"github.com/avdema/TA-ReportingService/internal/domain"
)

// Request модель запроса на построение отчета об использовании койко-мест
type Request struct {
	Window domain.ReportingWindow
	Region *string // nil = все регионы

	// Bedspaces список койко-мест в порядке, заданном вызывающей стороной.
	// Порядок строк отчета его сохраняет
	Bedspaces []*domain.Bedspace
}

// RowType тип строки отчета
type RowType string

const (
	RowTypeBooking    RowType = "booking"
	RowTypeTurnaround RowType = "turnaround"
	RowTypeVoid       RowType = "void"
)

// Row одна строка отчета об использовании
type Row struct {
	BedspaceRef string
	PropertyRef string
	Type        RowType

	// Даты уже обрезаны по отчетному окну
	StartDate    time.Time
	EndDate      time.Time
	DurationDays int

	// Поля бронирования (пустые для turnaround- и void-строк;
	// turnaround не атрибутируется конкретному кейсу)
	CRN    *string
	Status *domain.BookingStatus

	// Поля void-строк
	VoidCategory *string
	VoidNotes    *string
	CostCentre   *string
}

// Response модель ответа со строками отчета
type Response struct {
	Window domain.ReportingWindow
	Rows   []Row
}
