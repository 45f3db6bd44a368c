package build_occupancy_report

import (
	"time"

	"github.com/avdema/TA-ReportingService/internal/domain"
)

// Request модель запроса на построение отчета о занятости койко-мест
type Request struct {
	Window domain.ReportingWindow
	Region *string // nil = все регионы

	// Bedspaces список койко-мест в порядке, заданном вызывающей стороной.
	// Порядок строк отчета его сохраняет
	Bedspaces []*domain.Bedspace
}

// Row агрегированная строка занятости: одно койко-место за одно окно.
// Все суммы считаются по интервалам, обрезанным по окну
type Row struct {
	BedspaceRef string
	PropertyRef string

	// Даты жизненного цикла койко-места, как записаны (без обрезки)
	BedspaceStartDate time.Time
	BedspaceEndDate   *time.Time

	OnlineDays int

	// Дни бронирований с заездом (статус arrived или departed)
	BookedDaysActiveAndClosed int

	// Дни подтвержденных бронирований без заезда
	ConfirmedDays int

	// Рабочие дни turnaround'ов внутри окна
	ScheduledTurnaroundDays int

	// Календарные дни тех же обрезанных turnaround'ов
	EffectiveTurnaroundDays int

	VoidDays int

	// Дни всех неотмененных бронирований независимо от статуса -
	// числитель occupancy rate
	TotalBookedDays int

	// TotalBookedDays / OnlineDays; 0 при OnlineDays == 0
	OccupancyRate float64
}

// Response модель ответа: одна строка на койко-место, в порядке входного
// списка. Койко-место без активности дает строку с нулями
type Response struct {
	Window domain.ReportingWindow
	Rows   []Row
}
