package govcalendar

import (
	"time"

	"github.com/avdema/TA-ReportingService/internal/domain"
)

// holidaySet множество дат банковских праздников (полночь UTC)
type holidaySet map[time.Time]struct{}

func (s holidaySet) contains(date time.Time) bool {
	_, ok := s[domain.DateOf(date)]
	return ok
}

// isWorkingDay рабочий день - не выходной и не банковский праздник
func isWorkingDay(date time.Time, holidays holidaySet) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !holidays.contains(date)
}

// addWorkingDays возвращает дату через count рабочих дней после date.
// При count == 0 возвращает date без изменений.
func addWorkingDays(date time.Time, count int, holidays holidaySet) time.Time {
	result := domain.DateOf(date)
	for added := 0; added < count; {
		result = result.AddDate(0, 0, 1)
		if isWorkingDay(result, holidays) {
			added++
		}
	}
	return result
}

// countWorkingDays считает рабочие дни в [start, end] включительно.
// При start > end возвращает 0.
func countWorkingDays(start, end time.Time, holidays holidaySet) int {
	start = domain.DateOf(start)
	end = domain.DateOf(end)

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if isWorkingDay(d, holidays) {
			count++
		}
	}
	return count
}
