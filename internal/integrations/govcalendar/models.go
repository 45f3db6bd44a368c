package govcalendar

// DefaultDivision календарь праздников Англии и Уэльса
const DefaultDivision = "england-and-wales"

// bankHolidayFeed модель ответа GOV.UK /bank-holidays.json
// Ключ верхнего уровня - division ("england-and-wales", "scotland", "northern-ireland")
type bankHolidayFeed map[string]divisionEvents

type divisionEvents struct {
	Division string             `json:"division"`
	Events   []bankHolidayEvent `json:"events"`
}

type bankHolidayEvent struct {
	Title   string `json:"title"`
	Date    string `json:"date"` // "2006-01-02"
	Notes   string `json:"notes"`
	Bunting bool   `json:"bunting"`
}
