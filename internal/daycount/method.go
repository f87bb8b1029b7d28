package daycount

import "fmt"

// Method selects the counting algorithm.
type Method string

const (
	// MethodLegacy walks years and months with DayCount.
	MethodLegacy Method = "legacy"
	// MethodCalendar takes the exact day-number difference with Between.
	MethodCalendar Method = "calendar"
)

func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case MethodLegacy, MethodCalendar:
		return m, nil
	case "":
		return MethodLegacy, nil
	}
	return "", fmt.Errorf("unknown day count method %q", s)
}

// Count applies the method to two parsed dates.
func (m Method) Count(start, end CalendarDate) int {
	if m == MethodCalendar {
		return Between(start, end)
	}
	return DayCount(start, end)
}

func (m Method) String() string {
	return string(m)
}
