package daycount

import "time"

const secondsPerDay = 24 * 60 * 60

// Between returns the signed number of days from start to end on the
// proleptic Gregorian calendar, counting end but not start. Out of range
// months and days are normalized the way time.Date does.
func Between(start, end CalendarDate) int {
	return int((end.unix() - start.unix()) / secondsPerDay)
}

func (d CalendarDate) unix() int64 {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).Unix()
}
