package executable

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var daysBeforeMonth = [2][12]int64{
	{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334},
	{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335},
}

// Date is a calendar date as PPL scripts see it
type Date struct {
	Month int
	Day   int
	Year  int
}

// DateToJulian converts a calendar date to the day number stored in Date variables.
// Years 1900 to 1978 are read as 2000 to 2078, matching the two digit year window.
func DateToJulian(d Date) int32 {
	year := int64(d.Year)
	if year >= 1900 && year < 1979 {
		year += 100
	}
	month := d.Month
	if month < 1 {
		month = 1
	}
	if month > 12 {
		month = 12
	}
	res := 36525 * year
	if res%100 == 0 && month < 3 {
		res--
	}
	res = (res - 1900*36525) / 100
	res += int64(d.Day) + daysBeforeMonth[0][month-1]
	return int32(res)
}

// JulianToDate is the inverse of DateToJulian. Day number 0 is the empty date.
func JulianToDate(jd int32) Date {
	if jd == 0 {
		return Date{}
	}
	n := int64(jd)
	year := 100 * n / 36525
	n -= year * 36525 / 100

	table := daysBeforeMonth[0]
	if (year*36525)%100 == 0 && year != 0 && year != 1900 {
		n++
		table = daysBeforeMonth[1]
	}
	month := 0
	for m, days := range table {
		if days < n {
			month = m
		} else {
			break
		}
	}
	day := n - table[month]
	if year >= 100 {
		year -= 100
	}
	return Date{Month: month + 1, Day: int(day), Year: int(year)}
}

// String renders MM-DD-YY
func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%02d", d.Month, d.Day, d.Year%100)
}

// ParseDate accepts MMDDYY, MMDDYYYY and separated forms like 12-30-1976 or 12/30/76
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	atoi := func(v string) int {
		n, _ := strconv.Atoi(v)
		return n
	}
	if !strings.ContainsAny(s, "-/. ") {
		switch len(s) {
		case 8:
			return Date{Month: atoi(s[0:2]), Day: atoi(s[2:4]), Year: atoi(s[4:])}
		case 6:
			return Date{Month: atoi(s[0:2]), Day: atoi(s[2:4]), Year: 1900 + atoi(s[4:])}
		}
		return Date{}
	}
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '/' || r == '.' || r == ' '
	})
	if len(parts) != 3 {
		return Date{}
	}
	d := Date{Month: atoi(parts[0]), Day: atoi(parts[1]), Year: atoi(parts[2])}
	if d.Month == 0 || d.Day == 0 {
		return Date{}
	}
	if d.Year < 100 {
		if d.Year < 79 {
			d.Year += 2000
		} else {
			d.Year += 1900
		}
	}
	return d
}

// Today returns the current local date as a day number
func Today() int32 {
	now := time.Now()
	return DateToJulian(Date{Month: int(now.Month()), Day: now.Day(), Year: now.Year()})
}

// SecondsSinceMidnight returns the current local time as stored in Time variables
func SecondsSinceMidnight() int32 {
	now := time.Now()
	return int32(now.Hour()*3600 + now.Minute()*60 + now.Second())
}

// FormatTime renders seconds since midnight as HH:MM:SS
func FormatTime(seconds int32) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

// ParseTime reads HH:MM[:SS]
func ParseTime(s string) int32 {
	parts := strings.Split(strings.TrimSpace(s), ":")
	var fields [3]int
	for i := 0; i < len(parts) && i < 3; i++ {
		fields[i], _ = strconv.Atoi(strings.TrimSpace(parts[i]))
	}
	return int32(fields[0]*3600 + fields[1]*60 + fields[2])
}
