package core

// Status is the lifecycle state shared by students and classes.
type Status string

const (
	StatusActive   Status = "Ativo"
	StatusInactive Status = "Inativo"
)

func (s Status) IsActive() bool { return s == StatusActive }

// Shift is the time-of-day label attached to students and classes.
type Shift string

const (
	ShiftMorning   Shift = "Manhã"
	ShiftAfternoon Shift = "Tarde"
)

var (
	weekdays = []string{"Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado", "Domingo"}
	statuses = []Status{StatusActive, StatusInactive}
	shifts   = []Shift{ShiftMorning, ShiftAfternoon}
)

func IsKnownStatus(s Status) bool {
	for _, st := range statuses {
		if s == st {
			return true
		}
	}
	return false
}

func IsKnownShift(s Shift) bool {
	for _, sh := range shifts {
		if s == sh {
			return true
		}
	}
	return false
}

// Weekdays returns the day names accepted on a class schedule, Monday first.
func Weekdays() []string {
	days := make([]string, len(weekdays))
	copy(days, weekdays)
	return days
}

func IsWeekday(day string) bool {
	for _, wd := range weekdays {
		if day == wd {
			return true
		}
	}
	return false
}
