package calendar

import (
	"time"

	entitymodels "talentflow-backend/models/entity"
)

const maxSlots = 10

// Provider suggests interview slots from the interviewers' calendars.
// The suggestions are purely advisory: nothing verifies that a chosen slot
// is actually free.
type Provider interface {
	FindAvailableSlots(interviewers []entitymodels.Interviewer) []string
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		now: func() time.Time { return time.Now().UTC() },
	}
}

type impl struct {
	now func() time.Time
}

// FindAvailableSlots emulates a calendar lookup over the next three days,
// office hours only, weekends skipped. The thinning below keeps the
// suggestions stable for the same set of interviewers.
func (i impl) FindAvailableSlots(interviewers []entitymodels.Interviewer) []string {
	if len(interviewers) == 0 {
		return []string{}
	}

	factor := 0
	for _, ir := range interviewers {
		factor += len(ir.ID)
	}

	slots := []string{}
	now := i.now()
	for d := 1; d <= 3; d++ {
		day := now.AddDate(0, 0, d)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		for hour := 9; hour < 17; hour++ {
			if (hour+factor)%(len(interviewers)+1) == 0 {
				continue
			}
			slot := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)
			slots = append(slots, slot.Format(time.RFC3339))
			slots = append(slots, slot.Add(30*time.Minute).Format(time.RFC3339))
		}
	}

	if len(slots) > maxSlots {
		slots = slots[:maxSlots]
	}
	return slots
}
