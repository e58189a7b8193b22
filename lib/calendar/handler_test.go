package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	entitymodels "talentflow-backend/models/entity"
)

func fixedHandler(now time.Time) impl {
	return impl{now: func() time.Time { return now }}
}

func TestFindAvailableSlots(t *testing.T) {
	// a Monday, so the next three days are all workdays
	monday := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	interviewers := []entitymodels.Interviewer{
		{ID: "user1", Name: "Dana"},
		{ID: "user2", Name: "Lee"},
	}

	t.Run(`no interviewers means no slots`, func(t *testing.T) {
		slots := fixedHandler(monday).FindAvailableSlots(nil)
		require.NotNil(t, slots)
		require.Empty(t, slots)
	})

	t.Run(`never more than ten suggestions`, func(t *testing.T) {
		slots := fixedHandler(monday).FindAvailableSlots(interviewers)
		require.NotEmpty(t, slots)
		require.LessOrEqual(t, len(slots), maxSlots)
	})

	t.Run(`slots land on workdays within office hours`, func(t *testing.T) {
		// Friday: the three following days include the full weekend
		friday := time.Date(2025, 11, 7, 10, 0, 0, 0, time.UTC)
		slots := fixedHandler(friday).FindAvailableSlots(interviewers)
		for _, raw := range slots {
			slot, err := time.Parse(time.RFC3339, raw)
			require.NoError(t, err)
			require.NotEqual(t, time.Saturday, slot.Weekday())
			require.NotEqual(t, time.Sunday, slot.Weekday())
			require.GreaterOrEqual(t, slot.Hour(), 9)
			require.Less(t, slot.Hour(), 17)
			require.Contains(t, []int{0, 30}, slot.Minute())
		}
	})

	t.Run(`deterministic for the same interviewer set`, func(t *testing.T) {
		first := fixedHandler(monday).FindAvailableSlots(interviewers)
		second := fixedHandler(monday).FindAvailableSlots(interviewers)
		require.Equal(t, first, second)
	})

	t.Run(`different sets thin out different hours`, func(t *testing.T) {
		other := fixedHandler(monday).FindAvailableSlots([]entitymodels.Interviewer{
			{ID: "user3", Name: "Max"},
		})
		all := fixedHandler(monday).FindAvailableSlots(interviewers)
		require.NotEqual(t, all, other)
	})
}
