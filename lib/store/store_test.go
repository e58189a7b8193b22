package entitystore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"talentflow-backend/models"
	entitymodels "talentflow-backend/models/entity"
)

func TestJobLifecycle(t *testing.T) {
	store := NewInstance()

	t.Run(`new jobs always start as drafts`, func(t *testing.T) {
		job, err := store.AddJob(entitymodels.Job{
			Title:  "Backend Engineer",
			Status: models.JobStatusPublished, // must be ignored
			Views:  42,                        // must be ignored
		})
		require.NoError(t, err)
		require.NotEmpty(t, job.ID)
		require.Equal(t, models.JobStatusDraft, job.Status)
		require.Equal(t, 0, job.Views)
		require.False(t, job.CreatedAt.IsZero())
	})

	t.Run(`legal status edges`, func(t *testing.T) {
		job, err := store.AddJob(entitymodels.Job{Title: "Designer"})
		require.NoError(t, err)

		job, err = store.SetJobStatus(job.ID, models.JobStatusPublished)
		require.NoError(t, err)
		require.Equal(t, models.JobStatusPublished, job.Status)

		job, err = store.SetJobStatus(job.ID, models.JobStatusClosed)
		require.NoError(t, err)
		require.Equal(t, models.JobStatusClosed, job.Status)

		// a closed job can be reopened
		job, err = store.SetJobStatus(job.ID, models.JobStatusPublished)
		require.NoError(t, err)
		require.Equal(t, models.JobStatusPublished, job.Status)
	})

	t.Run(`illegal status edges are rejected`, func(t *testing.T) {
		job, err := store.AddJob(entitymodels.Job{Title: "Analyst"})
		require.NoError(t, err)

		_, err = store.SetJobStatus(job.ID, models.JobStatusClosed)
		require.Error(t, err)

		_, err = store.SetJobStatus(job.ID, "archived")
		require.Error(t, err)

		got := store.GetJob(job.ID)
		require.NotNil(t, got)
		require.Equal(t, models.JobStatusDraft, got.Status)
	})

	t.Run(`setting the same status is a no-op`, func(t *testing.T) {
		job, err := store.AddJob(entitymodels.Job{Title: "Recruiter"})
		require.NoError(t, err)

		job, err = store.SetJobStatus(job.ID, models.JobStatusDraft)
		require.NoError(t, err)
		require.Equal(t, models.JobStatusDraft, job.Status)
	})

	t.Run(`view counter increments`, func(t *testing.T) {
		job, err := store.AddJob(entitymodels.Job{Title: "QA"})
		require.NoError(t, err)

		require.NoError(t, store.AddJobView(job.ID))
		require.NoError(t, store.AddJobView(job.ID))
		got := store.GetJob(job.ID)
		require.Equal(t, 2, got.Views)

		require.Error(t, store.AddJobView("missing"))
	})

	t.Run(`unknown job`, func(t *testing.T) {
		require.Nil(t, store.GetJob("missing"))
		_, err := store.SetJobStatus("missing", models.JobStatusPublished)
		require.Error(t, err)
	})
}

func TestApplicantPipeline(t *testing.T) {
	store := NewInstance()

	newApplicant := func(t *testing.T) entitymodels.Applicant {
		rec, err := store.AddApplicant(entitymodels.Applicant{
			Name:   "Alex Doe",
			Stage:  models.StageNewApplication,
			Source: models.SourceWebsite,
		})
		require.NoError(t, err)
		return rec
	}

	t.Run(`invalid stage or source is rejected on create`, func(t *testing.T) {
		_, err := store.AddApplicant(entitymodels.Applicant{Stage: "unknown", Source: models.SourceWebsite})
		require.Error(t, err)
		_, err = store.AddApplicant(entitymodels.Applicant{Stage: models.StageNewApplication, Source: "carrier_pigeon"})
		require.Error(t, err)
	})

	t.Run(`application date defaults to now when omitted`, func(t *testing.T) {
		rec := newApplicant(t)
		require.False(t, rec.ApplicationDate.IsZero())
	})

	t.Run(`hire timestamp follows the stage`, func(t *testing.T) {
		rec := newApplicant(t)
		require.Nil(t, rec.HiredAt)

		rec, err := store.UpdateApplicantStage(rec.ID, models.StageHired)
		require.NoError(t, err)
		require.NotNil(t, rec.HiredAt)
		hiredAt := *rec.HiredAt

		// staying hired keeps the original timestamp
		rec, err = store.UpdateApplicantStage(rec.ID, models.StageHired)
		require.NoError(t, err)
		require.Equal(t, hiredAt, *rec.HiredAt)

		// moving back out of hired clears it
		rec, err = store.UpdateApplicantStage(rec.ID, models.StageOffer)
		require.NoError(t, err)
		require.Nil(t, rec.HiredAt)
	})

	t.Run(`unknown stage on update is rejected`, func(t *testing.T) {
		rec := newApplicant(t)
		_, err := store.UpdateApplicantStage(rec.ID, "limbo")
		require.Error(t, err)
	})

	t.Run(`feedback is append only with a bounded rating`, func(t *testing.T) {
		rec := newApplicant(t)

		_, err := store.AddFeedback(rec.ID, entitymodels.Feedback{Author: "hm", Rating: 0})
		require.Error(t, err)
		_, err = store.AddFeedback(rec.ID, entitymodels.Feedback{Author: "hm", Rating: 6})
		require.Error(t, err)

		rec, err = store.AddFeedback(rec.ID, entitymodels.Feedback{Author: "hm", Comment: "solid", Rating: 4})
		require.NoError(t, err)
		rec, err = store.AddFeedback(rec.ID, entitymodels.Feedback{Author: "lead", Comment: "strong", Rating: 5})
		require.NoError(t, err)
		require.Len(t, rec.Feedback, 2)
		require.Equal(t, "hm", rec.Feedback[0].Author)
		require.NotEmpty(t, rec.Feedback[0].ID)
	})

	t.Run(`interview assignment`, func(t *testing.T) {
		rec := newApplicant(t)
		at := time.Date(2025, 11, 10, 14, 0, 0, 0, time.UTC)
		rec, err := store.SetInterview(rec.ID, at, []entitymodels.Interviewer{{ID: "user1", Name: "Dana"}})
		require.NoError(t, err)
		require.NotNil(t, rec.InterviewTime)
		require.Equal(t, at, *rec.InterviewTime)
		require.Len(t, rec.Interviewers, 1)
	})

	t.Run(`reads are isolated from later writes`, func(t *testing.T) {
		rec := newApplicant(t)
		before := store.GetApplicant(rec.ID)
		require.NotNil(t, before)

		_, err := store.AddFeedback(rec.ID, entitymodels.Feedback{Author: "hm", Rating: 3})
		require.NoError(t, err)
		_, err = store.UpdateApplicantStage(rec.ID, models.StageHired)
		require.NoError(t, err)

		require.Empty(t, before.Feedback)
		require.Equal(t, models.StageNewApplication, before.Stage)
		require.Nil(t, before.HiredAt)
	})

	t.Run(`mutating a snapshot does not leak back`, func(t *testing.T) {
		rec := newApplicant(t)
		_, err := store.AddFeedback(rec.ID, entitymodels.Feedback{Author: "hm", Rating: 3})
		require.NoError(t, err)

		_, applicants := store.Snapshot()
		for idx := range applicants {
			if applicants[idx].ID == rec.ID {
				applicants[idx].Feedback[0].Comment = "tampered"
			}
		}
		got := store.GetApplicant(rec.ID)
		require.NotEqual(t, "tampered", got.Feedback[0].Comment)
	})
}

func TestInterviewers(t *testing.T) {
	store := NewInstance()
	store.SetInterviewers([]entitymodels.Interviewer{
		{ID: "user1", Name: "Dana"},
		{ID: "user2", Name: "Lee"},
		{ID: "user3", Name: "Max"},
	})

	t.Run(`lookup by ids keeps request order and skips unknowns`, func(t *testing.T) {
		got := store.GetInterviewers([]string{"user3", "ghost", "user1"})
		require.Len(t, got, 2)
		require.Equal(t, "user3", got[0].ID)
		require.Equal(t, "user1", got[1].ID)
	})

	t.Run(`list returns everyone`, func(t *testing.T) {
		require.Len(t, store.ListInterviewers(), 3)
	})
}
