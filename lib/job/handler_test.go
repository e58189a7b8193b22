package job

import (
	"testing"

	"github.com/stretchr/testify/require"
	entitystore "talentflow-backend/lib/store"
	"talentflow-backend/models"
	jobapimodels "talentflow-backend/models/api/job"
	entitymodels "talentflow-backend/models/entity"
)

func newHandler() (impl, entitystore.Provider) {
	store := entitystore.NewInstance()
	return impl{store: store}, store
}

func TestJobHandler(t *testing.T) {
	t.Run(`create returns a draft with labels filled`, func(t *testing.T) {
		h, _ := newHandler()
		view, err := h.Create(jobapimodels.JobCreateRequest{Title: "Backend Engineer", Department: "Platform"})
		require.NoError(t, err)
		require.NotEmpty(t, view.ID)
		require.Equal(t, string(models.JobStatusDraft), view.Status)
		require.Equal(t, models.JobStatusDraft.Label(), view.StatusLabel)
		require.Equal(t, 0, view.ApplicantCount)
	})

	t.Run(`list carries per job applicant counts`, func(t *testing.T) {
		h, store := newHandler()
		first, err := h.Create(jobapimodels.JobCreateRequest{Title: "Backend Engineer", Department: "Platform"})
		require.NoError(t, err)
		second, err := h.Create(jobapimodels.JobCreateRequest{Title: "Designer", Department: "Product"})
		require.NoError(t, err)

		for idx := 0; idx < 2; idx++ {
			_, err = store.AddApplicant(entitymodels.Applicant{
				Name: "Alex Doe", JobID: first.ID,
				Stage: models.StageNewApplication, Source: models.SourceWebsite,
			})
			require.NoError(t, err)
		}

		list := h.List()
		require.Len(t, list, 2)
		require.Equal(t, 2, list[0].ApplicantCount)
		require.Equal(t, 0, list[1].ApplicantCount)
		require.Equal(t, second.ID, list[1].ID)
	})

	t.Run(`status change goes through the lifecycle rules`, func(t *testing.T) {
		h, _ := newHandler()
		view, err := h.Create(jobapimodels.JobCreateRequest{Title: "Analyst", Department: "Finance"})
		require.NoError(t, err)

		view, err = h.StatusChange(view.ID, models.JobStatusPublished)
		require.NoError(t, err)
		require.Equal(t, string(models.JobStatusPublished), view.Status)

		_, err = h.StatusChange(view.ID, models.JobStatusDraft)
		require.Error(t, err)
	})

	t.Run(`get by id`, func(t *testing.T) {
		h, _ := newHandler()
		created, err := h.Create(jobapimodels.JobCreateRequest{Title: "QA", Department: "Platform"})
		require.NoError(t, err)

		got, err := h.GetByID(created.ID)
		require.NoError(t, err)
		require.Equal(t, created.ID, got.ID)

		_, err = h.GetByID("missing")
		require.Error(t, err)
	})

	t.Run(`view tracking`, func(t *testing.T) {
		h, _ := newHandler()
		created, err := h.Create(jobapimodels.JobCreateRequest{Title: "QA", Department: "Platform"})
		require.NoError(t, err)

		require.NoError(t, h.TrackView(created.ID))
		got, err := h.GetByID(created.ID)
		require.NoError(t, err)
		require.Equal(t, 1, got.Views)

		require.Error(t, h.TrackView("missing"))
	})
}
