package gpthandler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	entitystore "talentflow-backend/lib/store"
	gptmodels "talentflow-backend/models/api/gpt"
	"talentflow-backend/models"
	entitymodels "talentflow-backend/models/entity"
)

type fakeClient struct {
	reply    string
	err      error
	lastText string
}

func (f *fakeClient) GenerateByPromtAndText(_ context.Context, _ string, text string) (string, error) {
	f.lastText = text
	return f.reply, f.err
}

func TestGenerateJobDescription(t *testing.T) {
	ctx := context.Background()
	store := entitystore.NewInstance()
	req := gptmodels.GenJobDescRequest{JobTitle: "Backend Engineer", Department: "Platform"}

	t.Run(`without credentials the feature degrades to a notice`, func(t *testing.T) {
		h := impl{store: store}
		resp := h.GenerateJobDescription(ctx, req)
		require.Equal(t, msgNotConfigured, resp.Description)
	})

	t.Run(`model reply wrapped in markdown fences still parses`, func(t *testing.T) {
		client := &fakeClient{reply: "```json\n{\"description\": \"- build services\", \"requirements\": \"- Go\", " +
			"\"benefits\": \"- remote\", \"niceToHave\": \"- k8s\", \"teamIntro\": \"small team\", " +
			"\"techStack\": \"Go, Postgres\", \"growthOpportunities\": \"tech lead track\"}\n```"}
		h := impl{store: store, client: client}
		resp := h.GenerateJobDescription(ctx, req)
		require.Equal(t, "- build services", resp.Description)
		require.Equal(t, "- Go", resp.Requirements)
		require.Equal(t, "small team", resp.TeamIntro)
	})

	t.Run(`transport error degrades to the failure notice`, func(t *testing.T) {
		h := impl{store: store, client: &fakeClient{err: errors.New("upstream down")}}
		resp := h.GenerateJobDescription(ctx, req)
		require.Equal(t, msgGenFailed, resp.Description)
	})

	t.Run(`non JSON reply degrades to the failure notice`, func(t *testing.T) {
		h := impl{store: store, client: &fakeClient{reply: "sorry, I cannot help with that"}}
		resp := h.GenerateJobDescription(ctx, req)
		require.Equal(t, msgGenFailed, resp.Description)
	})
}

func TestChat(t *testing.T) {
	ctx := context.Background()

	t.Run(`without credentials the assistant answers with the notice`, func(t *testing.T) {
		h := impl{store: entitystore.NewInstance()}
		require.Equal(t, msgNotConfigured, h.Chat(ctx, "how is hiring going?"))
	})

	t.Run(`live data and the question reach the model`, func(t *testing.T) {
		store := entitystore.NewInstance()
		job, err := store.AddJob(entitymodels.Job{Title: "Data Engineer", Department: "Analytics"})
		require.NoError(t, err)
		_, err = store.AddApplicant(entitymodels.Applicant{
			Name:   "Alex Doe",
			JobID:  job.ID,
			Stage:  models.StageScreening,
			Source: models.SourceReferral,
		})
		require.NoError(t, err)

		client := &fakeClient{reply: "Hiring looks healthy."}
		h := impl{store: store, client: client}
		require.Equal(t, "Hiring looks healthy.", h.Chat(ctx, "how is hiring going?"))

		require.Contains(t, client.lastText, "---SYSTEM DATA START---")
		require.Contains(t, client.lastText, "Data Engineer")
		require.Contains(t, client.lastText, "Alex Doe")
		require.Contains(t, client.lastText, "Screening")
		require.Contains(t, client.lastText, `User question: "how is hiring going?"`)
	})

	t.Run(`model failure degrades to the chat notice`, func(t *testing.T) {
		h := impl{store: entitystore.NewInstance(), client: &fakeClient{err: errors.New("timeout")}}
		require.Equal(t, msgChatFailed, h.Chat(ctx, "hello"))
	})
}
