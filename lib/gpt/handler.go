package gpthandler

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"talentflow-backend/config"
	gptclient "talentflow-backend/lib/gpt/client"
	entitystore "talentflow-backend/lib/store"
	initchecker "talentflow-backend/lib/utils/init-checker"
	gptmodels "talentflow-backend/models/api/gpt"
	entitymodels "talentflow-backend/models/entity"
)

const (
	// sentinels shown to the user instead of an error, the feature degrades,
	// it never crashes
	msgNotConfigured = "AI features are disabled: no API credentials configured."
	msgGenFailed     = "Failed to generate the job description. Please try again later."
	msgChatFailed    = "Sorry, I cannot reply right now. Please try again later."

	chatSystemPrompt = "You are the AI assistant of the TalentFlow recruitment management system. " +
		"You help HR staff and hiring managers. The user message includes live job and applicant data " +
		"from the system; use it to answer questions about the hiring process, data analysis and " +
		"job description improvements. Answer in a professional, friendly tone."
)

type Provider interface {
	GenerateJobDescription(ctx context.Context, req gptmodels.GenJobDescRequest) gptmodels.GenJobDescResponse
	Chat(ctx context.Context, message string) string
}

var Instance Provider

func NewHandler(store entitystore.Provider) {
	instance := impl{
		store: store,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	if config.Conf.GPT.IAMToken != "" && config.Conf.GPT.CatalogID != "" {
		instance.client = gptclient.NewClient(config.Conf.GPT.IAMToken, config.Conf.GPT.CatalogID)
	} else {
		log.Warn("GPT credentials are not set, AI features are disabled")
	}
	Instance = instance
}

type impl struct {
	store  entitystore.Provider
	client gptclient.Provider
}

func (i impl) GenerateJobDescription(ctx context.Context, req gptmodels.GenJobDescRequest) (resp gptmodels.GenJobDescResponse) {
	if i.client == nil {
		resp.Description = msgNotConfigured
		return resp
	}
	promt := "You are a senior technical recruiter writing attractive, professional job postings."
	text := fmt.Sprintf("Write a job description for the position %q in the %q department. "+
		"Reply with a single JSON object containing exactly these seven string keys:\n"+
		"1. description: main responsibilities, as a bullet list.\n"+
		"2. requirements: required skills, experience and education, as a bullet list.\n"+
		"3. benefits: compensation and perks, as a bullet list.\n"+
		"4. niceToHave: optional but welcome skills, as a bullet list.\n"+
		"5. teamIntro: a short introduction of the team and its culture.\n"+
		"6. techStack: the main tools and technologies the team uses.\n"+
		"7. growthOpportunities: career development prospects of the role.",
		req.JobTitle, req.Department)

	generated, err := i.client.GenerateByPromtAndText(ctx, promt, text)
	if err != nil {
		log.WithError(err).
			WithField("job_title", req.JobTitle).
			Error("job description generation failed")
		resp.Description = msgGenFailed
		return resp
	}
	if err = json.Unmarshal([]byte(extractJSONObject(generated)), &resp); err != nil {
		log.WithError(err).
			WithField("job_title", req.JobTitle).
			Error("job description response is not valid JSON")
		return gptmodels.GenJobDescResponse{Description: msgGenFailed}
	}
	return resp
}

func (i impl) Chat(ctx context.Context, message string) string {
	if i.client == nil {
		return msgNotConfigured
	}
	jobs, applicants := i.store.Snapshot()
	text := fmt.Sprintf("%s\n\nUser question: %q", formatContext(jobs, applicants), message)
	reply, err := i.client.GenerateByPromtAndText(ctx, chatSystemPrompt, text)
	if err != nil {
		log.WithError(err).Error("assistant reply failed")
		return msgChatFailed
	}
	return reply
}

type jobSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	Department string `json:"department"`
}

type applicantSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	JobID  string `json:"jobId"`
	Stage  string `json:"stage"`
	Source string `json:"source"`
}

func formatContext(jobs []entitymodels.Job, applicants []entitymodels.Applicant) string {
	jobList := make([]jobSummary, 0, len(jobs))
	for _, j := range jobs {
		jobList = append(jobList, jobSummary{ID: j.ID, Title: j.Title, Status: j.Status.Label(), Department: j.Department})
	}
	applicantList := make([]applicantSummary, 0, len(applicants))
	for _, a := range applicants {
		applicantList = append(applicantList, applicantSummary{ID: a.ID, Name: a.Name, JobID: a.JobID, Stage: a.Stage.Label(), Source: a.Source.Label()})
	}
	jobsJSON, _ := json.MarshalIndent(jobList, "", "  ")
	applicantsJSON, _ := json.MarshalIndent(applicantList, "", "  ")
	return fmt.Sprintf("---SYSTEM DATA START---\n"+
		"Here is the current data from the recruitment system. Use this to answer the user's question.\n\n"+
		"JOBS:\n%s\n\nAPPLICANTS:\n%s\n"+
		"---SYSTEM DATA END---", jobsJSON, applicantsJSON)
}

// extractJSONObject tolerates markdown fences and prose around the object
func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return text
	}
	return text[start : end+1]
}
