package initializers

import (
	"time"

	log "github.com/sirupsen/logrus"
	"talentflow-backend/models"
	entitymodels "talentflow-backend/models/entity"

	entitystore "talentflow-backend/lib/store"
)

// SeedDemoData loads a small demo dataset so the dashboard is not empty on
// first start. Shapes mirror the production data: a mix of job statuses,
// every recruitment stage and source, and application dates spread over the
// last weeks.
func SeedDemoData(store entitystore.Provider) {
	store.SetInterviewers([]entitymodels.Interviewer{
		{ID: "user1", Name: "Amy Liu (HR)"},
		{ID: "user2", Name: "Jack Chang (Hiring Manager)"},
		{ID: "user3", Name: "Daniel Niu (Tech Lead)"},
		{ID: "user4", Name: "Wendy Wang (Product Director)"},
	})

	now := time.Now().UTC()
	jobSeeds := []struct {
		job    entitymodels.Job
		status models.JobStatus
	}{
		{entitymodels.Job{Title: "Frontend React Engineer", Department: "Engineering",
			Description:  "- Build and maintain the product UI with React and TypeScript.\n- Work closely with design and backend.",
			Requirements: "- 2+ years of frontend experience.\n- Strong React and TypeScript.",
			Benefits:     "- Flexible hours.\n- Annual health check."}, models.JobStatusPublished},
		{entitymodels.Job{Title: "Product Manager", Department: "Product",
			Description:  "- Own the product roadmap.\n- Write PRDs and user stories.",
			Requirements: "- 3+ years as a PM.\n- Familiar with agile delivery.",
			Benefits:     "- Performance bonus.\n- Stock options."}, models.JobStatusPublished},
		{entitymodels.Job{Title: "Digital Marketing Specialist", Department: "Marketing",
			Description:  "- Plan and run digital campaigns.\n- Manage social channels.",
			Requirements: "- SEO/SEM and analytics experience.",
			Benefits:     "- Marketing bonus.\n- Remote friendly."}, models.JobStatusPublished},
		{entitymodels.Job{Title: "Backend Java Engineer", Department: "Engineering",
			Description:  "- Develop and maintain backend services and APIs.",
			Requirements: "- Java, Spring Boot.\n- SQL/NoSQL databases.",
			Benefits:     "- Conference budget.\n- Remote option."}, models.JobStatusPublished},
		{entitymodels.Job{Title: "Data Scientist", Department: "Data",
			Description:  "- Build and ship machine learning models.",
			Requirements: "- Python/R, TensorFlow or PyTorch.",
			Benefits:     "- GPU compute budget."}, models.JobStatusDraft},
		{entitymodels.Job{Title: "UI/UX Designer", Department: "Design",
			Description:  "- Own the product UI and UX.\n- Maintain the design system.",
			Requirements: "- Figma, user research experience.",
			Benefits:     "- Design conference budget."}, models.JobStatusClosed},
	}

	jobIDs := make([]string, 0, len(jobSeeds))
	for _, seed := range jobSeeds {
		rec, err := store.AddJob(seed.job)
		if err != nil {
			log.WithError(err).Error("failed to seed a demo job")
			continue
		}
		switch seed.status {
		case models.JobStatusPublished:
			_, err = store.SetJobStatus(rec.ID, models.JobStatusPublished)
		case models.JobStatusClosed:
			if _, err = store.SetJobStatus(rec.ID, models.JobStatusPublished); err == nil {
				_, err = store.SetJobStatus(rec.ID, models.JobStatusClosed)
			}
		}
		if err != nil {
			log.WithError(err).Error("failed to seed a demo job status")
		}
		jobIDs = append(jobIDs, rec.ID)
	}

	applicantSeeds := []struct {
		name    string
		email   string
		job     int
		stage   models.RecruitmentStage
		source  models.ApplicantSource
		daysAgo int
	}{
		{"Ming Wang", "ming@example.com", 0, models.StageNewApplication, models.SourceWebsite, 21},
		{"Mei Chen", "mei@example.com", 0, models.StageScreening, models.SourceLinkedIn, 20},
		{"David Lee", "david@example.com", 1, models.StageInterview, models.SourceReferral, 19},
		{"Joy Chang", "joy@example.com", 1, models.StageOffer, models.SourceWebsite, 18},
		{"John Huang", "john@example.com", 5, models.StageHired, models.SourceLinkedIn, 41},
		{"Fen Wu", "fen@example.com", 0, models.StageRejected, models.SourceWebsite, 17},
		{"Hao Lin", "hao@example.com", 2, models.StageNewApplication, models.SourceLinkedIn, 6},
		{"Tina Hsu", "tina@example.com", 3, models.StageScreening, models.SourceReferral, 6},
		{"Hong Tsai", "hong@example.com", 0, models.StageInterview, models.SourceWebsite, 6},
		{"June Cheng", "june@example.com", 1, models.StageNewApplication, models.SourceWebsite, 5},
		{"Wei Kuo", "wei@example.com", 2, models.StageOffer, models.SourceLinkedIn, 9},
		{"Wan Tseng", "wan@example.com", 3, models.StageNewApplication, models.SourceWebsite, 5},
		{"Yu Lai", "yu@example.com", 0, models.StageHired, models.SourceReferral, 11},
		{"Shufen Chou", "shufen@example.com", 1, models.StageScreening, models.SourceLinkedIn, 5},
		{"Xiong Hsu", "xiong@example.com", 2, models.StageInterview, models.SourceWebsite, 7},
		{"Ling Hsiao", "ling@example.com", 3, models.StageRejected, models.SourceWebsite, 8},
		{"Ann Peng", "ann@example.com", 3, models.StageNewApplication, models.SourceLinkedIn, 4},
		{"Lun Cheng", "lun@example.com", 0, models.StageScreening, models.SourceWebsite, 3},
		{"Wen Pan", "wen@example.com", 2, models.StageNewApplication, models.SourceWebsite, 3},
		{"Hui Kao", "hui@example.com", 0, models.StageNewApplication, models.SourceWebsite, 2},
	}

	for _, seed := range applicantSeeds {
		jobID := ""
		if seed.job < len(jobIDs) {
			jobID = jobIDs[seed.job]
		}
		rec, err := store.AddApplicant(entitymodels.Applicant{
			Name:            seed.name,
			Email:           seed.email,
			Phone:           "0912345678",
			ResumeURL:       "#",
			JobID:           jobID,
			Stage:           models.StageNewApplication,
			Source:          seed.source,
			ApplicationDate: now.AddDate(0, 0, -seed.daysAgo),
		})
		if err != nil {
			log.WithError(err).Error("failed to seed a demo applicant")
			continue
		}
		if seed.stage != models.StageNewApplication {
			if _, err = store.UpdateApplicantStage(rec.ID, seed.stage); err != nil {
				log.WithError(err).Error("failed to seed a demo applicant stage")
			}
		}
	}

	log.WithField("jobs", len(jobSeeds)).
		WithField("applicants", len(applicantSeeds)).
		Info("demo dataset loaded")
}
