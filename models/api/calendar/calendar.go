package calendarapimodels

type SlotsRequest struct {
	InterviewerIDs []string `json:"interviewer_ids"`
}

type SlotsResponse struct {
	Slots []string `json:"slots"` //ISO-8601 timestamps, at most 10
}
