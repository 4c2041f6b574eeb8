package dto

// Typeform webhook payload shapes. Only the fields this service reads are
// modeled; everything else in the payload is ignored.

type TypeformWebhookPayload struct {
	EventId      string       `json:"event_id"`
	EventType    string       `json:"event_type"`
	FormResponse FormResponse `json:"form_response"`
}

type FormResponse struct {
	FormId      string          `json:"form_id"`
	Token       string          `json:"token"`
	SubmittedAt string          `json:"submitted_at"`
	Hidden      Hidden          `json:"hidden"`
	Definition  Definition      `json:"definition"`
	Answers     []WebhookAnswer `json:"answers"`
}

// Hidden carries fields injected into the form URL by the embedding page. The
// user id is generated and retained by the client.
type Hidden struct {
	UserId string `json:"user_id"`
}

type Definition struct {
	Fields []Field `json:"fields"`
}

type Field struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	Ref   string `json:"ref"`
}

type WebhookAnswer struct {
	Field   Field          `json:"field"`
	Type    string         `json:"type"`
	Text    string         `json:"text"`
	Choice  *ChoiceAnswer  `json:"choice"`
	Choices *ChoicesAnswer `json:"choices"`
}

type ChoiceAnswer struct {
	Label string `json:"label"`
}

type ChoicesAnswer struct {
	Labels []string `json:"labels"`
}

// RawResponse is an answer joined with its question title from the form
// definition, the shape the answer extractor works on.
type RawResponse struct {
	QuestionTitle string
	AnswerType    string
	Text          string
	ChoiceLabel   string
	ChoiceLabels  []string
}

// ResponsesWithQuestions resolves each answer's field id against the form
// definition to attach the raw question title.
func (f *FormResponse) ResponsesWithQuestions() []RawResponse {
	titles := make(map[string]string, len(f.Definition.Fields))
	for _, field := range f.Definition.Fields {
		titles[field.Id] = field.Title
	}

	responses := make([]RawResponse, 0, len(f.Answers))
	for _, answer := range f.Answers {
		raw := RawResponse{
			QuestionTitle: titles[answer.Field.Id],
			AnswerType:    answer.Type,
			Text:          answer.Text,
		}
		if answer.Choice != nil {
			raw.ChoiceLabel = answer.Choice.Label
		}
		if answer.Choices != nil {
			raw.ChoiceLabels = answer.Choices.Labels
		}
		responses = append(responses, raw)
	}
	return responses
}
