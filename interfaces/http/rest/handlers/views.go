package handlers

import (
	"time"

	"github.com/Adams-404/Between/domain/core/entities"
	"github.com/Adams-404/Between/domain/core/valueobjects"
	"github.com/Adams-404/Between/domain/questions"
)

// QuestionResponse is a question with the date it was asked for.
type QuestionResponse struct {
	Date     valueobjects.DateKey `json:"date"`
	Label    string               `json:"label"`
	Relative string               `json:"relative"`
	Question entities.Question    `json:"question"`
}

// AnswerView is an answer with its question and display labels.
type AnswerView struct {
	entities.Answer
	Question  *entities.Question `json:"question,omitempty"`
	Label     string             `json:"label"`
	Relative  string             `json:"relative"`
	WordCount int                `json:"wordCount"`
}

// AnswerListResponse wraps a list of answers.
type AnswerListResponse struct {
	Answers []AnswerView `json:"answers"`
	Count   int          `json:"count"`
}

// SubmitAnswerRequest answers today's question.
type SubmitAnswerRequest struct {
	AnswerText string `json:"answerText" validate:"required"`
}

// UpdateSettingsRequest carries only the fields to change.
type UpdateSettingsRequest struct {
	Theme               *string `json:"theme,omitempty" validate:"omitempty,oneof=light dark auto"`
	NotificationEnabled *bool   `json:"notificationEnabled,omitempty"`
	NotificationTime    *string `json:"notificationTime,omitempty" validate:"omitempty,hhmm"`
	FontPreference      *string `json:"fontPreference,omitempty" validate:"omitempty,oneof=apple system"`
}

// Apply merges the set fields onto s.
func (req UpdateSettingsRequest) Apply(s entities.Settings) entities.Settings {
	if req.Theme != nil {
		s.Theme = entities.ThemeMode(*req.Theme)
	}
	if req.NotificationEnabled != nil {
		s.NotificationEnabled = *req.NotificationEnabled
	}
	if req.NotificationTime != nil {
		s.NotificationTime = *req.NotificationTime
	}
	if req.FontPreference != nil {
		s.FontPreference = entities.FontPreference(*req.FontPreference)
	}
	return s
}

// SettingsResponse is the settings with the theme resolved for the caller.
type SettingsResponse struct {
	Settings      entities.Settings  `json:"settings"`
	ResolvedTheme entities.ThemeMode `json:"resolvedTheme"`
}

// AddJournalEntryRequest adds a free-form entry for today.
type AddJournalEntryRequest struct {
	Text string `json:"text" validate:"required"`
	Mood string `json:"mood,omitempty" validate:"omitempty,mood"`
}

func newQuestionResponse(date valueobjects.DateKey, q entities.Question, now time.Time) QuestionResponse {
	return QuestionResponse{
		Date:     date,
		Label:    valueobjects.DisplayLabel(date, now),
		Relative: valueobjects.RelativeLabel(date, now),
		Question: q,
	}
}

func newAnswerView(a entities.Answer, bank *questions.Bank, now time.Time) AnswerView {
	view := AnswerView{
		Answer:    a,
		Label:     valueobjects.DisplayLabel(a.Date, now),
		Relative:  valueobjects.RelativeLabel(a.Date, now),
		WordCount: a.WordCount(),
	}
	if q, ok := bank.ByID(a.QuestionID); ok {
		view.Question = &q
	}
	return view
}

func newAnswerList(answers []entities.Answer, bank *questions.Bank, now time.Time) AnswerListResponse {
	views := make([]AnswerView, 0, len(answers))
	for _, a := range answers {
		views = append(views, newAnswerView(a, bank, now))
	}
	return AnswerListResponse{Answers: views, Count: len(views)}
}
