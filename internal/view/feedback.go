package view

import (
	"time"

	"geometa/internal/auth"
	"geometa/internal/hypermedia"
	"geometa/internal/model"
	"geometa/internal/paths"
)

// FeedbackView is the only form of a feedback.
type FeedbackView struct {
	ID           uint      `json:"id"`
	Rating       *int      `json:"rating"`
	Comment      *string   `json:"comment"`
	User         *string   `json:"user"`
	Insight      uint      `json:"insight"`
	CreatedDate  time.Time `json:"created_date"`
	ModifiedDate time.Time `json:"modified_date"`
}

func NewFeedbackView(f *model.Feedback) FeedbackView {
	return FeedbackView{
		ID:           f.ID,
		Rating:       f.Rating,
		Comment:      f.Comment,
		User:         f.AuthorName(),
		Insight:      f.InsightID,
		CreatedDate:  f.CreatedAt,
		ModifiedDate: f.UpdatedAt,
	}
}

// Feedback renders a single feedback for caller.
func Feedback(caller *model.User, f *model.Feedback) *hypermedia.Document {
	self := paths.InsightFeedback(f.InsightID, f.ID)

	doc := hypermedia.New("feedback").
		WithData(NewFeedbackView(f)).
		AddNamespace(hypermedia.Namespace, hypermedia.LinkRelations).
		Link("self", self).
		Link("profile", hypermedia.ProfileFeedback).
		Link("collection", paths.InsightFeedbacks(f.InsightID)).
		Link("up", paths.Insight(f.InsightID))

	if f.User != nil {
		doc.Link("author", paths.User(f.User.Username))
	}
	if auth.IsOwnerOrAdmin(caller, f.UserID) {
		doc.Edit("Edit this feedback", self, FeedbackSchema()).
			Delete("Delete this feedback", self)
	}
	return doc
}

func feedbackItems(doc *hypermedia.Document, feedbacks []model.Feedback) {
	doc.WithItems()
	for i := range feedbacks {
		f := &feedbacks[i]
		doc.AddItem(hypermedia.New("feedback").
			WithData(NewFeedbackView(f)).
			Link("self", paths.InsightFeedback(f.InsightID, f.ID)).
			Link("profile", hypermedia.ProfileFeedback))
	}
}

// InsightFeedbacks renders the feedback left on insight. Authenticated
// callers get a control to add their own.
func InsightFeedbacks(self string, caller *model.User, insight *model.Insight, feedbacks []model.Feedback) *hypermedia.Document {
	doc := hypermedia.New("feedbacks").AddNamespace(hypermedia.Namespace, hypermedia.LinkRelations)
	feedbackItems(doc, feedbacks)
	doc.Link("self", self).Link("up", paths.Insight(insight.ID))
	if caller != nil {
		doc.Post("geometa:add-feedback", "Add feedback",
			paths.UserInsightFeedbacks(caller.Username, insight.ID), FeedbackSchema())
	}
	return doc
}

// UserFeedbacks renders the feedback authored by owner.
func UserFeedbacks(self string, owner *model.User, feedbacks []model.Feedback) *hypermedia.Document {
	doc := hypermedia.New("feedbacks").AddNamespace(hypermedia.Namespace, hypermedia.LinkRelations)
	feedbackItems(doc, feedbacks)
	return doc.Link("self", self).Link("up", paths.User(owner.Username))
}
