package view

import (
	"time"

	"github.com/shopspring/decimal"

	"geometa/internal/auth"
	"geometa/internal/hypermedia"
	"geometa/internal/model"
	"geometa/internal/paths"
)

// Rating is an average rating rendered as a number with one decimal place.
type Rating struct {
	decimal.Decimal
}

func (r Rating) MarshalJSON() ([]byte, error) {
	return []byte(r.StringFixed(1)), nil
}

// InsightSummaryView is the listing form of an insight.
type InsightSummaryView struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Longitude   float64   `json:"longitude"`
	Latitude    float64   `json:"latitude"`
	Category    *string   `json:"category"`
	CreatedDate time.Time `json:"created_date"`
	User        *string   `json:"user"`
}

// InsightDetailView is the full form of an insight.
type InsightDetailView struct {
	InsightSummaryView
	Description   *string   `json:"description"`
	Subcategory   *string   `json:"subcategory"`
	Image         *string   `json:"image"`
	ModifiedDate  time.Time `json:"modified_date"`
	ExternalLink  *string   `json:"external_link"`
	Address       *string   `json:"address"`
	AverageRating *Rating   `json:"average_rating,omitempty"`
}

func NewInsightSummaryView(in *model.Insight) InsightSummaryView {
	return InsightSummaryView{
		ID:          in.ID,
		Title:       in.Title,
		Longitude:   in.Longitude,
		Latitude:    in.Latitude,
		Category:    in.Category,
		CreatedDate: in.CreatedAt,
		User:        in.CreatorName(),
	}
}

// NewInsightDetailView builds the full view. avg is nil when nothing has been rated.
func NewInsightDetailView(in *model.Insight, avg *decimal.Decimal) InsightDetailView {
	v := InsightDetailView{
		InsightSummaryView: NewInsightSummaryView(in),
		Description:        in.Description,
		Subcategory:        in.Subcategory,
		Image:              in.Image,
		ModifiedDate:       in.UpdatedAt,
		ExternalLink:       in.ExternalLink,
		Address:            in.Address,
	}
	if avg != nil {
		v.AverageRating = &Rating{*avg}
	}
	return v
}

// Insight renders a single insight for caller.
func Insight(caller *model.User, in *model.Insight, avg *decimal.Decimal) *hypermedia.Document {
	self := paths.Insight(in.ID)

	doc := hypermedia.New("insight").
		WithData(NewInsightDetailView(in, avg)).
		AddNamespace(hypermedia.Namespace, hypermedia.LinkRelations).
		Link("self", self).
		Link("profile", hypermedia.ProfileInsight).
		Link("collection", paths.Insights())

	if in.Creator != nil {
		doc.Link("author", paths.User(in.Creator.Username))
	}
	doc.Get("geometa:feedbacks", "Feedback on this insight", paths.InsightFeedbacks(in.ID))

	if caller != nil {
		doc.Post("geometa:add-feedback", "Add feedback",
			paths.UserInsightFeedbacks(caller.Username, in.ID), FeedbackSchema())
	}
	if auth.IsOwnerOrAdmin(caller, in.CreatorID) {
		doc.Edit("Edit this insight", self, InsightSchema()).
			Delete("Delete this insight", self)
	}
	return doc
}

func insightItems(doc *hypermedia.Document, insights []model.Insight) {
	doc.WithItems()
	for i := range insights {
		in := &insights[i]
		doc.AddItem(hypermedia.New("insight").
			WithData(NewInsightSummaryView(in)).
			Link("self", paths.Insight(in.ID)).
			Link("profile", hypermedia.ProfileInsight))
	}
}

// Insights renders a filtered insight search. Anyone may add to it.
func Insights(self string, insights []model.Insight) *hypermedia.Document {
	doc := hypermedia.New("insights").AddNamespace(hypermedia.Namespace, hypermedia.LinkRelations)
	insightItems(doc, insights)
	return doc.Link("self", self).
		Post("geometa:add-insight", "Add a new insight", paths.Insights(), InsightSchema())
}

// UserInsights renders the insights created by owner.
func UserInsights(self string, caller, owner *model.User, insights []model.Insight) *hypermedia.Document {
	doc := hypermedia.New("insights").AddNamespace(hypermedia.Namespace, hypermedia.LinkRelations)
	insightItems(doc, insights)
	doc.Link("self", self).Link("up", paths.User(owner.Username))
	if caller != nil && caller.ID == owner.ID {
		doc.Post("geometa:add-insight", "Add a new insight", paths.UserInsights(owner.Username), InsightSchema())
	}
	return doc
}
