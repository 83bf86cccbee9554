package view

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geometa/internal/hypermedia"
	"geometa/internal/model"
)

func strPtr(s string) *string { return &s }
func uintPtr(v uint) *uint    { return &v }

func decode(t *testing.T, doc *hypermedia.Document) map[string]interface{} {
	t.Helper()
	body, err := hypermedia.Marshal(doc)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

var (
	alice = &model.User{
		ID: 1, Username: "alice", Email: "alice@example.com", FirstName: "Alice",
		Phone: strPtr("+358401234567"), Status: model.StatusActive, Role: model.RoleUser,
	}
	bob   = &model.User{ID: 2, Username: "bob", Email: "bob@example.com", Role: model.RoleUser}
	admin = &model.User{ID: 3, Username: "root", Email: "root@example.com", Role: model.RoleAdmin}
)

func TestUser_AnonymousSeesPublicFields(t *testing.T) {
	doc := User(nil, alice)
	out := decode(t, doc)

	assert.Equal(t, "user", out["@type"])
	assert.Equal(t, "alice", out["username"])
	assert.Equal(t, "USER", out["role"])
	assert.NotContains(t, out, "email")
	assert.NotContains(t, out, "status")
	assert.NotContains(t, out, "phone")

	assert.Equal(t, []string{"self", "profile", "collection", "geometa:insights-by"}, doc.ControlNames())
}

func TestUser_OtherUserSeesPublicFields(t *testing.T) {
	doc := User(bob, alice)
	assert.NotContains(t, decode(t, doc), "email")
	_, hasEdit := doc.Control("edit")
	assert.False(t, hasEdit)
}

func TestUser_OwnerSeesEverything(t *testing.T) {
	doc := User(alice, alice)
	out := decode(t, doc)

	assert.Equal(t, "alice@example.com", out["email"])
	assert.Equal(t, "ACTIVE", out["status"])
	assert.Equal(t, "+358401234567", out["phone"])
	assert.Equal(t, []string{
		"self", "profile", "collection", "geometa:insights-by",
		"geometa:feedbacks-by", "geometa:add-insight", "edit", "delete",
	}, doc.ControlNames())

	edit, _ := doc.Control("edit")
	assert.Equal(t, "/api/users/alice/", edit.Href)
	assert.NotContains(t, edit.Schema.Required, "password")
}

func TestUser_AdminSeesEverythingButCannotAddInsight(t *testing.T) {
	doc := User(admin, alice)
	assert.Contains(t, decode(t, doc), "email")

	_, canAdd := doc.Control("geometa:add-insight")
	assert.False(t, canAdd)
	_, canEdit := doc.Control("edit")
	assert.True(t, canEdit)
}

func TestUsers_ShortForm(t *testing.T) {
	doc := Users([]model.User{*alice, *bob})
	out := decode(t, doc)

	items := out["items"].([]interface{})
	require.Len(t, items, 2)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "alice", first["username"])
	assert.NotContains(t, first, "email")

	add, ok := doc.Control("geometa:add-user")
	require.True(t, ok)
	assert.Equal(t, []string{"username", "email", "password", "first_name"}, add.Schema.Required)
}

func TestCreatedUser_IncludesKeyOnce(t *testing.T) {
	out := decode(t, CreatedUser(&model.User{ID: 5, Username: "carol", Email: "c@example.com"}, "tok"))
	assert.Equal(t, "tok", out["api_key"])
	assert.EqualValues(t, 5, out["id"])
}

func TestInsight_AverageRating(t *testing.T) {
	in := &model.Insight{ID: 7, Title: "Cafe", Longitude: 25.47, Latitude: 65.01, CreatedAt: time.Now()}

	avg := decimal.RequireFromString("4.0")
	body, err := hypermedia.Marshal(Insight(nil, in, &avg))
	require.NoError(t, err)
	assert.Contains(t, string(body), `"average_rating":4.0`)

	out := decode(t, Insight(nil, in, nil))
	assert.NotContains(t, out, "average_rating")
	assert.Nil(t, out["user"])
}

func TestInsight_Controls(t *testing.T) {
	in := &model.Insight{ID: 7, Title: "Cafe", CreatorID: uintPtr(alice.ID), Creator: alice}

	anon := Insight(nil, in, nil)
	assert.Equal(t, []string{"self", "profile", "collection", "author", "geometa:feedbacks"}, anon.ControlNames())

	other := Insight(bob, in, nil)
	add, ok := other.Control("geometa:add-feedback")
	require.True(t, ok)
	assert.Equal(t, "/api/users/bob/insights/7/feedbacks/", add.Href)
	_, canEdit := other.Control("edit")
	assert.False(t, canEdit)

	owner := Insight(alice, in, nil)
	edit, ok := owner.Control("edit")
	require.True(t, ok)
	assert.Equal(t, "/api/insights/7/", edit.Href)

	_, adminCanDelete := Insight(admin, in, nil).Control("delete")
	assert.True(t, adminCanDelete)
}

func TestInsight_AnonymousInsightOnlyAdminEdits(t *testing.T) {
	in := &model.Insight{ID: 8, Title: "Bench"}

	_, aliceEdits := Insight(alice, in, nil).Control("edit")
	assert.False(t, aliceEdits)
	_, adminEdits := Insight(admin, in, nil).Control("edit")
	assert.True(t, adminEdits)
}

func TestUserInsights_AddOnlyForOwner(t *testing.T) {
	list := []model.Insight{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}

	own := UserInsights("/api/users/alice/insights/", alice, alice, list)
	assert.Len(t, own.Items(), 2)
	_, ok := own.Control("geometa:add-insight")
	assert.True(t, ok)

	_, ok = UserInsights("/api/users/alice/insights/", bob, alice, list).Control("geometa:add-insight")
	assert.False(t, ok)
}

func TestInsights_EmptyResult(t *testing.T) {
	out := decode(t, Insights("/api/insights/?usr=nobody", nil))
	assert.Equal(t, []interface{}{}, out["items"])
}

func TestFeedback_Controls(t *testing.T) {
	rating := 5
	f := &model.Feedback{ID: 3, InsightID: 7, Rating: &rating, UserID: uintPtr(bob.ID), User: bob}

	doc := Feedback(nil, f)
	out := decode(t, doc)
	assert.Equal(t, "bob", out["user"])
	assert.EqualValues(t, 7, out["insight"])
	assert.Equal(t, []string{"self", "profile", "collection", "up", "author"}, doc.ControlNames())

	self, _ := doc.Control("self")
	assert.Equal(t, "/api/insights/7/feedbacks/3/", self.Href)

	_, authorEdits := Feedback(bob, f).Control("edit")
	assert.True(t, authorEdits)
	_, otherEdits := Feedback(alice, f).Control("edit")
	assert.False(t, otherEdits)
}

func TestInsightFeedbacks_AddControlUsesCaller(t *testing.T) {
	in := &model.Insight{ID: 7}

	doc := InsightFeedbacks("/api/insights/7/feedbacks/", alice, in, nil)
	add, ok := doc.Control("geometa:add-feedback")
	require.True(t, ok)
	assert.Equal(t, "/api/users/alice/insights/7/feedbacks/", add.Href)

	_, ok = InsightFeedbacks("/api/insights/7/feedbacks/", nil, in, nil).Control("geometa:add-feedback")
	assert.False(t, ok)
}
