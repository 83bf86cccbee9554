package hypermedia

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleView struct {
	Title  string  `json:"title"`
	Rating *int    `json:"rating,omitempty"`
	Note   *string `json:"note"`
}

func TestMarshal_FieldOrder(t *testing.T) {
	doc := New("insight").
		WithData(sampleView{Title: "Cafe"}).
		AddNamespace(Namespace, LinkRelations).
		Link("self", "/api/insights/1/").
		Link("profile", ProfileInsight)

	body, err := Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t,
		`{"@type":"insight","title":"Cafe","note":null,`+
			`"@namespaces":{"geometa":{"name":"/geometa/link-relations#"}},`+
			`"@controls":{"self":{"href":"/api/insights/1/"},"profile":{"href":"/profiles/insight/"}}}`,
		string(body))
}

func TestMarshal_ControlsKeepInsertionOrder(t *testing.T) {
	doc := New("x").
		Link("self", "/a/").
		Link("zeta", "/z/").
		Link("alpha", "/b/").
		Link("self", "/c/")

	assert.Equal(t, []string{"self", "zeta", "alpha"}, doc.ControlNames())
	self, ok := doc.Control("self")
	require.True(t, ok)
	assert.Equal(t, "/c/", self.Href)

	body, err := Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"@type":"x","@controls":{"self":{"href":"/c/"},"zeta":{"href":"/z/"},"alpha":{"href":"/b/"}}}`, string(body))
}

func TestMarshal_EmptyCollection(t *testing.T) {
	body, err := Marshal(New("insights").WithItems())
	require.NoError(t, err)
	assert.JSONEq(t, `{"@type":"insights","items":[]}`, string(body))
}

func TestMarshal_Items(t *testing.T) {
	doc := New("users").
		AddItem(New("user").WithData(map[string]string{"username": "alice"}).Link("self", "/api/users/alice/"))

	body, err := Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"@type":"users","items":[{"@type":"user","username":"alice","@controls":{"self":{"href":"/api/users/alice/"}}}]}`,
		string(body))
}

func TestMarshal_NonObjectDataFails(t *testing.T) {
	_, err := Marshal(New("x").WithData([]int{1, 2}))
	assert.Error(t, err)
}

func TestPostAndEditControls(t *testing.T) {
	schema := &Schema{Type: "object", Required: []string{"title"}, Properties: map[string]*Schema{"title": String(128)}}
	doc := New("insights").
		Post("geometa:add-insight", "Add a new insight", "/api/insights/", schema).
		Edit("Edit", "/api/insights/1/", schema).
		Delete("Delete", "/api/insights/1/")

	add, _ := doc.Control("geometa:add-insight")
	assert.Equal(t, http.MethodPost, add.Method)
	assert.Equal(t, "json", add.Encoding)
	assert.Same(t, schema, add.Schema)

	edit, _ := doc.Control("edit")
	assert.Equal(t, http.MethodPut, edit.Method)

	del, _ := doc.Control("delete")
	assert.Equal(t, http.MethodDelete, del.Method)
	assert.Empty(t, del.Encoding)
}

func TestWrite_SetsMediaType(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, Write(c, http.StatusCreated, New("user")))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, MediaType, rec.Header().Get(echo.HeaderContentType))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, "user", decoded["@type"])
}
