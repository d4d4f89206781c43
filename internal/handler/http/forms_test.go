package http

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-travel-journal/models"
)

// multipartRequest builds a POST with text fields and image parts.
func multipartRequest(t *testing.T, path string, fields url.Values, field string, files map[string][]byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for name, values := range fields {
		for _, v := range values {
			require.NoError(t, mw.WriteField(name, v))
		}
	}
	for name, data := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+name+`"`)
		h.Set("Content-Type", "image/jpeg")
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// ---- trip form ----

func TestParseTripForm(t *testing.T) {
	req := postForm("/dashboard/create-trip", url.Values{
		"title":       {"  Lisbon spring "},
		"destination": {"Lisbon, Portugal"},
		"start_date":  {"2024-05-01"},
		"end_date":    {"2024-05-07"},
		"status":      {"completed"},
		"tags":        {"food, , tram ,food"},
		"budget":      {"1200.50"},
		"currency":    {"EUR"},
		"is_public":   {"on"},
	})

	form, err := parseTripForm(req)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon spring", form.Title)
	assert.True(t, form.IsPublic)

	c := form.create()
	assert.Equal(t, "Lisbon spring", c.Title)
	assert.Equal(t, "2024-05-01", c.StartDate.String())
	assert.Equal(t, models.TripStatus("completed"), c.Status)
	require.NotNil(t, c.Budget)
	assert.InDelta(t, 1200.5, *c.Budget, 0.001)
	assert.Equal(t, "EUR", *c.Currency)
	assert.Nil(t, c.Description, "empty text is absent")
}

func TestTripForm_Update(t *testing.T) {
	form := tripForm{Title: "Rome", Destination: "Italy", StartDate: "2024-01-01", EndDate: "2024-01-03", Budget: "abc"}

	u := form.update()
	require.NotNil(t, u.Title)
	assert.Equal(t, "Rome", *u.Title)
	require.NotNil(t, u.Description)
	assert.Equal(t, "", *u.Description, "an emptied description clears the stored one")
	assert.Nil(t, u.Status, "no status posted")
	assert.Nil(t, u.Budget, "unparsable budget is dropped")
	require.NotNil(t, u.IsPublic)
	assert.False(t, *u.IsPublic)
}

func TestTripFormFrom_RoundTrip(t *testing.T) {
	budget := 99.9
	trip := &models.Trip{
		Title:       "Kyoto",
		Description: models.Ptr("Temples"),
		Destination: "Japan",
		StartDate:   models.NewDate(2023, 11, 2),
		EndDate:     models.NewDate(2023, 11, 9),
		Status:      models.TripCompleted,
		Tags:        models.StringList{"temples", "food"},
		Budget:      &budget,
		IsPublic:    true,
	}

	f := tripFormFrom(trip)
	assert.Equal(t, "Temples", f.Description)
	assert.Equal(t, "99.9", f.Budget)
	assert.Equal(t, "2023-11-02", f.StartDate)
	assert.Equal(t, models.StringList{"temples", "food"}, f.create().Tags)
}

// ---- entry form ----

func TestParseEntryForm_Multipart(t *testing.T) {
	req := multipartRequest(t, "/dashboard/trips/t1/entries", url.Values{
		"title":       {"Sunset"},
		"notes":       {"- pastel de nata\n- tram 28\n"},
		"entry_date":  {"2024-05-02"},
		"mood":        {"excited"},
		"keep_images": {"https://cdn/a.jpg"},
	}, "images", map[string][]byte{"beach.jpg": []byte("jpeg-bytes")})
	rr := httptest.NewRecorder()

	form, files, closeFiles, err := parseEntryForm(rr, req)
	defer closeFiles()
	require.NoError(t, err)

	assert.Equal(t, "Sunset", form.Title)
	assert.Equal(t, []string{"https://cdn/a.jpg"}, form.Keep)
	require.Len(t, files, 1)
	assert.Equal(t, "beach.jpg", files[0].Name)
	assert.Equal(t, "image/jpeg", files[0].ContentType)
	assert.EqualValues(t, len("jpeg-bytes"), files[0].Size)

	data, err := io.ReadAll(files[0].Body)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	c := form.create()
	assert.Equal(t, models.Notes{"pastel de nata", "tram 28"}, c.Notes)
	assert.Equal(t, models.Mood("excited"), c.Mood)
	assert.NotNil(t, c.ImageURLs)
}

func TestParseEntryForm_URLEncoded(t *testing.T) {
	req := postForm("/dashboard/trips/t1/entries", url.Values{"title": {"No photos"}, "entry_date": {"2024-05-02"}})

	form, files, closeFiles, err := parseEntryForm(httptest.NewRecorder(), req)
	defer closeFiles()
	require.NoError(t, err)
	assert.Equal(t, "No photos", form.Title)
	assert.Empty(t, files)
}

func TestParseImages_SkipsEmptyParts(t *testing.T) {
	req := multipartRequest(t, "/dashboard/edit-profile", url.Values{"action": {"avatar"}},
		"avatar", map[string][]byte{"": nil})

	files, closeFiles, err := parseImages(httptest.NewRecorder(), req, "avatar")
	defer closeFiles()
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Equal(t, "avatar", req.PostFormValue("action"))
}

func TestEntryForm_Update(t *testing.T) {
	u := entryForm{Title: "Day two", EntryDate: "2024-05-02"}.update()

	assert.Nil(t, u.Mood, "mood untouched when not posted")
	require.NotNil(t, u.Location)
	assert.Equal(t, "", *u.Location)
	assert.Nil(t, u.ImageURLs, "set by the handler")
}

func TestEntryFormFrom(t *testing.T) {
	e := &models.TripEntry{
		Title:     "Museum",
		Notes:     models.Notes{"tickets online"},
		EntryDate: models.NewDate(2024, 5, 3),
		Mood:      models.MoodNeutral,
		Location:  models.Ptr("Belém"),
		ImageURLs: models.StringList{"u1", "u2"},
	}

	f := entryFormFrom(e)
	assert.Equal(t, "Belém", f.Location)
	assert.True(t, f.Kept("u1"))
	assert.False(t, f.Kept("u3"))

	// the form owns its copy of the image list
	f.Keep[0] = "changed"
	assert.Equal(t, "u1", e.ImageURLs[0])
}

func TestKeptImages(t *testing.T) {
	current := models.StringList{"a", "b", "c"}

	tests := []struct {
		name string
		keep []string
		want models.StringList
	}{
		{name: "keep all", keep: []string{"c", "a", "b"}, want: models.StringList{"a", "b", "c"}},
		{name: "drop middle", keep: []string{"a", "c"}, want: models.StringList{"a", "c"}},
		{name: "unknown ignored", keep: []string{"x", "b"}, want: models.StringList{"b"}},
		{name: "drop all", keep: nil, want: models.StringList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keptImages(current, tt.keep))
		})
	}
}

// ---- profile form ----

func TestProfileFormFromRequest(t *testing.T) {
	req := postForm("/dashboard/edit-profile", url.Values{
		"display_name": {" Ana "},
		"x":            {"@ana_travels"},
		"instagram":    {"@ana.ig"},
		"website":      {"https://ana.example.com"},
	})
	require.NoError(t, req.ParseForm())

	f := profileFormFromRequest(req)
	assert.Equal(t, "Ana", f.DisplayName)
	assert.Equal(t, "ana_travels", f.X)
	assert.Equal(t, "ana.ig", f.Instagram)

	u := f.update()
	require.NotNil(t, u.Bio)
	assert.Equal(t, "", *u.Bio, "every field is written")
	assert.Nil(t, u.AvatarURL, "avatar has its own action")
}

func TestProfileFormFrom_Nil(t *testing.T) {
	assert.Equal(t, profileForm{}, profileFormFrom(nil))
}
