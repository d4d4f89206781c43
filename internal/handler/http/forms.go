package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-travel-journal/models"
)

const (
	// maxFormMemory is kept in memory before multipart parts spill to disk.
	maxFormMemory = 8 << 20
	// maxUploadBody bounds a whole form post: a full batch of photos plus
	// the text fields.
	maxUploadBody = (models.MaxEntryImages+1)*models.MaxImageSize + (1 << 20)
)

// tripForm is the trip form as submitted, kept as strings so a rejected
// form is rendered back exactly as typed.
type tripForm struct {
	Title       string
	Description string
	Destination string
	StartDate   string
	EndDate     string
	Status      string
	Tags        string
	Budget      string
	Currency    string
	IsPublic    bool
}

func tripFormFrom(t *models.Trip) tripForm {
	f := tripForm{
		Title:       t.Title,
		Destination: t.Destination,
		StartDate:   t.StartDate.String(),
		EndDate:     t.EndDate.String(),
		Status:      string(t.Status),
		Tags:        t.Tags.Joined(),
		IsPublic:    t.IsPublic,
	}
	if t.Description != nil {
		f.Description = *t.Description
	}
	if t.Budget != nil {
		f.Budget = strconv.FormatFloat(*t.Budget, 'f', -1, 64)
	}
	if t.Currency != nil {
		f.Currency = *t.Currency
	}
	return f
}

func parseTripForm(r *http.Request) (tripForm, error) {
	if err := r.ParseForm(); err != nil {
		return tripForm{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	return tripForm{
		Title:       strings.TrimSpace(r.PostFormValue("title")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Destination: strings.TrimSpace(r.PostFormValue("destination")),
		StartDate:   r.PostFormValue("start_date"),
		EndDate:     r.PostFormValue("end_date"),
		Status:      r.PostFormValue("status"),
		Tags:        r.PostFormValue("tags"),
		Budget:      strings.TrimSpace(r.PostFormValue("budget")),
		Currency:    strings.TrimSpace(r.PostFormValue("currency")),
		IsPublic:    r.PostFormValue("is_public") != "",
	}, nil
}

func (f tripForm) create() models.TripCreate {
	start, _ := models.ParseDate(f.StartDate)
	end, _ := models.ParseDate(f.EndDate)

	return models.TripCreate{
		Title:       f.Title,
		Description: optional(f.Description),
		Destination: f.Destination,
		StartDate:   start,
		EndDate:     end,
		IsPublic:    f.IsPublic,
		Status:      models.TripStatus(f.Status),
		Tags:        models.ParseTags(f.Tags),
		Budget:      f.budget(),
		Currency:    optional(f.Currency),
	}
}

// update carries every field of the form: the edit page always posts the
// whole trip.
func (f tripForm) update() models.TripUpdate {
	c := f.create()
	description := f.Description
	tags := c.Tags

	u := models.TripUpdate{
		Title:       &c.Title,
		Description: &description,
		Destination: &c.Destination,
		StartDate:   &c.StartDate,
		EndDate:     &c.EndDate,
		IsPublic:    &c.IsPublic,
		Tags:        &tags,
		Budget:      c.Budget,
		Currency:    c.Currency,
	}
	if c.Status != "" {
		u.Status = &c.Status
	}
	return u
}

func (f tripForm) budget() *float64 {
	if f.Budget == "" {
		return nil
	}
	v, err := strconv.ParseFloat(f.Budget, 64)
	if err != nil {
		return nil
	}
	return &v
}

// entryForm is the memory form as submitted.
type entryForm struct {
	Title     string
	Content   string
	Notes     string
	Location  string
	EntryDate string
	Mood      string
	Weather   string
	Tags      string
	// Keep holds the image URLs of an edited memory that stay attached.
	Keep []string
}

func entryFormFrom(e *models.TripEntry) entryForm {
	f := entryForm{
		Title:     e.Title,
		Content:   e.Content,
		Notes:     e.Notes.Format(),
		EntryDate: e.EntryDate.String(),
		Mood:      string(e.Mood),
		Tags:      e.Tags.Joined(),
		Keep:      append([]string{}, e.ImageURLs...),
	}
	if e.Location != nil {
		f.Location = *e.Location
	}
	if e.Weather != nil {
		f.Weather = *e.Weather
	}
	return f
}

func (f entryForm) Kept(url string) bool {
	for _, k := range f.Keep {
		if k == url {
			return true
		}
	}
	return false
}

// parseEntryForm reads a memory form with its photos. The returned closer
// releases the uploaded parts and must be called once the files are stored.
func parseEntryForm(w http.ResponseWriter, r *http.Request) (entryForm, []models.ImageFile, func(), error) {
	files, closeFiles, err := parseImages(w, r, "images")
	if err != nil {
		return entryForm{}, nil, closeFiles, err
	}

	f := entryForm{
		Title:     strings.TrimSpace(r.PostFormValue("title")),
		Content:   strings.TrimSpace(r.PostFormValue("content")),
		Notes:     r.PostFormValue("notes"),
		Location:  strings.TrimSpace(r.PostFormValue("location")),
		EntryDate: r.PostFormValue("entry_date"),
		Mood:      r.PostFormValue("mood"),
		Weather:   strings.TrimSpace(r.PostFormValue("weather")),
		Tags:      r.PostFormValue("tags"),
		Keep:      r.PostForm["keep_images"],
	}
	return f, files, closeFiles, nil
}

func (f entryForm) create() models.EntryCreate {
	date, _ := models.ParseDate(f.EntryDate)

	return models.EntryCreate{
		Title:     f.Title,
		Content:   f.Content,
		Notes:     models.ParseNotes(f.Notes),
		Location:  optional(f.Location),
		EntryDate: date,
		Mood:      models.Mood(f.Mood),
		Weather:   optional(f.Weather),
		ImageURLs: models.StringList{},
		Tags:      models.ParseTags(f.Tags),
	}
}

// update carries every text field; images are set by the caller once the
// new photos are stored.
func (f entryForm) update() models.EntryUpdate {
	c := f.create()
	location := f.Location
	weather := f.Weather

	u := models.EntryUpdate{
		Title:     &c.Title,
		Content:   &c.Content,
		Notes:     &c.Notes,
		Location:  &location,
		EntryDate: &c.EntryDate,
		Weather:   &weather,
		Tags:      &c.Tags,
	}
	if c.Mood != "" {
		u.Mood = &c.Mood
	}
	return u
}

// profileForm is the edit-profile form.
type profileForm struct {
	DisplayName string
	Username    string
	Location    string
	Bio         string
	X           string
	Instagram   string
	Facebook    string
	Website     string
}

func profileFormFrom(p *models.Profile) profileForm {
	if p == nil {
		return profileForm{}
	}
	return profileForm{
		DisplayName: deref(p.DisplayName),
		Username:    deref(p.Username),
		Location:    deref(p.Location),
		Bio:         deref(p.Bio),
		X:           deref(p.X),
		Instagram:   deref(p.Instagram),
		Facebook:    deref(p.Facebook),
		Website:     deref(p.Website),
	}
}

func profileFormFromRequest(r *http.Request) profileForm {
	v := func(name string) string { return strings.TrimSpace(r.PostFormValue(name)) }
	return profileForm{
		DisplayName: v("display_name"),
		Username:    v("username"),
		Location:    v("location"),
		Bio:         v("bio"),
		X:           strings.TrimPrefix(v("x"), "@"),
		Instagram:   strings.TrimPrefix(v("instagram"), "@"),
		Facebook:    v("facebook"),
		Website:     v("website"),
	}
}

// update writes every field; an emptied input clears the stored value.
func (f profileForm) update() models.ProfileUpdate {
	return models.ProfileUpdate{
		DisplayName: models.Ptr(f.DisplayName),
		Username:    models.Ptr(f.Username),
		Location:    models.Ptr(f.Location),
		Bio:         models.Ptr(f.Bio),
		X:           models.Ptr(f.X),
		Instagram:   models.Ptr(f.Instagram),
		Facebook:    models.Ptr(f.Facebook),
		Website:     models.Ptr(f.Website),
	}
}

// parseImages parses a multipart form and opens the non-empty files of
// field. A plain urlencoded form yields no files.
func parseImages(w http.ResponseWriter, r *http.Request, field string) ([]models.ImageFile, func(), error) {
	noop := func() {}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			if err := r.ParseForm(); err != nil {
				return nil, noop, fmt.Errorf("%w: %w", ErrInvalidForm, err)
			}
			return nil, noop, nil
		}
		return nil, noop, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	var (
		files   []models.ImageFile
		closers []io.Closer
	)
	closeAll := func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}

	for _, fh := range r.MultipartForm.File[field] {
		if fh.Filename == "" && fh.Size == 0 {
			continue
		}
		file, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, noop, fmt.Errorf("%w: open %s: %w", ErrInvalidForm, fh.Filename, err)
		}
		closers = append(closers, file)
		files = append(files, imageFile(fh, file))
	}

	return files, closeAll, nil
}

func imageFile(fh *multipart.FileHeader, body io.Reader) models.ImageFile {
	return models.ImageFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        body,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
