package admin

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/media-portal/internal/apiclient"
	"github.com/daniilsolovey/media-portal/internal/photo"
)

func preview(f *apiclient.File) string {
	if f == nil {
		return ""
	}
	url, err := photo.Preview(f.Data)
	if err != nil {
		return ""
	}
	return url
}

func previews(urls ...string) []string {
	var result []string
	for _, u := range urls {
		if u != "" {
			result = append(result, u)
		}
	}
	return result
}

// NewsForm edits a news item. The image is uploaded on its own before the
// news record is written; its URL travels with the form afterwards.
type NewsForm struct {
	Title       string
	Summary     string
	Content     string
	CategoryID  string
	ImageURL    string
	IsPublished bool

	image        *apiclient.File
	imagePreview string
	categories   []apiclient.Category
}

func NewNewsForm() *NewsForm {
	return &NewsForm{IsPublished: true}
}

func (f *NewsForm) Fill(n apiclient.News) {
	f.Title = n.Title
	f.Summary = n.Summary
	f.Content = n.Content
	f.ImageURL = n.Image
	f.IsPublished = n.IsPublished

	switch {
	case len(n.Categories) > 0:
		f.CategoryID = n.Categories[0].ID
	case n.Category != nil:
		f.CategoryID = n.Category.ID
	}
}

func (f *NewsForm) Bind(in Input) {
	f.Title = in.Get("title")
	f.Summary = in.Get("summary")
	f.Content = in.Raw("content")
	f.CategoryID = in.Get("category")
	f.ImageURL = in.Get("imageUrl")
	f.IsPublished = in.Bool("isPublished")

	if img := in.File("image"); img != nil {
		f.image = img
		f.imagePreview = preview(img)
	}
}

func (f *NewsForm) Validate(Mode) error {
	var v validation
	v.required("title", f.Title)
	v.required("content", f.Content)
	v.required("category", f.CategoryID)
	if f.ImageURL == "" && f.image == nil {
		v.add("image", msgRequired)
	}
	return v.err(msgRequiredAll)
}

func (f *NewsForm) Prepare(ctx context.Context, api *apiclient.Client) error {
	list, _, err := api.Categories().List(ctx, apiclient.ListParams{})
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	f.categories = list
	return nil
}

func (f *NewsForm) Upload(ctx context.Context, api *apiclient.Client) error {
	if f.image == nil {
		return nil
	}

	url, err := api.UploadImage(ctx, *f.image)
	if err != nil {
		return err
	}

	f.ImageURL = url
	f.image = nil
	return nil
}

func (f *NewsForm) Payload(Mode) *apiclient.Payload {
	return apiclient.JSONPayload(map[string]any{
		"title":       f.Title,
		"content":     f.Content,
		"summary":     f.Summary,
		"categories":  []string{f.CategoryID},
		"image":       f.ImageURL,
		"isPublished": f.IsPublished,
	})
}

func (f *NewsForm) Fields(Mode) []Field {
	options := make([]Option, len(f.categories))
	for i, c := range f.categories {
		options[i] = Option{Value: c.ID, Label: c.Name, Selected: c.ID == f.CategoryID}
	}

	return []Field{
		{Name: "title", Label: "Sarlavha", Kind: KindText, Value: f.Title, Required: true},
		{Name: "summary", Label: "Qisqacha", Kind: KindTextarea, Value: f.Summary},
		{Name: "content", Label: "Matn", Kind: KindTextarea, Value: f.Content, Required: true},
		{Name: "category", Label: "Kategoriya", Kind: KindSelect, Value: f.CategoryID, Options: options, Required: true},
		{Name: "imageUrl", Kind: KindHidden, Value: f.ImageURL},
		{Name: "image", Label: "Rasm", Kind: KindFile, Previews: previews(f.imagePreview, f.ImageURL)},
		{Name: "isPublished", Label: "Nashr qilingan", Kind: KindCheckbox, Checked: f.IsPublished},
	}
}

type CategoryForm struct {
	Name        string
	Description string
	IsActive    bool
}

func NewCategoryForm() *CategoryForm {
	return &CategoryForm{IsActive: true}
}

func (f *CategoryForm) Fill(c apiclient.Category) {
	f.Name = c.Name
	f.Description = c.Description
	f.IsActive = c.IsActive
}

func (f *CategoryForm) Bind(in Input) {
	f.Name = in.Get("name")
	f.Description = in.Get("description")
	f.IsActive = in.Bool("isActive")
}

func (f *CategoryForm) Validate(Mode) error {
	var v validation
	v.required("name", f.Name)
	return v.err(msgRequiredAll)
}

func (f *CategoryForm) Payload(Mode) *apiclient.Payload {
	body := map[string]any{
		"name":     f.Name,
		"isActive": f.IsActive,
	}
	if f.Description != "" {
		body["description"] = f.Description
	}
	return apiclient.JSONPayload(body)
}

func (f *CategoryForm) Fields(Mode) []Field {
	return []Field{
		{Name: "name", Label: "Nomi", Kind: KindText, Value: f.Name, Required: true},
		{Name: "description", Label: "Tavsif", Kind: KindTextarea, Value: f.Description},
		{Name: "isActive", Label: "Faol", Kind: KindCheckbox, Checked: f.IsActive},
	}
}

// EmployeeForm is sent as multipart with a single photo.
type EmployeeForm struct {
	FirstName string
	LastName  string
	BirthDate string
	Position  string
	PhotoURL  string

	photo        *apiclient.File
	photoPreview string
}

func NewEmployeeForm() *EmployeeForm {
	return &EmployeeForm{}
}

func (f *EmployeeForm) Fill(e apiclient.Employee) {
	f.FirstName = e.FirstName
	f.LastName = e.LastName
	f.BirthDate = dateOnly(e.BirthDate)
	f.Position = e.Position
	f.PhotoURL = e.Photo
}

func (f *EmployeeForm) Bind(in Input) {
	f.FirstName = in.Get("firstName")
	f.LastName = in.Get("lastName")
	f.BirthDate = in.Get("birthDate")
	f.Position = in.Get("position")
	f.PhotoURL = in.Get("photoUrl")

	if p := in.File("photo"); p != nil {
		f.photo = p
		f.photoPreview = preview(p)
	}
}

func (f *EmployeeForm) Validate(mode Mode) error {
	var v validation
	v.required("firstName", f.FirstName)
	v.required("lastName", f.LastName)
	v.required("birthDate", f.BirthDate)
	if _, ok := parseDate(f.BirthDate); f.BirthDate != "" && !ok {
		v.add("birthDate", msgBadDate)
	}
	if err := v.err(msgRequiredAll); err != nil {
		return err
	}

	if mode == Create && f.photo == nil {
		v.add("photo", msgPhotoRequired)
	}
	return v.err(msgPhotoRequired)
}

func (f *EmployeeForm) Payload(Mode) *apiclient.Payload {
	p := apiclient.FormPayload().
		Set("firstName", f.FirstName).
		Set("lastName", f.LastName).
		Set("birthDate", f.BirthDate).
		Set("position", f.Position)

	if f.photo != nil {
		file := *f.photo
		file.Field = "photo"
		p.Attach(file)
	}
	return p
}

func (f *EmployeeForm) Fields(Mode) []Field {
	return []Field{
		{Name: "firstName", Label: "Ism", Kind: KindText, Value: f.FirstName, Required: true},
		{Name: "lastName", Label: "Familiya", Kind: KindText, Value: f.LastName, Required: true},
		{Name: "birthDate", Label: "Tug'ilgan sana", Kind: KindDate, Value: f.BirthDate, Required: true},
		{Name: "position", Label: "Lavozim", Kind: KindText, Value: f.Position},
		{Name: "photoUrl", Kind: KindHidden, Value: f.PhotoURL},
		{Name: "photo", Label: "Rasm", Kind: KindFile, Previews: previews(f.photoPreview, f.PhotoURL)},
	}
}

type HonoraryEmployeeForm struct {
	FirstName  string
	LastName   string
	StartDate  string
	EndDate    string
	Position   string
	WorkPeriod string
	PhotoURL   string

	photo        *apiclient.File
	photoPreview string
}

func NewHonoraryEmployeeForm() *HonoraryEmployeeForm {
	return &HonoraryEmployeeForm{}
}

func (f *HonoraryEmployeeForm) Fill(e apiclient.HonoraryEmployee) {
	f.FirstName = e.FirstName
	f.LastName = e.LastName
	f.StartDate = dateOnly(e.StartDate)
	f.EndDate = dateOnly(e.EndDate)
	f.Position = e.Position
	f.WorkPeriod = e.WorkPeriod
	f.PhotoURL = e.Photo
}

func (f *HonoraryEmployeeForm) Bind(in Input) {
	f.FirstName = in.Get("firstName")
	f.LastName = in.Get("lastName")
	f.StartDate = in.Get("startDate")
	f.EndDate = in.Get("endDate")
	f.Position = in.Get("position")
	f.WorkPeriod = in.Get("workPeriod")
	f.PhotoURL = in.Get("photoUrl")

	if p := in.File("photo"); p != nil {
		f.photo = p
		f.photoPreview = preview(p)
	}
}

func (f *HonoraryEmployeeForm) Validate(mode Mode) error {
	var v validation
	v.required("firstName", f.FirstName)
	v.required("lastName", f.LastName)
	v.required("startDate", f.StartDate)
	v.required("endDate", f.EndDate)

	start, startOK := parseDate(f.StartDate)
	end, endOK := parseDate(f.EndDate)
	if f.StartDate != "" && !startOK {
		v.add("startDate", msgBadDate)
	}
	if f.EndDate != "" && !endOK {
		v.add("endDate", msgBadDate)
	}
	if err := v.err(msgRequiredAll); err != nil {
		return err
	}

	if end.Before(start) {
		v.add("endDate", msgDateOrder)
		return v.err(msgDateOrder)
	}

	if mode == Create && f.photo == nil {
		v.add("photo", msgPhotoRequired)
	}
	return v.err(msgPhotoRequired)
}

func (f *HonoraryEmployeeForm) Payload(Mode) *apiclient.Payload {
	p := apiclient.FormPayload().
		Set("firstName", f.FirstName).
		Set("lastName", f.LastName).
		Set("startDate", f.StartDate).
		Set("endDate", f.EndDate).
		Set("position", f.Position).
		Set("workPeriod", f.WorkPeriod)

	if f.photo != nil {
		file := *f.photo
		file.Field = "photo"
		p.Attach(file)
	}
	return p
}

func (f *HonoraryEmployeeForm) Fields(Mode) []Field {
	return []Field{
		{Name: "firstName", Label: "Ism", Kind: KindText, Value: f.FirstName, Required: true},
		{Name: "lastName", Label: "Familiya", Kind: KindText, Value: f.LastName, Required: true},
		{Name: "startDate", Label: "Ish boshlagan sana", Kind: KindDate, Value: f.StartDate, Required: true},
		{Name: "endDate", Label: "Ish tugatgan sana", Kind: KindDate, Value: f.EndDate, Required: true},
		{Name: "position", Label: "Lavozim", Kind: KindText, Value: f.Position},
		{Name: "workPeriod", Label: "Ish davri", Kind: KindText, Value: f.WorkPeriod, Hint: "Bo'sh qolsa yillardan hisoblanadi"},
		{Name: "photoUrl", Kind: KindHidden, Value: f.PhotoURL},
		{Name: "photo", Label: "Rasm", Kind: KindFile, Previews: previews(f.photoPreview, f.PhotoURL)},
	}
}

// EventForm carries an ordered photo list. On edit, newly chosen photos
// replace the stored ones when ReplacePhotos is set and are appended
// otherwise.
type EventForm struct {
	Title         string
	Description   string
	EventDate     string
	PhotoURLs     []string
	ReplacePhotos bool

	photos        []apiclient.File
	photoPreviews []string
}

func NewEventForm() *EventForm {
	return &EventForm{}
}

func (f *EventForm) Fill(e apiclient.Event) {
	f.Title = e.Title
	f.Description = e.Description
	f.EventDate = dateOnly(e.EventDate)
	f.PhotoURLs = append([]string(nil), e.Photos...)
}

func (f *EventForm) Bind(in Input) {
	f.Title = in.Get("title")
	f.Description = in.Get("description")
	f.EventDate = in.Get("eventDate")
	f.PhotoURLs = in.Values["photoUrls"]
	f.ReplacePhotos = in.Bool("replacePhotos")

	if files := in.FileList("photos"); len(files) > 0 {
		f.photos = files
		f.photoPreviews = photo.Previews(files)
	}
}

func (f *EventForm) Validate(mode Mode) error {
	var v validation
	v.required("title", f.Title)
	v.required("eventDate", f.EventDate)
	if _, ok := parseDate(f.EventDate); f.EventDate != "" && !ok {
		v.add("eventDate", msgBadDate)
	}
	if err := v.err(msgRequiredAll); err != nil {
		return err
	}

	if mode == Create && len(f.photos) == 0 {
		v.add("photos", msgPhotosRequired)
	}
	return v.err(msgPhotosRequired)
}

func (f *EventForm) Payload(mode Mode) *apiclient.Payload {
	p := apiclient.FormPayload().
		Set("title", f.Title).
		Set("eventDate", f.EventDate).
		Set("description", f.Description)

	for _, file := range f.photos {
		file.Field = "photos"
		p.Attach(file)
	}

	if mode == Update && len(f.photos) > 0 && f.ReplacePhotos {
		p.Set("replacePhotos", "true")
	}
	return p
}

func (f *EventForm) Fields(mode Mode) []Field {
	fields := []Field{
		{Name: "title", Label: "Sarlavha", Kind: KindText, Value: f.Title, Required: true},
		{Name: "eventDate", Label: "Sana", Kind: KindDate, Value: f.EventDate, Required: true},
		{Name: "description", Label: "Tavsif", Kind: KindTextarea, Value: f.Description},
	}
	for _, u := range f.PhotoURLs {
		fields = append(fields, Field{Name: "photoUrls", Kind: KindHidden, Value: u})
	}

	current := f.photoPreviews
	if len(current) == 0 {
		current = append([]string(nil), f.PhotoURLs...)
	}
	fields = append(fields, Field{Name: "photos", Label: "Rasmlar", Kind: KindFiles, Previews: current})

	if mode == Update {
		fields = append(fields, Field{Name: "replacePhotos", Label: "Eski rasmlarni almashtirish", Kind: KindCheckbox, Checked: f.ReplacePhotos})
	}
	return fields
}

type AnnouncementForm struct {
	Title     string
	Content   string
	ExpiresAt string
	IsActive  bool
}

func NewAnnouncementForm() *AnnouncementForm {
	return &AnnouncementForm{IsActive: true}
}

func (f *AnnouncementForm) Fill(a apiclient.Announcement) {
	f.Title = a.Title
	f.Content = a.Content
	f.IsActive = a.IsActive
	if a.ExpiresAt != nil {
		f.ExpiresAt = dateOnly(*a.ExpiresAt)
	}
}

func (f *AnnouncementForm) Bind(in Input) {
	f.Title = in.Get("title")
	f.Content = in.Get("content")
	f.ExpiresAt = in.Get("expiresAt")
	f.IsActive = in.Bool("isActive")
}

func (f *AnnouncementForm) Validate(Mode) error {
	var v validation
	v.required("title", f.Title)
	if _, ok := parseDate(f.ExpiresAt); f.ExpiresAt != "" && !ok {
		v.add("expiresAt", msgBadDate)
	}
	return v.err(msgRequiredAll)
}

// Payload omits blank optional fields on create. On update a blank expiry is
// sent as null so the backend clears it.
func (f *AnnouncementForm) Payload(mode Mode) *apiclient.Payload {
	body := map[string]any{"title": f.Title}
	if f.Content != "" {
		body["content"] = f.Content
	}

	switch {
	case mode == Update:
		body["isActive"] = f.IsActive
		if f.ExpiresAt != "" {
			body["expiresAt"] = f.ExpiresAt
		} else {
			body["expiresAt"] = nil
		}
	case f.ExpiresAt != "":
		body["expiresAt"] = f.ExpiresAt
	}

	return apiclient.JSONPayload(body)
}

func (f *AnnouncementForm) Fields(mode Mode) []Field {
	fields := []Field{
		{Name: "title", Label: "Sarlavha", Kind: KindText, Value: f.Title, Required: true},
		{Name: "content", Label: "Matn", Kind: KindTextarea, Value: f.Content},
		{Name: "expiresAt", Label: "Amal qilish muddati", Kind: KindDate, Value: f.ExpiresAt},
	}
	if mode == Update {
		fields = append(fields, Field{Name: "isActive", Label: "Faol", Kind: KindCheckbox, Checked: f.IsActive})
	}
	return fields
}
