package portal

import (
	"html/template"
	"time"
)

const (
	PlaceholderImage = "https://images.unsplash.com/photo-1504711434969-e33886168f5c?w=800&q=80"
	PlaceholderPhoto = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200&q=80"
)

type CategoryRef struct {
	ID    string
	Title string
}

type News struct {
	ID          string
	Title       string
	Slug        string
	Summary     string
	BodyHTML    template.HTML
	ImageURL    string
	Categories  []CategoryRef
	CreatedAt   time.Time
	IsPublished bool
}

type Category struct {
	ID        string
	Slug      string
	Title     string
	ItemCount int
	IsActive  bool
}

type CategoryNews struct {
	Category
	News []News
}

type Employee struct {
	ID        string
	FirstName string
	LastName  string
	PhotoURL  string
	BirthDate time.Time
	Position  string
	IsActive  bool
}

type HonoraryEmployee struct {
	ID         string
	FirstName  string
	LastName   string
	PhotoURL   string
	Position   string
	StartDate  time.Time
	EndDate    time.Time
	WorkPeriod string
	IsActive   bool
}

type Event struct {
	ID          string
	Title       string
	Description string
	PhotoURLs   []string
	EventDate   time.Time
	IsActive    bool
}

type Announcement struct {
	ID        string
	Title     string
	Body      string
	CreatedAt time.Time
	ExpiresAt *time.Time
	IsActive  bool
}

// EventPhoto is one photo of an event, flattened for photo carousels.
type EventPhoto struct {
	PhotoURL   string
	Title      string
	EventDate  time.Time
	PhotoCount int
}

type Stats struct {
	News              int
	Categories        int
	Employees         int
	HonoraryEmployees int
	Events            int
	Announcements     int
}
