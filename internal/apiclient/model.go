package apiclient

import (
	"encoding/json"
	"net/url"
	"strconv"
	"time"
)

// Envelope wraps every backend response.
type Envelope[T any] struct {
	Success    bool        `json:"success"`
	Data       T           `json:"data"`
	Error      string      `json:"error,omitempty"`
	Message    string      `json:"message,omitempty"`
	Count      *int        `json:"count,omitempty"`
	Total      *int        `json:"total,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination accepts both spellings the backend uses:
// currentPage/totalItems/itemsPerPage and page/total/limit.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

func (p *Pagination) UnmarshalJSON(b []byte) error {
	var raw struct {
		CurrentPage  *int `json:"currentPage"`
		Page         *int `json:"page"`
		TotalPages   int  `json:"totalPages"`
		TotalItems   *int `json:"totalItems"`
		Total        *int `json:"total"`
		ItemsPerPage *int `json:"itemsPerPage"`
		Limit        *int `json:"limit"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*p = Pagination{
		CurrentPage:  firstSet(raw.CurrentPage, raw.Page),
		TotalPages:   raw.TotalPages,
		TotalItems:   firstSet(raw.TotalItems, raw.Total),
		ItemsPerPage: firstSet(raw.ItemsPerPage, raw.Limit),
	}
	return nil
}

func firstSet(vals ...*int) int {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0
}

// ListParams are the list filters shared by all collection endpoints.
type ListParams struct {
	Page      int
	Limit     int
	Active    *bool
	Published *bool
	Search    string
	Category  string
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Active != nil {
		q.Set("active", strconv.FormatBool(*p.Active))
	}
	if p.Published != nil {
		q.Set("published", strconv.FormatBool(*p.Published))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	return q
}

type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CategoryInfo struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type News struct {
	ID          string        `json:"_id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Content     string        `json:"content"`
	Summary     string        `json:"summary,omitempty"`
	Image       string        `json:"image"`
	Images      []string      `json:"images,omitempty"`
	Categories  []CategoryRef `json:"categories"`
	Category    *CategoryInfo `json:"category,omitempty"`
	Author      string        `json:"author,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	IsPublished bool          `json:"isPublished"`
	IsActive    bool          `json:"isActive"`
	Views       int           `json:"views"`
	PublishedAt *time.Time    `json:"publishedAt,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type Category struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	NewsCount   int       `json:"newsCount,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Employee struct {
	ID        string    `json:"_id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Photo     string    `json:"photo"`
	BirthDate time.Time `json:"birthDate"`
	Position  string    `json:"position,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type HonoraryEmployee struct {
	ID         string    `json:"_id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Photo      string    `json:"photo"`
	Position   string    `json:"position,omitempty"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	WorkPeriod string    `json:"workPeriod,omitempty"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Event struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Photos      []string  `json:"photos"`
	EventDate   time.Time `json:"eventDate"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Announcement struct {
	ID        string     `json:"_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
}

type Admin struct {
	ID        string     `json:"_id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

type LoginResult struct {
	Admin Admin  `json:"admin"`
	Token string `json:"token"`
}

type Upload struct {
	URL string `json:"url"`
}

func (n News) RecordID() string             { return n.ID }
func (c Category) RecordID() string         { return c.ID }
func (e Employee) RecordID() string         { return e.ID }
func (e HonoraryEmployee) RecordID() string { return e.ID }
func (e Event) RecordID() string            { return e.ID }
func (a Announcement) RecordID() string     { return a.ID }
