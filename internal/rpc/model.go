package rpc

type Slide struct {
	ID       string `json:"id,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Title    string `json:"title"`
	Label    string `json:"label,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Link     string `json:"link,omitempty"`
	Badge    string `json:"badge,omitempty"`
}

// Frame is the state of one slider at the moment of the call.
type Frame struct {
	Name     string  `json:"name"`
	State    string  `json:"state"`
	Index    int     `json:"index"`
	Pages    int     `json:"pages"`
	DelayMS  int64   `json:"delayMs"`
	Autoplay bool    `json:"autoplay"`
	Visible  []Slide `json:"visible"`
	Slides   []Slide `json:"slides"`
}

type Board struct {
	BoardID string  `json:"boardId"`
	Layout  string  `json:"layout"`
	Locale  string  `json:"locale"`
	Frames  []Frame `json:"frames"`
}
