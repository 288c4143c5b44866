package app

// Event represents a single calendar entry
type Event struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Record is the wire form of an event (date|title|text), without the id
type Record struct {
	Date  string
	Title string
	Text  string
}

// Record returns the wire form of the event
func (e Event) Record() Record {
	return Record{Date: e.Date, Title: e.Title, Text: e.Text}
}

// Apply replaces the event's fields with the record's, keeping the id
func (r Record) Apply(e *Event) {
	e.Date = r.Date
	e.Title = r.Title
	e.Text = r.Text
}
