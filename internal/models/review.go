package models

// Review is a read-only customer review. The date is a display string;
// nothing in the system parses it.
type Review struct {
	ID     int    `json:"id"`
	Author string `json:"author"`
	Rating int    `json:"rating" validate:"gte=1,lte=5"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}
