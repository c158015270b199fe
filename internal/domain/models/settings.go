package models

// Settings is a singleton-ish record: reads take the first row, updates
// target that row's id.
type Settings struct {
	ID        int64  `json:"id"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}
