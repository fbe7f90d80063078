package domain

// ContactInquiry is a contact form submission. It is validated, handed to
// the notifier and dropped; nothing is persisted.
type ContactInquiry struct {
	Name        string
	Email       string
	Phone       string // optional
	InquiryType string
	Message     string
}
