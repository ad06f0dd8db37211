package checkout

import (
	"sync"

	"github.com/velas-starlight/storefront/internal/domain"
)

// ContactForm is a ShippingForm backed by a submitted shipping contact.
// It is valid once the required fields are present, at which point Data
// is guaranteed complete.
type ContactForm struct {
	mu      sync.Mutex
	contact domain.ShippingContact
}

func NewContactForm() *ContactForm {
	return &ContactForm{}
}

// Set replaces the stored shipping contact.
func (f *ContactForm) Set(contact domain.ShippingContact) {
	f.mu.Lock()
	f.contact = contact
	f.mu.Unlock()
}

// IsValid reports whether the required shipping fields are filled in.
func (f *ContactForm) IsValid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.contact
	return c.FullName != "" && c.Email != "" && c.Street != "" && c.City != "" && c.PostalCode != ""
}

// Data returns the stored shipping contact.
func (f *ContactForm) Data() domain.ShippingContact {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.contact
}
