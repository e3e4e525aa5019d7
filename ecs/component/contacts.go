package component

import "github.com/milk9111/platformer/physics"

// Contacts keeps the resolver result for this tick and the one before it.
type Contacts struct {
	Current  physics.Contacts
	Previous physics.Contacts
}

var ContactsComponent = NewComponent[Contacts]()
