package models

// SelectedAddOn is one entry of an in-progress customization: an add-on
// plus how many of it the customer wants. Quantity is always >= 1; a
// quantity of zero is expressed by the entry not existing at all.
type SelectedAddOn struct {
	AddOn
	Quantity int `json:"quantity"`
}

// AddOnSelection is the customization draft built up in the item dialog
// before a line is committed to the cart. Entries keep insertion order.
// The zero value is an empty selection ready to use.
type AddOnSelection struct {
	entries []SelectedAddOn
}

// SetQuantity sets the chosen quantity for an add-on. A quantity of
// zero or less removes the entry; a positive quantity inserts the entry
// or replaces the previous quantity outright, it never accumulates.
func (s *AddOnSelection) SetQuantity(addOn AddOn, quantity int) {
	for i := range s.entries {
		if s.entries[i].ID == addOn.ID {
			if quantity <= 0 {
				s.entries = append(s.entries[:i], s.entries[i+1:]...)
				return
			}
			s.entries[i].Quantity = quantity
			return
		}
	}
	if quantity <= 0 {
		return
	}
	s.entries = append(s.entries, SelectedAddOn{AddOn: addOn, Quantity: quantity})
}

// Quantity reports the chosen quantity for an add-on id, zero when the
// add-on is not selected.
func (s *AddOnSelection) Quantity(addOnID string) int {
	for _, e := range s.entries {
		if e.ID == addOnID {
			return e.Quantity
		}
	}
	return 0
}

// Entries returns a copy of the current selection in insertion order.
func (s *AddOnSelection) Entries() []SelectedAddOn {
	out := make([]SelectedAddOn, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports how many distinct add-ons are selected.
func (s *AddOnSelection) Len() int {
	return len(s.entries)
}

// Flatten expands the selection into the occurrence list the cart
// accepts: each add-on appears exactly quantity times, carrying no
// quantity field of its own.
func (s *AddOnSelection) Flatten() []AddOn {
	var flat []AddOn
	for _, e := range s.entries {
		for i := 0; i < e.Quantity; i++ {
			flat = append(flat, e.AddOn)
		}
	}
	return flat
}

// GroupAddOns is the inverse of Flatten: it re-groups an occurrence
// list by add-on id, preserving first-seen order.
func GroupAddOns(addOns []AddOn) []SelectedAddOn {
	var grouped []SelectedAddOn
	for _, addOn := range addOns {
		found := false
		for i := range grouped {
			if grouped[i].ID == addOn.ID {
				grouped[i].Quantity++
				found = true
				break
			}
		}
		if !found {
			grouped = append(grouped, SelectedAddOn{AddOn: addOn, Quantity: 1})
		}
	}
	return grouped
}
