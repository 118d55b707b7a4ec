package domain

// Inventory holds opaque item descriptors. The profile layer never interprets them;
// whatever serializes items on the game side owns the format.
type Inventory struct {
	Items  []string `json:"items"`
	Armor  []string `json:"armor"`
	Hotbar []string `json:"hotbar"`
}

// Clone returns a deep copy.
func (inv Inventory) Clone() Inventory {
	return Inventory{
		Items:  cloneStrings(inv.Items),
		Armor:  cloneStrings(inv.Armor),
		Hotbar: cloneStrings(inv.Hotbar),
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
