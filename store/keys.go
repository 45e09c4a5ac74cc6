package store

// Keys names the collections stored under one application prefix.
type Keys struct {
	Prefix         string
	Bookings       string
	Ledger         string
	Customers      string
	Extras         string
	Closes         string
	BackupSettings string
}

func NewKeys(prefix string) Keys {
	return Keys{
		Prefix:         prefix,
		Bookings:       prefix + "bookings",
		Ledger:         prefix + "ledger",
		Customers:      prefix + "customers",
		Extras:         prefix + "extras",
		Closes:         prefix + "closes",
		BackupSettings: prefix + "backup-settings",
	}
}
