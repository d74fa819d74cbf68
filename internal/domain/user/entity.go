package user

// MaxNameLength is the upper bound on a user's display name.
// Longer names are truncated during mapping, not rejected.
const MaxNameLength = 255

// User represents a validated user in the system.
// Every instance is produced by the mapper: ID is positive, Name is
// non-blank, trimmed and at most MaxNameLength characters, and Email is
// trimmed and lowercased. No unvalidated User exists downstream of mapping.
type User struct {
	ID    int64  // ID is the unique identifier for the user
	Name  string // Name is the full name of the user
	Email string // Email is the normalized email address of the user
}
