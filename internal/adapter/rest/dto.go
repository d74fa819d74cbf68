package rest

// UserDTO is the as-received wire shape of a user record. It is untrusted:
// any field may be missing or malformed, and it is never handed to callers
// without passing through the mapper first. Unknown fields in the payload
// are ignored during decoding.
type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
