package mapper

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"userfeed/internal/adapter/rest"
	"userfeed/internal/domain/user"
)

// wireEmailPattern accepts local-part@domain with ASCII letters, digits and
// +_.- in the local part, letters, digits and .- in the domain. A TLD
// segment is not required.
var wireEmailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)

// candidate carries the normalized fields through tag validation.
type candidate struct {
	ID    int64  `validate:"gt=0"`
	Name  string `validate:"required"`
	Email string `validate:"required,wireemail"`
}

// Mapper turns untrusted wire records into validated domain Users.
// It is safe for concurrent use; Map is a pure function of its input.
type Mapper struct {
	validate *validator.Validate
}

// New creates a Mapper with the wire email rule registered.
func New() *Mapper {
	v := validator.New()
	// RegisterValidation only errors on an empty tag or nil func.
	_ = v.RegisterValidation("wireemail", func(fl validator.FieldLevel) bool {
		return wireEmailPattern.MatchString(fl.Field().String())
	})
	return &Mapper{validate: v}
}

// Map validates and normalizes dto. The returned bool is false when the
// record is rejected: non-positive ID, blank name after trimming, or an
// email that fails the wire pattern. Names longer than user.MaxNameLength
// are truncated, not rejected. Rejection never panics and produces no User.
func (m *Mapper) Map(dto rest.UserDTO) (user.User, bool) {
	name := strings.TrimSpace(dto.Name)
	if runes := []rune(name); len(runes) > user.MaxNameLength {
		// The cut can land after a space, so trim again.
		name = strings.TrimSpace(string(runes[:user.MaxNameLength]))
	}

	c := candidate{
		ID:    dto.ID,
		Name:  name,
		Email: strings.ToLower(strings.TrimSpace(dto.Email)),
	}
	if err := m.validate.Struct(c); err != nil {
		return user.User{}, false
	}

	return user.User{ID: c.ID, Name: c.Name, Email: c.Email}, true
}
