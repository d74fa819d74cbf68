package mapper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"userfeed/internal/adapter/rest"
	"userfeed/internal/domain/user"
)

func TestMap_NormalizesValidRecord(t *testing.T) {
	m := New()

	u, ok := m.Map(rest.UserDTO{ID: 7, Name: "  Ann ", Email: "ANN@EXAMPLE.COM"})

	assert.True(t, ok)
	assert.Equal(t, user.User{ID: 7, Name: "Ann", Email: "ann@example.com"}, u)
}

func TestMap_RejectsZeroID(t *testing.T) {
	m := New()

	_, ok := m.Map(rest.UserDTO{ID: 0, Name: "Ann", Email: "ann@example.com"})

	assert.False(t, ok)
}

func TestMap_RejectsNegativeID(t *testing.T) {
	m := New()

	_, ok := m.Map(rest.UserDTO{ID: -1, Name: "Ann", Email: "ann@example.com"})

	assert.False(t, ok)
}

func TestMap_RejectsEmptyName(t *testing.T) {
	m := New()

	_, ok := m.Map(rest.UserDTO{ID: 7, Name: "", Email: "ann@example.com"})

	assert.False(t, ok)
}

func TestMap_RejectsWhitespaceOnlyName(t *testing.T) {
	m := New()

	_, ok := m.Map(rest.UserDTO{ID: 7, Name: "   \t ", Email: "ann@example.com"})

	assert.False(t, ok)
}

func TestMap_TruncatesLongName(t *testing.T) {
	m := New()
	longName := strings.Repeat("a", 300)

	u, ok := m.Map(rest.UserDTO{ID: 7, Name: longName, Email: "ann@example.com"})

	assert.True(t, ok)
	assert.Len(t, u.Name, user.MaxNameLength)
	assert.Equal(t, strings.Repeat("a", 255), u.Name)
}

func TestMap_TrimsTrailingSpaceAfterTruncation(t *testing.T) {
	m := New()
	// The 255th rune is a space, so the cut leaves trailing whitespace.
	name := strings.Repeat("a", 254) + " " + strings.Repeat("b", 40)

	u, ok := m.Map(rest.UserDTO{ID: 7, Name: name, Email: "ann@example.com"})

	assert.True(t, ok)
	assert.Equal(t, strings.Repeat("a", 254), u.Name)
	assert.Equal(t, strings.TrimSpace(u.Name), u.Name)
}

func TestMap_RejectsEmailWithoutAtSign(t *testing.T) {
	m := New()

	_, ok := m.Map(rest.UserDTO{ID: 7, Name: "Ann", Email: "ann.example.com"})

	assert.False(t, ok)
}

func TestMap_RejectsEmailWithSpaces(t *testing.T) {
	m := New()

	_, ok := m.Map(rest.UserDTO{ID: 7, Name: "Ann", Email: "an n@example.com"})

	assert.False(t, ok)
}

func TestMap_RejectsEmptyEmail(t *testing.T) {
	m := New()

	_, ok := m.Map(rest.UserDTO{ID: 7, Name: "Ann", Email: "  "})

	assert.False(t, ok)
}

func TestMap_AcceptsEmailWithoutTLD(t *testing.T) {
	m := New()

	u, ok := m.Map(rest.UserDTO{ID: 7, Name: "Ann", Email: "ann@localhost"})

	assert.True(t, ok)
	assert.Equal(t, "ann@localhost", u.Email)
}

func TestMap_AcceptsPlusAndDotsInLocalPart(t *testing.T) {
	m := New()

	u, ok := m.Map(rest.UserDTO{ID: 7, Name: "Ann", Email: "ann+feed.01@mail-host.example"})

	assert.True(t, ok)
	assert.Equal(t, "ann+feed.01@mail-host.example", u.Email)
}

func TestMap_IsDeterministic(t *testing.T) {
	m := New()
	dto := rest.UserDTO{ID: 7, Name: " Ann ", Email: "ANN@example.com"}

	first, okFirst := m.Map(dto)
	second, okSecond := m.Map(dto)

	assert.True(t, okFirst)
	assert.True(t, okSecond)
	assert.Equal(t, first, second)
}
