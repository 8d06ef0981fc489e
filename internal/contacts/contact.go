// Package contacts is the demo record type and its SQLite fixture store.
package contacts

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Contact is one row of the demo table. Column layout comes from the
// table tags.
type Contact struct {
	ID     string    `json:"id" table:"order=0,label=ID,readonly"`
	Name   string    `json:"name" table:"order=1"`
	Age    int       `json:"age" table:"order=2"`
	Email  string    `json:"email" table:"order=3,label=E-mail"`
	Tags   []string  `json:"tags"`
	Active bool      `json:"active"`
	Joined time.Time `json:"joined" table:"editable=false"`
}

// New returns a contact with a fresh time-ordered ID.
func New(name string, age int, email string, joined time.Time) (Contact, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Contact{}, fmt.Errorf("generate id: %w", err)
	}
	return Contact{
		ID:     id.String(),
		Name:   name,
		Age:    age,
		Email:  email,
		Active: true,
		Joined: joined,
	}, nil
}

// Samples returns the fixture rows written on first run.
func Samples(now time.Time) ([]Contact, error) {
	seed := []struct {
		name  string
		age   int
		email string
		tags  []string
		days  int
	}{
		{"Bea", 30, "bea@example.com", []string{"team"}, 400},
		{"Al", 25, "al@example.com", nil, 120},
		{"Carmen", 41, "carmen@example.com", []string{"ops", "oncall"}, 900},
		{"Dmitri", 35, "dmitri@example.com", []string{"team"}, 35},
	}
	out := make([]Contact, 0, len(seed))
	for _, s := range seed {
		c, err := New(s.name, s.age, s.email, now.AddDate(0, 0, -s.days).Truncate(time.Second))
		if err != nil {
			return nil, err
		}
		c.Tags = s.tags
		out = append(out, c)
	}
	return out, nil
}
