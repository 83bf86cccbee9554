package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestForeignKeyDeleteActions(t *testing.T) {
	tests := []struct {
		name     string
		model    interface{}
		relation string
		onDelete string
	}{
		{"deleting a user keeps their insights", &Insight{}, "Creator", "SET NULL"},
		{"deleting a user keeps their feedback", &Feedback{}, "User", "SET NULL"},
		{"deleting an insight removes its feedback", &Feedback{}, "Insight", "CASCADE"},
		{"deleting a user removes their api key", &ApiKey{}, "User", "CASCADE"},
	}

	cache := &sync.Map{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := schema.Parse(tt.model, cache, schema.NamingStrategy{})
			require.NoError(t, err)

			rel, ok := s.Relationships.Relations[tt.relation]
			require.True(t, ok, "missing relation %s", tt.relation)
			constraint := rel.ParseConstraint()
			require.NotNil(t, constraint)
			assert.Equal(t, tt.onDelete, constraint.OnDelete)
		})
	}
}
