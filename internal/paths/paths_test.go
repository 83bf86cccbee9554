package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"users", Users(), "/api/users/"},
		{"user", User("alice"), "/api/users/alice/"},
		{"user escaped", User("a b"), "/api/users/a%20b/"},
		{"user insights", UserInsights("alice"), "/api/users/alice/insights/"},
		{"user insight", UserInsight("alice", 4), "/api/users/alice/insights/4/"},
		{"nested feedbacks", UserInsightFeedbacks("alice", 4), "/api/users/alice/insights/4/feedbacks/"},
		{"nested feedback", UserInsightFeedback("alice", 4, 9), "/api/users/alice/insights/4/feedbacks/9/"},
		{"user feedbacks", UserFeedbacks("alice"), "/api/users/alice/feedbacks/"},
		{"user feedback", UserFeedback("alice", 9), "/api/users/alice/feedbacks/9/"},
		{"insights", Insights(), "/api/insights/"},
		{"insight", Insight(4), "/api/insights/4/"},
		{"insight feedbacks", InsightFeedbacks(4), "/api/insights/4/feedbacks/"},
		{"insight feedback", InsightFeedback(4, 9), "/api/insights/4/feedbacks/9/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
