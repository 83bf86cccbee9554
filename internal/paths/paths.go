// Package paths builds the canonical URLs of API resources.
package paths

import (
	"fmt"
	"net/url"
)

// Base is the mount point of the resource API.
const Base = "/api"

func Users() string { return Base + "/users/" }

func User(username string) string {
	return fmt.Sprintf("%s/users/%s/", Base, url.PathEscape(username))
}

func UserInsights(username string) string { return User(username) + "insights/" }

func UserInsight(username string, insightID uint) string {
	return fmt.Sprintf("%s%d/", UserInsights(username), insightID)
}

func UserInsightFeedbacks(username string, insightID uint) string {
	return UserInsight(username, insightID) + "feedbacks/"
}

func UserInsightFeedback(username string, insightID, feedbackID uint) string {
	return fmt.Sprintf("%s%d/", UserInsightFeedbacks(username, insightID), feedbackID)
}

func UserFeedbacks(username string) string { return User(username) + "feedbacks/" }

func UserFeedback(username string, feedbackID uint) string {
	return fmt.Sprintf("%s%d/", UserFeedbacks(username), feedbackID)
}

func Insights() string { return Base + "/insights/" }

func Insight(id uint) string { return fmt.Sprintf("%s%d/", Insights(), id) }

func InsightFeedbacks(insightID uint) string { return Insight(insightID) + "feedbacks/" }

func InsightFeedback(insightID, feedbackID uint) string {
	return fmt.Sprintf("%s%d/", InsightFeedbacks(insightID), feedbackID)
}
