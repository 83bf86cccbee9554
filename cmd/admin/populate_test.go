package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"geometa/internal/model"
	"geometa/internal/repository/mocks"
	"geometa/internal/service"
)

func TestPopulate(t *testing.T) {
	users := new(mocks.UserRepository)
	insights := new(mocks.InsightRepository)
	feedbacks := new(mocks.FeedbackRepository)

	nextID := uint(0)
	assignUserID := func(args mock.Arguments) {
		nextID++
		args.Get(1).(*model.User).ID = nextID
	}
	users.On("Taken", mock.Anything, mock.Anything, mock.Anything, uint(0)).Return(false, nil)
	users.On("Register", mock.Anything, mock.MatchedBy(func(u *model.User) bool { return u.Username == "admin_test" }),
		mock.MatchedBy(func(k *model.ApiKey) bool { return k.Admin })).Run(assignUserID).Return(nil).Once()
	users.On("Register", mock.Anything, mock.MatchedBy(func(u *model.User) bool { return u.Username == "user_test" }),
		mock.MatchedBy(func(k *model.ApiKey) bool { return !k.Admin })).Run(assignUserID).Return(nil).Once()

	insightID := uint(0)
	insights.On("Create", mock.Anything, mock.AnythingOfType("*model.Insight")).
		Run(func(args mock.Arguments) {
			insightID++
			args.Get(1).(*model.Insight).ID = insightID
		}).Return(nil).Twice()
	feedbacks.On("Create", mock.Anything, mock.MatchedBy(func(f *model.Feedback) bool {
		return f.InsightID == 2 && *f.UserID == 2 && *f.Rating == 5
	})).Return(nil).Once()

	svc := services{
		users:     service.NewUserService(users, insights, feedbacks, nil, bcrypt.MinCost),
		insights:  service.NewInsightService(insights, feedbacks, nil),
		feedbacks: service.NewFeedbackService(feedbacks, nil),
	}
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, populate(context.Background(), cmd, svc))

	assert.Contains(t, out.String(), "admin_test / adminpass, API key: ")
	users.AssertExpectations(t)
	insights.AssertExpectations(t)
	feedbacks.AssertExpectations(t)
}

func TestCreateAdminRequiresThreeArgs(t *testing.T) {
	assert.Error(t, createAdminCmd.Args(createAdminCmd, []string{"root", "root@example.com"}))
	assert.NoError(t, createAdminCmd.Args(createAdminCmd, []string{"root", "root@example.com", "pw"}))
}
