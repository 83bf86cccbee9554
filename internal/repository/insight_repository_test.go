package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geometa/internal/model"
)

var insightColumns = []string{"id", "title", "longitude", "latitude", "creator", "category"}

func TestInsightRepository_Search_CombinesFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInsightRepository(db)

	mock.ExpectQuery("SELECT `insights`.`id`.* FROM `insights` JOIN users ON users.id = insights.creator " +
		"WHERE \\(insights.longitude BETWEEN \\? AND \\? AND insights.latitude BETWEEN \\? AND \\?\\) " +
		"AND users.username = \\? AND insights.category = \\? ORDER BY insights.id").
		WillReturnRows(sqlmock.NewRows(insightColumns).AddRow(1, "Cafe", 25.47, 65.01, nil, "Food"))

	insights, err := repo.Search(context.Background(), InsightFilter{
		BBox:     &BBox{MinLon: 25, MinLat: 65, MaxLon: 26, MaxLat: 66},
		Username: "alice",
		Category: "Food",
	})
	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, "Cafe", insights[0].Title)
	assert.Nil(t, insights[0].Creator)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsightRepository_Search_NoFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInsightRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `insights` ORDER BY insights.id").
		WillReturnRows(sqlmock.NewRows(insightColumns))

	insights, err := repo.Search(context.Background(), InsightFilter{})
	require.NoError(t, err)
	assert.Empty(t, insights)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsightRepository_FindByID_PreloadsCreator(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInsightRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `insights` WHERE `insights`.`id` = \\?").
		WillReturnRows(sqlmock.NewRows(insightColumns).AddRow(2, "Park", 24.9, 60.2, 3, nil))
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE `users`.`id` = \\?").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(3, "bob", "bob@example.com", "hash", "Bob", "", "ACTIVE", "USER"))

	insight, err := repo.FindByID(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, insight.CreatorName())
	assert.Equal(t, "bob", *insight.CreatorName())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsightRepository_RatingStats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInsightRepository(db)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(rating\\), 0\\) AS sum, COUNT\\(rating\\) AS count FROM `feedbacks` WHERE insight_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"sum", "count"}).AddRow(8, 2))

	stats, err := repo.RatingStats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.RatingStats{Sum: 8, Count: 2}, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsightRepository_Update_SkipsAssociations(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInsightRepository(db)

	mock.ExpectExec("UPDATE `insights` SET").WillReturnResult(sqlmock.NewResult(0, 1))

	insight := &model.Insight{ID: 2, Title: "Park", CreatorID: uintPtr(3), Creator: &model.User{ID: 3}}
	require.NoError(t, repo.Update(context.Background(), insight))
	assert.NoError(t, mock.ExpectationsWereMet())
}
