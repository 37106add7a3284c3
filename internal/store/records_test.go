package store

import (
	"testing"

	"github.com/joshua-takyi/streetbite/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func review(storeID string, rating int) models.NewReviewInput {
	return models.NewReviewInput{StoreID: storeID, CustomerID: "c1", CustomerName: "kim", Rating: rating, Comment: "ok"}
}

func TestAddReview_Scenario(t *testing.T) {
	s := newTestStore(WithFixtures(DefaultFixtures(testNow)))

	_, err := s.AddReview(review("1", 5))
	require.NoError(t, err)
	_, err = s.AddReview(review("1", 3))
	require.NoError(t, err)

	st, _ := s.GetStoreByID("1")
	assert.Equal(t, 4.0, st.AverageRating)
	assert.Equal(t, 2, st.ReviewCount)
	assert.Len(t, s.GetReviewsByStore("1"), 2)
}

func TestAddReview_AverageRounding(t *testing.T) {
	tests := []struct {
		ratings []int
		want    float64
	}{
		{[]int{5}, 5.0},
		{[]int{5, 4, 4}, 4.3},
		{[]int{1, 2}, 1.5},
		{[]int{5, 5, 4}, 4.7},
		{[]int{1, 1, 1, 2, 2, 2, 2}, 1.6},
	}
	for _, tt := range tests {
		s := newTestStore(WithFixtures(DefaultFixtures(testNow)))
		for _, r := range tt.ratings {
			_, err := s.AddReview(review("2", r))
			require.NoError(t, err)
		}
		st, _ := s.GetStoreByID("2")
		assert.Equal(t, tt.want, st.AverageRating, "ratings %v", tt.ratings)
		assert.Equal(t, len(tt.ratings), st.ReviewCount)

		other, _ := s.GetStoreByID("1")
		assert.Zero(t, other.ReviewCount)
	}
}

func TestAddReview_Validation(t *testing.T) {
	s := newTestStore(WithFixtures(DefaultFixtures(testNow)))
	for _, rating := range []int{0, 6, -1} {
		_, err := s.AddReview(review("1", rating))
		assert.Error(t, err, "rating %d", rating)
	}
	st, _ := s.GetStoreByID("1")
	assert.Zero(t, st.ReviewCount)
}

func TestAddReview_SanitizesImages(t *testing.T) {
	s := newTestStore()
	in := review("1", 4)
	in.Comment = "  tasty  "
	in.Images = []string{"a.jpg", " a.jpg", "b.jpg"}

	r, err := s.AddReview(in)
	require.NoError(t, err)
	assert.Equal(t, "tasty", r.Comment)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, r.Images)
}

func TestPosts(t *testing.T) {
	s := newTestStore()

	first, err := s.AddPost(models.NewPostInput{Title: "t1", Content: "c1", AuthorID: "u1", AuthorName: "n", AuthorRole: models.RoleCustomer})
	require.NoError(t, err)
	assert.Zero(t, first.Likes)
	assert.Empty(t, first.Comments)
	assert.Equal(t, testNow, first.CreatedAt)

	second, err := s.AddPost(models.NewPostInput{Title: "t2", Content: "c2", AuthorID: "u2", AuthorName: "n", AuthorRole: models.RoleStore, StoreID: "1"})
	require.NoError(t, err)

	posts := s.GetPosts()
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)

	_, err = s.AddPost(models.NewPostInput{Title: "t", Content: "c", AuthorID: "g", AuthorName: "guest", AuthorRole: models.RoleGuest})
	assert.Error(t, err)
}

func TestLikePost_NoDedup(t *testing.T) {
	s := newTestStore()
	p, err := s.AddPost(models.NewPostInput{Title: "t", Content: "c", AuthorID: "u", AuthorName: "n", AuthorRole: models.RoleCustomer})
	require.NoError(t, err)

	const n = 37
	for i := 0; i < n; i++ {
		require.True(t, s.LikePost(p.ID))
	}
	got, _ := s.GetPostByID(p.ID)
	assert.Equal(t, n, got.Likes)
}

func TestAddCommentToPost(t *testing.T) {
	s := newTestStore(WithFixtures(DefaultFixtures(testNow)))

	c, ok, err := s.AddCommentToPost("post1", models.NewCommentInput{Content: "first", AuthorID: "u", AuthorName: "n"})
	require.NoError(t, err)
	require.True(t, ok)
	_, _, err = s.AddCommentToPost("post1", models.NewCommentInput{Content: "second", AuthorID: "u", AuthorName: "n"})
	require.NoError(t, err)

	p, _ := s.GetPostByID("post1")
	require.Len(t, p.Comments, 2)
	assert.Equal(t, c.ID, p.Comments[0].ID)
	assert.Equal(t, "second", p.Comments[1].Content)

	_, _, err = s.AddCommentToPost("post1", models.NewCommentInput{AuthorID: "u", AuthorName: "n"})
	assert.Error(t, err)
}

func TestReservations(t *testing.T) {
	s := newTestStore()
	in := models.NewReservationInput{
		StoreID: "1", CustomerID: "c1", CustomerName: "kim",
		Date: "2025-03-20", Time: "18:30", People: 2, Menu: []string{"붕어빵"},
	}

	r, err := s.AddReservation(in)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationPending, r.Status)
	assert.Equal(t, testNow, r.CreatedAt)

	in.Status = models.ReservationConfirmed
	in.CustomerID = "c2"
	r2, err := s.AddReservation(in)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationConfirmed, r2.Status)

	assert.Len(t, s.GetReservationsByStore("1"), 2)
	assert.Len(t, s.GetReservationsByCustomer("c1"), 1)

	updated, prev, ok := s.UpdateReservationStatus(r.ID, models.ReservationCancelled)
	require.True(t, ok)
	assert.Equal(t, models.ReservationCancelled, updated.Status)
	assert.Equal(t, models.ReservationPending, prev)

	_, prev, ok = s.UpdateReservationStatus(r.ID, models.ReservationConfirmed)
	require.True(t, ok)
	assert.Equal(t, models.ReservationCancelled, prev)

	_, _, ok = s.UpdateReservationStatus(r.ID, "bogus")
	assert.False(t, ok)

	bad := in
	bad.Time = "6pm"
	_, err = s.AddReservation(bad)
	assert.Error(t, err)
	bad = in
	bad.Menu = nil
	_, err = s.AddReservation(bad)
	assert.Error(t, err)
}

func notification(userID string) models.NewNotificationInput {
	return models.NewNotificationInput{UserID: userID, Type: models.NotificationNewStore, Title: "new store"}
}

func TestNotifications(t *testing.T) {
	s := newTestStore()

	a1, err := s.AddNotification(notification("alice"))
	require.NoError(t, err)
	a2, err := s.AddNotification(notification("alice"))
	require.NoError(t, err)
	_, err = s.AddNotification(notification("bob"))
	require.NoError(t, err)

	list := s.GetNotifications("alice")
	require.Len(t, list, 2)
	assert.Equal(t, a2.ID, list[0].ID, "newest first")
	assert.Equal(t, 2, s.UnreadCount("alice"))

	require.True(t, s.MarkNotificationAsRead(a1.ID))
	require.True(t, s.MarkNotificationAsRead(a1.ID))
	n, _ := s.GetNotificationByID(a1.ID)
	assert.True(t, n.IsRead)
	assert.Equal(t, 1, s.UnreadCount("alice"))

	assert.Equal(t, 1, s.MarkAllNotificationsAsRead("alice"))
	assert.Zero(t, s.UnreadCount("alice"))
	assert.Equal(t, 1, s.UnreadCount("bob"))
	for _, n := range s.GetNotifications("alice") {
		assert.True(t, n.IsRead)
	}

	_, err = s.AddNotification(models.NewNotificationInput{UserID: "alice", Type: "spam", Title: "x"})
	assert.Error(t, err)
}

func TestChatMessages(t *testing.T) {
	s := newTestStore(WithFixtures(DefaultFixtures(testNow)))

	m, err := s.AddChatMessage(models.NewChatMessageInput{StoreID: "1", Sender: models.SenderCustomer, SenderID: "c1", SenderName: "kim", Content: "  5개 주세요 "})
	require.NoError(t, err)
	assert.Equal(t, "5개 주세요", m.Content)

	msgs := s.GetChatMessages("1")
	require.Len(t, msgs, 3)
	assert.Equal(t, m.ID, msgs[2].ID)
	assert.Empty(t, s.GetChatMessages("2"))

	_, err = s.AddChatMessage(models.NewChatMessageInput{StoreID: "1", Sender: models.SenderCustomer, SenderID: "c1", Content: "   "})
	assert.Error(t, err)
}

func TestUsers(t *testing.T) {
	s := newTestStore()

	u := s.RegisterUser(models.User{ID: "u1", Role: models.RoleCustomer, Name: "kim"})
	assert.Equal(t, testNow, u.CreatedAt)
	s.RegisterUser(models.User{ID: "u2", Role: models.RoleStore})
	s.RegisterUser(models.User{ID: "u0", Role: models.RoleCustomer})

	customers := s.GetUsersByRole(models.RoleCustomer)
	require.Len(t, customers, 2)
	assert.Equal(t, "u0", customers[0].ID)

	s.RegisterUser(models.User{ID: "u1", Role: models.RoleStore, Name: "kim"})
	got, ok := s.GetUser("u1")
	require.True(t, ok)
	assert.Equal(t, models.RoleStore, got.Role)
	assert.Len(t, s.GetUsersByRole(models.RoleCustomer), 1)
}
