package store

import (
	"time"

	"github.com/joshua-takyi/streetbite/internal/models"
)

type Fixtures struct {
	Stores    []models.Store
	Posts     []models.CommunityPost // newest first
	Reviews   []models.Review
	Analytics []models.LocationAnalytics
	Messages  []models.ChatMessage
}

// DefaultFixtures is the demo data set around Myeong-dong. Timestamps are
// laid out relative to now.
func DefaultFixtures(now time.Time) Fixtures {
	return Fixtures{
		Stores: []models.Store{
			{
				ID:           "1",
				Name:         "할머니 붕어빵",
				Category:     "붕어빵 · 호떡",
				IsOpen:       true,
				Menu:         []string{"붕어빵", "호떡", "군고구마"},
				Location:     models.Location{Lat: 37.5665, Lng: 126.9780, Address: "서울시 중구 명동길 26"},
				OwnerID:      "owner1",
				Phone:        "010-1234-5678",
				OpeningHours: "15:00 - 24:00",
				ViewCount:    128,
			},
			{
				ID:           "2",
				Name:         "김밥천국 포장마차",
				Category:     "김밥 · 떡볶이",
				IsOpen:       true,
				Menu:         []string{"떡볶이", "김밥", "순대", "어묵"},
				Location:     models.Location{Lat: 37.5660, Lng: 126.9785, Address: "서울시 중구 명동2가 54-1"},
				OwnerID:      "owner2",
				Phone:        "010-2345-6789",
				OpeningHours: "14:00 - 23:00",
				ViewCount:    96,
			},
			{
				ID:           "3",
				Name:         "맛있는 어묵집",
				Category:     "어묵 · 오뎅",
				IsOpen:       false,
				Menu:         []string{"어묵", "오뎅탕", "만두"},
				Location:     models.Location{Lat: 37.5670, Lng: 126.9790, Address: "서울시 중구 충무로1가 25-5"},
				OwnerID:      "owner3",
				Phone:        "010-3456-7890",
				OpeningHours: "16:00 - 22:00",
			},
			{
				ID:       "4",
				Name:     "길거리 토스트",
				Category: "토스트 · 샌드위치",
				IsOpen:   true,
				Menu:     []string{"햄에그토스트", "치즈토스트", "베이컨토스트", "야채토스트"},
				Location: models.Location{Lat: 37.5655, Lng: 126.9775, Address: "서울시 중구 소공동 87"},
				OwnerID:  "owner4",
			},
			{
				ID:           "5",
				Name:         "전통 호떡가게",
				Category:     "호떡 · 전통간식",
				IsOpen:       true,
				Menu:         []string{"씨앗호떡", "흑설탕호떡", "녹차호떡"},
				Location:     models.Location{Lat: 37.5675, Lng: 126.9795, Address: "서울시 중구 을지로1가 16"},
				OwnerID:      "owner5",
				IsGpsTracked: true,
			},
			{
				ID:       "6",
				Name:     "야식이네 포장마차",
				Category: "야식 · 안주",
				IsOpen:   false,
				Menu:     []string{"라면", "김치찌개", "계란말이", "소시지"},
				Location: models.Location{Lat: 37.5650, Lng: 126.9770, Address: "서울시 중구 회현동1가 100-1"},
				OwnerID:  "owner6",
			},
		},
		Posts: []models.CommunityPost{
			{
				ID:         "post2",
				Title:      "명동 붕어빵 맛집 추천",
				Content:    "할머니 붕어빵 팥이 정말 꽉 차 있어요. 저녁 7시쯤 가면 줄이 짧아요.",
				AuthorID:   "customer1",
				AuthorName: "김고객",
				AuthorRole: models.RoleCustomer,
				StoreID:    "1",
				StoreName:  "할머니 붕어빵",
				CreatedAt:  now.Add(-2 * time.Hour),
				Likes:      12,
				Comments: []models.Comment{
					{ID: "comment1", Content: "저도 어제 다녀왔어요!", AuthorID: "customer2", AuthorName: "이손님", CreatedAt: now.Add(-90 * time.Minute)},
				},
			},
			{
				ID:         "post1",
				Title:      "이번 주 위치 안내",
				Content:    "이번 주는 명동2가 입구에서 영업합니다.",
				AuthorID:   "owner2",
				AuthorName: "김밥천국 포장마차",
				AuthorRole: models.RoleStore,
				StoreID:    "2",
				StoreName:  "김밥천국 포장마차",
				CreatedAt:  now.Add(-26 * time.Hour),
				Likes:      4,
				Comments:   []models.Comment{},
			},
		},
		Analytics: analyticsWeek(now, "1", "명동길 26", "명동역 6번 출구"),
		Messages: []models.ChatMessage{
			{ID: "msg1", StoreID: "1", Sender: models.SenderCustomer, SenderID: "customer1", SenderName: "김고객", Content: "안녕하세요! 붕어빵 아직 남아있나요?", CreatedAt: now.Add(-5 * time.Minute)},
			{ID: "msg2", StoreID: "1", Sender: models.SenderStore, SenderID: "owner1", SenderName: "할머니 붕어빵", Content: "네, 많이 남아있습니다. 몇 개 필요하세요?", CreatedAt: now.Add(-4 * time.Minute)},
		},
	}
}

// analyticsWeek alternates the store between two spots over the last seven
// days.
func analyticsWeek(now time.Time, storeID, spotA, spotB string) []models.LocationAnalytics {
	views := []int{42, 35, 58, 61, 47, 73, 66}
	reservations := []int{3, 2, 5, 6, 4, 8, 7}

	out := make([]models.LocationAnalytics, 0, len(views))
	for i := range views {
		spot := spotA
		if i%2 == 1 {
			spot = spotB
		}
		day := now.AddDate(0, 0, i-len(views)+1)
		out = append(out, models.LocationAnalytics{
			StoreID:          storeID,
			Location:         spot,
			ViewCount:        views[i],
			Date:             day.Format("2006-01-02"),
			ReservationCount: reservations[i],
		})
	}
	return out
}
