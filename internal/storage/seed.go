package storage

import "github.com/brewnote/brewnote/internal/model"

// SeedBeans returns the built-in sample beans used to initialize storage on
// first run. Callers receive a fresh slice on every call.
func SeedBeans() []model.Bean {
	return []model.Bean{
		{
			ID:           "seed-bean-yirgacheffe",
			Name:         "예가체프 코체레",
			Roastery:     "프릳츠",
			Country:      "에티오피아",
			Region:       "예가체프",
			Farm:         "코체레",
			Variety:      "Heirloom",
			Altitude:     "1,900~2,100m",
			Process:      "워시드",
			RoastLevel:   "라이트",
			RoastDate:    "2025.08.18",
			Price:        14000,
			TastingNotes: []string{"자스민", "베르가못", "꿀"},
			MyNotes:      []string{},
		},
		{
			ID:           "seed-bean-geisha",
			Name:         "파나마 게이샤 에스메랄다",
			Roastery:     "커피리브레",
			Country:      "파나마",
			Region:       "보케테",
			Farm:         "에스메랄다",
			Variety:      "Geisha",
			Process:      "내추럴",
			RoastLevel:   "라이트 미디엄",
			RoastDate:    "2025.08.22",
			Price:        38000,
			TastingNotes: []string{"열대과일", "히비스커스", "복숭아"},
			MyNotes:      []string{},
		},
	}
}

// SeedRecipes returns the built-in sample recipes.
func SeedRecipes() []model.Recipe {
	return []model.Recipe{
		{
			ID:           "seed-recipe-v60-hot",
			Title:        "4:6 드립",
			Type:         model.DrinkHot,
			RoastLevel:   []string{"Light", "Medium Light"},
			Dripper:      "V60",
			Filter:       "하리오 전용 필터",
			Grinder:      "코만단테 C40",
			GrindSetting: "24클릭",
			WaterTemp:    92,
			BeanAmount:   20,
			WaterAmount:  300,
			YouTubeID:    "wmCW8xSWGZY",
			Steps: []model.PourStep{
				{Label: "뜸들이기", StartTime: 0, EndTime: 45, WaterAmount: 60, AddedAmount: 60},
				{Label: "1차 푸어", StartTime: 45, EndTime: 90, WaterAmount: 120, AddedAmount: 60},
				{Label: "2차 푸어", StartTime: 90, EndTime: 135, WaterAmount: 180, AddedAmount: 60},
				{Label: "3차 푸어", StartTime: 135, EndTime: 165, WaterAmount: 240, AddedAmount: 60},
				{Label: "4차 푸어", StartTime: 165, EndTime: 210, WaterAmount: 300, AddedAmount: 60},
			},
		},
		{
			ID:           "seed-recipe-iced",
			Title:        "아이스 푸어오버",
			Type:         model.DrinkIced,
			RoastLevel:   []string{"Medium", "Medium Dark"},
			Dripper:      model.DripperAny,
			Filter:       "칼리타 웨이브 185",
			Grinder:      "펠로우 오드",
			GrindSetting: "6",
			WaterTemp:    94,
			BeanAmount:   22,
			WaterAmount:  200,
			YouTubeID:    "PApBycDrPo0",
			Steps: []model.PourStep{
				{Label: "뜸들이기", StartTime: 0, EndTime: 30, WaterAmount: 50, AddedAmount: 50},
				{Label: "1차 추출", StartTime: 30, EndTime: 80, WaterAmount: 130, AddedAmount: 80},
				{Label: "2차 추출", StartTime: 80, EndTime: 130, WaterAmount: 200, AddedAmount: 70},
				{Label: "드로다운", StartTime: 130, EndTime: 170, WaterAmount: 200, AddedAmount: 0},
			},
		},
	}
}
