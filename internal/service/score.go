package service

import (
	"math"
	"time"

	"github.com/short5/feed-service/internal/models"
)

// Веса и константы скоринга. Сумма весов слагаемых — 0.4/0.3/0.2 поверх
// базы 0.5 для аутентифицированного зрителя; аноним получает формулу
// только из популярности и свежести.
const (
	authBaseScore = 0.5
	anonBaseScore = 0.3

	creatorWeight        = 0.4
	popularityWeightAuth = 0.3
	popularityWeightAnon = 0.7
	recencyWeight        = 0.2

	// neutralCreatorScore — вклад автора, о котором у зрителя нет сигнала.
	neutralCreatorScore = 0.5
	// notLikedPenalty — множитель для авторов, которых зритель дизлайкал.
	// Применяется к уже накопленному скору вместо добавки за автора.
	notLikedPenalty = 0.1

	// viewsSaturation — до этого числа просмотров популярность растёт
	// линейно, дальше вес доли лайков не увеличивается.
	viewsSaturation = 100
	// creatorLikesSaturation — лайки зрителя на автора сверх этого числа
	// бонуса не добавляют.
	creatorLikesSaturation = 10
	// recencyHorizonDays — к этому возрасту вклад свежести затухает до нуля.
	recencyHorizonDays = 30
)

// popularityScore — доля лайков на просмотр, ослабленная при малом числе
// просмотров: (likes/views) * min(views, 100)/100. Ноль просмотров — ноль.
func popularityScore(stats models.VideoStats) float64 {
	if stats.Views <= 0 {
		return 0
	}

	ratio := float64(stats.Likes) / float64(stats.Views)

	return ratio * math.Min(float64(stats.Views), viewsSaturation) / viewsSaturation
}

// recencyScore — линейное затухание от 1 (сегодня) до 0 (30 дней и старше).
// Возраст считается в полных днях.
func recencyScore(createdAt, now time.Time) float64 {
	days := int64(now.Sub(createdAt) / (24 * time.Hour))

	return math.Max(0, 1.0-float64(days)/recencyHorizonDays)
}

// scoreCandidate вычисляет скор кандидата по одному снимку счётчиков.
// affinity == nil означает анонимного зрителя.
//
// Аноним:      0.3 + popularity*0.7 + recency*0.2.
// Зритель:     0.5, затем слагаемое автора (вес 0.4): бонус лайкнутому
// автору 1.0+min(likes/10, 1), штраф ×0.1 дизлайкнутому (к накопленному,
// вместо добавки), нейтральному 0.5; затем popularity*0.3 и recency*0.2.
func scoreCandidate(video models.Video, stats models.VideoStats, affinity *models.Affinity, now time.Time) float64 {
	if affinity == nil {
		score := anonBaseScore + popularityScore(stats)*popularityWeightAnon
		score += recencyScore(video.CreatedAt, now) * recencyWeight

		return score
	}

	score := authBaseScore

	if likes, ok := affinity.LikesByCreator[video.CreatorID]; ok {
		creatorScore := 1.0 + math.Min(float64(likes)/creatorLikesSaturation, 1.0)
		score += creatorScore * creatorWeight
	} else if _, ok := affinity.NotLikedCreators[video.CreatorID]; ok {
		score *= notLikedPenalty
	} else {
		score += neutralCreatorScore * creatorWeight
	}

	score += popularityScore(stats) * popularityWeightAuth
	score += recencyScore(video.CreatedAt, now) * recencyWeight

	return score
}
