package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"propman/dto"
	"propman/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi trước khi so khớp
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi theo khoảng cách levenshtein
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// Nhận diện trạng thái người dùng muốn lọc từ câu truy vấn
func parseStatusKeyword(query string) models.PropertyStatus {
	statusKeywords := map[models.PropertyStatus][]string{
		models.PropertyStatusVacant:   {"trong", "vacant", "con trong", "empty"},
		models.PropertyStatusOccupied: {"dang o", "occupied", "co khach", "dang thue"},
		models.PropertyStatusBooked:   {"da dat", "booked", "dat truoc"},
		models.PropertyStatusCanceled: {"da huy", "canceled", "huy hop dong"},
	}

	for status, keywords := range statusKeywords {
		matcher := createMatcher(keywords)
		match := matcher.Closest(query)
		if match != "" && strings.Contains(query, match) {
			return status
		}
	}
	return ""
}

// scoredProperty kết quả chấm điểm nội bộ trước khi sort
type scoredProperty struct {
	property models.Property
	score    int
}

// Tính điểm phù hợp cho một bất động sản
func calculateScore(query string, p models.Property, cmBuilding *closestmatch.ClosestMatch) int {
	score := 0

	if status := parseStatusKeyword(query); status != "" && status == p.Status {
		score += 20
	}

	if p.RoomNumber != "" && strings.Contains(query, normalizeInput(p.RoomNumber)) {
		score += 15
	}
	if p.UnitNumber != "" && strings.Contains(query, normalizeInput(p.UnitNumber)) {
		score += 12
	}

	if p.Building != "" && cmBuilding != nil && cmBuilding.Closest(query) == normalizeInput(p.Building) {
		score += 8
	}

	name := normalizeInput(p.Name)
	if name != "" {
		if strings.Contains(query, name) || calculateSimilarity(query, name) > 0.7 {
			score += 10
		}
	}

	tenant := normalizeInput(p.TenantName)
	if tenant != "" && (strings.Contains(query, tenant) || calculateSimilarity(query, tenant) > 0.7) {
		score += 10
	}

	return score
}

// Tạo danh sách giá trị building duy nhất cho closestmatch
func prepareBuildingList(properties []models.Property) []string {
	unique := make(map[string]bool)
	for _, p := range properties {
		if p.Building != "" {
			unique[normalizeInput(p.Building)] = true
		}
	}
	list := make([]string, 0, len(unique))
	for val := range unique {
		list = append(list, val)
	}
	return list
}

// FuzzySearchProperties tìm kiếm nội bộ khi không có API key cho AI:
// chấm điểm song song từng bất động sản rồi sort giảm dần theo điểm.
func FuzzySearchProperties(properties []models.Property, query string) []models.Property {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		return properties
	}

	var cmBuilding *closestmatch.ClosestMatch
	if buildings := prepareBuildingList(properties); len(buildings) > 0 {
		cmBuilding = createMatcher(buildings)
	}

	scoreCh := make(chan scoredProperty, len(properties))
	var wg sync.WaitGroup

	for _, p := range properties {
		wg.Add(1)
		go func(p models.Property) {
			defer wg.Done()
			score := calculateScore(normalizedQuery, p, cmBuilding)
			if score > 0 {
				scoreCh <- scoredProperty{property: p, score: score}
			}
		}(p)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	var scored []scoredProperty
	for s := range scoreCh {
		scored = append(scored, s)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	results := make([]models.Property, 0, len(scored))
	for _, s := range scored {
		results = append(results, s.property)
	}
	return results
}

var maxRentPattern = regexp.MustCompile(`(?:duoi|under|<|khong qua|toi da)\s*(\d[\d,\.]*)`)

// ExtractSearchFilters rút bộ lọc thô từ câu truy vấn để nhớ lại cho
// câu hỏi tiếp theo của phiên.
func ExtractSearchFilters(query string) *dto.SearchFilters {
	normalized := normalizeInput(query)
	filters := &dto.SearchFilters{}

	if status := parseStatusKeyword(normalized); status != "" {
		filters.Status = string(status)
	}

	if strings.Contains(normalized, "theo ngay") || strings.Contains(normalized, "daily") {
		filters.RentalType = string(models.RentalDaily)
	} else if strings.Contains(normalized, "theo thang") || strings.Contains(normalized, "monthly") {
		filters.RentalType = string(models.RentalMonthly)
	}

	if match := maxRentPattern.FindStringSubmatch(normalized); len(match) == 2 {
		raw := strings.NewReplacer(",", "", ".", "").Replace(match[1])
		if amount, err := strconv.Atoi(raw); err == nil {
			filters.MaxRent = &amount
		}
	}

	return filters
}

// ApplyFilters lọc danh sách theo bộ lọc đã nhớ của phiên
func ApplyFilters(properties []models.Property, filters *dto.SearchFilters) []models.Property {
	if filters == nil {
		return properties
	}
	filtered := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if filters.Status != "" && string(p.Status) != filters.Status {
			continue
		}
		if filters.RentalType != "" && string(p.RentalType) != filters.RentalType {
			continue
		}
		if filters.Building != "" && normalizeInput(p.Building) != normalizeInput(filters.Building) {
			continue
		}
		if filters.TenantName != "" && !strings.Contains(normalizeInput(p.TenantName), normalizeInput(filters.TenantName)) {
			continue
		}
		if filters.MaxRent != nil && p.RentAmount > float64(*filters.MaxRent) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
