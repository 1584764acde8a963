package services

import (
	"testing"

	"propman/dto"
	"propman/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "phong 101", normalizeInput("  Phòng 101 "))
	assert.Equal(t, "villa b", normalizeInput("Villa B"))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("villa b", "villa b"))
	assert.Greater(t, calculateSimilarity("villa b", "vila b"), 0.7)
	assert.Less(t, calculateSimilarity("villa b", "kho hang"), 0.5)
}

func TestFuzzySearchProperties(t *testing.T) {
	properties := []models.Property{
		{ID: "p1", Name: "Phòng 101", RoomNumber: "101", Status: models.PropertyStatusVacant},
		{ID: "p2", Name: "Phòng 202", RoomNumber: "202", Status: models.PropertyStatusOccupied, TenantName: "Somchai"},
		{ID: "p3", Name: "Villa B", Building: "B", Status: models.PropertyStatusVacant},
	}

	t.Run("tìm theo số phòng", func(t *testing.T) {
		results := FuzzySearchProperties(properties, "phòng 202")
		require.NotEmpty(t, results)
		assert.Equal(t, "p2", results[0].ID)
	})

	t.Run("tìm theo tên người thuê", func(t *testing.T) {
		results := FuzzySearchProperties(properties, "phòng của Somchai")
		require.NotEmpty(t, results)
		assert.Equal(t, "p2", results[0].ID)
	})

	t.Run("câu rỗng trả nguyên danh sách", func(t *testing.T) {
		results := FuzzySearchProperties(properties, "   ")
		assert.Len(t, results, len(properties))
	})
}

func TestExtractSearchFilters(t *testing.T) {
	t.Run("trạng thái và loại hình", func(t *testing.T) {
		filters := ExtractSearchFilters("phòng còn trống cho thuê theo ngày")
		assert.Equal(t, string(models.PropertyStatusVacant), filters.Status)
		assert.Equal(t, string(models.RentalDaily), filters.RentalType)
	})

	t.Run("mức giá tối đa", func(t *testing.T) {
		filters := ExtractSearchFilters("phòng dưới 10,000")
		require.NotNil(t, filters.MaxRent)
		assert.Equal(t, 10000, *filters.MaxRent)
	})

	t.Run("câu không có bộ lọc", func(t *testing.T) {
		filters := ExtractSearchFilters("xin chào")
		assert.Empty(t, filters.RentalType)
		assert.Nil(t, filters.MaxRent)
	})
}

func TestApplyFilters(t *testing.T) {
	properties := []models.Property{
		{ID: "p1", RentalType: models.RentalMonthly, Status: models.PropertyStatusVacant, RentAmount: 8000},
		{ID: "p2", RentalType: models.RentalDaily, Status: models.PropertyStatusOccupied, RentAmount: 1500},
		{ID: "p3", RentalType: models.RentalMonthly, Status: models.PropertyStatusOccupied, RentAmount: 15000},
	}

	maxRent := 10000
	filtered := ApplyFilters(properties, &dto.SearchFilters{
		RentalType: string(models.RentalMonthly),
		MaxRent:    &maxRent,
	})
	require.Len(t, filtered, 1)
	assert.Equal(t, "p1", filtered[0].ID)

	assert.Len(t, ApplyFilters(properties, nil), 3)
}

func TestMergeFilters(t *testing.T) {
	oldRent := 8000
	old := &dto.SearchFilters{
		Status:  string(models.PropertyStatusVacant),
		MaxRent: &oldRent,
	}

	t.Run("câu mới chỉ nêu phần thay đổi", func(t *testing.T) {
		merged := MergeFilters(old, &dto.SearchFilters{RentalType: string(models.RentalDaily)})
		assert.Equal(t, string(models.PropertyStatusVacant), merged.Status)
		assert.Equal(t, string(models.RentalDaily), merged.RentalType)
		require.NotNil(t, merged.MaxRent)
		assert.Equal(t, 8000, *merged.MaxRent)
	})

	t.Run("giá trị mới ghi đè giá trị cũ", func(t *testing.T) {
		newRent := 12000
		merged := MergeFilters(old, &dto.SearchFilters{
			Status:  string(models.PropertyStatusOccupied),
			MaxRent: &newRent,
		})
		assert.Equal(t, string(models.PropertyStatusOccupied), merged.Status)
		assert.Equal(t, 12000, *merged.MaxRent)
	})
}
