package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"propman/dto"
	"propman/models"
)

const chatCompletionsURL = "https://api.openai.com/v1/chat/completions"

// AIClient gọi model ngoài để tìm kiếm ngôn ngữ tự nhiên và quét hóa đơn.
// Mọi lời gọi đi qua RetryPolicy: 429/5xx thử lại với backoff, 4xx trả
// thẳng lỗi cho caller.
type AIClient struct {
	apiKey     string
	httpClient *http.Client
	policy     RetryPolicy
}

// NewAIClient đọc OPENAI_API_KEY từ môi trường. Không có key thì
// Available() trả false và caller nên rơi về tìm kiếm fuzzy nội bộ.
func NewAIClient() *AIClient {
	return &AIClient{
		apiKey:     os.Getenv("OPENAI_API_KEY"),
		httpClient: http.DefaultClient,
		policy:     DefaultRetryPolicy(),
	}
}

func (a *AIClient) Available() bool {
	return a.apiKey != ""
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// callChat gửi một request chat completions, trả về content của choice
// đầu tiên. Status HTTP trả kèm để RetryPolicy quyết định thử lại.
func (a *AIClient) callChat(payload map[string]interface{}) (string, error) {
	if a.apiKey == "" {
		return "", fmt.Errorf("API key không tồn tại")
	}

	return DoWithRetry(a.policy, func() (string, int, error) {
		requestBody, _ := json.Marshal(payload)

		req, err := http.NewRequest("POST", chatCompletionsURL, bytes.NewBuffer(requestBody))
		if err != nil {
			return "", 0, err
		}
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := a.httpClient.Do(req)
		if err != nil {
			return "", 0, err
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != http.StatusOK {
			return "", resp.StatusCode, fmt.Errorf("AI API trả về status %d: %s", resp.StatusCode, string(body))
		}

		var chatResp chatResponse
		if err := json.Unmarshal(body, &chatResp); err != nil || len(chatResp.Choices) == 0 {
			return "", resp.StatusCode, fmt.Errorf("AI trả về response không hợp lệ")
		}

		return strings.TrimSpace(chatResp.Choices[0].Message.Content), 0, nil
	})
}

// propertySummary phần dữ liệu gọn gửi cho model khi tìm kiếm
type propertySummary struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Building   string  `json:"building,omitempty"`
	Floor      string  `json:"floor,omitempty"`
	Room       string  `json:"room,omitempty"`
	Unit       string  `json:"unit,omitempty"`
	Status     string  `json:"status"`
	Rent       float64 `json:"rent"`
	Tenant     string  `json:"tenant,omitempty"`
	Repair     string  `json:"repair"`
	RentalType string  `json:"rentalType"`
}

// QueryPropertyIDs nhờ model lọc danh sách bất động sản theo câu truy vấn
// tự nhiên, trả về danh sách id khớp. Model chỉ được trả JSON array.
func (a *AIClient) QueryPropertyIDs(properties []models.Property, query string) ([]string, error) {
	summaries := make([]propertySummary, 0, len(properties))
	for _, p := range properties {
		summaries = append(summaries, propertySummary{
			ID:         p.ID,
			Name:       p.Name,
			Building:   p.Building,
			Floor:      p.Floor,
			Room:       p.RoomNumber,
			Unit:       p.UnitNumber,
			Status:     string(p.Status),
			Rent:       p.RentAmount,
			Tenant:     p.TenantName,
			Repair:     string(p.RepairStatus),
			RentalType: string(p.RentalType),
		})
	}
	data, _ := json.Marshal(summaries)

	prompt := fmt.Sprintf(`Bạn là trợ lý quản lý bất động sản cho thuê.
Dưới đây là danh sách bất động sản dạng JSON.
Xử lý câu truy vấn: "%s"
Người dùng có thể tìm theo số phòng, tòa nhà, tầng, tên dự án, người thuê hoặc trạng thái.
Chỉ trả về một JSON array chứa id của các bất động sản khớp, không kèm lời thoại nào khác.

Data: %s`, query, string(data))

	content, err := a.callChat(map[string]interface{}{
		"model": "gpt-4o-mini",
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"max_tokens":  500,
		"temperature": 0.2,
	})
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(extractJSON(content)), &ids); err != nil {
		return nil, fmt.Errorf("không parse được danh sách id từ AI: %v", err)
	}
	return ids, nil
}

// PortfolioInsight sinh 2 câu nhận xét ngắn về danh mục cho dashboard
func (a *AIClient) PortfolioInsight(properties []models.Property) (string, error) {
	statusCounts := map[string]int{}
	var revenue float64
	for _, p := range properties {
		statusCounts[string(p.Status)]++
		revenue += p.RentAmount
	}
	counts, _ := json.Marshal(statusCounts)

	prompt := fmt.Sprintf(`Tóm tắt tình trạng danh mục bất động sản sau:
- Tổng số: %d
- Số lượng theo trạng thái: %s
- Tổng doanh thu tiềm năng: %.0f
Viết 2 câu nhận xét chuyên nghiệp, ngắn gọn cho dashboard.`, len(properties), string(counts), revenue)

	return a.callChat(map[string]interface{}{
		"model": "gpt-4o-mini",
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"max_tokens": 300,
	})
}

// ScanReceipt trích xuất thông tin từ ảnh hóa đơn: tên cửa hàng, số tiền,
// ngày và phân loại chi phí
func (a *AIClient) ScanReceipt(base64Image string) (*dto.ReceiptScanResult, error) {
	// Cắt prefix data-url nếu client gửi nguyên chuỗi từ FileReader
	if idx := strings.Index(base64Image, ","); idx != -1 {
		base64Image = base64Image[idx+1:]
	}

	prompt := `Trích xuất thông tin từ ảnh hóa đơn này dưới dạng JSON như sau:
{
  "title": "string",   // tên cửa hàng hoặc nhà cung cấp
  "amount": number,    // tổng tiền
  "date": "yyyy-MM-dd",
  "category": "string" // một trong: REPAIR, UTILITY, COMMON_FEE, COMMISSION, OTHER
}
Chỉ trả về JSON object, không kèm lời thoại nào khác.`

	content, err := a.callChat(map[string]interface{}{
		"model": "gpt-4o-mini",
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{"type": "text", "text": prompt},
					{"type": "image_url", "image_url": map[string]string{
						"url": "data:image/jpeg;base64," + base64Image,
					}},
				},
			},
		},
		"max_tokens": 300,
	})
	if err != nil {
		return nil, err
	}

	var result dto.ReceiptScanResult
	if err := json.Unmarshal([]byte(extractJSON(content)), &result); err != nil {
		return nil, fmt.Errorf("không parse được kết quả quét hóa đơn: %v", err)
	}
	return &result, nil
}

// extractJSON bóc phần JSON ra khỏi content, phòng model bọc trong code fence
func extractJSON(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
