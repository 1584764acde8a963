package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// StatusChangeBuilder dựng thông báo khi trạng thái bất động sản thay đổi
type StatusChangeBuilder struct {
	propertyName string
	oldStatus    string
	newStatus    string
}

func NewStatusChangeBuilder(propertyName, oldStatus, newStatus string) *StatusChangeBuilder {
	return &StatusChangeBuilder{
		propertyName: propertyName,
		oldStatus:    oldStatus,
		newStatus:    newStatus,
	}
}

func (b *StatusChangeBuilder) Build() string {
	if b.oldStatus == "" {
		return fmt.Sprintf("🔔 %s hiện ở trạng thái %s.", b.propertyName, b.newStatus)
	}
	return fmt.Sprintf("🔔 %s: %s chuyển sang %s.", b.propertyName, b.oldStatus, b.newStatus)
}

// OverdueBuilder dựng thông báo nhắc thanh toán quá hạn
type OverdueBuilder struct {
	propertyName string
	month        string
}

func NewOverdueBuilder(propertyName, month string) *OverdueBuilder {
	return &OverdueBuilder{propertyName: propertyName, month: month}
}

func (b *OverdueBuilder) Build() string {
	return fmt.Sprintf("⚠️ %s: tiền thuê tháng %s đã quá hạn.", b.propertyName, b.month)
}
