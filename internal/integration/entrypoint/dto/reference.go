// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budget-planner/backend/internal/domain/entity"
)

// SectionResponse represents a single section in API responses.
type SectionResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// SectionListResponse represents the response for listing sections.
type SectionListResponse struct {
	Sections []SectionResponse `json:"sections"`
}

// CardResponse represents a single card in API responses.
type CardResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Brand      string `json:"brand,omitempty"`
	ClosingDay int    `json:"closing_day"`
}

// CardListResponse represents the response for listing cards.
type CardListResponse struct {
	Cards []CardResponse `json:"cards"`
}

// SettingsResponse represents the settings in API responses.
type SettingsResponse struct {
	CurrencyCode     string `json:"currency_code"`
	ReminderEnabled  bool   `json:"reminder_enabled"`
	ReminderLeadDays []int  `json:"reminder_lead_days"`
	ReminderEmail    string `json:"reminder_email,omitempty"`
}

// ToSectionListResponse converts domain sections to a SectionListResponse.
func ToSectionListResponse(sections []*entity.Section) SectionListResponse {
	responses := make([]SectionResponse, len(sections))
	for i, s := range sections {
		responses[i] = SectionResponse{
			ID:    s.ID.String(),
			Name:  s.Name,
			Color: s.Color,
			Icon:  s.Icon,
		}
	}
	return SectionListResponse{Sections: responses}
}

// ToCardListResponse converts domain cards to a CardListResponse.
func ToCardListResponse(cards []*entity.Card) CardListResponse {
	responses := make([]CardResponse, len(cards))
	for i, c := range cards {
		responses[i] = CardResponse{
			ID:         c.ID.String(),
			Name:       c.Name,
			Brand:      c.Brand,
			ClosingDay: c.ClosingDay,
		}
	}
	return CardListResponse{Cards: responses}
}

// ToSettingsResponse converts domain settings to a SettingsResponse.
func ToSettingsResponse(settings *entity.Settings) SettingsResponse {
	return SettingsResponse{
		CurrencyCode:     settings.CurrencyCode,
		ReminderEnabled:  settings.ReminderEnabled,
		ReminderLeadDays: settings.ReminderLeadDays,
		ReminderEmail:    settings.ReminderEmail,
	}
}
