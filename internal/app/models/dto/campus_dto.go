package dto

import (
	"strings"

	"github.com/learntech/courseplanner/internal/app/models"
)

// CampusRequest represents campus create and update data
type CampusRequest struct {
	Code string `json:"code" binding:"required,max=32" example:"MEL"`
	Name string `json:"name" binding:"required,max=255" example:"Melbourne City"`
}

// ToModel converts the request into a campus
func (r CampusRequest) ToModel() *models.Campus {
	return &models.Campus{
		Code: strings.TrimSpace(r.Code),
		Name: strings.TrimSpace(r.Name),
	}
}
