package dto

import (
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/utils"
)

// CreateTeamMemberRequest adds a person to the team directory
type CreateTeamMemberRequest struct {
	Name       string `json:"name" binding:"required"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Avatar     string `json:"avatar"`
	Location   string `json:"location"`
	Status     string `json:"status"`
}

// ToModel ignores userID; the directory is shared by the organisation
func (r CreateTeamMemberRequest) ToModel(_ string) (models.TeamMember, error) {
	if err := utils.RequireText("name", r.Name); err != nil {
		return models.TeamMember{}, err
	}
	member := models.TeamMember{
		Name:       r.Name,
		Role:       r.Role,
		Department: r.Department,
		Email:      r.Email,
		Phone:      r.Phone,
		Avatar:     r.Avatar,
		Location:   r.Location,
		Status:     r.Status,
	}
	if member.Status == "" {
		member.Status = "active"
	}
	return member, nil
}

// UpdateTeamMemberRequest is a partial directory update
type UpdateTeamMemberRequest struct {
	Name       *string `json:"name"`
	Role       *string `json:"role"`
	Department *string `json:"department"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Avatar     *string `json:"avatar"`
	Location   *string `json:"location"`
	Status     *string `json:"status"`
}

// Changes rejects a blank name and maps the sent fields to columns
func (r UpdateTeamMemberRequest) Changes() (utils.Changes, error) {
	if r.Name != nil {
		if err := utils.RequireText("name", *r.Name); err != nil {
			return nil, err
		}
	}
	return utils.Changes{}.
		Set("name", r.Name).
		Set("role", r.Role).
		Set("department", r.Department).
		Set("email", r.Email).
		Set("phone", r.Phone).
		Set("avatar", r.Avatar).
		Set("location", r.Location).
		Set("status", r.Status), nil
}
