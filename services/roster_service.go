package services

import (
	"fmt"

	"github.com/workforce-hub/dto"
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/repositories"
	"github.com/workforce-hub/utils"
)

// RosterService manages a project's team roster and file attachments.
// These collections carry no derived counters.
type RosterService struct {
	projectRepo   *repositories.ProjectRepository
	directoryRepo *repositories.ResourceRepository[models.TeamMember]
}

// NewRosterService creates a new roster service instance
func NewRosterService(projectRepo *repositories.ProjectRepository, directoryRepo *repositories.ResourceRepository[models.TeamMember]) *RosterService {
	return &RosterService{projectRepo: projectRepo, directoryRepo: directoryRepo}
}

// AddMember adds a roster entry. A directory member is copied as it is now;
// later directory edits do not reach the roster.
func (s *RosterService) AddMember(projectID, userID string, req dto.AddMemberRequest) (models.Project, error) {
	member := models.ProjectMember{
		ProjectID:         projectID,
		DirectoryMemberID: req.DirectoryMemberID,
		Name:              req.Name,
		Role:              req.Role,
		Avatar:            req.Avatar,
		Email:             req.Email,
		TasksAssigned:     req.TasksAssigned,
		TasksCompleted:    req.TasksCompleted,
	}

	if req.DirectoryMemberID != nil {
		if utils.CheckID("team member", *req.DirectoryMemberID) != nil {
			return models.Project{}, utils.NewValidationError("directoryMemberId", "no team member with id %s", *req.DirectoryMemberID)
		}
		entry, err := s.directoryRepo.FindByID(*req.DirectoryMemberID)
		if err != nil {
			if err = utils.TranslateNotFound(err, "team member", *req.DirectoryMemberID); utils.IsNotFound(err) {
				return models.Project{}, utils.NewValidationError("directoryMemberId", "no team member with id %s", *req.DirectoryMemberID)
			}
			return models.Project{}, err
		}
		fillFromDirectory(&member, entry)
	}

	if err := utils.RequireText("name", member.Name); err != nil {
		return models.Project{}, err
	}
	if member.TasksAssigned < 0 || member.TasksCompleted < 0 {
		return models.Project{}, utils.NewValidationError("tasksAssigned", "task counts must not be negative")
	}

	return mutateProject(s.projectRepo, projectID, userID, false, func(repo *repositories.ProjectRepository) (*models.Activity, error) {
		if err := repo.CreateMember(&member); err != nil {
			return nil, err
		}
		return &models.Activity{
			Type:    models.ActivityMemberAdded,
			Message: fmt.Sprintf("%s joined the project", member.Name),
		}, nil
	})
}

func fillFromDirectory(member *models.ProjectMember, entry models.TeamMember) {
	if member.Name == "" {
		member.Name = entry.Name
	}
	if member.Role == "" {
		member.Role = entry.Role
	}
	if member.Avatar == "" {
		member.Avatar = entry.Avatar
	}
	if member.Email == "" {
		member.Email = entry.Email
	}
}

// RemoveMember deletes a roster entry
func (s *RosterService) RemoveMember(projectID, memberID, userID string) (models.Project, error) {
	if err := utils.CheckID("member", memberID); err != nil {
		return models.Project{}, err
	}
	return mutateProject(s.projectRepo, projectID, userID, false, func(repo *repositories.ProjectRepository) (*models.Activity, error) {
		rows, err := repo.DeleteMember(projectID, memberID)
		if err != nil {
			return nil, err
		}
		if rows == 0 {
			return nil, utils.NotFound("member", memberID)
		}
		return &models.Activity{
			Type:    models.ActivityMemberRemoved,
			Message: "A member left the project",
		}, nil
	})
}

// AddFile attaches file metadata to a project
func (s *RosterService) AddFile(projectID, userID string, req dto.AddFileRequest) (models.Project, error) {
	if err := utils.RequireText("name", req.Name); err != nil {
		return models.Project{}, err
	}
	if req.Size < 0 {
		return models.Project{}, utils.NewValidationError("size", "must not be negative")
	}

	return mutateProject(s.projectRepo, projectID, userID, false, func(repo *repositories.ProjectRepository) (*models.Activity, error) {
		file := models.ProjectFile{
			ProjectID:  projectID,
			Name:       req.Name,
			Size:       req.Size,
			Type:       req.Type,
			URL:        req.URL,
			UploadedBy: userID,
		}
		if err := repo.CreateFile(&file); err != nil {
			return nil, err
		}
		return &models.Activity{
			Type:    models.ActivityFileAdded,
			Message: fmt.Sprintf("File %q uploaded", file.Name),
		}, nil
	})
}

// DeleteFile removes a file attachment
func (s *RosterService) DeleteFile(projectID, fileID, userID string) (models.Project, error) {
	if err := utils.CheckID("file", fileID); err != nil {
		return models.Project{}, err
	}
	return mutateProject(s.projectRepo, projectID, userID, false, func(repo *repositories.ProjectRepository) (*models.Activity, error) {
		rows, err := repo.DeleteFile(projectID, fileID)
		if err != nil {
			return nil, err
		}
		if rows == 0 {
			return nil, utils.NotFound("file", fileID)
		}
		return &models.Activity{
			Type:    models.ActivityFileDeleted,
			Message: "A file was removed",
		}, nil
	})
}
