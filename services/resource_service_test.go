package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workforce-hub/dto"
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/repositories"
	"github.com/workforce-hub/utils"
)

func newNoteService(t *testing.T) *ResourceService[models.Note] {
	t.Helper()
	repo := repositories.NewResourceRepository[models.Note](newTestDB(t), "pinned DESC, updated_at DESC")
	return NewResourceService(repo, "note")
}

func TestCreateNoteDefaults(t *testing.T) {
	notes := newNoteService(t)

	note, err := notes.Create(testUserID, dto.CreateNoteRequest{Title: "Standup"})
	require.NoError(t, err)

	assert.NotEmpty(t, note.ID)
	assert.Equal(t, models.DefaultNoteColor, note.Color)
	assert.False(t, note.Pinned)
	assert.Empty(t, note.Tags)

	_, err = notes.Create(testUserID, dto.CreateNoteRequest{Title: ""})
	assert.True(t, utils.IsValidation(err))
}

func TestUpdateNoteCoalesces(t *testing.T) {
	notes := newNoteService(t)
	note, err := notes.Create(testUserID, dto.CreateNoteRequest{
		Title:   "Groceries",
		Content: "milk, eggs",
		Color:   "#bfdbfe",
		Tags:    []string{"home"},
	})
	require.NoError(t, err)

	pinned := true
	updated, err := notes.Update(note.ID, testUserID, dto.UpdateNoteRequest{Pinned: &pinned})
	require.NoError(t, err)

	assert.True(t, updated.Pinned)
	assert.Equal(t, "Groceries", updated.Title)
	assert.Equal(t, "milk, eggs", updated.Content)
	assert.Equal(t, "#bfdbfe", updated.Color)
	assert.Equal(t, []string{"home"}, []string(updated.Tags))

	empty := ""
	updated, err = notes.Update(note.ID, testUserID, dto.UpdateNoteRequest{Content: &empty})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Content)
	assert.True(t, updated.Pinned)
}

func TestPinnedNotesListFirst(t *testing.T) {
	notes := newNoteService(t)
	for _, title := range []string{"first", "second"} {
		_, err := notes.Create(testUserID, dto.CreateNoteRequest{Title: title})
		require.NoError(t, err)
	}
	pinned, err := notes.Create(testUserID, dto.CreateNoteRequest{Title: "pinned", Pinned: true})
	require.NoError(t, err)

	list, err := notes.List(testUserID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, pinned.ID, list[0].ID)
}

func TestNotesAreOwnerScoped(t *testing.T) {
	notes := newNoteService(t)
	note, err := notes.Create(testUserID, dto.CreateNoteRequest{Title: "Private"})
	require.NoError(t, err)

	list, err := notes.List(otherUserID)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = notes.Get(note.ID, otherUserID)
	assert.True(t, utils.IsNotFound(err))

	title := "Mine now"
	_, err = notes.Update(note.ID, otherUserID, dto.UpdateNoteRequest{Title: &title})
	assert.True(t, utils.IsNotFound(err))

	assert.True(t, utils.IsNotFound(notes.Delete(note.ID, otherUserID)))

	stored, err := notes.Get(note.ID, testUserID)
	require.NoError(t, err)
	assert.Equal(t, "Private", stored.Title)
}

func TestDeleteIsNotIdempotent(t *testing.T) {
	notes := newNoteService(t)
	note, err := notes.Create(testUserID, dto.CreateNoteRequest{Title: "Temp"})
	require.NoError(t, err)

	require.NoError(t, notes.Delete(note.ID, testUserID))
	assert.True(t, utils.IsNotFound(notes.Delete(note.ID, testUserID)))
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	notes := newNoteService(t)

	title := "x"
	_, err := notes.Update("missing", testUserID, dto.UpdateNoteRequest{Title: &title})
	assert.True(t, utils.IsNotFound(err))
}

func TestTeamDirectoryIsShared(t *testing.T) {
	repo := repositories.NewResourceRepository[models.TeamMember](newTestDB(t), "name ASC")
	team := NewResourceService(repo, "team member")

	_, err := team.Create(testUserID, dto.CreateTeamMemberRequest{Name: "Zoe"})
	require.NoError(t, err)
	_, err = team.Create(otherUserID, dto.CreateTeamMemberRequest{Name: "Adam"})
	require.NoError(t, err)

	list, err := team.List(testUserID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Adam", list[0].Name)
	assert.Equal(t, "active", list[1].Status)
}

func TestBenefitDefaultsToEnrolled(t *testing.T) {
	repo := repositories.NewResourceRepository[models.Benefit](newTestDB(t), "name ASC")
	benefits := NewResourceService(repo, "benefit")

	benefit, err := benefits.Create(testUserID, dto.CreateBenefitRequest{Name: "Dental", MonthlyCost: 25})
	require.NoError(t, err)
	assert.Equal(t, models.BenefitStatusEnrolled, benefit.Status)

	_, err = benefits.Create(testUserID, dto.CreateBenefitRequest{Name: "Vision", MonthlyCost: -1})
	assert.True(t, utils.IsValidation(err))
}
