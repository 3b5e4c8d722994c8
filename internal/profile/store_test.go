package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetCreatesDefaults(t *testing.T) {
	s := NewStore()

	p := s.Get("ada")
	assert.Equal(t, "ada", p.DisplayName)
	assert.Equal(t, "", p.Bio)
	assert.Nil(t, p.Avatar)
	assert.Nil(t, p.CoverPhoto)
}

func TestStore_Update(t *testing.T) {
	s := NewStore()

	t.Run("non-empty fields overwrite", func(t *testing.T) {
		p := s.Update("ada", "Ada Lovelace", "first programmer")
		assert.Equal(t, "Ada Lovelace", p.DisplayName)
		assert.Equal(t, "first programmer", p.Bio)
	})

	t.Run("empty field leaves existing value intact", func(t *testing.T) {
		p := s.Update("ada", "", "new bio")
		assert.Equal(t, "Ada Lovelace", p.DisplayName)
		assert.Equal(t, "new bio", p.Bio)
	})

	t.Run("update on a never-seen username creates defaults first", func(t *testing.T) {
		p := s.Update("grace", "", "rear admiral")
		assert.Equal(t, "grace", p.DisplayName)
		assert.Equal(t, "rear admiral", p.Bio)
	})
}

func TestStore_AvatarAndCover(t *testing.T) {
	s := NewStore()

	p := s.SetAvatar("ada", "/uploads/avatar-ada.png")
	if assert.NotNil(t, p.Avatar) {
		assert.Equal(t, "/uploads/avatar-ada.png", *p.Avatar)
	}
	assert.Nil(t, p.CoverPhoto)

	p = s.SetCoverPhoto("ada", "/uploads/cover-ada.jpg")
	if assert.NotNil(t, p.CoverPhoto) {
		assert.Equal(t, "/uploads/cover-ada.jpg", *p.CoverPhoto)
	}

	// repeated avatar upload keeps the stable path
	p = s.SetAvatar("ada", "/uploads/avatar-ada.png")
	if assert.NotNil(t, p.Avatar) {
		assert.Equal(t, "/uploads/avatar-ada.png", *p.Avatar)
	}
}
