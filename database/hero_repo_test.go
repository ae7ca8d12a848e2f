package database

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeroRepoGet(t *testing.T) {
	t.Run("returns the seeded default row", func(t *testing.T) {
		d := newTestDatabase(t)

		hero, err := d.HeroRepo().Get()
		require.NoError(t, err)
		require.NotNil(t, hero)
		assert.Equal(t, models.HeroPlaceholderAvatar, hero.Avatar)
		assert.Equal(t, models.HeroDefaultText, hero.FullName)
	})

	t.Run("empty table is a nil result, not an error", func(t *testing.T) {
		d := newTestDatabase(t)
		repo := d.HeroRepo()
		require.NoError(t, repo.db.Exec("DELETE FROM heroes").Error)

		hero, err := repo.Get()
		require.NoError(t, err)
		assert.Nil(t, hero)
	})

	t.Run("oldest row wins when several exist", func(t *testing.T) {
		d := newTestDatabase(t)
		repo := d.HeroRepo()

		younger := models.DefaultHero()
		younger.ID = uuid.New()
		younger.FullName = "Impostor"
		younger.CreatedAt = time.Now().Add(time.Hour)
		require.NoError(t, repo.db.Create(&younger).Error)

		hero, err := repo.Get()
		require.NoError(t, err)
		require.NotNil(t, hero)
		assert.NotEqual(t, "Impostor", hero.FullName)
	})
}

func TestHeroRepoUpsert(t *testing.T) {
	t.Run("creates the default row when none exists", func(t *testing.T) {
		d := newTestDatabase(t)
		repo := d.HeroRepo()
		require.NoError(t, repo.db.Exec("DELETE FROM heroes").Error)

		hero, err := repo.Upsert(models.HeroUpdate{})
		require.NoError(t, err)
		require.NotNil(t, hero)
		assert.NotEqual(t, uuid.Nil, hero.ID)
		assert.Equal(t, models.HeroPlaceholderAvatar, hero.Avatar)
		assert.Equal(t, models.HeroDefaultText, hero.FullName)
		assert.Equal(t, models.HeroDefaultText, hero.ShortDescription)
		assert.Equal(t, models.HeroDefaultText, hero.LongDescription)
	})

	t.Run("empty upsert is idempotent on content", func(t *testing.T) {
		d := newTestDatabase(t)
		repo := d.HeroRepo()

		first, err := repo.Upsert(models.HeroUpdate{})
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		second, err := repo.Upsert(models.HeroUpdate{})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.Avatar, second.Avatar)
		assert.Equal(t, first.FullName, second.FullName)
		assert.Equal(t, first.ShortDescription, second.ShortDescription)
		assert.Equal(t, first.LongDescription, second.LongDescription)
		assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
	})

	t.Run("updates in place, keeping id and created_at", func(t *testing.T) {
		d := newTestDatabase(t)
		repo := d.HeroRepo()

		current, err := repo.Get()
		require.NoError(t, err)
		require.NotNil(t, current)

		name := "Grace Hopper"
		updated, err := repo.Upsert(models.HeroUpdate{FullName: &name})
		require.NoError(t, err)

		assert.Equal(t, current.ID, updated.ID)
		assert.Equal(t, current.CreatedAt, updated.CreatedAt)
		assert.Equal(t, "Grace Hopper", updated.FullName)

		var count int64
		require.NoError(t, repo.db.Model(&models.Hero{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("truncates the short description to 120 characters", func(t *testing.T) {
		d := newTestDatabase(t)
		repo := d.HeroRepo()

		long := strings.Repeat("a", 500)
		hero, err := repo.Upsert(models.HeroUpdate{ShortDescription: &long})
		require.NoError(t, err)
		assert.Len(t, []rune(hero.ShortDescription), models.HeroShortDescriptionMax)

		stored, err := repo.Get()
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, hero.ShortDescription, stored.ShortDescription)
	})

	t.Run("blank fields fall back to defaults", func(t *testing.T) {
		d := newTestDatabase(t)
		repo := d.HeroRepo()

		name := "Ada"
		_, err := repo.Upsert(models.HeroUpdate{FullName: &name})
		require.NoError(t, err)

		blank := "   "
		hero, err := repo.Upsert(models.HeroUpdate{FullName: &blank})
		require.NoError(t, err)
		assert.Equal(t, models.HeroDefaultText, hero.FullName)
	})
}
