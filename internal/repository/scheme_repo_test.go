package repository

import (
	"testing"
	"time"

	"gramseva/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func seedScheme(t *testing.T, repo *SchemeRepository, code, category string, launch *time.Time, active bool) {
	t.Helper()
	require.NoError(t, repo.Create(&models.Scheme{
		SchemeName: "Scheme " + code, SchemeCode: code, Category: category,
		Ministry: "Ministry", Description: "d", Objectives: "o",
		EligibilityCriteria: "e", Benefits: "b", ApplicationProcess: "a",
		RequiredDocuments: "r", LaunchDate: launch, IsActive: active,
	}))
}

func TestSchemeListNewestFirstNullsLast(t *testing.T) {
	repo := NewSchemeRepository(testDB(t))
	seedScheme(t, repo, "OLD", "health", date(2015, 3, 1), true)
	seedScheme(t, repo, "NODATE", "health", nil, true)
	seedScheme(t, repo, "NEW", "health", date(2024, 6, 1), true)

	list, err := repo.List(true, "")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "NEW", list[0].SchemeCode)
	assert.Equal(t, "OLD", list[1].SchemeCode)
	assert.Equal(t, "NODATE", list[2].SchemeCode)
}

func TestSchemeListCategoryAndActiveFilter(t *testing.T) {
	repo := NewSchemeRepository(testDB(t))
	seedScheme(t, repo, "H1", "health", date(2020, 1, 1), true)
	seedScheme(t, repo, "E1", "education", date(2021, 1, 1), true)
	seedScheme(t, repo, "H2", "health", date(2022, 1, 1), false)

	health, err := repo.List(true, "health")
	require.NoError(t, err)
	require.Len(t, health, 1)
	assert.Equal(t, "H1", health[0].SchemeCode)

	all, err := repo.List(true, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSchemeCodeExists(t *testing.T) {
	repo := NewSchemeRepository(testDB(t))
	seedScheme(t, repo, "PMAY", "infrastructure", nil, true)
	s, err := repo.List(false, "")
	require.NoError(t, err)

	exists, err := repo.CodeExists("PMAY", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.CodeExists("PMAY", s[0].ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSchemeRecentLimits(t *testing.T) {
	repo := NewSchemeRepository(testDB(t))
	seedScheme(t, repo, "A", "health", date(2020, 1, 1), true)
	seedScheme(t, repo, "B", "health", date(2021, 1, 1), true)
	seedScheme(t, repo, "C", "health", date(2022, 1, 1), true)
	seedScheme(t, repo, "D", "health", date(2023, 1, 1), false)

	recent, err := repo.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "C", recent[0].SchemeCode)
	assert.Equal(t, "B", recent[1].SchemeCode)
}

func TestSchemeInactiveFlagPersists(t *testing.T) {
	repo := NewSchemeRepository(testDB(t))
	seedScheme(t, repo, "DRAFT", "health", nil, false)

	all, err := repo.List(false, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].IsActive)

	active, err := repo.List(true, "")
	require.NoError(t, err)
	assert.Empty(t, active)
}
