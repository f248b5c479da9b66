package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dangerclosesec/clubmap/internal/database/dbtest"
	"github.com/dangerclosesec/clubmap/internal/domain"
	"github.com/dangerclosesec/clubmap/internal/model"
	"github.com/dangerclosesec/clubmap/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func clubData(name, school string) model.ClubData {
	return model.ClubData{
		Name:          name,
		School:        school,
		Province:      "Zhejiang",
		City:          "Hangzhou",
		Longitude:     120.1,
		Latitude:      30.2,
		Tags:          model.Tags{"anime", "games"},
		ExternalLinks: model.ExternalLinks{{Type: "qq", URL: "https://qm.qq.com/x"}},
	}
}

func TestClubRepository(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(dbtest.Open(t))
	clubs := store.Clubs()

	club := model.ClubFromData(clubData("Foo", "X High"), now)
	require.NoError(t, clubs.Create(ctx, club))
	require.NotZero(t, club.ID)

	t.Run("find by id round trips typed columns", func(t *testing.T) {
		got, err := clubs.FindByID(ctx, club.ID)
		require.NoError(t, err)
		assert.Equal(t, "Foo", got.Name)
		assert.Equal(t, model.Tags{"anime", "games"}, got.Tags)
		assert.Equal(t, model.ExternalLinks{{Type: "qq", URL: "https://qm.qq.com/x"}}, got.ExternalLinks)
	})

	t.Run("missing club", func(t *testing.T) {
		_, err := clubs.FindByID(ctx, club.ID+100)
		assert.ErrorIs(t, err, domain.ErrClubNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("name and school are unique together", func(t *testing.T) {
		err := clubs.Create(ctx, model.ClubFromData(clubData("Foo", "X High"), now))
		assert.ErrorIs(t, err, domain.ErrDuplicateClub)
		assert.ErrorIs(t, err, domain.ErrConflict)

		require.NoError(t, clubs.Create(ctx, model.ClubFromData(clubData("Foo", "Y High"), now)))
	})

	t.Run("find by name and school", func(t *testing.T) {
		got, err := clubs.FindByNameSchool(ctx, "Foo", "X High")
		require.NoError(t, err)
		assert.Equal(t, club.ID, got.ID)

		_, err = clubs.FindByNameSchool(ctx, "Foo", "Z High")
		assert.ErrorIs(t, err, domain.ErrClubNotFound)
	})

	t.Run("find similar", func(t *testing.T) {
		similar, err := clubs.FindSimilar(ctx, "foo", "nowhere", 10)
		require.NoError(t, err)
		assert.Len(t, similar, 2)

		similar, err = clubs.FindSimilar(ctx, "bar", "X High", 10)
		require.NoError(t, err)
		require.Len(t, similar, 1)
		assert.Equal(t, club.ID, similar[0].ID)
	})

	t.Run("update overwrites editable fields", func(t *testing.T) {
		got, err := clubs.FindByID(ctx, club.ID)
		require.NoError(t, err)

		data := got.Data()
		data.Description = "updated"
		data.Tags = model.Tags{"music"}
		got.Apply(data, now.Add(time.Hour))
		reviewer := "alice"
		got.VerifiedBy = &reviewer
		require.NoError(t, clubs.Update(ctx, got))

		reloaded, err := clubs.FindByID(ctx, club.ID)
		require.NoError(t, err)
		assert.Equal(t, "updated", reloaded.Description)
		assert.Equal(t, model.Tags{"music"}, reloaded.Tags)
		require.NotNil(t, reloaded.VerifiedBy)
		assert.Equal(t, "alice", *reloaded.VerifiedBy)
	})

	t.Run("update to an existing name and school conflicts", func(t *testing.T) {
		got, err := clubs.FindByNameSchool(ctx, "Foo", "Y High")
		require.NoError(t, err)
		got.School = "X High"
		assert.ErrorIs(t, clubs.Update(ctx, got), domain.ErrDuplicateClub)
	})

	t.Run("update missing club", func(t *testing.T) {
		ghost := model.ClubFromData(clubData("Ghost", "None"), now)
		ghost.ID = 9999
		assert.ErrorIs(t, clubs.Update(ctx, ghost), domain.ErrClubNotFound)
	})

	t.Run("list filters and pages", func(t *testing.T) {
		other := clubData("Baz", "Q High")
		other.Province = "Jiangsu"
		require.NoError(t, clubs.Create(ctx, model.ClubFromData(other, now)))

		all, total, err := clubs.List(ctx, repository.ClubFilter{})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, all, 3)

		zj, total, err := clubs.List(ctx, repository.ClubFilter{Province: "Zhejiang", Page: repository.Page{Limit: 1}})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		require.Len(t, zj, 1)
		assert.Equal(t, club.ID, zj[0].ID)
	})
}

func TestSubmissionRepository(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(dbtest.Open(t))
	subs := store.Submissions()

	var ids []int64
	for i, name := range []string{"A", "B", "C"} {
		sub := model.NewSubmission(model.SubmissionNew, "a@example.com", clubData(name, "X High"), now.Add(time.Duration(i)*time.Minute))
		sub.Metadata = model.Metadata{IPAddress: "203.0.113.9", DuplicateCheck: &model.DuplicateCheck{Passed: true, SimilarClubs: []model.SimilarClub{}}}
		require.NoError(t, subs.Create(ctx, sub))
		ids = append(ids, sub.ID)
	}

	t.Run("create requires pending", func(t *testing.T) {
		sub := model.NewSubmission(model.SubmissionNew, "a@example.com", clubData("D", "X High"), now)
		sub.Status = model.StatusApproved
		assert.Error(t, subs.Create(ctx, sub))
	})

	t.Run("find by id", func(t *testing.T) {
		got, err := subs.FindByID(ctx, ids[0])
		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, got.Status)
		assert.Equal(t, "A", got.Data.Name)
		assert.Equal(t, "203.0.113.9", got.Metadata.IPAddress)
		require.NotNil(t, got.Metadata.DuplicateCheck)
		assert.True(t, got.Metadata.DuplicateCheck.Passed)
		assert.False(t, got.OriginalData.Valid)

		_, err = subs.FindByID(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrSubmissionNotFound)
	})

	t.Run("mark reviewed only once", func(t *testing.T) {
		first, err := subs.FindByID(ctx, ids[0])
		require.NoError(t, err)
		second, err := subs.FindByID(ctx, ids[0])
		require.NoError(t, err)

		require.NoError(t, first.Approve("alice", now))
		require.NoError(t, subs.MarkReviewed(ctx, first))

		require.NoError(t, second.Reject("bob", "spam", now))
		assert.ErrorIs(t, subs.MarkReviewed(ctx, second), domain.ErrSubmissionNotPending)

		got, err := subs.FindByID(ctx, ids[0])
		require.NoError(t, err)
		assert.Equal(t, model.StatusApproved, got.Status)
		require.NotNil(t, got.ReviewedBy)
		assert.Equal(t, "alice", *got.ReviewedBy)
		assert.Nil(t, got.RejectionReason)
	})

	t.Run("mark reviewed needs a decision", func(t *testing.T) {
		got, err := subs.FindByID(ctx, ids[1])
		require.NoError(t, err)
		assert.Error(t, subs.MarkReviewed(ctx, got))
	})

	t.Run("list by status and order", func(t *testing.T) {
		pending, total, err := subs.List(ctx, repository.SubmissionFilter{Status: model.StatusPending})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		require.Len(t, pending, 2)
		assert.Equal(t, ids[2], pending[0].ID, "newest first by default")

		asc, total, err := subs.List(ctx, repository.SubmissionFilter{Ascending: true, Page: repository.Page{Offset: 1, Limit: 1}})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		require.Len(t, asc, 1)
		assert.Equal(t, ids[1], asc[0].ID)
	})
}

func TestAdminUserRepository(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(dbtest.Open(t))
	admins := store.AdminUsers()

	admin := &model.AdminUser{Username: "root", PasswordHash: "hash", Email: "root@example.com", Role: model.RoleSuperAdmin, Active: true, CreatedAt: now}
	require.NoError(t, admins.Create(ctx, admin))
	require.NotZero(t, admin.ID)

	dup := &model.AdminUser{Username: "root", PasswordHash: "hash", Email: "other@example.com", Role: model.RoleSuperAdmin, CreatedAt: now}
	assert.ErrorIs(t, admins.Create(ctx, dup), domain.ErrAdminExists)

	got, err := admins.FindByUsername(ctx, "root")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)
	assert.True(t, got.Active)
	assert.Nil(t, got.LastLogin)

	_, err = admins.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrAdminNotFound)

	require.NoError(t, admins.UpdateLastLogin(ctx, admin.ID, now))
	got, err = admins.FindByID(ctx, admin.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	assert.True(t, now.Equal(*got.LastLogin))

	assert.ErrorIs(t, admins.UpdateLastLogin(ctx, 999, now), domain.ErrAdminNotFound)
}

func TestTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(dbtest.Open(t))
	boom := errors.New("boom")

	err := store.Transaction(ctx, func(uow repository.UnitOfWork) error {
		require.NoError(t, uow.Clubs().Create(ctx, model.ClubFromData(clubData("Foo", "X High"), now)))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = store.Clubs().FindByNameSchool(ctx, "Foo", "X High")
	assert.ErrorIs(t, err, domain.ErrClubNotFound)

	require.NoError(t, store.Transaction(ctx, func(uow repository.UnitOfWork) error {
		return uow.Clubs().Create(ctx, model.ClubFromData(clubData("Foo", "X High"), now))
	}))
	_, err = store.Clubs().FindByNameSchool(ctx, "Foo", "X High")
	assert.NoError(t, err)
}
