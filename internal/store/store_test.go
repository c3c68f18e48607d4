package store

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/waterlog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// backends runs fn against every Store implementation.
func backends(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Run("memory", func(t *testing.T) {
		s := NewMemory()
		defer s.Close()
		fn(t, s)
	})
	t.Run("sqlite", func(t *testing.T) {
		s, err := Open(filepath.Join(t.TempDir(), "waterlog.db"))
		require.NoError(t, err)
		defer s.Close()
		fn(t, s)
	})
}

func mustAppend(t *testing.T, s Store, date string, liters float64, activity string) model.Record {
	t.Helper()
	r, err := s.Append(model.Record{Date: day(date), Liters: liters, Activity: activity})
	require.NoError(t, err)
	return r
}

func ids(records []model.Record) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestIDsAreNeverReused(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		mustAppend(t, s, "2024-03-10", 10, "")
		second := mustAppend(t, s, "2024-03-10", 20, "")
		mustAppend(t, s, "2024-03-10", 30, "")

		require.NoError(t, s.Delete(second.ID))
		fourth := mustAppend(t, s, "2024-03-11", 40, "")
		assert.Equal(t, int64(4), fourth.ID)

		all, err := s.ListAll()
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 3, 4}, ids(all))
	})
}

func TestAppendRejectsInvalidLiters(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			_, err := s.Append(model.Record{Date: day("2024-03-10"), Liters: v})
			assert.ErrorIs(t, err, model.ErrInvalidLiters, "liters=%v", v)
		}
		// Rejected appends do not consume ids.
		r := mustAppend(t, s, "2024-03-10", 1, "")
		assert.Equal(t, int64(1), r.ID)
	})
}

func TestAppendNormalizesDate(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		r, err := s.Append(model.Record{Date: time.Date(2024, 3, 10, 22, 15, 0, 0, time.UTC), Liters: 5})
		require.NoError(t, err)
		assert.True(t, r.Date.Equal(day("2024-03-10")))

		got, err := s.ListByDate(day("2024-03-10"))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, r, got[0])
	})
}

func TestListOrdering(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		mustAppend(t, s, "2024-03-12", 1, "")
		mustAppend(t, s, "2024-03-10", 2, "")
		mustAppend(t, s, "2024-03-12", 3, "")
		mustAppend(t, s, "2024-03-11", 4, "")

		all, err := s.ListAll()
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 4, 1, 3}, ids(all))
	})
}

func TestListByDateRange(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		mustAppend(t, s, "2024-02-28", 1, "")
		mustAppend(t, s, "2024-02-29", 2, "")
		mustAppend(t, s, "2024-03-01", 3, "")
		mustAppend(t, s, "2024-03-02", 4, "")

		got, err := s.ListByDateRange(day("2024-02-29"), day("2024-03-01"))
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 3}, ids(got))

		_, err = s.ListByDateRange(day("2024-03-02"), day("2024-03-01"))
		assert.ErrorIs(t, err, model.ErrInvalidRange)

		got, err = s.ListByDate(day("2024-03-05"))
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestDeleteMissingIsNotAnError(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		mustAppend(t, s, "2024-03-10", 1, "")
		assert.NoError(t, s.Delete(99))

		all, err := s.ListAll()
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestThreshold(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		v, err := s.Threshold()
		require.NoError(t, err)
		assert.Equal(t, model.DefaultThreshold, v)

		require.NoError(t, s.SetThreshold(120.5))
		v, err = s.Threshold()
		require.NoError(t, err)
		assert.Equal(t, 120.5, v)

		for _, bad := range []float64{0, -5, math.NaN()} {
			assert.ErrorIs(t, s.SetThreshold(bad), model.ErrInvalidThreshold)
		}
		v, err = s.Threshold()
		require.NoError(t, err)
		assert.Equal(t, 120.5, v)
	})
}

func TestClearAllResetsEverything(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		mustAppend(t, s, "2024-03-10", 1, "")
		mustAppend(t, s, "2024-03-10", 2, "")
		require.NoError(t, s.SetThreshold(90))

		require.NoError(t, s.ClearAll())

		all, err := s.ListAll()
		require.NoError(t, err)
		assert.Empty(t, all)

		v, err := s.Threshold()
		require.NoError(t, err)
		assert.Equal(t, model.DefaultThreshold, v)

		r := mustAppend(t, s, "2024-03-11", 3, "")
		assert.Equal(t, int64(1), r.ID)
	})
}

func TestExportImport(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		mustAppend(t, s, "2024-03-10", 45.5, "shower")
		r := mustAppend(t, s, "2024-03-11", 12, "dishes")
		require.NoError(t, s.Delete(r.ID))
		mustAppend(t, s, "2024-03-12", 80, "laundry")

		var buf bytes.Buffer
		n, err := Export(s, &buf)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Contains(t, buf.String(), `"date": "2024-03-12"`)

		dst := NewMemory()
		mustAppend(t, dst, "2024-01-01", 1, "")
		n, err = Import(dst, &buf)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		all, err := dst.ListAll()
		require.NoError(t, err)
		require.Len(t, all, 3)
		// Imported records get fresh ids.
		assert.Equal(t, []int64{1, 2, 3}, ids(all))
		assert.Equal(t, "shower", all[1].Activity)
		assert.Equal(t, 80.0, all[2].Liters)
	})
}

func TestImportValidatesBeforeAppending(t *testing.T) {
	s := NewMemory()
	in := `[{"date":"2024-03-10","liters":5},{"date":"2024-03-11","liters":0}]`
	_, err := Import(s, strings.NewReader(in))
	assert.ErrorIs(t, err, model.ErrInvalidLiters)

	all, err := s.ListAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = Import(s, strings.NewReader(`[{"date":"10/03/2024","liters":5}]`))
	assert.Error(t, err)
	_, err = Import(s, strings.NewReader(`not json`))
	assert.Error(t, err)
}

func TestDBPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "waterlog.db")

	db, err := Open(path)
	require.NoError(t, err)
	mustAppend(t, db, "2024-03-10", 10, "shower")
	mustAppend(t, db, "2024-03-10", 20, "")
	require.NoError(t, db.SetThreshold(175))
	require.NoError(t, db.Delete(2))
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, path, db.Path())
	count, err := db.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	v, err := db.Threshold()
	require.NoError(t, err)
	assert.Equal(t, 175.0, v)

	r := mustAppend(t, db, "2024-03-11", 5, "")
	assert.Equal(t, int64(3), r.ID)
}

func TestAppendAll(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		mustAppend(t, s, "2024-03-10", 10, "")

		out, err := s.AppendAll([]model.Record{
			{Date: day("2024-03-11"), Liters: 20, Activity: "shower"},
			{Date: time.Date(2024, 3, 12, 18, 0, 0, 0, time.UTC), Liters: 30},
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 3}, ids(out))
		assert.Equal(t, day("2024-03-12"), out[1].Date)

		_, err = s.AppendAll([]model.Record{
			{Date: day("2024-03-13"), Liters: 5},
			{Date: day("2024-03-13"), Liters: -5},
		})
		assert.ErrorIs(t, err, model.ErrInvalidLiters)

		count, err := s.Count()
		require.NoError(t, err)
		assert.Equal(t, 3, count)
		assert.Equal(t, int64(4), mustAppend(t, s, "2024-03-14", 1, "").ID)
	})
}

func TestCount(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		count, err := s.Count()
		require.NoError(t, err)
		assert.Zero(t, count)

		mustAppend(t, s, "2024-03-10", 10, "")
		r := mustAppend(t, s, "2024-03-11", 20, "")
		require.NoError(t, s.Delete(r.ID))

		count, err = s.Count()
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		require.NoError(t, s.ClearAll())
		count, err = s.Count()
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestImportRollsBackOnStoreError(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "waterlog.db"))
	require.NoError(t, err)
	defer db.Close()

	mustAppend(t, db, "2024-03-10", 10, "")
	_, err = db.db.Exec(`CREATE TRIGGER reject_unlucky BEFORE INSERT ON records
		WHEN NEW.liters = 13 BEGIN SELECT RAISE(ABORT, 'unlucky'); END`)
	require.NoError(t, err)

	in := `[{"date":"2024-03-11","liters":5},{"date":"2024-03-12","liters":13},{"date":"2024-03-13","liters":7}]`
	n, err := Import(db, strings.NewReader(in))
	assert.Error(t, err)
	assert.Zero(t, n)

	all, err := db.ListAll()
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(all))
	// The id counter rolled back with the rows.
	assert.Equal(t, int64(2), mustAppend(t, db, "2024-03-14", 1, "").ID)
}
