package progress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/devotional/internal/storage"
	"github.com/mrlokans/devotional/internal/studies"
)

func setup(t *testing.T) (*studies.Store, *Controller) {
	t.Helper()
	store := studies.NewStore(storage.NewMemory(), nil)
	study := store.CreateStudy("John 3:16-21")
	ctrl, err := New(store, study.ID)
	require.NoError(t, err)
	return store, ctrl
}

func TestNew(t *testing.T) {
	store := studies.NewStore(storage.NewMemory(), nil)
	_, err := New(store, "missing")
	assert.True(t, errors.Is(err, ErrStudyNotFound))
}

func TestNavigation(t *testing.T) {
	t.Run("starts on step one", func(t *testing.T) {
		_, ctrl := setup(t)

		step, err := ctrl.CurrentStep()
		require.NoError(t, err)
		assert.Equal(t, 1, step)
		assert.False(t, ctrl.CanGoPrevious())
		assert.True(t, ctrl.CanGoNext())
	})

	t.Run("previous stops at the first step", func(t *testing.T) {
		_, ctrl := setup(t)

		step, err := ctrl.Previous()
		require.NoError(t, err)
		assert.Equal(t, 1, step)
	})

	t.Run("next walks to the last step and stops", func(t *testing.T) {
		store, ctrl := setup(t)

		for want := 2; want <= 8; want++ {
			step, err := ctrl.Next()
			require.NoError(t, err)
			assert.Equal(t, want, step)
		}
		step, err := ctrl.Next()
		require.NoError(t, err)
		assert.Equal(t, 8, step)

		persisted, _ := store.GetStudy(ctrl.StudyID())
		assert.Equal(t, 8, persisted.CurrentStep)
	})

	t.Run("jump to the last step", func(t *testing.T) {
		_, ctrl := setup(t)

		require.NoError(t, ctrl.JumpTo(8))

		step, _ := ctrl.CurrentStep()
		assert.Equal(t, 8, step)
		assert.True(t, ctrl.CanGoPrevious())
		assert.False(t, ctrl.CanGoNext())
	})

	t.Run("jump back to an earlier step", func(t *testing.T) {
		_, ctrl := setup(t)
		require.NoError(t, ctrl.JumpTo(6))
		require.NoError(t, ctrl.JumpTo(2))

		step, _ := ctrl.CurrentStep()
		assert.Equal(t, 2, step)
	})

	t.Run("jump out of range", func(t *testing.T) {
		_, ctrl := setup(t)

		for _, n := range []int{0, 9, -1} {
			err := ctrl.JumpTo(n)
			assert.True(t, errors.Is(err, ErrStepOutOfRange), "step %d", n)
		}
		step, _ := ctrl.CurrentStep()
		assert.Equal(t, 1, step)
	})

	t.Run("deleted study", func(t *testing.T) {
		store, ctrl := setup(t)
		store.DeleteStudy(ctrl.StudyID())

		_, err := ctrl.Next()
		assert.True(t, errors.Is(err, ErrStudyNotFound))
		assert.False(t, ctrl.CanGoNext())
		assert.False(t, ctrl.CanGoPrevious())
	})
}

func TestCompletionIsIndependentOfNavigation(t *testing.T) {
	_, ctrl := setup(t)
	require.NoError(t, ctrl.JumpTo(3))

	require.NoError(t, ctrl.ToggleComplete())

	step, _ := ctrl.CurrentStep()
	assert.Equal(t, 3, step)

	p, err := ctrl.Progress()
	require.NoError(t, err)
	assert.Equal(t, []int{3}, p.CompletedSteps)
	assert.Equal(t, 13, p.Percent)

	// completing nothing still allows jumping anywhere
	require.NoError(t, ctrl.JumpTo(7))
	require.NoError(t, ctrl.ToggleComplete())
	require.NoError(t, ctrl.ToggleComplete())

	p, _ = ctrl.Progress()
	assert.Equal(t, []int{3}, p.CompletedSteps)
	assert.Equal(t, 7, p.CurrentStep)
}

func TestUpdateNotes(t *testing.T) {
	store, ctrl := setup(t)
	require.NoError(t, ctrl.JumpTo(3))
	require.NoError(t, ctrl.UpdateNotes("Context is key"))

	study, _ := store.GetStudy(ctrl.StudyID())
	data, _ := study.Step(3)
	assert.Equal(t, "Context is key", data.Notes)

	view, err := ctrl.View()
	require.NoError(t, err)
	assert.Equal(t, "Content", view.Step.Name)
	assert.Equal(t, "Context is key", view.Data.Notes)
	assert.True(t, view.CanGoNext)
	assert.True(t, view.CanGoPrevious)
}
