package handlers

import (
	"net/http"
	"testing"

	"pulseboard_app_go/ui"

	"github.com/stretchr/testify/assert"
)

func TestToastHandler(t *testing.T) {
	t.Run("No notification renders empty", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/htmx/toast", nil)
		newVisitor(c)

		assert.NoError(t, ToastHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("Current notification renders", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/htmx/toast", nil)
		visitor := newVisitor(c)
		toasts.Show(visitor, ui.KindSuccess, "All set!")

		assert.NoError(t, ToastHandler(c))
		assert.Contains(t, rec.Body.String(), "All set!")
		assert.Contains(t, rec.Body.String(), "toast-success")
	})

	t.Run("Error notification uses error styling", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/htmx/toast", nil)
		visitor := newVisitor(c)
		toasts.Show(visitor, ui.KindError, "Something broke")

		assert.NoError(t, ToastHandler(c))
		assert.Contains(t, rec.Body.String(), "toast-error")
	})

	t.Run("Visitors do not see each other's toasts", func(t *testing.T) {
		_, c1, _ := setupEcho(http.MethodGet, "/htmx/toast", nil)
		visitor1 := newVisitor(c1)
		toasts.Show(visitor1, ui.KindSuccess, "Private to one")

		_, c2, rec2 := setupEcho(http.MethodGet, "/htmx/toast", nil)
		newVisitor(c2)

		assert.NoError(t, ToastHandler(c2))
		assert.NotContains(t, rec2.Body.String(), "Private to one")
	})
}

func TestToastDismissHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodPost, "/htmx/toast/dismiss", nil)
	visitor := newVisitor(c)
	toasts.Show(visitor, ui.KindSuccess, "Going away")

	assert.NoError(t, ToastDismissHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, toasts.Current(visitor))
}
