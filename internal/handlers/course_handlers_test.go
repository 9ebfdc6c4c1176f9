package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListCourses(t *testing.T) {
	app := newTestApp(t)
	rec := app.get("/courses", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Fansly Master")
	assert.Contains(t, body, "ARS $85.000")
	assert.Contains(t, body, "Próximamente")
	assert.Contains(t, body, `href="/login"`)
}

func TestShowCourse(t *testing.T) {
	app := newTestApp(t)

	rec := app.get("/courses/fansly-master", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "IMPORTANTE — LEE ANTES DE COMPRAR")
	assert.Contains(t, body, `href="/checkout?course=fansly-master"`)
	assert.Contains(t, body, "USD 60")
}

func TestShowCourseComingSoon(t *testing.T) {
	app := newTestApp(t)

	rec := app.get("/courses/onlyfans-pro", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Próximamente")
	assert.NotContains(t, rec.Body.String(), "Comprar ahora")
}

func TestShowCourseUnknownSlug(t *testing.T) {
	app := newTestApp(t)

	rec := app.get("/courses/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No pudimos encontrar el curso que buscas.")
}

func TestListCoursesAPIError(t *testing.T) {
	app := newTestApp(t)
	app.api.listErr = errors.New("connection refused")

	rec := app.get("/courses", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "No pudimos cargar los cursos")
}
